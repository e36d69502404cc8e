package fiberlog

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	app := fiber.New()
	app.Use(requestid.New())
	app.Use(New(Config{
		Logger: logger,
		Tags:   []string{TagStatus, TagMethod, TagPath, TagBody, TagResBody, RequestID},
	}))
	app.Post("/letter", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "success"})
	})
	app.Post("/missing", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "fail"})
	})

	t.Run(`success request`, func(t *testing.T) {
		hook.Reset()
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/letter", strings.NewReader(`{"reason":"Fever"}`)))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		entry := hook.LastEntry()
		require.NotNil(t, entry)
		require.Equal(t, logrus.InfoLevel, entry.Level)
		require.Equal(t, "запрос api", entry.Message)
		require.Equal(t, fiber.StatusOK, entry.Data[TagStatus])
		require.Equal(t, "/letter", entry.Data[TagPath])
		require.Equal(t, `{"reason":"Fever"}`, entry.Data[TagBody])
		require.Equal(t, `{"status":"success"}`, entry.Data[TagResBody])
		require.NotEmpty(t, entry.Data[RequestID])
	})

	t.Run(`error status is warn`, func(t *testing.T) {
		hook.Reset()
		_, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/missing", nil))
		require.NoError(t, err)
		entry := hook.LastEntry()
		require.NotNil(t, entry)
		require.Equal(t, logrus.WarnLevel, entry.Level)
		require.Equal(t, fiber.StatusNotFound, entry.Data[TagStatus])
	})
}
