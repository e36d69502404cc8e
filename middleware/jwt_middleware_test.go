package middleware

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"leave-letter-backend/config"
	authutils "leave-letter-backend/lib/utils/auth-utils"
)

func initTestConfig() {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 60
}

func newTestApp(auth fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/whoami", auth, func(ctx *fiber.Ctx) error {
		return ctx.SendString(GetUserID(ctx) + "|" + GetUserEmail(ctx))
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, token string) (int, string) {
	req := httptest.NewRequest(fiber.MethodGet, "/whoami", nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestAuthorization(t *testing.T) {
	initTestConfig()
	token, err := authutils.GetToken("u1", "ada@haca.edu", "Ada")
	require.NoError(t, err)

	t.Run(`required with token`, func(t *testing.T) {
		code, body := doRequest(t, newTestApp(AuthorizationRequired()), token)
		require.Equal(t, fiber.StatusOK, code)
		require.Equal(t, "u1|ada@haca.edu", body)
	})

	t.Run(`required without token`, func(t *testing.T) {
		code, _ := doRequest(t, newTestApp(AuthorizationRequired()), "")
		require.Equal(t, fiber.StatusUnauthorized, code)
	})

	t.Run(`optional without token`, func(t *testing.T) {
		code, body := doRequest(t, newTestApp(OptionalAuthorization()), "")
		require.Equal(t, fiber.StatusOK, code)
		require.Equal(t, "|", body)
	})

	t.Run(`optional with token`, func(t *testing.T) {
		code, body := doRequest(t, newTestApp(OptionalAuthorization()), token)
		require.Equal(t, fiber.StatusOK, code)
		require.Equal(t, "u1|ada@haca.edu", body)
	})

	t.Run(`optional with bad token`, func(t *testing.T) {
		code, _ := doRequest(t, newTestApp(OptionalAuthorization()), "not-a-token")
		require.Equal(t, fiber.StatusUnauthorized, code)
	})
}

func TestWithBodyLimit(t *testing.T) {
	app := fiber.New()
	app.Use(WithBodyLimit(8))
	app.Post("/", func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})

	t.Run(`small body`, func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader("abcd"))
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run(`large body`, func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(strings.Repeat("a", 100)))
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
	})
}
