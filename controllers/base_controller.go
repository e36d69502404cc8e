package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"leave-letter-backend/fiberlog"
	formsession "leave-letter-backend/lib/form-session"
	"leave-letter-backend/lib/letter"
	letterdisplay "leave-letter-backend/lib/letter-display"
	apimodels "leave-letter-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return fiberlog.GetRequestLogger(ctx)
}

// SendError ответ с ошибкой. Известные ошибки отдаются клиенту как есть с нужным статусом,
// остальные логируются, клиент получает msg
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	var validationErr *letter.ValidationError
	if errors.As(err, &validationErr) {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewValidationError(string(validationErr.Field), validationErr.Message))
	}
	if status, ok := knownErrorStatus(err); ok {
		return ctx.Status(status).JSON(apimodels.NewError(err.Error()))
	}
	logger.WithError(err).Error(msg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(msg))
}

func knownErrorStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, formsession.ErrSessionNotFound):
		return fiber.StatusNotFound, true
	case errors.Is(err, formsession.ErrSessionForbidden):
		return fiber.StatusForbidden, true
	case errors.Is(err, formsession.ErrGenerationInProgress),
		errors.Is(err, formsession.ErrSessionBusy):
		return fiber.StatusConflict, true
	case errors.Is(err, formsession.ErrUnknownField),
		errors.Is(err, formsession.ErrInvalidFieldValue),
		errors.Is(err, formsession.ErrUnknownKind):
		return fiber.StatusBadRequest, true
	case errors.Is(err, letterdisplay.ErrStorageUnavailable),
		errors.Is(err, letterdisplay.ErrMailUnavailable):
		return fiber.StatusServiceUnavailable, true
	}
	return 0, false
}
