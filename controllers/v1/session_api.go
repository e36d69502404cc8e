package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"leave-letter-backend/controllers"
	formsession "leave-letter-backend/lib/form-session"
	"leave-letter-backend/lib/letter"
	"leave-letter-backend/middleware"
	apimodels "leave-letter-backend/models/api"
	sessionapimodels "leave-letter-backend/models/api/session"
)

type sessionApiController struct {
	controllers.BaseAPIController
}

func InitSessionRouters(app *fiber.App) {
	controller := sessionApiController{}
	app.Route("session", func(route fiber.Router) {
		route.Use(middleware.OptionalAuthorization())
		route.Post("", controller.open)
		route.Get(":id", controller.get)
		route.Patch(":id/field", controller.changeField)
		route.Post(":id/generate", controller.generate)
		route.Post(":id/edit", controller.edit)
		route.Post(":id/reset", controller.reset)
		route.Post(":id/refresh_profile", controller.refreshProfile)
		route.Delete(":id", controller.close)
	})
}

// @Summary Открыть форму
// @Tags Сессия заполнения формы
// @Description Создает сессию, для авторизованного пользователя поля заполняются из профиля
// @Param   Authorization		header		string	false	"Authorization token"
// @Param	body	body	sessionapimodels.OpenRequest	true	"Вид формы"
// @Success 200 {object} apimodels.Response{data=sessionapimodels.SessionView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/session [post]
func (c *sessionApiController) open(ctx *fiber.Ctx) error {
	var payload sessionapimodels.OpenRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := formsession.Instance.Open(ctx.UserContext(), middleware.GetUserID(ctx), middleware.GetUserEmail(ctx), letter.FormKind(payload.Kind))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка открытия формы")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Состояние формы
// @Tags Сессия заполнения формы
// @Param   Authorization		header		string	false	"Authorization token"
// @Param	id	path	string	true	"Идентификатор сессии"
// @Success 200 {object} apimodels.Response{data=sessionapimodels.SessionView}
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/session/{id} [get]
func (c *sessionApiController) get(ctx *fiber.Ctx) error {
	view, err := formsession.Instance.Get(ctx.UserContext(), ctx.Params("id"), middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения формы")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Изменить поле формы
// @Tags Сессия заполнения формы
// @Param   Authorization		header		string	false	"Authorization token"
// @Param	id	path	string	true	"Идентификатор сессии"
// @Param	body	body	sessionapimodels.FieldChange	true	"Поле и значение"
// @Success 200 {object} apimodels.Response{data=sessionapimodels.SessionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/session/{id}/field [patch]
func (c *sessionApiController) changeField(ctx *fiber.Ctx) error {
	var payload sessionapimodels.FieldChange
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := formsession.Instance.ChangeField(ctx.UserContext(), ctx.Params("id"), middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения поля формы")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Сформировать письмо
// @Tags Сессия заполнения формы
// @Description Проверяет форму и формирует письмо. Прогресс публикуется в /api/v1/ws/session/{id}
// @Param   Authorization		header		string	false	"Authorization token"
// @Param	id	path	string	true	"Идентификатор сессии"
// @Success 200 {object} apimodels.Response{data=letterapimodels.GeneratedLetter}
// @Failure 400 {object} apimodels.Response{data=apimodels.ValidationErrorData}
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/session/{id}/generate [post]
func (c *sessionApiController) generate(ctx *fiber.Ctx) error {
	result, err := formsession.Instance.Generate(ctx.UserContext(), ctx.Params("id"), middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования письма")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Вернуться к редактированию
// @Tags Сессия заполнения формы
// @Param   Authorization		header		string	false	"Authorization token"
// @Param	id	path	string	true	"Идентификатор сессии"
// @Success 200 {object} apimodels.Response{data=sessionapimodels.SessionView}
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/session/{id}/edit [post]
func (c *sessionApiController) edit(ctx *fiber.Ctx) error {
	view, err := formsession.Instance.ReturnToEditing(ctx.UserContext(), ctx.Params("id"), middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка возврата к редактированию")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Очистить форму
// @Tags Сессия заполнения формы
// @Param   Authorization		header		string	false	"Authorization token"
// @Param	id	path	string	true	"Идентификатор сессии"
// @Success 200 {object} apimodels.Response{data=sessionapimodels.SessionView}
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/session/{id}/reset [post]
func (c *sessionApiController) reset(ctx *fiber.Ctx) error {
	view, err := formsession.Instance.Reset(ctx.UserContext(), ctx.Params("id"), middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка очистки формы")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Повторно загрузить профиль
// @Tags Сессия заполнения формы
// @Param   Authorization		header		string	false	"Authorization token"
// @Param	id	path	string	true	"Идентификатор сессии"
// @Success 200 {object} apimodels.Response{data=sessionapimodels.SessionView}
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/session/{id}/refresh_profile [post]
func (c *sessionApiController) refreshProfile(ctx *fiber.Ctx) error {
	view, err := formsession.Instance.RefreshProfile(ctx.UserContext(), ctx.Params("id"), middleware.GetUserID(ctx), middleware.GetUserEmail(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки профиля")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Закрыть форму
// @Tags Сессия заполнения формы
// @Param   Authorization		header		string	false	"Authorization token"
// @Param	id	path	string	true	"Идентификатор сессии"
// @Success 200 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/session/{id} [delete]
func (c *sessionApiController) close(ctx *fiber.Ctx) error {
	err := formsession.Instance.Close(ctx.UserContext(), ctx.Params("id"), middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка закрытия формы")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
