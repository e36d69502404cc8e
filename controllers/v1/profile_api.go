package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"leave-letter-backend/controllers"
	"leave-letter-backend/lib/profile"
	"leave-letter-backend/middleware"
	apimodels "leave-letter-backend/models/api"
	profileapimodels "leave-letter-backend/models/api/profile"
)

type profileApiController struct {
	controllers.BaseAPIController
}

func InitProfileRouters(app *fiber.App) {
	controller := profileApiController{}
	app.Route("profile", func(route fiber.Router) {
		route.Use(middleware.AuthorizationRequired())
		route.Get("", controller.getProfile)
		route.Put("institutional", controller.updateInstitutional)
		route.Put("general", controller.updateGeneral)
	})
}

// @Summary Получение профиля
// @Tags Профиль
// @Description Данные для автозаполнения форм
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=profileapimodels.ProfilesView}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profile [get]
func (c *profileApiController) getProfile(ctx *fiber.Ctx) error {
	data, err := profile.Instance.Fetch(ctx.UserContext(), middleware.GetUserID(ctx), middleware.GetUserEmail(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения профиля")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Обновление институционального профиля
// @Tags Профиль
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body	body	profileapimodels.InstitutionalProfile	true	"Профиль"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profile/institutional [put]
func (c *profileApiController) updateInstitutional(ctx *fiber.Ctx) error {
	var payload profileapimodels.InstitutionalProfile
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := profile.Instance.SaveInstitutional(ctx.UserContext(), middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления профиля")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Обновление общего профиля
// @Tags Профиль
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body	body	profileapimodels.GeneralProfile	true	"Профиль"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profile/general [put]
func (c *profileApiController) updateGeneral(ctx *fiber.Ctx) error {
	var payload profileapimodels.GeneralProfile
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := profile.Instance.SaveGeneral(ctx.UserContext(), middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления профиля")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
