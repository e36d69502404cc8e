package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"leave-letter-backend/controllers"
	"leave-letter-backend/lib/letter"
	apimodels "leave-letter-backend/models/api"
	letterapimodels "leave-letter-backend/models/api/letter"
)

type letterApiController struct {
	controllers.BaseAPIController
	engine letter.Engine
}

func InitLetterApiRouters(app *fiber.App) {
	controller := letterApiController{engine: letter.NewEngine()}
	app.Route("letter", func(route fiber.Router) {
		route.Get("reasons", controller.reasons)
		route.Post("general/progress", controller.generalProgress)
		route.Post("general/generate", controller.generalGenerate)
		route.Post("institutional/progress", controller.institutionalProgress)
		route.Post("institutional/generate", controller.institutionalGenerate)
	})
}

// @Summary Варианты причин
// @Tags Заявление
// @Description Подсказки для поля "причина" по видам формы
// @Success 200 {object} apimodels.Response{data=letterapimodels.ReasonSuggestionsView}
// @router /api/v1/letter/reasons [get]
func (c *letterApiController) reasons(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(letterapimodels.ReasonSuggestionsView{
		General:       letter.ReasonSuggestions(letter.KindGeneral),
		Institutional: letter.ReasonSuggestions(letter.KindInstitutional),
	}))
}

// @Summary Прогресс заполнения общего заявления
// @Tags Заявление
// @Param	body	body	letterapimodels.GeneralLetterData	true	"Поля формы"
// @Success 200 {object} apimodels.Response{data=letterapimodels.ProgressView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/letter/general/progress [post]
func (c *letterApiController) generalProgress(ctx *fiber.Ctx) error {
	payload := letterapimodels.NewGeneralLetterData()
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return c.sendProgress(ctx, payload.ToForm())
}

// @Summary Прогресс заполнения институционального заявления
// @Tags Заявление
// @Param	body	body	letterapimodels.InstitutionalLetterData	true	"Поля формы"
// @Success 200 {object} apimodels.Response{data=letterapimodels.ProgressView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/letter/institutional/progress [post]
func (c *letterApiController) institutionalProgress(ctx *fiber.Ctx) error {
	var payload letterapimodels.InstitutionalLetterData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return c.sendProgress(ctx, payload.ToForm())
}

// @Summary Сформировать общее заявление
// @Tags Заявление
// @Description Проверка полей и формирование текста письма
// @Param	body	body	letterapimodels.GeneralLetterData	true	"Поля формы"
// @Success 200 {object} apimodels.Response{data=letterapimodels.GeneratedLetter}
// @Failure 400 {object} apimodels.Response{data=apimodels.ValidationErrorData}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/letter/general/generate [post]
func (c *letterApiController) generalGenerate(ctx *fiber.Ctx) error {
	payload := letterapimodels.NewGeneralLetterData()
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return c.sendLetter(ctx, payload.ToForm(), payload.RecipientEmail)
}

// @Summary Сформировать институциональное заявление
// @Tags Заявление
// @Param	body	body	letterapimodels.InstitutionalLetterData	true	"Поля формы"
// @Success 200 {object} apimodels.Response{data=letterapimodels.GeneratedLetter}
// @Failure 400 {object} apimodels.Response{data=apimodels.ValidationErrorData}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/letter/institutional/generate [post]
func (c *letterApiController) institutionalGenerate(ctx *fiber.Ctx) error {
	var payload letterapimodels.InstitutionalLetterData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return c.sendLetter(ctx, payload.ToForm(), payload.RecipientEmail)
}

func (c *letterApiController) sendProgress(ctx *fiber.Ctx, form letter.Form) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(letterapimodels.ProgressView{
		Progress: letter.Progress(form),
	}))
}

func (c *letterApiController) sendLetter(ctx *fiber.Ctx, form letter.Form, recipientEmail string) error {
	if err := letter.Validate(form); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка проверки формы")
	}
	text, err := c.engine.Render(form)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования письма")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(letterapimodels.GeneratedLetter{
		Letter:         text,
		RecipientEmail: recipientEmail,
	}))
}
