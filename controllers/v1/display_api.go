package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"leave-letter-backend/controllers"
	deliveryhandler "leave-letter-backend/lib/delivery"
	letterdisplay "leave-letter-backend/lib/letter-display"
	"leave-letter-backend/middleware"
	apimodels "leave-letter-backend/models/api"
	letterapimodels "leave-letter-backend/models/api/letter"
)

const deliveriesFileName = "deliveries.xlsx"

type displayApiController struct {
	controllers.BaseAPIController
}

func InitDisplayApiRouters(app *fiber.App) {
	controller := displayApiController{}
	app.Route("letter", func(route fiber.Router) {
		route.Post("download", controller.download)
		route.Post("print", controller.print)
		route.Post("pdf", controller.pdf)
		route.Post("share", middleware.AuthorizationRequired(), controller.share)
		route.Post("email", middleware.AuthorizationRequired(), controller.email)
		route.Get("deliveries", middleware.AuthorizationRequired(), controller.deliveries)
		route.Get("deliveries/export", middleware.AuthorizationRequired(), controller.exportDeliveries)
	})
}

// @Summary Скачать письмо
// @Tags Отображение письма
// @Description Текст письма файлом leave-application.txt
// @Param	body	body	letterapimodels.LetterText	true	"Текст письма"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @router /api/v1/letter/download [post]
func (c *displayApiController) download(ctx *fiber.Ctx) error {
	payload, err := c.parseLetter(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	setAttachment(ctx, letterdisplay.TextFileName, fiber.MIMETextPlainCharsetUTF8)
	return ctx.Status(fiber.StatusOK).Send(letterdisplay.Instance.Download(payload.Letter))
}

// @Summary Страница печати
// @Tags Отображение письма
// @Description Html страница с письмом для печати
// @Param	body	body	letterapimodels.LetterText	true	"Текст письма"
// @Success 200 {string} string
// @Failure 400 {object} apimodels.Response
// @router /api/v1/letter/print [post]
func (c *displayApiController) print(ctx *fiber.Ctx) error {
	payload, err := c.parseLetter(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	page, err := letterdisplay.Instance.PrintView(payload.Letter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования страницы печати")
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.Status(fiber.StatusOK).SendString(page)
}

// @Summary Письмо в pdf
// @Tags Отображение письма
// @Param	body	body	letterapimodels.LetterText	true	"Текст письма"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/letter/pdf [post]
func (c *displayApiController) pdf(ctx *fiber.Ctx) error {
	payload, err := c.parseLetter(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	file, err := letterdisplay.Instance.Pdf(payload.Letter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования pdf")
	}
	setAttachment(ctx, letterdisplay.PdfFileName, "application/pdf")
	return ctx.Status(fiber.StatusOK).Send(file)
}

// @Summary Поделиться письмом
// @Tags Отображение письма
// @Description Загружает pdf письма в хранилище и возвращает временную ссылку
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body	body	letterapimodels.LetterText	true	"Текст письма"
// @Success 200 {object} apimodels.Response{data=letterapimodels.ShareView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/letter/share [post]
func (c *displayApiController) share(ctx *fiber.Ctx) error {
	payload, err := c.parseLetter(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := letterdisplay.Instance.Share(ctx.UserContext(), middleware.GetUserID(ctx), payload.Letter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения ссылки на письмо")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Отправить письмо по почте
// @Tags Отображение письма
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body	body	letterapimodels.EmailRequest	true	"Письмо и адресат"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/letter/email [post]
func (c *displayApiController) email(ctx *fiber.Ctx) error {
	var payload letterapimodels.EmailRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := letterdisplay.Instance.Email(ctx.UserContext(), middleware.GetUserID(ctx), middleware.GetUserEmail(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отправки письма")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Журнал отправленных писем
// @Tags Отображение письма
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	page	query	int	false	"Страница"
// @Param	limit	query	int	false	"Записей на странице"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]letterapimodels.DeliveryView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/letter/deliveries [get]
func (c *displayApiController) deliveries(ctx *fiber.Ctx) error {
	var filter letterapimodels.DeliveryFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("некорректные параметры запроса"))
	}
	list, rowCount, err := deliveryhandler.Instance.List(ctx.UserContext(), middleware.GetUserID(ctx), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения журнала отправки писем")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Выгрузка журнала отправленных писем
// @Tags Отображение письма
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {file} file
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/letter/deliveries/export [get]
func (c *displayApiController) exportDeliveries(ctx *fiber.Ctx) error {
	buf, err := deliveryhandler.Instance.Export(ctx.UserContext(), middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки журнала отправки писем")
	}
	setAttachment(ctx, deliveriesFileName, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

func (c *displayApiController) parseLetter(ctx *fiber.Ctx) (letterapimodels.LetterText, error) {
	var payload letterapimodels.LetterText
	if err := c.BodyParser(ctx, &payload); err != nil {
		return payload, err
	}
	return payload, payload.Validate()
}

func setAttachment(ctx *fiber.Ctx, fileName, contentType string) {
	ctx.Set(fiber.HeaderContentType, contentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
}
