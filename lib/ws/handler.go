package ws

import (
	"leave-letter-backend/controllers"
	formsession "leave-letter-backend/lib/form-session"
	wsclient "leave-letter-backend/lib/ws/client"
	connectionhub "leave-letter-backend/lib/ws/hub/connection-hub"
	"leave-letter-backend/middleware"
	apimodels "leave-letter-backend/models/api"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type wsController struct {
	controllers.BaseAPIController
}

func InitWs(app fiber.Router) {
	controller := wsController{}
	app.Use("/session/:id", middleware.OptionalWsAuthorization(), controller.checkSession)
	app.Get("/session/:id", websocket.New(progressHandler))
}

// checkSession подписаться можно только на существующую сессию своего пользователя
func (c *wsController) checkSession(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("id")
	_, err := formsession.Instance.Get(ctx.UserContext(), sessionID, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка подключения к сессии")
	}
	if !websocket.IsWebSocketUpgrade(ctx) {
		return ctx.Status(fiber.StatusUpgradeRequired).JSON(apimodels.NewError("ожидается websocket соединение"))
	}
	ctx.Locals("sessionID", sessionID)
	return ctx.Next()
}

// @Summary События генерации письма
// @Tags Websocket
// @Description Прогресс генерации (progress), готовое письмо (letter_ready), уведомления (notice) сессии заполнения формы.
// @Description Для сессии пользователя токен передается в заголовке Authorization или в query параметре token
// @Param   id		path		string		true		"ID сессии"
// @Param   token	query		string		false		"JWT токен"
// @Success 101 {object} wsmodels.ServerMessage
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 426 {object} apimodels.Response
// @router /api/v1/ws/session/{id} [get]
func progressHandler(c *websocket.Conn) {
	sessionID, _ := c.Locals("sessionID").(string)
	client := wsclient.NewClient(sessionID, c)
	connectionhub.Instance.AddClient(sessionID, c)
	defer func() {
		connectionhub.Instance.DeleteClient(sessionID, c)
	}()
	client.Dispatch()
}
