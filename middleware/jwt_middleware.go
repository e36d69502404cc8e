package middleware

import (
	"strings"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"leave-letter-backend/config"
	authutils "leave-letter-backend/lib/utils/auth-utils"
	apimodels "leave-letter-backend/models/api"
)

const (
	headerTokenLookup = "header:" + fiber.HeaderAuthorization
	// браузер не передает заголовки при открытии websocket, токен допускается в query
	wsTokenLookup = headerTokenLookup + ",query:" + wsTokenQuery
	wsTokenQuery  = "token"
)

func AuthorizationRequired() fiber.Handler {
	return jwtware.New(jwtConfig(nil, headerTokenLookup))
}

// OptionalAuthorization запрос без заголовка Authorization пропускается как анонимный,
// невалидный токен отклоняется
func OptionalAuthorization() fiber.Handler {
	return jwtware.New(jwtConfig(func(ctx *fiber.Ctx) bool {
		return strings.TrimSpace(ctx.Get(fiber.HeaderAuthorization)) == ""
	}, headerTokenLookup))
}

// OptionalWsAuthorization как OptionalAuthorization, токен также читается из query параметра token
func OptionalWsAuthorization() fiber.Handler {
	return jwtware.New(jwtConfig(func(ctx *fiber.Ctx) bool {
		return strings.TrimSpace(ctx.Get(fiber.HeaderAuthorization)) == "" &&
			strings.TrimSpace(ctx.Query(wsTokenQuery)) == ""
	}, wsTokenLookup))
}

func jwtConfig(filter func(ctx *fiber.Ctx) bool, tokenLookup string) jwtware.Config {
	return jwtware.Config{
		Filter:      filter,
		TokenLookup: tokenLookup,
		Claims:      jwt.MapClaims{},
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(config.Conf.Auth.JWTSecret),
		},
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("требуется авторизация"))
		},
	}
}

func GetUserID(ctx *fiber.Ctx) string {
	return getStringClaim(ctx, "sub")
}

func GetUserEmail(ctx *fiber.Ctx) string {
	return getStringClaim(ctx, "email")
}

func getStringClaim(ctx *fiber.Ctx, name string) string {
	claims := authutils.GetClaims(ctx)
	if value, exist := claims[name]; exist {
		if str, ok := value.(string); ok {
			return str
		}
	}
	return ""
}
