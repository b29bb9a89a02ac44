// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notesapi/internal/domain/entities"
	"notesapi/internal/ports/api"
	svc "notesapi/internal/ports/services"
	"notesapi/pkg/logger"
)

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorInvalidToken       = "invalid or expired token"
)

// UserLocalKey - ключ Locals, под которым хранится аутентифицированный пользователь.
const UserLocalKey = "authUser"

// NewAuthMiddleware создает промежуточное ПО проверки аутентификации:
// валидирует bearer access токен и загружает профиль пользователя.
func NewAuthMiddleware(tokenSvc svc.TokenService, users api.UserUseCase) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return unauthorized(ctx, ErrorNoAuthHeader)
		}

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return unauthorized(ctx, ErrorInvalidTokenFormat)
		}

		userID, err := tokenSvc.ValidateAccessToken(requestCtx, token)
		if err != nil {
			log.Debug(requestCtx, ErrorInvalidToken, zap.Error(err))
			return unauthorized(ctx, ErrorInvalidToken)
		}

		user, err := users.GetUserProfile(requestCtx, userID)
		if err != nil {
			log.Debug(requestCtx, ErrorInvalidToken, zap.Error(err))
			return unauthorized(ctx, ErrorInvalidToken)
		}

		ctx.Locals(UserLocalKey, user)

		return ctx.Next()
	}
}

// UserFromCtx извлекает аутентифицированного пользователя из запроса.
func UserFromCtx(ctx fiber.Ctx) (*entities.User, bool) {
	user, ok := ctx.Locals(UserLocalKey).(*entities.User)
	return user, ok
}

func unauthorized(ctx fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": message,
	})
}
