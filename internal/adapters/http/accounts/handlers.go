// Package accounts содержит HTTP обработчики операций с учетными записями.
package accounts

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notesapi/internal/adapters/http/dto"
	"notesapi/internal/adapters/http/middleware"
	"notesapi/internal/adapters/http/respond"
	"notesapi/internal/ports/api"
	"notesapi/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerRegister = "accounts handler: register"
	LogHandlerLogin    = "accounts handler: login"
	LogHandlerLogout   = "accounts handler: logout"
	LogHandlerRefresh  = "accounts handler: refresh"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Сообщения успешных ответов.
const (
	MsgRegistered = "User registered successfully"
	MsgLoggedIn   = "You logged in successfully"
	MsgLoggedOut  = "You logged out successfully"
	MsgLogoutHint = "Token is not stored server-side. Please clear your local tokens."
)

// Handler содержит HTTP обработчики учетных записей.
type Handler struct {
	auth api.AuthUseCase
}

// NewHandler создает новый экземпляр обработчика учетных записей.
func NewHandler(auth api.AuthUseCase) *Handler {
	return &Handler{auth: auth}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return badRequest(ctx, ErrorInvalidRequest)
	}

	user, tokens, err := h.auth.Register(requestCtx, req.Email, req.Username, req.Password)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respond.Error(ctx, err, fiber.StatusInternalServerError)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(dto.NewAuthResponse(MsgRegistered, user, tokens)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return badRequest(ctx, ErrorInvalidRequest)
	}

	user, tokens, err := h.auth.Login(requestCtx, req.Username, req.Password)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respond.Error(ctx, err, fiber.StatusInternalServerError)
	}

	if err := ctx.Status(fiber.StatusOK).JSON(dto.NewAuthResponse(MsgLoggedIn, user, tokens)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Logout обрабатывает запрос на выход пользователя. Токены не отзываются,
// ответ предписывает клиенту удалить их локально.
func (h *Handler) Logout(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogout)

	user, ok := middleware.UserFromCtx(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthorized",
		})
	}

	if err := h.auth.Logout(requestCtx, user); err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respond.Error(ctx, err, fiber.StatusInternalServerError)
	}

	if err := ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": MsgLoggedOut,
		"detail":  MsgLogoutHint,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Refresh обрабатывает запрос на обновление пары токенов.
func (h *Handler) Refresh(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRefresh)

	var req dto.RefreshRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return badRequest(ctx, ErrorInvalidRequest)
	}

	if req.RefreshToken == "" {
		return badRequest(ctx, "refresh token is required")
	}

	tokens, err := h.auth.Refresh(requestCtx, req.RefreshToken)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid refresh token",
		})
	}

	if err := ctx.Status(fiber.StatusOK).JSON(dto.TokenResponse{
		Access:    tokens.AccessToken,
		Refresh:   tokens.RefreshToken,
		ExpiresAt: tokens.ExpiresAt,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

func badRequest(ctx fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}
