// Package http содержит маршрутизацию HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"notesapi/internal/adapters/http/accounts"
	"notesapi/internal/adapters/http/middleware"
	"notesapi/internal/adapters/http/notes"
	"notesapi/internal/ports/api"
	svc "notesapi/internal/ports/services"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(
	app *fiber.App,
	authUseCase api.AuthUseCase,
	userUseCase api.UserUseCase,
	noteUseCase api.NoteUseCase,
	tokenSvc svc.TokenService,
) {
	accountsHandler := accounts.NewHandler(authUseCase)
	notesHandler := notes.NewHandler(noteUseCase)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	authRequired := middleware.NewAuthMiddleware(tokenSvc, userUseCase)

	// API версии 1.
	apiV1 := app.Group("/api/v1")

	// Accounts routes: register/login/refresh публичные, logout защищенный.
	accountRoutes := apiV1.Group("/accounts")
	accountRoutes.Post("/register", accountsHandler.Register)
	accountRoutes.Post("/login", accountsHandler.Login)
	accountRoutes.Post("/refresh", accountsHandler.Refresh)
	accountRoutes.Post("/logout", accountsHandler.Logout, authRequired)

	// Notes routes: все защищенные.
	noteRoutes := apiV1.Group("/notes")
	noteRoutes.Use(authRequired)
	noteRoutes.Get("/", notesHandler.List)
	noteRoutes.Post("/", notesHandler.Create)
	noteRoutes.Get("/:id", notesHandler.Get)
	noteRoutes.Put("/:id", notesHandler.Update)
	noteRoutes.Delete("/:id", notesHandler.Delete)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
