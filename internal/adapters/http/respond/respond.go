// Package respond содержит общую трансляцию ошибок приложения в HTTP ответы.
package respond

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"notesapi/internal/domain/entities"
	"notesapi/internal/domain/services"
)

// Сообщения ответов об ошибках.
const (
	MsgNoteNotFound   = "note not found"
	MsgInternalServer = "Internal server error"
)

// Error транслирует ошибку уровня приложения в HTTP ответ:
// ошибки валидации дают 400 с набором поле -> сообщение, отсутствующая
// или чужая заметка дает 404, все остальное - fallback статус.
// Текст неожиданной ошибки остается в логах и не попадает в ответ.
func Error(ctx fiber.Ctx, err error, fallback int) error {
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": vErr.Fields,
		})
	}

	if errors.Is(err, entities.ErrNoteNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": MsgNoteNotFound,
		})
	}

	return ctx.Status(fallback).JSON(fiber.Map{
		"error": MsgInternalServer,
	})
}
