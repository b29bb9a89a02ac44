// Package notes содержит HTTP обработчики операций с заметками.
package notes

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
	LogHandlerList   = "notes handler: list"
	LogHandlerCreate = "notes handler: create"
	LogHandlerGet    = "notes handler: get"
	LogHandlerUpdate = "notes handler: update"
	LogHandlerDelete = "notes handler: delete"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Сообщения успешных ответов.
const (
	MsgYourNotes   = "Your notes"
	MsgNoteCreated = "Note created successfully"
	MsgNoteFetched = "Note retrieved successfully"
	MsgNoteUpdated = "Note updated successfully"
	MsgNoteDeleted = "Note deleted successfully"
)

// Handler содержит HTTP обработчики заметок.
type Handler struct {
	notes api.NoteUseCase
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(notes api.NoteUseCase) *Handler {
	return &Handler{notes: notes}
}

// List возвращает все заметки аутентифицированного пользователя.
func (h *Handler) List(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerList)

	user, ok := middleware.UserFromCtx(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	noteList, err := h.notes.List(requestCtx, user.ID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respond.Error(ctx, err, fiber.StatusInternalServerError)
	}

	if err := ctx.Status(fiber.StatusOK).JSON(dto.ListNotesResponse{
		Message: MsgYourNotes,
		Count:   len(noteList),
		Notes:   dto.NewNoteList(noteList),
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Create создает новую заметку для аутентифицированного пользователя.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreate)

	user, ok := middleware.UserFromCtx(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req dto.CreateNoteRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return badRequest(ctx, ErrorInvalidRequest)
	}

	note, err := h.notes.Create(requestCtx, user, req.Title, req.Content)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respond.Error(ctx, err, fiber.StatusInternalServerError)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(dto.NoteResponse{
		Message: MsgNoteCreated,
		Note:    dto.NewNote(note),
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Get возвращает одну заметку по ID. Чужая заметка неотличима от
// несуществующей: обе дают 404.
func (h *Handler) Get(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGet)

	user, ok := middleware.UserFromCtx(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	note, err := h.notes.Get(requestCtx, user.ID, ctx.Params("id"))
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respond.Error(ctx, err, fiber.StatusInternalServerError)
	}

	if err := ctx.Status(fiber.StatusOK).JSON(dto.NoteResponse{
		Message: MsgNoteFetched,
		Note:    dto.NewNote(note),
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Update применяет частичное обновление заметки.
func (h *Handler) Update(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdate)

	user, ok := middleware.UserFromCtx(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req dto.UpdateNoteRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return badRequest(ctx, ErrorInvalidRequest)
	}

	note, err := h.notes.Update(requestCtx, user.ID, ctx.Params("id"), req.Title, req.Content)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respond.Error(ctx, err, fiber.StatusInternalServerError)
	}

	if err := ctx.Status(fiber.StatusOK).JSON(dto.NoteResponse{
		Message: MsgNoteUpdated,
		Note:    dto.NewNote(note),
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Delete удаляет заметку.
func (h *Handler) Delete(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDelete)

	user, ok := middleware.UserFromCtx(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	if err := h.notes.Delete(requestCtx, user.ID, ctx.Params("id")); err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respond.Error(ctx, err, fiber.StatusInternalServerError)
	}

	if err := ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": MsgNoteDeleted,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// прерывание при отсутствии пользователя в контексте запроса.
func unauthorized(ctx fiber.Ctx) error {
	return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "unauthorized",
	})
}

func badRequest(ctx fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}
