package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"notesapi/internal/domain/entities"
	"notesapi/internal/domain/services"
	"notesapi/internal/ports/api"
	"notesapi/internal/ports/repositories"
	svc "notesapi/internal/ports/services"
	"notesapi/pkg/logger"
)

const (
	methodListNotes  = "List"
	methodCreateNote = "Create"
	methodGetNote    = "Get"
	methodUpdateNote = "Update"
	methodDeleteNote = "Delete"

	msgListingNotes = "listing notes"
	msgNoteCreated  = "note created"
	msgNoteUpdated  = "note updated"
	msgNoteDeleted  = "note deleted"

	msgErrListNotes  = "failed to list notes"
	msgErrCreateNote = "failed to create note"
	msgErrFindNote   = "failed to find note"
	msgErrUpdateNote = "failed to update note"
	msgErrDeleteNote = "failed to delete note"

	errCtxListingNotes = "listing notes"
	errCtxCreatingNote = "creating note"
	errCtxFindingNote  = "finding note"
	errCtxUpdatingNote = "updating note"
	errCtxDeletingNote = "deleting note"
)

const (
	fieldTitle   = "title"
	fieldContent = "content"

	errMsgTitleRequired   = "title is required"
	errMsgContentRequired = "content is required"
)

// NoteUseCaseImpl реализует интерфейс api.NoteUseCase.
type NoteUseCaseImpl struct {
	noteRepo repositories.NoteRepository
	mailer   svc.Mailer
}

// NewNoteUseCase создает новый экземпляр сервиса заметок.
func NewNoteUseCase(noteRepo repositories.NoteRepository, mailer svc.Mailer) api.NoteUseCase {
	return &NoteUseCaseImpl{
		noteRepo: noteRepo,
		mailer:   mailer,
	}
}

// List возвращает все заметки пользователя, новые первыми.
func (n *NoteUseCaseImpl) List(ctx context.Context, userID string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListNotes), zap.String("userID", userID))
	log.Debug(ctx, msgListingNotes)

	notes, err := n.noteRepo.ListByUserID(ctx, userID)
	if err != nil {
		log.Error(ctx, msgErrListNotes, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingNotes, err)
	}

	return notes, nil
}

// Create создает заметку, принадлежащую вызывающему пользователю,
// и отправляет уведомление на его зарегистрированный адрес.
func (n *NoteUseCaseImpl) Create(ctx context.Context, user *entities.User, title, content string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateNote), zap.String("userID", user.ID))

	vErr := services.NewValidationError()
	if title == "" {
		vErr.Add(fieldTitle, errMsgTitleRequired)
	}
	if content == "" {
		vErr.Add(fieldContent, errMsgContentRequired)
	}
	if !vErr.Empty() {
		return nil, vErr
	}

	note := &entities.Note{
		UserID:  user.ID,
		Title:   title,
		Content: content,
	}

	created, err := n.noteRepo.Create(ctx, note)
	if err != nil {
		log.Error(ctx, msgErrCreateNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingNote, err)
	}

	log.Info(ctx, msgNoteCreated, zap.String("noteID", created.ID))

	notify(ctx, n.mailer, user.Email, subjectNoteCreated, noteCreatedBody(created.Title))

	return created, nil
}

// Get возвращает заметку по ID в пределах владельца: отсутствующая и
// чужая заметка дают одну и ту же ошибку entities.ErrNoteNotFound.
func (n *NoteUseCaseImpl) Get(ctx context.Context, userID, noteID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetNote), zap.String("noteID", noteID))

	note, err := n.noteRepo.FindOwned(ctx, noteID, userID)
	if err != nil {
		log.Debug(ctx, msgErrFindNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingNote, err)
	}

	return note, nil
}

// Update применяет частичное обновление: nil-поля сохраняют прежние значения.
func (n *NoteUseCaseImpl) Update(ctx context.Context, userID, noteID string, title, content *string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateNote), zap.String("noteID", noteID))

	vErr := services.NewValidationError()
	if title != nil && *title == "" {
		vErr.Add(fieldTitle, errMsgTitleRequired)
	}
	if content != nil && *content == "" {
		vErr.Add(fieldContent, errMsgContentRequired)
	}
	if !vErr.Empty() {
		return nil, vErr
	}

	note, err := n.noteRepo.FindOwned(ctx, noteID, userID)
	if err != nil {
		log.Debug(ctx, msgErrFindNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingNote, err)
	}

	if title != nil {
		note.Title = *title
	}
	if content != nil {
		note.Content = *content
	}

	updated, err := n.noteRepo.Update(ctx, note)
	if err != nil {
		log.Error(ctx, msgErrUpdateNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingNote, err)
	}

	log.Info(ctx, msgNoteUpdated, zap.String("noteID", updated.ID))
	return updated, nil
}

// Delete удаляет заметку в пределах владельца.
func (n *NoteUseCaseImpl) Delete(ctx context.Context, userID, noteID string) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteNote), zap.String("noteID", noteID))

	if err := n.noteRepo.Delete(ctx, noteID, userID); err != nil {
		log.Debug(ctx, msgErrDeleteNote, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxDeletingNote, err)
	}

	log.Info(ctx, msgNoteDeleted)
	return nil
}
