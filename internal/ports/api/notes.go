package api

import (
	"context"

	"notesapi/internal/domain/entities"
)

// NoteUseCase определяет основной порт для операций с заметками.
// Каждая операция ограничена заметками вызывающего пользователя.
type NoteUseCase interface {
	List(ctx context.Context, userID string) ([]*entities.Note, error)

	Create(ctx context.Context, user *entities.User, title, content string) (*entities.Note, error)

	Get(ctx context.Context, userID, noteID string) (*entities.Note, error)

	Update(ctx context.Context, userID, noteID string, title, content *string) (*entities.Note, error)

	Delete(ctx context.Context, userID, noteID string) error
}
