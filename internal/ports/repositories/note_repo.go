package repositories

import (
	"context"

	"notesapi/internal/domain/entities"
)

// NoteRepository определяет интерфейс для операций с заметками.
// Все операции с отдельной заметкой выполняются в пределах владельца:
// чужая заметка неотличима от несуществующей.
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)

	FindOwned(ctx context.Context, noteID, userID string) (*entities.Note, error)

	ListByUserID(ctx context.Context, userID string) ([]*entities.Note, error)

	Update(ctx context.Context, note *entities.Note) (*entities.Note, error)

	Delete(ctx context.Context, noteID, userID string) error
}
