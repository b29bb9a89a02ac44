package api

import (
	"context"

	"notesapi/internal/domain/entities"
)

// UserUseCase определяет основной порт для пользовательских операций.
type UserUseCase interface {
	GetUserProfile(ctx context.Context, userID string) (*entities.User, error)
}
