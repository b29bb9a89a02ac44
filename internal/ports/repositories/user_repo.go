// Package repositories определяет интерфейсы хранилищ.
package repositories

import (
	"context"

	"notesapi/internal/domain/entities"
)

// UserRepository определяет интерфейс для операций с пользователями.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id string) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	FindByUsername(ctx context.Context, username string) (*entities.User, error)
}
