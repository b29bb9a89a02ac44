// Package api определяет входные порты приложения.
package api

import (
	"context"

	"notesapi/internal/domain/entities"
	"notesapi/internal/domain/services"
)

// AuthUseCase определяет основной порт для операций аутентификации.
type AuthUseCase interface {
	Register(ctx context.Context, email, username, password string) (*entities.User, *services.TokenPair, error)

	Login(ctx context.Context, username, password string) (*entities.User, *services.TokenPair, error)

	Logout(ctx context.Context, user *entities.User) error

	Refresh(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}
