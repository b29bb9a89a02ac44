// Package dto содержит объекты передачи данных HTTP API.
package dto

import (
	"time"

	"notesapi/internal/domain/entities"
	"notesapi/internal/domain/services"
)

// RegisterRequest содержит данные для регистрации пользователя.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest содержит данные для входа пользователя.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest содержит данные для обновления токенов.
type RefreshRequest struct {
	RefreshToken string `json:"refresh"`
}

// UserProfile содержит публичный профиль пользователя.
type UserProfile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse - ответ на успешную регистрацию или вход.
type AuthResponse struct {
	Message string       `json:"message"`
	User    *UserProfile `json:"user"`
	Access  string       `json:"access"`
	Refresh string       `json:"refresh"`
}

// TokenResponse - ответ на успешное обновление токенов.
type TokenResponse struct {
	Access    string    `json:"access"`
	Refresh   string    `json:"refresh"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewUserProfile преобразует доменного пользователя в публичный профиль.
func NewUserProfile(user *entities.User) *UserProfile {
	return &UserProfile{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}

// NewAuthResponse собирает ответ с профилем и токенами.
func NewAuthResponse(message string, user *entities.User, tokens *services.TokenPair) *AuthResponse {
	return &AuthResponse{
		Message: message,
		User:    NewUserProfile(user),
		Access:  tokens.AccessToken,
		Refresh: tokens.RefreshToken,
	}
}
