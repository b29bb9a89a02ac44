// Package services содержит доменные типы и ошибки сервисного уровня.
package services

import (
	"errors"
	"time"
)

// Ошибки домена аутентификации.
var (
	ErrTokenGenerationFailed = errors.New("failed to generate authentication tokens")
	ErrInvalidPassword       = errors.New("invalid password")
	ErrHashingFailed         = errors.New("failed to hash password")
)

// TokenPair представляет пару токенов аутентификации.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// ValidationError содержит набор ошибок валидации по полям запроса.
// Возвращается клиенту как отображение поле -> сообщение.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError создает пустой набор ошибок валидации.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add добавляет сообщение об ошибке для поля.
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = message
}

// Empty сообщает, что ошибок валидации нет.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
