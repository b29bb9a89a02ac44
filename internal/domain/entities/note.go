package entities

import (
	"errors"
	"time"
)

// ErrNoteNotFound возвращается и для несуществующей, и для чужой заметки.
var ErrNoteNotFound = errors.New("note not found")

// Note представляет заметку пользователя. Владелец назначается при создании
// и никогда не меняется.
type Note struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
