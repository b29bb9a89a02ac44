package dto

import (
	"time"

	"notesapi/internal/domain/entities"
)

// CreateNoteRequest содержит данные для создания заметки.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateNoteRequest содержит данные для частичного обновления заметки.
// nil-поля сохраняют прежние значения.
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// Note представляет заметку в ответе API.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteResponse содержит одну заметку.
type NoteResponse struct {
	Message string `json:"message"`
	Note    *Note  `json:"note"`
}

// ListNotesResponse содержит все заметки пользователя и их количество.
type ListNotesResponse struct {
	Message string  `json:"message"`
	Count   int     `json:"count"`
	Notes   []*Note `json:"notes"`
}

// NewNote преобразует доменную заметку в представление API.
func NewNote(note *entities.Note) *Note {
	return &Note{
		ID:        note.ID,
		UserID:    note.UserID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

// NewNoteList преобразует список доменных заметок.
func NewNoteList(notes []*entities.Note) []*Note {
	out := make([]*Note, 0, len(notes))
	for _, note := range notes {
		out = append(out, NewNote(note))
	}
	return out
}
