package noteusecase_test

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"

	"notesapi/internal/domain/entities"
	svc "notesapi/internal/ports/services"
)

const (
	ErrCreateNote = "failed to create note"
	ErrFindNote   = "failed to find note"
	ErrListNotes  = "failed to list notes"
	ErrUpdateNote = "failed to update note"
)

type mockNoteRepository struct {
	mock.Mock
}

func (m *mockNoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrCreateNote, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.Note), nil
}

func (m *mockNoteRepository) FindOwned(ctx context.Context, noteID, userID string) (*entities.Note, error) {
	args := m.Called(ctx, noteID, userID)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrFindNote, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.Note), nil
}

func (m *mockNoteRepository) ListByUserID(ctx context.Context, userID string) ([]*entities.Note, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrListNotes, err)
		}
		return nil, nil
	}
	return args.Get(0).([]*entities.Note), nil
}

func (m *mockNoteRepository) Update(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrUpdateNote, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.Note), nil
}

func (m *mockNoteRepository) Delete(ctx context.Context, noteID, userID string) error {
	return m.Called(ctx, noteID, userID).Error(0)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(ctx context.Context, msg *svc.Message) error {
	return m.Called(ctx, msg).Error(0)
}
