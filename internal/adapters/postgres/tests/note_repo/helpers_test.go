package noterepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notesapi/internal/domain/entities"
	"notesapi/pkg/logger"
)

var errDatabaseConnection = errors.New("database connection error")

var noteColumns = []string{"id", "user_id", "title", "content", "created_at", "updated_at"}

func noteRows(notes ...entities.Note) *pgxmock.Rows {
	rows := pgxmock.NewRows(noteColumns)
	for _, n := range notes {
		rows.AddRow(n.ID, n.UserID, n.Title, n.Content, n.CreatedAt, n.UpdatedAt)
	}
	return rows
}

func testContext(t *testing.T) context.Context {
	t.Helper()

	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return logger.NewContext(context.Background(), testLogger)
}

func testNote() entities.Note {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return entities.Note{
		ID:        "test-note-id",
		UserID:    "test-user-id",
		Title:     "Shopping list",
		Content:   "milk, eggs",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func assertNoteEquals(t *testing.T, expected, actual *entities.Note) {
	t.Helper()

	require.NotNil(t, actual)
	assert.Equal(t, expected.ID, actual.ID)
	assert.Equal(t, expected.UserID, actual.UserID)
	assert.Equal(t, expected.Title, actual.Title)
	assert.Equal(t, expected.Content, actual.Content)
	assert.Equal(t, expected.CreatedAt, actual.CreatedAt)
	assert.Equal(t, expected.UpdatedAt, actual.UpdatedAt)
}
