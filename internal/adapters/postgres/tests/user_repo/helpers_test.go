package userrepo_test

import (
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notesapi/internal/domain/entities"
)

var errDatabaseConnection = errors.New("database connection error")

var userColumns = []string{"id", "email", "username", "password_hash", "created_at", "updated_at"}

func userRows(user entities.User) *pgxmock.Rows {
	return pgxmock.NewRows(userColumns).
		AddRow(user.ID, user.Email, user.Username, user.PasswordHash, user.CreatedAt, user.UpdatedAt)
}

func assertUserEquals(t *testing.T, expected, actual *entities.User) {
	t.Helper()

	require.NotNil(t, actual)
	assert.Equal(t, expected.ID, actual.ID)
	assert.Equal(t, expected.Email, actual.Email)
	assert.Equal(t, expected.Username, actual.Username)
	assert.Equal(t, expected.PasswordHash, actual.PasswordHash)
	assert.Equal(t, expected.CreatedAt, actual.CreatedAt)
	assert.Equal(t, expected.UpdatedAt, actual.UpdatedAt)
}
