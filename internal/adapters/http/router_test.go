package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpserver "notesapi/internal/adapters/http"
	adapterservices "notesapi/internal/adapters/services"
	"notesapi/internal/domain/entities"
	"notesapi/internal/domain/services"
)

type mockAuthUseCase struct {
	mock.Mock
}

func (m *mockAuthUseCase) Register(ctx context.Context, email, username, password string) (*entities.User, *services.TokenPair, error) {
	args := m.Called(ctx, email, username, password)
	var user *entities.User
	var tokens *services.TokenPair
	if args.Get(0) != nil {
		user = args.Get(0).(*entities.User)
	}
	if args.Get(1) != nil {
		tokens = args.Get(1).(*services.TokenPair)
	}
	return user, tokens, args.Error(2)
}

func (m *mockAuthUseCase) Login(ctx context.Context, username, password string) (*entities.User, *services.TokenPair, error) {
	args := m.Called(ctx, username, password)
	var user *entities.User
	var tokens *services.TokenPair
	if args.Get(0) != nil {
		user = args.Get(0).(*entities.User)
	}
	if args.Get(1) != nil {
		tokens = args.Get(1).(*services.TokenPair)
	}
	return user, tokens, args.Error(2)
}

func (m *mockAuthUseCase) Logout(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockAuthUseCase) Refresh(ctx context.Context, refreshToken string) (*services.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.TokenPair), args.Error(1)
}

type mockUserUseCase struct {
	mock.Mock
}

func (m *mockUserUseCase) GetUserProfile(ctx context.Context, userID string) (*entities.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

type mockNoteUseCase struct {
	mock.Mock
}

func (m *mockNoteUseCase) List(ctx context.Context, userID string) ([]*entities.Note, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Note), args.Error(1)
}

func (m *mockNoteUseCase) Create(ctx context.Context, user *entities.User, title, content string) (*entities.Note, error) {
	args := m.Called(ctx, user, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteUseCase) Get(ctx context.Context, userID, noteID string) (*entities.Note, error) {
	args := m.Called(ctx, userID, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteUseCase) Update(ctx context.Context, userID, noteID string, title, content *string) (*entities.Note, error) {
	args := m.Called(ctx, userID, noteID, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteUseCase) Delete(ctx context.Context, userID, noteID string) error {
	return m.Called(ctx, userID, noteID).Error(0)
}

type testEnv struct {
	app   *fiber.App
	auth  *mockAuthUseCase
	users *mockUserUseCase
	notes *mockNoteUseCase
	token string
}

const testSecret = "router-test-secret"

func setupTestApp(t *testing.T) *testEnv {
	t.Helper()

	authUseCase := new(mockAuthUseCase)
	userUseCase := new(mockUserUseCase)
	noteUseCase := new(mockNoteUseCase)

	tokenService := adapterservices.NewJWT(testSecret, 15*time.Minute, 24*time.Hour)

	accessToken, _, err := tokenService.GenerateAccessToken(context.Background(), "user-id-1", "testuser")
	require.NoError(t, err)

	app := fiber.New()
	httpserver.SetupRouter(app, authUseCase, userUseCase, noteUseCase, tokenService)

	return &testEnv{
		app:   app,
		auth:  authUseCase,
		users: userUseCase,
		notes: noteUseCase,
		token: accessToken,
	}
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	defer func() { _ = resp.Body.Close() }()

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload
}

func testUser() *entities.User {
	now := time.Now()
	return &entities.User{
		ID:        "user-id-1",
		Email:     "test@example.com",
		Username:  "testuser",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestRegisterRoute(t *testing.T) {
	t.Run("успешная регистрация дает 201 с токенами", func(t *testing.T) {
		env := setupTestApp(t)

		tokens := &services.TokenPair{AccessToken: "access", RefreshToken: "refresh"}
		env.auth.On("Register", mock.Anything, "test@example.com", "testuser", "pw123").
			Return(testUser(), tokens, nil).Once()

		resp, err := env.app.Test(jsonRequest(t, http.MethodPost, "/api/v1/accounts/register", map[string]string{
			"email":    "test@example.com",
			"username": "testuser",
			"password": "pw123",
		}))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "User registered successfully", body["message"])
		assert.Equal(t, "access", body["access"])
		assert.Equal(t, "refresh", body["refresh"])
		env.auth.AssertExpectations(t)
	})

	t.Run("ошибки валидации дают 400 с набором полей", func(t *testing.T) {
		env := setupTestApp(t)

		vErr := services.NewValidationError()
		vErr.Add("email", "email is required")
		env.auth.On("Register", mock.Anything, "", "testuser", "pw123").
			Return(nil, nil, vErr).Once()

		resp, err := env.app.Test(jsonRequest(t, http.MethodPost, "/api/v1/accounts/register", map[string]string{
			"username": "testuser",
			"password": "pw123",
		}))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp)
		errs, ok := body["errors"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "email is required", errs["email"])
		env.auth.AssertExpectations(t)
	})
}

func TestLogoutRoute(t *testing.T) {
	t.Run("без токена дает 401", func(t *testing.T) {
		env := setupTestApp(t)

		resp, err := env.app.Test(jsonRequest(t, http.MethodPost, "/api/v1/accounts/logout", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("с валидным токеном дает 200", func(t *testing.T) {
		env := setupTestApp(t)

		user := testUser()
		env.users.On("GetUserProfile", mock.Anything, user.ID).Return(user, nil).Once()
		env.auth.On("Logout", mock.Anything, mock.Anything).Return(nil).Once()

		req := jsonRequest(t, http.MethodPost, "/api/v1/accounts/logout", nil)
		req.Header.Set("Authorization", "Bearer "+env.token)

		resp, err := env.app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "You logged out successfully", body["message"])
		assert.NotEmpty(t, body["detail"])
		env.auth.AssertExpectations(t)
		env.users.AssertExpectations(t)
	})
}

func TestRefreshRoute(t *testing.T) {
	t.Run("недействительный токен дает 401", func(t *testing.T) {
		env := setupTestApp(t)

		env.auth.On("Refresh", mock.Anything, "garbage").
			Return(nil, services.ErrInvalidJWTToken).Once()

		resp, err := env.app.Test(jsonRequest(t, http.MethodPost, "/api/v1/accounts/refresh", map[string]string{
			"refresh": "garbage",
		}))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		env.auth.AssertExpectations(t)
	})

	t.Run("отсутствующий токен дает 400", func(t *testing.T) {
		env := setupTestApp(t)

		resp, err := env.app.Test(jsonRequest(t, http.MethodPost, "/api/v1/accounts/refresh", map[string]string{}))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestNotesRoutes(t *testing.T) {
	user := testUser()

	authorized := func(t *testing.T, env *testEnv, method, target string, body any) *http.Request {
		t.Helper()

		env.users.On("GetUserProfile", mock.Anything, user.ID).Return(user, nil).Once()
		req := jsonRequest(t, method, target, body)
		req.Header.Set("Authorization", "Bearer "+env.token)
		return req
	}

	t.Run("список заметок с количеством", func(t *testing.T) {
		env := setupTestApp(t)

		noteList := []*entities.Note{
			{ID: "note-2", UserID: user.ID, Title: "Newer", Content: "b"},
			{ID: "note-1", UserID: user.ID, Title: "Older", Content: "a"},
		}
		env.notes.On("List", mock.Anything, user.ID).Return(noteList, nil).Once()

		resp, err := env.app.Test(authorized(t, env, http.MethodGet, "/api/v1/notes/", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, float64(2), body["count"])
		env.notes.AssertExpectations(t)
	})

	t.Run("создание заметки дает 201", func(t *testing.T) {
		env := setupTestApp(t)

		created := &entities.Note{ID: "note-1", UserID: user.ID, Title: "Shopping list", Content: "milk"}
		env.notes.On("Create", mock.Anything, mock.Anything, "Shopping list", "milk").
			Return(created, nil).Once()

		resp, err := env.app.Test(authorized(t, env, http.MethodPost, "/api/v1/notes/", map[string]string{
			"title":   "Shopping list",
			"content": "milk",
		}))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		env.notes.AssertExpectations(t)
	})

	t.Run("чужая заметка дает 404", func(t *testing.T) {
		env := setupTestApp(t)

		env.notes.On("Get", mock.Anything, user.ID, "foreign-note").
			Return(nil, entities.ErrNoteNotFound).Once()

		resp, err := env.app.Test(authorized(t, env, http.MethodGet, "/api/v1/notes/foreign-note", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "note not found", body["error"])
		env.notes.AssertExpectations(t)
	})

	t.Run("удаление заметки дает 200", func(t *testing.T) {
		env := setupTestApp(t)

		env.notes.On("Delete", mock.Anything, user.ID, "note-1").Return(nil).Once()

		resp, err := env.app.Test(authorized(t, env, http.MethodDelete, "/api/v1/notes/note-1", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		env.notes.AssertExpectations(t)
	})

	t.Run("без токена дает 401", func(t *testing.T) {
		env := setupTestApp(t)

		resp, err := env.app.Test(jsonRequest(t, http.MethodGet, "/api/v1/notes/", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("внутренняя ошибка не раскрывает деталей", func(t *testing.T) {
		env := setupTestApp(t)

		env.notes.On("List", mock.Anything, user.ID).
			Return(nil, errors.New("pq: connection reset by peer")).Once()

		resp, err := env.app.Test(authorized(t, env, http.MethodGet, "/api/v1/notes/", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Internal server error", body["error"])
		env.notes.AssertExpectations(t)
	})
}

func TestUnknownRoute(t *testing.T) {
	env := setupTestApp(t)

	resp, err := env.app.Test(jsonRequest(t, http.MethodGet, "/api/v1/unknown", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Route not found", body["error"])
}
