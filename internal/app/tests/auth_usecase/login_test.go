package authusecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"notesapi/internal/app"
	"notesapi/internal/domain/entities"
	"notesapi/internal/domain/services"
	svc "notesapi/internal/ports/services"
)

func TestLogin(t *testing.T) {
	testUsername := "testuser"
	testPassword := "pw123"
	testEmail := "test@example.com"
	hashedPassword := "hashed_password"
	userID := "user-id-1"

	now := time.Now()
	accessExpires := now.Add(15 * time.Minute)
	refreshExpires := now.Add(24 * time.Hour)

	storedUser := &entities.User{
		ID:           userID,
		Email:        testEmail,
		Username:     testUsername,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	badCredentials := map[string]string{"username": "invalid username or password"}

	tests := []struct {
		name           string
		username       string
		password       string
		setupMocks     func(mockUserRepo *mockUserRepository, mockPasswordSvc *mockPasswordService, mockTokenSvc *mockTokenService, mailer *mockMailer)
		expectedFields map[string]string
		expectSuccess  bool
	}{
		{
			name:     "Success - valid credentials",
			username: testUsername,
			password: testPassword,
			setupMocks: func(mockUserRepo *mockUserRepository, mockPasswordSvc *mockPasswordService, mockTokenSvc *mockTokenService, mailer *mockMailer) {
				mockUserRepo.On("FindByUsername", mock.Anything, testUsername).Return(storedUser, nil).Once()
				mockPasswordSvc.On("Verify", mock.Anything, testPassword, hashedPassword).Return(true, nil).Once()

				mailer.On("Send", mock.Anything, mock.MatchedBy(func(msg *svc.Message) bool {
					return msg.To == testEmail && msg.Subject == "Login Successful"
				})).Return(nil).Once()

				mockTokenSvc.On("GenerateAccessToken", mock.Anything, userID, testUsername).
					Return("access-token", accessExpires, nil).Once()
				mockTokenSvc.On("GenerateRefreshToken", mock.Anything, userID).
					Return("refresh-token", refreshExpires, nil).Once()
			},
			expectSuccess: true,
		},
		{
			name:     "Success - mailer failure does not break login",
			username: testUsername,
			password: testPassword,
			setupMocks: func(mockUserRepo *mockUserRepository, mockPasswordSvc *mockPasswordService, mockTokenSvc *mockTokenService, mailer *mockMailer) {
				mockUserRepo.On("FindByUsername", mock.Anything, testUsername).Return(storedUser, nil).Once()
				mockPasswordSvc.On("Verify", mock.Anything, testPassword, hashedPassword).Return(true, nil).Once()

				mailer.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp unreachable")).Once()

				mockTokenSvc.On("GenerateAccessToken", mock.Anything, userID, testUsername).
					Return("access-token", accessExpires, nil).Once()
				mockTokenSvc.On("GenerateRefreshToken", mock.Anything, userID).
					Return("refresh-token", refreshExpires, nil).Once()
			},
			expectSuccess: true,
		},
		{
			name:     "Ошибка - пользователь не существует",
			username: "ghost",
			password: testPassword,
			setupMocks: func(mockUserRepo *mockUserRepository, mockPasswordSvc *mockPasswordService, mockTokenSvc *mockTokenService, mailer *mockMailer) {
				mockUserRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, entities.ErrUserNotFound).Once()
			},
			expectedFields: badCredentials,
		},
		{
			name:     "Ошибка - неверный пароль",
			username: testUsername,
			password: "wrong",
			setupMocks: func(mockUserRepo *mockUserRepository, mockPasswordSvc *mockPasswordService, mockTokenSvc *mockTokenService, mailer *mockMailer) {
				mockUserRepo.On("FindByUsername", mock.Anything, testUsername).Return(storedUser, nil).Once()
				mockPasswordSvc.On("Verify", mock.Anything, "wrong", hashedPassword).Return(false, nil).Once()
			},
			expectedFields: badCredentials,
		},
		{
			name:     "Ошибка - пустые учетные данные",
			username: "",
			password: "",
			setupMocks: func(mockUserRepo *mockUserRepository, mockPasswordSvc *mockPasswordService, mockTokenSvc *mockTokenService, mailer *mockMailer) {
			},
			expectedFields: map[string]string{
				"username": "username is required",
				"password": "password is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := new(mockUserRepository)
			mockPasswordSvc := new(mockPasswordService)
			mockTokenSvc := new(mockTokenService)
			mailer := new(mockMailer)

			tt.setupMocks(mockUserRepo, mockPasswordSvc, mockTokenSvc, mailer)

			useCase := app.NewAuthUseCase(mockUserRepo, mockPasswordSvc, mockTokenSvc, mailer)

			user, tokens, err := useCase.Login(context.Background(), tt.username, tt.password)

			if tt.expectSuccess {
				require.NoError(t, err)
				require.NotNil(t, user)
				require.NotNil(t, tokens)
				assert.Equal(t, userID, user.ID)
				assert.Equal(t, "access-token", tokens.AccessToken)
				assert.Equal(t, "refresh-token", tokens.RefreshToken)
			} else {
				require.Error(t, err)
				assert.Nil(t, user)
				assert.Nil(t, tokens)

				var vErr *services.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, tt.expectedFields, vErr.Fields)
			}

			mockUserRepo.AssertExpectations(t)
			mockPasswordSvc.AssertExpectations(t)
			mockTokenSvc.AssertExpectations(t)
			mailer.AssertExpectations(t)
		})
	}
}

func TestLoginRepositoryError(t *testing.T) {
	repoErr := errors.New("connection refused")

	mockUserRepo := new(mockUserRepository)
	mockPasswordSvc := new(mockPasswordService)
	mockTokenSvc := new(mockTokenService)
	mailer := new(mockMailer)

	mockUserRepo.On("FindByUsername", mock.Anything, "testuser").Return(nil, repoErr).Once()

	useCase := app.NewAuthUseCase(mockUserRepo, mockPasswordSvc, mockTokenSvc, mailer)

	user, tokens, err := useCase.Login(context.Background(), "testuser", "pw123")

	require.Error(t, err)
	assert.Nil(t, user)
	assert.Nil(t, tokens)
	assert.ErrorIs(t, err, repoErr)

	var vErr *services.ValidationError
	assert.False(t, errors.As(err, &vErr))

	mockUserRepo.AssertExpectations(t)
}
