// Package app реализует бизнес-логику сервиса заметок.
package app

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.uber.org/zap"

	"notesapi/internal/domain/entities"
	"notesapi/internal/domain/services"
	"notesapi/internal/ports/api"
	"notesapi/internal/ports/repositories"
	svc "notesapi/internal/ports/services"
	"notesapi/pkg/logger"
)

const (
	methodRegister = "Register"
	methodLogin    = "Login"
	methodLogout   = "Logout"
	methodRefresh  = "Refresh"

	msgStartRegistration  = "starting user registration"
	msgValidationFailed   = "registration validation failed"
	msgUserRegistered     = "user registered successfully"
	msgTokensGenerated    = "authentication tokens generated for new user"
	msgLoginAttempt       = "login attempt"
	msgLoginNonExistent   = "login attempt with non-existent username"
	msgInvalidPassword    = "invalid password provided"
	msgUserLoggedIn       = "user logged in successfully"
	msgProcessingLogout   = "processing logout request"
	msgUserLoggedOut      = "user logged out successfully"
	msgRefreshingTokens   = "refreshing tokens"
	msgTokensRefreshed    = "tokens refreshed successfully"
	msgTokenPairGenerated = "token pair generated successfully"

	msgErrCheckExistingUser   = "failed to check existing user"
	msgErrHashPassword        = "failed to hash password"
	msgErrCreateUser          = "failed to create user"
	msgErrGenerateTokens      = "failed to generate tokens"
	msgErrFindingUser         = "error finding user by username"
	msgErrVerifyingPassword   = "error verifying password"
	msgErrInvalidRefreshToken = "invalid refresh token"
	msgErrFindingTokenUser    = "failed to find user for refresh token"

	errCtxCheckingUser      = "checking existing user"
	errCtxHashingPassword   = "hashing password"
	errCtxCreatingUser      = "creating user"
	errCtxGeneratingTokens  = "generating tokens"
	errCtxFindingUser       = "finding user"
	errCtxVerifyingPassword = "verifying password"
	errCtxValidatingToken   = "validating refresh token"
)

// Сообщения ошибок валидации по полям.
const (
	fieldEmail    = "email"
	fieldUsername = "username"
	fieldPassword = "password"

	errMsgEmailRequired    = "email is required"
	errMsgEmailInvalid     = "enter a valid email address"
	errMsgEmailTaken       = "user with this email already exists"
	errMsgUsernameRequired = "username is required"
	errMsgUsernameTaken    = "user with this username already exists"
	errMsgPasswordRequired = "password is required"
	errMsgBadCredentials   = "invalid username or password"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// AuthUseCaseImpl реализует интерфейс api.AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
	mailer      svc.Mailer
}

// NewAuthUseCase создает новый экземпляр сервиса аутентификации.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
	mailer svc.Mailer,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		mailer:      mailer,
	}
}

// Register создает нового пользователя с предоставленными учетными данными.
// Пользователь не создается, пока не пройдены все проверки; приветственное
// письмо отправляется только после фиксации записи.
func (a *AuthUseCaseImpl) Register(ctx context.Context, email, username, password string) (*entities.User, *services.TokenPair, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("username", username))
	log.Debug(ctx, msgStartRegistration)

	vErr := services.NewValidationError()

	switch {
	case email == "":
		vErr.Add(fieldEmail, errMsgEmailRequired)
	case !emailRegex.MatchString(email):
		vErr.Add(fieldEmail, errMsgEmailInvalid)
	}
	if username == "" {
		vErr.Add(fieldUsername, errMsgUsernameRequired)
	}
	if password == "" {
		vErr.Add(fieldPassword, errMsgPasswordRequired)
	}

	if vErr.Empty() {
		if err := a.checkUniqueness(ctx, email, username, vErr); err != nil {
			log.Error(ctx, msgErrCheckExistingUser, zap.Error(err))
			return nil, nil, fmt.Errorf("%s: %w", errCtxCheckingUser, err)
		}
	}

	if !vErr.Empty() {
		log.Debug(ctx, msgValidationFailed, zap.Any("fields", vErr.Fields))
		return nil, nil, vErr
	}

	hashedPassword, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	newUser := &entities.User{
		Email:        email,
		Username:     username,
		PasswordHash: hashedPassword,
	}

	createdUser, err := a.userRepo.Create(ctx, newUser)
	if err != nil {
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", createdUser.ID))

	notify(ctx, a.mailer, createdUser.Email, subjectRegistered, bodyRegistered)

	tokenPair, err := a.generateTokenPair(ctx, createdUser)
	if err != nil {
		log.Error(ctx, msgErrGenerateTokens, zap.Error(err), zap.String("userID", createdUser.ID))
		return nil, nil, fmt.Errorf("%s: %w", errCtxGeneratingTokens, err)
	}

	log.Info(ctx, msgTokensGenerated, zap.String("userID", createdUser.ID))
	return createdUser, tokenPair, nil
}

// checkUniqueness дополняет набор ошибок валидации занятыми email и username.
func (a *AuthUseCaseImpl) checkUniqueness(ctx context.Context, email, username string, vErr *services.ValidationError) error {
	existing, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
		return err
	}
	if existing != nil {
		vErr.Add(fieldEmail, errMsgEmailTaken)
	}

	existing, err = a.userRepo.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
		return err
	}
	if existing != nil {
		vErr.Add(fieldUsername, errMsgUsernameTaken)
	}

	return nil
}

// Login аутентифицирует пользователя по username и паролю.
// Несуществующий пользователь и неверный пароль дают одинаковый ответ.
func (a *AuthUseCaseImpl) Login(ctx context.Context, username, password string) (*entities.User, *services.TokenPair, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("username", username))
	log.Debug(ctx, msgLoginAttempt)

	vErr := services.NewValidationError()
	if username == "" {
		vErr.Add(fieldUsername, errMsgUsernameRequired)
	}
	if password == "" {
		vErr.Add(fieldPassword, errMsgPasswordRequired)
	}
	if !vErr.Empty() {
		return nil, nil, vErr
	}

	user, err := a.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return nil, nil, invalidCredentials()
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err), zap.String("userID", user.ID))
		return nil, nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgInvalidPassword, zap.String("userID", user.ID))
		return nil, nil, invalidCredentials()
	}

	log.Info(ctx, msgUserLoggedIn, zap.String("userID", user.ID))

	notify(ctx, a.mailer, user.Email, subjectLoggedIn, bodyLoggedIn)

	tokenPair, err := a.generateTokenPair(ctx, user)
	if err != nil {
		log.Error(ctx, msgErrGenerateTokens, zap.Error(err), zap.String("userID", user.ID))
		return nil, nil, fmt.Errorf("%s: %w", errCtxGeneratingTokens, err)
	}

	return user, tokenPair, nil
}

// Logout отправляет уведомление о выходе. Токены не отзываются: схема
// stateless, клиенту предписывается удалить токены локально.
func (a *AuthUseCaseImpl) Logout(ctx context.Context, user *entities.User) error {
	log := logger.Log(ctx).With(zap.String("method", methodLogout), zap.String("userID", user.ID))
	log.Debug(ctx, msgProcessingLogout)

	notify(ctx, a.mailer, user.Email, subjectLoggedOut, bodyLoggedOut)

	log.Info(ctx, msgUserLoggedOut)
	return nil
}

// Refresh проверяет refresh токен и выдает новую пару токенов.
func (a *AuthUseCaseImpl) Refresh(ctx context.Context, refreshToken string) (*services.TokenPair, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRefresh))
	log.Debug(ctx, msgRefreshingTokens)

	userID, err := a.tokenSvc.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		log.Debug(ctx, msgErrInvalidRefreshToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, err)
	}

	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		log.Error(ctx, msgErrFindingTokenUser, zap.Error(err), zap.String("userID", userID))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	tokenPair, err := a.generateTokenPair(ctx, user)
	if err != nil {
		log.Error(ctx, msgErrGenerateTokens, zap.Error(err), zap.String("userID", userID))
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingTokens, err)
	}

	log.Info(ctx, msgTokensRefreshed, zap.String("userID", userID))
	return tokenPair, nil
}

// Вспомогательная функция для генерации пары токенов.
func (a *AuthUseCaseImpl) generateTokenPair(ctx context.Context, user *entities.User) (*services.TokenPair, error) {
	log := logger.Log(ctx).With(zap.String("userID", user.ID))

	accessToken, accessExpires, err := a.tokenSvc.GenerateAccessToken(ctx, user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("generating access token: %w", services.ErrTokenGenerationFailed)
	}

	refreshToken, _, err := a.tokenSvc.GenerateRefreshToken(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("generating refresh token: %w", services.ErrTokenGenerationFailed)
	}

	log.Debug(ctx, msgTokenPairGenerated)

	return &services.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    accessExpires,
	}, nil
}

// invalidCredentials возвращает единый ответ для неверных учетных данных,
// не раскрывая, существует ли пользователь.
func invalidCredentials() error {
	vErr := services.NewValidationError()
	vErr.Add(fieldUsername, errMsgBadCredentials)
	return vErr
}
