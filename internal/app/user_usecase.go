package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"notesapi/internal/domain/entities"
	"notesapi/internal/ports/api"
	"notesapi/internal/ports/cache"
	"notesapi/internal/ports/repositories"
	"notesapi/pkg/logger"
)

const (
	methodGetUserProfile = "GetUserProfile"

	msgProfileCacheHit    = "user profile served from cache"
	msgProfileCached      = "user profile stored in cache"
	msgErrProfileCacheGet = "failed to read profile cache"
	msgErrProfileCacheSet = "failed to write profile cache"
	msgErrFindUserByID    = "failed to find user by id"
)

// ProfileCacheKeyPrefix - префикс ключей кэша профилей.
const ProfileCacheKeyPrefix = "profile:"

// cachedProfile - представление профиля в кэше.
type cachedProfile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserUseCaseImpl реализует интерфейс api.UserUseCase. Профили читаются
// через кэш: пользователи после создания не изменяются, поэтому
// инвалидация не требуется.
type UserUseCaseImpl struct {
	userRepo repositories.UserRepository
	cache    cache.Cache
	cacheTTL time.Duration
}

// NewUserUseCase создает новый экземпляр пользовательского сервиса.
// Кэш опционален: при nil каждая загрузка профиля идет в хранилище.
func NewUserUseCase(userRepo repositories.UserRepository, profileCache cache.Cache, cacheTTL time.Duration) api.UserUseCase {
	return &UserUseCaseImpl{
		userRepo: userRepo,
		cache:    profileCache,
		cacheTTL: cacheTTL,
	}
}

// GetUserProfile возвращает профиль пользователя по ID.
func (u *UserUseCaseImpl) GetUserProfile(ctx context.Context, userID string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetUserProfile), zap.String("userID", userID))

	cacheKey := ProfileCacheKeyPrefix + userID

	if u.cache != nil {
		cached, err := u.cache.Get(ctx, cacheKey)
		if err != nil {
			log.Warn(ctx, msgErrProfileCacheGet, zap.Error(err))
		} else if cached != "" {
			var profile cachedProfile
			if err := json.Unmarshal([]byte(cached), &profile); err == nil {
				log.Debug(ctx, msgProfileCacheHit)
				return &entities.User{
					ID:        profile.ID,
					Email:     profile.Email,
					Username:  profile.Username,
					CreatedAt: profile.CreatedAt,
					UpdatedAt: profile.UpdatedAt,
				}, nil
			}
		}
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		log.Debug(ctx, msgErrFindUserByID, zap.Error(err))
		return nil, fmt.Errorf("finding user profile: %w", err)
	}

	if u.cache != nil {
		encoded, err := json.Marshal(cachedProfile{
			ID:        user.ID,
			Email:     user.Email,
			Username:  user.Username,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		})
		if err == nil {
			if err := u.cache.Set(ctx, cacheKey, string(encoded), u.cacheTTL); err != nil {
				log.Warn(ctx, msgErrProfileCacheSet, zap.Error(err))
			} else {
				log.Debug(ctx, msgProfileCached)
			}
		}
	}

	return user, nil
}
