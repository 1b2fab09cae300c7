package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard/internal/cache"
	apperrors "jobboard/internal/errors"
	"jobboard/internal/model"
	"jobboard/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserUpdateInput carries the mutable profile fields. Full-replace semantics.
type UserUpdateInput struct {
	Name        string
	DateOfBirth *time.Time
	Gender      string
	Address     string
}

// UserService exposes account lifecycle operations.
type UserService interface {
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, in UserUpdateInput) (*model.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	Deactivate(ctx context.Context, id uuid.UUID) (*model.User, error)
	Reactivate(ctx context.Context, id uuid.UUID) (*model.User, error)
	PurgeDeactivatedBefore(ctx context.Context, cutoff time.Time) (int, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id uuid.UUID) string {
	return "user:" + id.String()
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, in UserUpdateInput) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	user.Name = in.Name
	user.DateOfBirth = in.DateOfBirth
	user.Gender = in.Gender
	user.Address = in.Address

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// Deactivate flips the account off without deleting it. Distinct from
// permanent deletion; PurgeDeactivatedBefore removes stale rows later.
func (s *userService) Deactivate(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	now := time.Now()
	user.IsActive = false
	user.DeactivatedAt = &now
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("deactivate user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return user, nil
}

func (s *userService) Reactivate(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	user.IsActive = true
	user.DeactivatedAt = nil
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("reactivate user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return user, nil
}

// PurgeDeactivatedBefore permanently deletes users deactivated before cutoff.
// Exposed for an external scheduled job; nothing in-process calls it on a timer.
func (s *userService) PurgeDeactivatedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	users, err := s.repo.ListDeactivatedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	purged := 0
	for _, u := range users {
		if err := s.repo.Delete(ctx, u.ID); err != nil {
			return purged, fmt.Errorf("purge user %s: %w", u.ID, err)
		}
		_ = s.cache.Delete(ctx, s.cacheKey(u.ID))
		purged++
	}
	return purged, nil
}
