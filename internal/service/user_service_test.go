package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "jobboard/internal/errors"
	"jobboard/internal/model"
)

func TestUserService_Deactivate(t *testing.T) {
	userID := uuid.New()

	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, userID).Return(&model.User{
		ID:       userID,
		IsActive: true,
	}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return !u.IsActive && u.DeactivatedAt != nil
	})).Return(nil)

	service := NewUserService(repo, nil)
	user, err := service.Deactivate(context.Background(), userID)

	assert.NoError(t, err)
	assert.False(t, user.IsActive)
	assert.NotNil(t, user.DeactivatedAt)
	repo.AssertExpectations(t)
}

func TestUserService_Reactivate(t *testing.T) {
	userID := uuid.New()
	past := time.Now().Add(-time.Hour)

	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, userID).Return(&model.User{
		ID:            userID,
		IsActive:      false,
		DeactivatedAt: &past,
	}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.IsActive && u.DeactivatedAt == nil
	})).Return(nil)

	service := NewUserService(repo, nil)
	user, err := service.Reactivate(context.Background(), userID)

	assert.NoError(t, err)
	assert.True(t, user.IsActive)
	assert.Nil(t, user.DeactivatedAt)
	repo.AssertExpectations(t)
}

func TestUserService_PurgeDeactivatedBefore(t *testing.T) {
	cutoff := time.Now().Add(-30 * 24 * time.Hour)
	stale := []model.User{
		{ID: uuid.New()},
		{ID: uuid.New()},
	}

	repo := new(MockUserRepository)
	repo.On("ListDeactivatedBefore", mock.Anything, cutoff).Return(stale, nil)
	repo.On("Delete", mock.Anything, stale[0].ID).Return(nil)
	repo.On("Delete", mock.Anything, stale[1].ID).Return(nil)

	service := NewUserService(repo, nil)
	purged, err := service.PurgeDeactivatedBefore(context.Background(), cutoff)

	assert.NoError(t, err)
	assert.Equal(t, 2, purged)
	repo.AssertExpectations(t)
}

func TestUserService_GetUser(t *testing.T) {
	userID := uuid.New()

	t.Run("unknown user", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		service := NewUserService(repo, nil)
		user, err := service.GetUser(context.Background(), userID)

		assert.Equal(t, apperrors.ErrUserNotFound, err)
		assert.Nil(t, user)
	})

	t.Run("found", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, Email: "a@b.c"}, nil)

		service := NewUserService(repo, nil)
		user, err := service.GetUser(context.Background(), userID)

		assert.NoError(t, err)
		assert.Equal(t, "a@b.c", user.Email)
	})
}
