package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "jobboard/internal/errors"
	"jobboard/internal/model"
)

func TestNotificationService_Create(t *testing.T) {
	userID := uuid.New()
	user := &model.User{ID: userID, Email: "user@example.com"}

	t.Run("email success marks the row sent", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		userRepo := new(MockUserRepository)
		mailer := new(MockMailer)

		userRepo.On("FindByID", mock.Anything, userID).Return(user, nil)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Notification")).Return(nil)
		mailer.On("Send", "user@example.com", "Interview", "You are invited").Return(nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(n *model.Notification) bool {
			return n.SentEmail
		})).Return(nil)

		service := NewNotificationService(repo, userRepo, mailer)
		n, err := service.Create(context.Background(), userID, "Interview", "You are invited", true)

		assert.NoError(t, err)
		assert.True(t, n.SentEmail)
		repo.AssertExpectations(t)
		mailer.AssertExpectations(t)
	})

	t.Run("email failure never fails the create", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		userRepo := new(MockUserRepository)
		mailer := new(MockMailer)

		userRepo.On("FindByID", mock.Anything, userID).Return(user, nil)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Notification")).Return(nil)
		mailer.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

		service := NewNotificationService(repo, userRepo, mailer)
		n, err := service.Create(context.Background(), userID, "Interview", "You are invited", true)

		assert.NoError(t, err)
		assert.NotNil(t, n)
		assert.False(t, n.SentEmail)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("sendEmail false skips the mailer", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		userRepo := new(MockUserRepository)
		mailer := new(MockMailer)

		userRepo.On("FindByID", mock.Anything, userID).Return(user, nil)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Notification")).Return(nil)

		service := NewNotificationService(repo, userRepo, mailer)
		n, err := service.Create(context.Background(), userID, "Heads up", "New job posted", false)

		assert.NoError(t, err)
		assert.False(t, n.SentEmail)
		mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		service := NewNotificationService(new(MockNotificationRepository), userRepo, new(MockMailer))
		n, err := service.Create(context.Background(), userID, "x", "y", true)

		assert.Equal(t, apperrors.ErrUserNotFound, err)
		assert.Nil(t, n)
	})
}

func TestNotificationService_MarkRead(t *testing.T) {
	repo := new(MockNotificationRepository)
	repo.On("FindByID", mock.Anything, uint(3)).Return(&model.Notification{ID: 3}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(n *model.Notification) bool {
		return n.IsRead
	})).Return(nil)

	service := NewNotificationService(repo, new(MockUserRepository), new(MockMailer))
	n, err := service.MarkRead(context.Background(), 3)

	assert.NoError(t, err)
	assert.True(t, n.IsRead)
	repo.AssertExpectations(t)
}
