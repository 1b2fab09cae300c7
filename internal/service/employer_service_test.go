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

func TestEmployerService_CreateEmployer(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		setupMock     func(*MockEmployerRepository, *MockUserRepository)
		expectedError error
	}{
		{
			name: "creates profile for employer user",
			setupMock: func(r *MockEmployerRepository, u *MockUserRepository) {
				u.On("FindByID", mock.Anything, userID).Return(&model.User{
					ID:   userID,
					Role: model.RoleEmployer,
				}, nil)
				r.On("Create", mock.Anything, mock.AnythingOfType("*model.Employer")).Return(nil)
			},
		},
		{
			name: "rejects non-employer user",
			setupMock: func(r *MockEmployerRepository, u *MockUserRepository) {
				u.On("FindByID", mock.Anything, userID).Return(&model.User{
					ID:   userID,
					Role: model.RoleJobSeeker,
				}, nil)
			},
			expectedError: apperrors.ErrRoleMismatch,
		},
		{
			name: "unknown user",
			setupMock: func(r *MockEmployerRepository, u *MockUserRepository) {
				u.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockEmployerRepository)
			userRepo := new(MockUserRepository)
			tt.setupMock(repo, userRepo)

			service := NewEmployerService(repo, userRepo)
			employer, err := service.CreateEmployer(context.Background(), userID, EmployerUpdateInput{
				CompanyName: "Acme Corp",
			})

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, employer)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, employer)
				assert.Equal(t, "Acme Corp", employer.CompanyName)
				assert.Equal(t, userID, employer.UserID)
			}

			repo.AssertExpectations(t)
			userRepo.AssertExpectations(t)
		})
	}
}
