package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "jobboard/internal/errors"
	"jobboard/internal/model"
)

func TestJobService_CreateJob(t *testing.T) {
	employerID := uuid.New()

	tests := []struct {
		name           string
		input          JobInput
		setupMock      func(*MockJobRepository, *MockEmployerRepository)
		expectedStatus string
		expectedError  error
	}{
		{
			name: "empty status defaults to open",
			input: JobInput{
				Title:  "Backend Engineer",
				Salary: decimal.NewFromInt(90000),
			},
			setupMock: func(j *MockJobRepository, e *MockEmployerRepository) {
				e.On("FindByID", mock.Anything, employerID).Return(&model.Employer{ID: employerID}, nil)
				j.On("Create", mock.Anything, mock.AnythingOfType("*model.Job")).Return(nil)
			},
			expectedStatus: model.JobStatusOpen,
		},
		{
			name: "explicit status is kept as-is",
			input: JobInput{
				Title:  "Backend Engineer",
				Status: "Internal Review",
			},
			setupMock: func(j *MockJobRepository, e *MockEmployerRepository) {
				e.On("FindByID", mock.Anything, employerID).Return(&model.Employer{ID: employerID}, nil)
				j.On("Create", mock.Anything, mock.AnythingOfType("*model.Job")).Return(nil)
			},
			expectedStatus: "Internal Review",
		},
		{
			name:  "unknown employer",
			input: JobInput{Title: "Backend Engineer"},
			setupMock: func(j *MockJobRepository, e *MockEmployerRepository) {
				e.On("FindByID", mock.Anything, employerID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrEmployerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobRepo := new(MockJobRepository)
			employerRepo := new(MockEmployerRepository)
			tt.setupMock(jobRepo, employerRepo)

			service := NewJobService(jobRepo, employerRepo, nil)
			job, err := service.CreateJob(context.Background(), employerID, tt.input)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, job)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, job)
				assert.Equal(t, tt.expectedStatus, job.Status)
				assert.Equal(t, employerID, job.EmployerID)
			}

			jobRepo.AssertExpectations(t)
			employerRepo.AssertExpectations(t)
		})
	}
}

func TestJobService_UpdateJob(t *testing.T) {
	t.Run("full replace keeps status when input leaves it empty", func(t *testing.T) {
		repo := new(MockJobRepository)
		repo.On("FindByID", mock.Anything, uint(4)).Return(&model.Job{
			ID:     4,
			Title:  "Old Title",
			Status: model.JobStatusOnHold,
		}, nil)
		repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Job")).Return(nil)

		service := NewJobService(repo, new(MockEmployerRepository), nil)
		job, err := service.UpdateJob(context.Background(), 4, JobInput{Title: "New Title"})

		assert.NoError(t, err)
		assert.Equal(t, "New Title", job.Title)
		assert.Equal(t, model.JobStatusOnHold, job.Status)
		repo.AssertExpectations(t)
	})

	t.Run("unknown job", func(t *testing.T) {
		repo := new(MockJobRepository)
		repo.On("FindByID", mock.Anything, uint(4)).Return(nil, gorm.ErrRecordNotFound)

		service := NewJobService(repo, new(MockEmployerRepository), nil)
		job, err := service.UpdateJob(context.Background(), 4, JobInput{})

		assert.Equal(t, apperrors.ErrJobNotFound, err)
		assert.Nil(t, job)
	})
}

func TestJobService_DeleteJob(t *testing.T) {
	repo := new(MockJobRepository)
	repo.On("Delete", mock.Anything, uint(4)).Return(gorm.ErrRecordNotFound)

	service := NewJobService(repo, new(MockEmployerRepository), nil)
	err := service.DeleteJob(context.Background(), 4)

	assert.Equal(t, apperrors.ErrJobNotFound, err)
}
