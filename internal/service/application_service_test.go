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

func TestApplicationService_Apply(t *testing.T) {
	seekerID := uuid.New()
	otherSeekerID := uuid.New()

	tests := []struct {
		name          string
		resumeID      uint
		setupMock     func(*MockApplicationRepository, *MockJobRepository, *MockJobSeekerRepository, *MockResumeRepository)
		expectedError error
	}{
		{
			name:     "explicit resume",
			resumeID: 5,
			setupMock: func(a *MockApplicationRepository, j *MockJobRepository, s *MockJobSeekerRepository, r *MockResumeRepository) {
				j.On("FindByID", mock.Anything, uint(1)).Return(&model.Job{ID: 1}, nil)
				s.On("FindByID", mock.Anything, seekerID).Return(&model.JobSeeker{ID: seekerID}, nil)
				r.On("FindByID", mock.Anything, uint(5)).Return(&model.Resume{ID: 5, JobSeekerID: seekerID}, nil)
				a.On("Create", mock.Anything, mock.AnythingOfType("*model.Application")).Return(nil)
			},
		},
		{
			name:     "zero resume falls back to the default",
			resumeID: 0,
			setupMock: func(a *MockApplicationRepository, j *MockJobRepository, s *MockJobSeekerRepository, r *MockResumeRepository) {
				j.On("FindByID", mock.Anything, uint(1)).Return(&model.Job{ID: 1}, nil)
				s.On("FindByID", mock.Anything, seekerID).Return(&model.JobSeeker{ID: seekerID}, nil)
				r.On("ListByJobSeeker", mock.Anything, seekerID).Return([]model.Resume{
					{ID: 3, JobSeekerID: seekerID},
					{ID: 4, JobSeekerID: seekerID, IsDefault: true},
				}, nil)
				a.On("Create", mock.Anything, mock.MatchedBy(func(app *model.Application) bool {
					return app.ResumeID == 4
				})).Return(nil)
			},
		},
		{
			name:     "no default resume to fall back to",
			resumeID: 0,
			setupMock: func(a *MockApplicationRepository, j *MockJobRepository, s *MockJobSeekerRepository, r *MockResumeRepository) {
				j.On("FindByID", mock.Anything, uint(1)).Return(&model.Job{ID: 1}, nil)
				s.On("FindByID", mock.Anything, seekerID).Return(&model.JobSeeker{ID: seekerID}, nil)
				r.On("ListByJobSeeker", mock.Anything, seekerID).Return([]model.Resume{
					{ID: 3, JobSeekerID: seekerID},
				}, nil)
			},
			expectedError: apperrors.ErrResumeNotFound,
		},
		{
			name:     "resume owned by another job seeker",
			resumeID: 5,
			setupMock: func(a *MockApplicationRepository, j *MockJobRepository, s *MockJobSeekerRepository, r *MockResumeRepository) {
				j.On("FindByID", mock.Anything, uint(1)).Return(&model.Job{ID: 1}, nil)
				s.On("FindByID", mock.Anything, seekerID).Return(&model.JobSeeker{ID: seekerID}, nil)
				r.On("FindByID", mock.Anything, uint(5)).Return(&model.Resume{ID: 5, JobSeekerID: otherSeekerID}, nil)
			},
			expectedError: apperrors.ErrResumeNotFound,
		},
		{
			name:     "unknown job",
			resumeID: 5,
			setupMock: func(a *MockApplicationRepository, j *MockJobRepository, s *MockJobSeekerRepository, r *MockResumeRepository) {
				j.On("FindByID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrJobNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appRepo := new(MockApplicationRepository)
			jobRepo := new(MockJobRepository)
			seekerRepo := new(MockJobSeekerRepository)
			resumeRepo := new(MockResumeRepository)
			tt.setupMock(appRepo, jobRepo, seekerRepo, resumeRepo)

			service := NewApplicationService(appRepo, jobRepo, seekerRepo, resumeRepo)
			app, err := service.Apply(context.Background(), 1, seekerID, tt.resumeID, "cover letter")

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, app)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, app)
				assert.Equal(t, model.ApplicationStatusApplied, app.Status)
				assert.Equal(t, seekerID, app.JobSeekerID)
				assert.False(t, app.AppliedAt.IsZero())
			}

			appRepo.AssertExpectations(t)
			jobRepo.AssertExpectations(t)
		})
	}
}

func TestApplicationService_MarkReviewed(t *testing.T) {
	t.Run("stamps the review time and status", func(t *testing.T) {
		repo := new(MockApplicationRepository)
		repo.On("FindByID", mock.Anything, uint(9)).Return(&model.Application{
			ID:     9,
			Status: model.ApplicationStatusApplied,
		}, nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(app *model.Application) bool {
			return app.ReviewedAt != nil && app.Status == model.ApplicationStatusReviewed
		})).Return(nil)

		service := NewApplicationService(repo, new(MockJobRepository), new(MockJobSeekerRepository), new(MockResumeRepository))
		app, err := service.MarkReviewed(context.Background(), 9, "solid candidate")

		assert.NoError(t, err)
		assert.NotNil(t, app.ReviewedAt)
		assert.Equal(t, "solid candidate", app.Notes)
		repo.AssertExpectations(t)
	})

	t.Run("unknown application", func(t *testing.T) {
		repo := new(MockApplicationRepository)
		repo.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		service := NewApplicationService(repo, new(MockJobRepository), new(MockJobSeekerRepository), new(MockResumeRepository))
		app, err := service.MarkReviewed(context.Background(), 9, "")

		assert.Equal(t, apperrors.ErrApplicationNotFound, err)
		assert.Nil(t, app)
	})
}

func TestApplicationService_Shortlist(t *testing.T) {
	repo := new(MockApplicationRepository)
	repo.On("FindByID", mock.Anything, uint(2)).Return(&model.Application{
		ID:     2,
		Status: model.ApplicationStatusReviewed,
	}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Application")).Return(nil)

	service := NewApplicationService(repo, new(MockJobRepository), new(MockJobSeekerRepository), new(MockResumeRepository))
	app, err := service.Shortlist(context.Background(), 2, true)

	assert.NoError(t, err)
	assert.True(t, app.IsShortlisted)
	assert.Equal(t, model.ApplicationStatusShortlisted, app.Status)
	repo.AssertExpectations(t)
}

func TestApplicationService_ScheduleInterview(t *testing.T) {
	when := time.Now().Add(48 * time.Hour)

	repo := new(MockApplicationRepository)
	repo.On("FindByID", mock.Anything, uint(2)).Return(&model.Application{ID: 2}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Application")).Return(nil)

	service := NewApplicationService(repo, new(MockJobRepository), new(MockJobSeekerRepository), new(MockResumeRepository))
	app, err := service.ScheduleInterview(context.Background(), 2, when)

	assert.NoError(t, err)
	assert.NotNil(t, app.InterviewDate)
	assert.Equal(t, when, *app.InterviewDate)
	assert.Equal(t, model.ApplicationStatusInterview, app.Status)
	repo.AssertExpectations(t)
}
