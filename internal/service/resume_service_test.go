package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "jobboard/internal/errors"
	"jobboard/internal/model"
)

func TestResumeService_Upload(t *testing.T) {
	seekerID := uuid.New()

	t.Run("stores the object before the metadata row", func(t *testing.T) {
		repo := new(MockResumeRepository)
		seekerRepo := new(MockJobSeekerRepository)
		store := new(MockResumeStore)

		seekerRepo.On("FindByID", mock.Anything, seekerID).Return(&model.JobSeeker{ID: seekerID}, nil)

		var objectName string
		store.On("Upload", mock.Anything, mock.Anything, mock.Anything, int64(42), "application/pdf").
			Run(func(args mock.Arguments) {
				objectName = args.String(1)
			}).Return(nil)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Resume")).Return(nil)

		service := NewResumeService(repo, seekerRepo, store)
		resume, err := service.Upload(context.Background(), seekerID,
			ResumeInput{ResumeName: "My CV"}, "cv.pdf", "application/pdf",
			strings.NewReader("pdf bytes"), 42)

		assert.NoError(t, err)
		assert.NotNil(t, resume)
		assert.Equal(t, objectName, resume.FilePath)
		assert.True(t, strings.HasPrefix(resume.FilePath, seekerID.String()+"/"))
		assert.True(t, strings.HasSuffix(resume.FilePath, ".pdf"))
		assert.Equal(t, seekerID, resume.JobSeekerID)
		repo.AssertExpectations(t)
		store.AssertExpectations(t)
	})

	t.Run("unknown job seeker", func(t *testing.T) {
		repo := new(MockResumeRepository)
		seekerRepo := new(MockJobSeekerRepository)
		store := new(MockResumeStore)

		seekerRepo.On("FindByID", mock.Anything, seekerID).Return(nil, gorm.ErrRecordNotFound)

		service := NewResumeService(repo, seekerRepo, store)
		resume, err := service.Upload(context.Background(), seekerID,
			ResumeInput{}, "cv.pdf", "application/pdf", strings.NewReader(""), 0)

		assert.Error(t, err)
		assert.Equal(t, apperrors.ErrJobSeekerNotFound, err)
		assert.Nil(t, resume)
		store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestResumeService_SetDefault(t *testing.T) {
	seekerID := uuid.New()

	tests := []struct {
		name            string
		resumes         []model.Resume
		target          uint
		expectedUpdates []uint
		expectedError   error
	}{
		{
			name: "promotes target and demotes previous default",
			resumes: []model.Resume{
				{ID: 1, JobSeekerID: seekerID, IsDefault: true},
				{ID: 2, JobSeekerID: seekerID},
				{ID: 3, JobSeekerID: seekerID},
			},
			target:          2,
			expectedUpdates: []uint{1, 2},
		},
		{
			name: "already default rewrites nothing",
			resumes: []model.Resume{
				{ID: 1, JobSeekerID: seekerID, IsDefault: true},
				{ID: 2, JobSeekerID: seekerID},
			},
			target:          1,
			expectedUpdates: nil,
		},
		{
			name: "target not owned by the job seeker",
			resumes: []model.Resume{
				{ID: 1, JobSeekerID: seekerID, IsDefault: true},
			},
			target:        99,
			expectedError: apperrors.ErrResumeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockResumeRepository)
			repo.On("ListByJobSeeker", mock.Anything, seekerID).Return(tt.resumes, nil)

			var updated []uint
			repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Resume")).
				Run(func(args mock.Arguments) {
					r := args.Get(1).(*model.Resume)
					updated = append(updated, r.ID)
					assert.Equal(t, r.ID == tt.target, r.IsDefault)
				}).Return(nil)

			service := NewResumeService(repo, new(MockJobSeekerRepository), new(MockResumeStore))
			err := service.SetDefault(context.Background(), seekerID, tt.target)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedUpdates, updated)
		})
	}
}

func TestResumeService_DeleteResume(t *testing.T) {
	t.Run("removes the stored object after the row", func(t *testing.T) {
		repo := new(MockResumeRepository)
		store := new(MockResumeStore)

		repo.On("FindByID", mock.Anything, uint(7)).Return(&model.Resume{ID: 7, FilePath: "obj/key.pdf"}, nil)
		repo.On("Delete", mock.Anything, uint(7)).Return(nil)
		store.On("Remove", mock.Anything, "obj/key.pdf").Return(nil)

		service := NewResumeService(repo, new(MockJobSeekerRepository), store)
		err := service.DeleteResume(context.Background(), 7)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
		store.AssertExpectations(t)
	})

	t.Run("unknown resume", func(t *testing.T) {
		repo := new(MockResumeRepository)
		repo.On("FindByID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)

		service := NewResumeService(repo, new(MockJobSeekerRepository), new(MockResumeStore))
		err := service.DeleteResume(context.Background(), 7)

		assert.Equal(t, apperrors.ErrResumeNotFound, err)
	})
}
