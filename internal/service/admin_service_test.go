package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminService_Stats(t *testing.T) {
	userRepo := new(MockUserRepository)
	employerRepo := new(MockEmployerRepository)
	seekerRepo := new(MockJobSeekerRepository)
	jobRepo := new(MockJobRepository)
	resumeRepo := new(MockResumeRepository)
	appRepo := new(MockApplicationRepository)
	notifRepo := new(MockNotificationRepository)

	userRepo.On("Count", mock.Anything).Return(int64(10), nil)
	employerRepo.On("Count", mock.Anything).Return(int64(3), nil)
	seekerRepo.On("Count", mock.Anything).Return(int64(6), nil)
	jobRepo.On("Count", mock.Anything).Return(int64(12), nil)
	resumeRepo.On("Count", mock.Anything).Return(int64(8), nil)
	appRepo.On("Count", mock.Anything).Return(int64(20), nil)
	notifRepo.On("Count", mock.Anything).Return(int64(40), nil)

	service := NewAdminService(userRepo, employerRepo, seekerRepo, jobRepo, resumeRepo, appRepo, notifRepo)
	stats, err := service.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, &Stats{
		Users:         10,
		Employers:     3,
		JobSeekers:    6,
		Jobs:          12,
		Resumes:       8,
		Applications:  20,
		Notifications: 40,
	}, stats)
}

func TestAdminService_StatsError(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("Count", mock.Anything).Return(int64(0), assert.AnError)

	service := NewAdminService(userRepo, new(MockEmployerRepository), new(MockJobSeekerRepository),
		new(MockJobRepository), new(MockResumeRepository), new(MockApplicationRepository),
		new(MockNotificationRepository))

	stats, err := service.Stats(context.Background())

	assert.Error(t, err)
	assert.Nil(t, stats)
}
