package service

import (
	"context"

	"jobboard/internal/repository"
)

// Stats aggregates per-entity row counts for admin dashboards.
type Stats struct {
	Users         int64 `json:"users"`
	Employers     int64 `json:"employers"`
	JobSeekers    int64 `json:"job_seekers"`
	Jobs          int64 `json:"jobs"`
	Resumes       int64 `json:"resumes"`
	Applications  int64 `json:"applications"`
	Notifications int64 `json:"notifications"`
}

// Countable is the capability every repository exposes so stats never rely on
// runtime type inspection.
type Countable interface {
	Count(ctx context.Context) (int64, error)
}

// AdminService exposes aggregate admin views.
type AdminService interface {
	Stats(ctx context.Context) (*Stats, error)
}

type adminService struct {
	users         Countable
	employers     Countable
	jobSeekers    Countable
	jobs          Countable
	resumes       Countable
	applications  Countable
	notifications Countable
}

// NewAdminService builds an AdminService over the entity repositories.
func NewAdminService(
	users repository.UserRepository,
	employers repository.EmployerRepository,
	jobSeekers repository.JobSeekerRepository,
	jobs repository.JobRepository,
	resumes repository.ResumeRepository,
	applications repository.ApplicationRepository,
	notifications repository.NotificationRepository,
) AdminService {
	return &adminService{
		users:         users,
		employers:     employers,
		jobSeekers:    jobSeekers,
		jobs:          jobs,
		resumes:       resumes,
		applications:  applications,
		notifications: notifications,
	}
}

func (s *adminService) Stats(ctx context.Context) (*Stats, error) {
	var (
		stats Stats
		err   error
	)
	if stats.Users, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Employers, err = s.employers.Count(ctx); err != nil {
		return nil, err
	}
	if stats.JobSeekers, err = s.jobSeekers.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Jobs, err = s.jobs.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Resumes, err = s.resumes.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Applications, err = s.applications.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Notifications, err = s.notifications.Count(ctx); err != nil {
		return nil, err
	}
	return &stats, nil
}
