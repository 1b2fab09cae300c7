package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "jobboard/internal/errors"
	"jobboard/internal/model"
	"jobboard/internal/repository"
)

// ApplicationInput carries the mutable application fields. Status stays free
// text; any value can be written.
type ApplicationInput struct {
	CoverLetter      string
	Status           string
	Notes            string
	EmployerFeedback string
}

// ApplicationService exposes application operations and the review workflow.
type ApplicationService interface {
	GetApplication(ctx context.Context, id uint) (*model.Application, error)
	ListApplications(ctx context.Context) ([]model.Application, error)
	ListByJob(ctx context.Context, jobID uint) ([]model.Application, error)
	ListByJobSeeker(ctx context.Context, jobSeekerID uuid.UUID) ([]model.Application, error)
	ListByStatus(ctx context.Context, status string) ([]model.Application, error)
	Apply(ctx context.Context, jobID uint, jobSeekerID uuid.UUID, resumeID uint, coverLetter string) (*model.Application, error)
	UpdateApplication(ctx context.Context, id uint, in ApplicationInput) (*model.Application, error)
	DeleteApplication(ctx context.Context, id uint) error
	MarkReviewed(ctx context.Context, id uint, notes string) (*model.Application, error)
	Shortlist(ctx context.Context, id uint, shortlisted bool) (*model.Application, error)
	ScheduleInterview(ctx context.Context, id uint, when time.Time) (*model.Application, error)
}

type applicationService struct {
	repo          repository.ApplicationRepository
	jobRepo       repository.JobRepository
	jobSeekerRepo repository.JobSeekerRepository
	resumeRepo    repository.ResumeRepository
}

// NewApplicationService builds an ApplicationService.
func NewApplicationService(
	repo repository.ApplicationRepository,
	jobRepo repository.JobRepository,
	jobSeekerRepo repository.JobSeekerRepository,
	resumeRepo repository.ResumeRepository,
) ApplicationService {
	return &applicationService{
		repo:          repo,
		jobRepo:       jobRepo,
		jobSeekerRepo: jobSeekerRepo,
		resumeRepo:    resumeRepo,
	}
}

func (s *applicationService) GetApplication(ctx context.Context, id uint) (*model.Application, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, err
	}
	return app, nil
}

func (s *applicationService) ListApplications(ctx context.Context) ([]model.Application, error) {
	return s.repo.List(ctx)
}

func (s *applicationService) ListByJob(ctx context.Context, jobID uint) ([]model.Application, error) {
	return s.repo.ListByJob(ctx, jobID)
}

func (s *applicationService) ListByJobSeeker(ctx context.Context, jobSeekerID uuid.UUID) ([]model.Application, error) {
	return s.repo.ListByJobSeeker(ctx, jobSeekerID)
}

func (s *applicationService) ListByStatus(ctx context.Context, status string) ([]model.Application, error) {
	return s.repo.ListByStatus(ctx, status)
}

// Apply creates an application referencing exactly one job, one job seeker
// and one resume. A zero resumeID falls back to the seeker's default resume.
func (s *applicationService) Apply(ctx context.Context, jobID uint, jobSeekerID uuid.UUID, resumeID uint, coverLetter string) (*model.Application, error) {
	if _, err := s.jobRepo.FindByID(ctx, jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, err
	}
	if _, err := s.jobSeekerRepo.FindByID(ctx, jobSeekerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobSeekerNotFound
		}
		return nil, err
	}

	if resumeID == 0 {
		resumes, err := s.resumeRepo.ListByJobSeeker(ctx, jobSeekerID)
		if err != nil {
			return nil, fmt.Errorf("list resumes: %w", err)
		}
		for _, r := range resumes {
			if r.IsDefault {
				resumeID = r.ID
				break
			}
		}
		if resumeID == 0 {
			return nil, apperrors.ErrResumeNotFound
		}
	} else {
		resume, err := s.resumeRepo.FindByID(ctx, resumeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrResumeNotFound
			}
			return nil, err
		}
		if resume.JobSeekerID != jobSeekerID {
			return nil, apperrors.ErrResumeNotFound
		}
	}

	app := &model.Application{
		JobID:       jobID,
		JobSeekerID: jobSeekerID,
		ResumeID:    resumeID,
		CoverLetter: coverLetter,
		Status:      model.ApplicationStatusApplied,
		AppliedAt:   time.Now(),
	}
	if err := s.repo.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}
	return app, nil
}

func (s *applicationService) UpdateApplication(ctx context.Context, id uint, in ApplicationInput) (*model.Application, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, err
	}

	app.CoverLetter = in.CoverLetter
	app.Notes = in.Notes
	app.EmployerFeedback = in.EmployerFeedback
	if in.Status != "" {
		app.Status = in.Status
	}

	if err := s.repo.Update(ctx, app); err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}
	return app, nil
}

func (s *applicationService) DeleteApplication(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return err
	}
	return nil
}

// MarkReviewed stamps ReviewedAt and optionally overwrites the notes.
func (s *applicationService) MarkReviewed(ctx context.Context, id uint, notes string) (*model.Application, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, err
	}

	now := time.Now()
	app.ReviewedAt = &now
	app.Status = model.ApplicationStatusReviewed
	if notes != "" {
		app.Notes = notes
	}

	if err := s.repo.Update(ctx, app); err != nil {
		return nil, fmt.Errorf("mark reviewed: %w", err)
	}
	return app, nil
}

// Shortlist is a targeted field update, not a guarded transition.
func (s *applicationService) Shortlist(ctx context.Context, id uint, shortlisted bool) (*model.Application, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, err
	}

	app.IsShortlisted = shortlisted
	if shortlisted {
		app.Status = model.ApplicationStatusShortlisted
	}

	if err := s.repo.Update(ctx, app); err != nil {
		return nil, fmt.Errorf("shortlist: %w", err)
	}
	return app, nil
}

// ScheduleInterview records the interview date.
func (s *applicationService) ScheduleInterview(ctx context.Context, id uint, when time.Time) (*model.Application, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, err
	}

	app.InterviewDate = &when
	app.Status = model.ApplicationStatusInterview

	if err := s.repo.Update(ctx, app); err != nil {
		return nil, fmt.Errorf("schedule interview: %w", err)
	}
	return app, nil
}
