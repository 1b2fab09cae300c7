package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "jobboard/internal/errors"
	"jobboard/internal/model"
	"jobboard/internal/repository"
)

// JobSeekerUpdateInput carries the mutable job seeker profile fields.
type JobSeekerUpdateInput struct {
	EducationDetails string
	Skills           string
	College          string
	WorkStatus       string
	Experience       int
}

// JobSeekerService exposes job seeker profile operations.
type JobSeekerService interface {
	GetJobSeeker(ctx context.Context, id uuid.UUID) (*model.JobSeeker, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.JobSeeker, error)
	ListJobSeekers(ctx context.Context) ([]model.JobSeeker, error)
	CreateJobSeeker(ctx context.Context, userID uuid.UUID, in JobSeekerUpdateInput) (*model.JobSeeker, error)
	UpdateJobSeeker(ctx context.Context, id uuid.UUID, in JobSeekerUpdateInput) (*model.JobSeeker, error)
	DeleteJobSeeker(ctx context.Context, id uuid.UUID) error
	SearchByCollege(ctx context.Context, q string) ([]model.JobSeeker, error)
	SearchBySkill(ctx context.Context, q string) ([]model.JobSeeker, error)
}

type jobSeekerService struct {
	repo     repository.JobSeekerRepository
	userRepo repository.UserRepository
}

// NewJobSeekerService builds a JobSeekerService.
func NewJobSeekerService(repo repository.JobSeekerRepository, userRepo repository.UserRepository) JobSeekerService {
	return &jobSeekerService{repo: repo, userRepo: userRepo}
}

func (s *jobSeekerService) GetJobSeeker(ctx context.Context, id uuid.UUID) (*model.JobSeeker, error) {
	seeker, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobSeekerNotFound
		}
		return nil, err
	}
	return seeker, nil
}

func (s *jobSeekerService) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.JobSeeker, error) {
	seeker, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobSeekerNotFound
		}
		return nil, err
	}
	return seeker, nil
}

func (s *jobSeekerService) ListJobSeekers(ctx context.Context) ([]model.JobSeeker, error) {
	return s.repo.List(ctx)
}

// CreateJobSeeker adds a job seeker profile for an existing user with the
// jobseeker role.
func (s *jobSeekerService) CreateJobSeeker(ctx context.Context, userID uuid.UUID, in JobSeekerUpdateInput) (*model.JobSeeker, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	if user.Role != model.RoleJobSeeker {
		return nil, apperrors.ErrRoleMismatch
	}

	seeker := &model.JobSeeker{
		EducationDetails: in.EducationDetails,
		Skills:           in.Skills,
		College:          in.College,
		WorkStatus:       in.WorkStatus,
		Experience:       in.Experience,
		UserID:           userID,
	}
	if err := s.repo.Create(ctx, seeker); err != nil {
		return nil, fmt.Errorf("create job seeker: %w", err)
	}
	return seeker, nil
}

func (s *jobSeekerService) UpdateJobSeeker(ctx context.Context, id uuid.UUID, in JobSeekerUpdateInput) (*model.JobSeeker, error) {
	seeker, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobSeekerNotFound
		}
		return nil, err
	}

	seeker.EducationDetails = in.EducationDetails
	seeker.Skills = in.Skills
	seeker.College = in.College
	seeker.WorkStatus = in.WorkStatus
	seeker.Experience = in.Experience

	if err := s.repo.Update(ctx, seeker); err != nil {
		return nil, fmt.Errorf("update job seeker: %w", err)
	}
	return seeker, nil
}

// DeleteJobSeeker removes the profile unless resumes or applications still
// reference it. The check runs in application code, not as a database cascade.
func (s *jobSeekerService) DeleteJobSeeker(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrJobSeekerNotFound
		}
		return err
	}

	resumes, applications, err := s.repo.CountDependents(ctx, id)
	if err != nil {
		return fmt.Errorf("count dependents: %w", err)
	}
	if resumes > 0 || applications > 0 {
		return apperrors.ErrJobSeekerHasDependents
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrJobSeekerNotFound
		}
		return err
	}
	return nil
}

func (s *jobSeekerService) SearchByCollege(ctx context.Context, q string) ([]model.JobSeeker, error) {
	return s.repo.SearchByCollege(ctx, q)
}

func (s *jobSeekerService) SearchBySkill(ctx context.Context, q string) ([]model.JobSeeker, error) {
	return s.repo.SearchBySkill(ctx, q)
}
