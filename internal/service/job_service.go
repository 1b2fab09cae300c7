package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"jobboard/internal/cache"
	apperrors "jobboard/internal/errors"
	"jobboard/internal/model"
	"jobboard/internal/repository"
)

const jobCacheTTL = 2 * time.Minute

// JobInput carries the fields of a posting. Update applies full-replace
// semantics over all of them, including Status (free text, no transition
// rules).
type JobInput struct {
	Title               string
	Description         string
	Location            string
	Salary              decimal.Decimal
	SkillsRequired      string
	EligibilityCriteria string
	Status              string
}

// JobService exposes job posting operations.
type JobService interface {
	GetJob(ctx context.Context, id uint) (*model.Job, error)
	ListJobs(ctx context.Context) ([]model.Job, error)
	ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]model.Job, error)
	ListByStatus(ctx context.Context, status string) ([]model.Job, error)
	CreateJob(ctx context.Context, employerID uuid.UUID, in JobInput) (*model.Job, error)
	UpdateJob(ctx context.Context, id uint, in JobInput) (*model.Job, error)
	DeleteJob(ctx context.Context, id uint) error
	SearchByTitle(ctx context.Context, q string) ([]model.Job, error)
	SearchByLocation(ctx context.Context, q string) ([]model.Job, error)
	SearchBySkill(ctx context.Context, q string) ([]model.Job, error)
}

type jobService struct {
	repo         repository.JobRepository
	employerRepo repository.EmployerRepository
	cache        *cache.Client
}

// NewJobService builds a JobService with repository and cache.
func NewJobService(repo repository.JobRepository, employerRepo repository.EmployerRepository, cache *cache.Client) JobService {
	return &jobService{repo: repo, employerRepo: employerRepo, cache: cache}
}

func (s *jobService) cacheKey(id uint) string {
	return fmt.Sprintf("job:%d", id)
}

func (s *jobService) GetJob(ctx context.Context, id uint) (*model.Job, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Job
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(job); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, jobCacheTTL)
	}
	return job, nil
}

func (s *jobService) ListJobs(ctx context.Context) ([]model.Job, error) {
	return s.repo.List(ctx)
}

func (s *jobService) ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]model.Job, error) {
	return s.repo.ListByEmployer(ctx, employerID)
}

func (s *jobService) ListByStatus(ctx context.Context, status string) ([]model.Job, error) {
	return s.repo.ListByStatus(ctx, status)
}

// CreateJob persists a posting for an employer. Status defaults to Open when
// the input leaves it empty.
func (s *jobService) CreateJob(ctx context.Context, employerID uuid.UUID, in JobInput) (*model.Job, error) {
	if _, err := s.employerRepo.FindByID(ctx, employerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployerNotFound
		}
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = model.JobStatusOpen
	}

	job := &model.Job{
		Title:               in.Title,
		Description:         in.Description,
		Location:            in.Location,
		Salary:              in.Salary,
		SkillsRequired:      in.SkillsRequired,
		EligibilityCriteria: in.EligibilityCriteria,
		Status:              status,
		EmployerID:          employerID,
	}
	if err := s.repo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

func (s *jobService) UpdateJob(ctx context.Context, id uint, in JobInput) (*model.Job, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, err
	}

	job.Title = in.Title
	job.Description = in.Description
	job.Location = in.Location
	job.Salary = in.Salary
	job.SkillsRequired = in.SkillsRequired
	job.EligibilityCriteria = in.EligibilityCriteria
	if in.Status != "" {
		job.Status = in.Status
	}

	if err := s.repo.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return job, nil
}

func (s *jobService) DeleteJob(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrJobNotFound
		}
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

func (s *jobService) SearchByTitle(ctx context.Context, q string) ([]model.Job, error) {
	return s.repo.SearchByTitle(ctx, q)
}

func (s *jobService) SearchByLocation(ctx context.Context, q string) ([]model.Job, error) {
	return s.repo.SearchByLocation(ctx, q)
}

func (s *jobService) SearchBySkill(ctx context.Context, q string) ([]model.Job, error) {
	return s.repo.SearchBySkill(ctx, q)
}
