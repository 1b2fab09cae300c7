package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "jobboard/internal/errors"
	"jobboard/internal/model"
	"jobboard/internal/repository"
	"jobboard/internal/storage"
)

// ResumeInput carries resume metadata fields.
type ResumeInput struct {
	ResumeName   string
	ParsedSkills string
}

// ResumeService exposes resume operations, including file storage.
type ResumeService interface {
	GetResume(ctx context.Context, id uint) (*model.Resume, error)
	ListResumes(ctx context.Context) ([]model.Resume, error)
	ListByJobSeeker(ctx context.Context, jobSeekerID uuid.UUID) ([]model.Resume, error)
	Upload(ctx context.Context, jobSeekerID uuid.UUID, in ResumeInput, fileName, contentType string, file io.Reader, size int64) (*model.Resume, error)
	UpdateResume(ctx context.Context, id uint, in ResumeInput) (*model.Resume, error)
	DeleteResume(ctx context.Context, id uint) error
	DownloadURL(ctx context.Context, id uint) (string, error)
	SetDefault(ctx context.Context, jobSeekerID uuid.UUID, resumeID uint) error
}

type resumeService struct {
	repo          repository.ResumeRepository
	jobSeekerRepo repository.JobSeekerRepository
	store         storage.ResumeStore
}

// NewResumeService builds a ResumeService.
func NewResumeService(repo repository.ResumeRepository, jobSeekerRepo repository.JobSeekerRepository, store storage.ResumeStore) ResumeService {
	return &resumeService{repo: repo, jobSeekerRepo: jobSeekerRepo, store: store}
}

func (s *resumeService) GetResume(ctx context.Context, id uint) (*model.Resume, error) {
	resume, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrResumeNotFound
		}
		return nil, err
	}
	return resume, nil
}

func (s *resumeService) ListResumes(ctx context.Context) ([]model.Resume, error) {
	return s.repo.List(ctx)
}

func (s *resumeService) ListByJobSeeker(ctx context.Context, jobSeekerID uuid.UUID) ([]model.Resume, error) {
	return s.repo.ListByJobSeeker(ctx, jobSeekerID)
}

// Upload stores the file object first, then the metadata row. The object key
// embeds the job seeker id and a fresh UUID so re-uploads never collide.
func (s *resumeService) Upload(ctx context.Context, jobSeekerID uuid.UUID, in ResumeInput, fileName, contentType string, file io.Reader, size int64) (*model.Resume, error) {
	if _, err := s.jobSeekerRepo.FindByID(ctx, jobSeekerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobSeekerNotFound
		}
		return nil, err
	}

	objectName := fmt.Sprintf("%s/%s%s", jobSeekerID, uuid.New(), path.Ext(fileName))
	if err := s.store.Upload(ctx, objectName, file, size, contentType); err != nil {
		return nil, fmt.Errorf("store resume file: %w", err)
	}

	resume := &model.Resume{
		ResumeName:   in.ResumeName,
		FilePath:     objectName,
		FileType:     contentType,
		ParsedSkills: in.ParsedSkills,
		JobSeekerID:  jobSeekerID,
		UpdatedAt:    time.Now(),
	}
	if err := s.repo.Create(ctx, resume); err != nil {
		return nil, fmt.Errorf("create resume: %w", err)
	}
	return resume, nil
}

func (s *resumeService) UpdateResume(ctx context.Context, id uint, in ResumeInput) (*model.Resume, error) {
	resume, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrResumeNotFound
		}
		return nil, err
	}

	resume.ResumeName = in.ResumeName
	resume.ParsedSkills = in.ParsedSkills
	resume.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, resume); err != nil {
		return nil, fmt.Errorf("update resume: %w", err)
	}
	return resume, nil
}

func (s *resumeService) DeleteResume(ctx context.Context, id uint) error {
	resume, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrResumeNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrResumeNotFound
		}
		return err
	}

	// Best effort; an orphaned object is harmless.
	if resume.FilePath != "" {
		_ = s.store.Remove(ctx, resume.FilePath)
	}
	return nil
}

func (s *resumeService) DownloadURL(ctx context.Context, id uint) (string, error) {
	resume, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrResumeNotFound
		}
		return "", err
	}
	return s.store.PresignedURL(ctx, resume.FilePath)
}

// SetDefault marks resumeID as the job seeker's default and unsets the rest.
// The scan-and-rewrite runs row by row without a transaction, so two
// concurrent calls for the same job seeker can interleave and leave zero or
// several defaults. Sequential calls always leave exactly one.
func (s *resumeService) SetDefault(ctx context.Context, jobSeekerID uuid.UUID, resumeID uint) error {
	resumes, err := s.repo.ListByJobSeeker(ctx, jobSeekerID)
	if err != nil {
		return fmt.Errorf("list resumes: %w", err)
	}

	found := false
	for i := range resumes {
		if resumes[i].ID == resumeID {
			found = true
			break
		}
	}
	if !found {
		return apperrors.ErrResumeNotFound
	}

	for i := range resumes {
		want := resumes[i].ID == resumeID
		if resumes[i].IsDefault == want {
			continue
		}
		resumes[i].IsDefault = want
		resumes[i].UpdatedAt = time.Now()
		if err := s.repo.Update(ctx, &resumes[i]); err != nil {
			return fmt.Errorf("update resume %d: %w", resumes[i].ID, err)
		}
	}
	return nil
}
