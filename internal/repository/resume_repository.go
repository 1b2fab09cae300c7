package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard/internal/model"
)

// ResumeRepository defines resume persistence operations.
type ResumeRepository interface {
	Create(ctx context.Context, resume *model.Resume) error
	Update(ctx context.Context, resume *model.Resume) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Resume, error)
	List(ctx context.Context) ([]model.Resume, error)
	ListByJobSeeker(ctx context.Context, jobSeekerID uuid.UUID) ([]model.Resume, error)
	Count(ctx context.Context) (int64, error)
}

type resumeRepository struct {
	db *gorm.DB
}

// NewResumeRepository builds a GORM-backed repository.
func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

func (r *resumeRepository) Create(ctx context.Context, resume *model.Resume) error {
	return r.db.WithContext(ctx).Create(resume).Error
}

func (r *resumeRepository) Update(ctx context.Context, resume *model.Resume) error {
	return r.db.WithContext(ctx).Save(resume).Error
}

func (r *resumeRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Resume{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *resumeRepository) FindByID(ctx context.Context, id uint) (*model.Resume, error) {
	var resume model.Resume
	if err := r.db.WithContext(ctx).First(&resume, id).Error; err != nil {
		return nil, err
	}
	return &resume, nil
}

func (r *resumeRepository) List(ctx context.Context) ([]model.Resume, error) {
	var resumes []model.Resume
	if err := r.db.WithContext(ctx).Find(&resumes).Error; err != nil {
		return nil, err
	}
	return resumes, nil
}

func (r *resumeRepository) ListByJobSeeker(ctx context.Context, jobSeekerID uuid.UUID) ([]model.Resume, error) {
	var resumes []model.Resume
	if err := r.db.WithContext(ctx).
		Where("job_seeker_id = ?", jobSeekerID).
		Find(&resumes).Error; err != nil {
		return nil, err
	}
	return resumes, nil
}

func (r *resumeRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Resume{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
