package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard/internal/model"
)

// JobRepository defines job posting persistence operations.
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	Update(ctx context.Context, job *model.Job) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Job, error)
	List(ctx context.Context) ([]model.Job, error)
	ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]model.Job, error)
	ListByStatus(ctx context.Context, status string) ([]model.Job, error)
	SearchByTitle(ctx context.Context, q string) ([]model.Job, error)
	SearchByLocation(ctx context.Context, q string) ([]model.Job, error)
	SearchBySkill(ctx context.Context, q string) ([]model.Job, error)
	Count(ctx context.Context) (int64, error)
}

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository builds a GORM-backed repository.
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *jobRepository) Update(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *jobRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Job{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *jobRepository) FindByID(ctx context.Context, id uint) (*model.Job, error) {
	var job model.Job
	if err := r.db.WithContext(ctx).Preload("Employer").First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) List(ctx context.Context) ([]model.Job, error) {
	var jobs []model.Job
	if err := r.db.WithContext(ctx).Preload("Employer").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]model.Job, error) {
	var jobs []model.Job
	if err := r.db.WithContext(ctx).
		Where("employer_id = ?", employerID).
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) ListByStatus(ctx context.Context, status string) ([]model.Job, error) {
	var jobs []model.Job
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) SearchByTitle(ctx context.Context, q string) ([]model.Job, error) {
	return r.search(ctx, "title LIKE ?", q)
}

func (r *jobRepository) SearchByLocation(ctx context.Context, q string) ([]model.Job, error) {
	return r.search(ctx, "location LIKE ?", q)
}

func (r *jobRepository) SearchBySkill(ctx context.Context, q string) ([]model.Job, error) {
	return r.search(ctx, "skills_required LIKE ?", q)
}

// search runs a single-column substring match, database-natural order.
func (r *jobRepository) search(ctx context.Context, cond, q string) ([]model.Job, error) {
	var jobs []model.Job
	if err := r.db.WithContext(ctx).
		Where(cond, "%"+q+"%").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Job{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
