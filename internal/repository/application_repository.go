package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard/internal/model"
)

// ApplicationRepository defines application persistence operations.
type ApplicationRepository interface {
	Create(ctx context.Context, app *model.Application) error
	Update(ctx context.Context, app *model.Application) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Application, error)
	List(ctx context.Context) ([]model.Application, error)
	ListByJob(ctx context.Context, jobID uint) ([]model.Application, error)
	ListByJobSeeker(ctx context.Context, jobSeekerID uuid.UUID) ([]model.Application, error)
	ListByStatus(ctx context.Context, status string) ([]model.Application, error)
	Count(ctx context.Context) (int64, error)
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository builds a GORM-backed repository.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, app *model.Application) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *applicationRepository) Update(ctx context.Context, app *model.Application) error {
	return r.db.WithContext(ctx).Save(app).Error
}

func (r *applicationRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Application{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *applicationRepository) FindByID(ctx context.Context, id uint) (*model.Application, error) {
	var app model.Application
	if err := r.db.WithContext(ctx).
		Preload("Job").Preload("Resume").
		First(&app, id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) List(ctx context.Context) ([]model.Application, error) {
	var apps []model.Application
	if err := r.db.WithContext(ctx).Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID uint) ([]model.Application, error) {
	var apps []model.Application
	if err := r.db.WithContext(ctx).
		Preload("Resume").
		Where("job_id = ?", jobID).
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *applicationRepository) ListByJobSeeker(ctx context.Context, jobSeekerID uuid.UUID) ([]model.Application, error) {
	var apps []model.Application
	if err := r.db.WithContext(ctx).
		Preload("Job").
		Where("job_seeker_id = ?", jobSeekerID).
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *applicationRepository) ListByStatus(ctx context.Context, status string) ([]model.Application, error) {
	var apps []model.Application
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *applicationRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Application{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
