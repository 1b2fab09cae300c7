package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard/internal/model"
)

// EmployerRepository defines employer persistence operations.
type EmployerRepository interface {
	Create(ctx context.Context, employer *model.Employer) error
	Update(ctx context.Context, employer *model.Employer) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Employer, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Employer, error)
	List(ctx context.Context) ([]model.Employer, error)
	SearchByCompanyName(ctx context.Context, q string) ([]model.Employer, error)
	Count(ctx context.Context) (int64, error)
}

type employerRepository struct {
	db *gorm.DB
}

// NewEmployerRepository builds a GORM-backed repository.
func NewEmployerRepository(db *gorm.DB) EmployerRepository {
	return &employerRepository{db: db}
}

func (r *employerRepository) Create(ctx context.Context, employer *model.Employer) error {
	return r.db.WithContext(ctx).Create(employer).Error
}

func (r *employerRepository) Update(ctx context.Context, employer *model.Employer) error {
	return r.db.WithContext(ctx).Save(employer).Error
}

func (r *employerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Employer{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *employerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Employer, error) {
	var employer model.Employer
	if err := r.db.WithContext(ctx).Preload("Jobs").
		Where("id = ?", id).First(&employer).Error; err != nil {
		return nil, err
	}
	return &employer, nil
}

func (r *employerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Employer, error) {
	var employer model.Employer
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&employer).Error; err != nil {
		return nil, err
	}
	return &employer, nil
}

func (r *employerRepository) List(ctx context.Context) ([]model.Employer, error) {
	var employers []model.Employer
	if err := r.db.WithContext(ctx).Find(&employers).Error; err != nil {
		return nil, err
	}
	return employers, nil
}

func (r *employerRepository) SearchByCompanyName(ctx context.Context, q string) ([]model.Employer, error) {
	var employers []model.Employer
	if err := r.db.WithContext(ctx).
		Where("company_name LIKE ?", "%"+q+"%").
		Find(&employers).Error; err != nil {
		return nil, err
	}
	return employers, nil
}

func (r *employerRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Employer{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
