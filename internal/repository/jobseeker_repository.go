package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard/internal/model"
)

// JobSeekerRepository defines job seeker persistence operations.
type JobSeekerRepository interface {
	Create(ctx context.Context, seeker *model.JobSeeker) error
	Update(ctx context.Context, seeker *model.JobSeeker) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.JobSeeker, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.JobSeeker, error)
	List(ctx context.Context) ([]model.JobSeeker, error)
	SearchByCollege(ctx context.Context, q string) ([]model.JobSeeker, error)
	SearchBySkill(ctx context.Context, q string) ([]model.JobSeeker, error)
	CountDependents(ctx context.Context, id uuid.UUID) (resumes int64, applications int64, err error)
	Count(ctx context.Context) (int64, error)
}

type jobSeekerRepository struct {
	db *gorm.DB
}

// NewJobSeekerRepository builds a GORM-backed repository.
func NewJobSeekerRepository(db *gorm.DB) JobSeekerRepository {
	return &jobSeekerRepository{db: db}
}

func (r *jobSeekerRepository) Create(ctx context.Context, seeker *model.JobSeeker) error {
	return r.db.WithContext(ctx).Create(seeker).Error
}

func (r *jobSeekerRepository) Update(ctx context.Context, seeker *model.JobSeeker) error {
	return r.db.WithContext(ctx).Save(seeker).Error
}

func (r *jobSeekerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.JobSeeker{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *jobSeekerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.JobSeeker, error) {
	var seeker model.JobSeeker
	if err := r.db.WithContext(ctx).Preload("Resumes").
		Where("id = ?", id).First(&seeker).Error; err != nil {
		return nil, err
	}
	return &seeker, nil
}

func (r *jobSeekerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.JobSeeker, error) {
	var seeker model.JobSeeker
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&seeker).Error; err != nil {
		return nil, err
	}
	return &seeker, nil
}

func (r *jobSeekerRepository) List(ctx context.Context) ([]model.JobSeeker, error) {
	var seekers []model.JobSeeker
	if err := r.db.WithContext(ctx).Find(&seekers).Error; err != nil {
		return nil, err
	}
	return seekers, nil
}

func (r *jobSeekerRepository) SearchByCollege(ctx context.Context, q string) ([]model.JobSeeker, error) {
	var seekers []model.JobSeeker
	if err := r.db.WithContext(ctx).
		Where("college LIKE ?", "%"+q+"%").
		Find(&seekers).Error; err != nil {
		return nil, err
	}
	return seekers, nil
}

func (r *jobSeekerRepository) SearchBySkill(ctx context.Context, q string) ([]model.JobSeeker, error) {
	var seekers []model.JobSeeker
	if err := r.db.WithContext(ctx).
		Where("skills LIKE ?", "%"+q+"%").
		Find(&seekers).Error; err != nil {
		return nil, err
	}
	return seekers, nil
}

// CountDependents counts resumes and applications still referencing the job
// seeker. Used as a soft guard before delete.
func (r *jobSeekerRepository) CountDependents(ctx context.Context, id uuid.UUID) (int64, int64, error) {
	var resumes, applications int64
	if err := r.db.WithContext(ctx).Model(&model.Resume{}).
		Where("job_seeker_id = ?", id).Count(&resumes).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.WithContext(ctx).Model(&model.Application{}).
		Where("job_seeker_id = ?", id).Count(&applications).Error; err != nil {
		return 0, 0, err
	}
	return resumes, applications, nil
}

func (r *jobSeekerRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.JobSeeker{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
