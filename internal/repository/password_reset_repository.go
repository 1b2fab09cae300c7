package repository

import (
	"context"

	"gorm.io/gorm"

	"jobboard/internal/model"
)

// PasswordResetRepository defines reset-record persistence operations.
type PasswordResetRepository interface {
	Create(ctx context.Context, reset *model.PasswordReset) error
	Update(ctx context.Context, reset *model.PasswordReset) error
	FindByTokenHash(ctx context.Context, tokenHash string) (*model.PasswordReset, error)
}

type passwordResetRepository struct {
	db *gorm.DB
}

// NewPasswordResetRepository builds a GORM-backed repository.
func NewPasswordResetRepository(db *gorm.DB) PasswordResetRepository {
	return &passwordResetRepository{db: db}
}

func (r *passwordResetRepository) Create(ctx context.Context, reset *model.PasswordReset) error {
	return r.db.WithContext(ctx).Create(reset).Error
}

func (r *passwordResetRepository) Update(ctx context.Context, reset *model.PasswordReset) error {
	return r.db.WithContext(ctx).Save(reset).Error
}

func (r *passwordResetRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*model.PasswordReset, error) {
	var reset model.PasswordReset
	if err := r.db.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&reset).Error; err != nil {
		return nil, err
	}
	return &reset, nil
}
