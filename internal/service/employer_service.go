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

// EmployerUpdateInput carries the mutable employer profile fields.
type EmployerUpdateInput struct {
	CompanyName string
	ContactInfo string
	Position    string
}

// EmployerService exposes employer profile operations.
type EmployerService interface {
	GetEmployer(ctx context.Context, id uuid.UUID) (*model.Employer, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Employer, error)
	ListEmployers(ctx context.Context) ([]model.Employer, error)
	CreateEmployer(ctx context.Context, userID uuid.UUID, in EmployerUpdateInput) (*model.Employer, error)
	UpdateEmployer(ctx context.Context, id uuid.UUID, in EmployerUpdateInput) (*model.Employer, error)
	DeleteEmployer(ctx context.Context, id uuid.UUID) error
	SearchByCompanyName(ctx context.Context, q string) ([]model.Employer, error)
}

type employerService struct {
	repo     repository.EmployerRepository
	userRepo repository.UserRepository
}

// NewEmployerService builds an EmployerService.
func NewEmployerService(repo repository.EmployerRepository, userRepo repository.UserRepository) EmployerService {
	return &employerService{repo: repo, userRepo: userRepo}
}

func (s *employerService) GetEmployer(ctx context.Context, id uuid.UUID) (*model.Employer, error) {
	employer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployerNotFound
		}
		return nil, err
	}
	return employer, nil
}

func (s *employerService) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Employer, error) {
	employer, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployerNotFound
		}
		return nil, err
	}
	return employer, nil
}

func (s *employerService) ListEmployers(ctx context.Context) ([]model.Employer, error) {
	return s.repo.List(ctx)
}

// CreateEmployer adds an employer profile for an existing user. The user must
// carry the employer role; one profile row per user.
func (s *employerService) CreateEmployer(ctx context.Context, userID uuid.UUID, in EmployerUpdateInput) (*model.Employer, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	if user.Role != model.RoleEmployer {
		return nil, apperrors.ErrRoleMismatch
	}

	employer := &model.Employer{
		CompanyName: in.CompanyName,
		ContactInfo: in.ContactInfo,
		Position:    in.Position,
		UserID:      userID,
	}
	if err := s.repo.Create(ctx, employer); err != nil {
		return nil, fmt.Errorf("create employer: %w", err)
	}
	return employer, nil
}

func (s *employerService) UpdateEmployer(ctx context.Context, id uuid.UUID, in EmployerUpdateInput) (*model.Employer, error) {
	employer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployerNotFound
		}
		return nil, err
	}

	employer.CompanyName = in.CompanyName
	employer.ContactInfo = in.ContactInfo
	employer.Position = in.Position

	if err := s.repo.Update(ctx, employer); err != nil {
		return nil, fmt.Errorf("update employer: %w", err)
	}
	return employer, nil
}

func (s *employerService) DeleteEmployer(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEmployerNotFound
		}
		return err
	}
	return nil
}

func (s *employerService) SearchByCompanyName(ctx context.Context, q string) ([]model.Employer, error) {
	return s.repo.SearchByCompanyName(ctx, q)
}
