package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"jobboard/internal/auth"
	apperrors "jobboard/internal/errors"
	"jobboard/internal/mail"
	"jobboard/internal/model"
	"jobboard/internal/repository"
)

const (
	bcryptCost = 10

	// resetTokenTTL is the validity window of a password-reset token.
	resetTokenTTL = 30 * time.Minute
)

// ErrInvalidRefreshToken is returned when refresh token is invalid or expired.
var ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")

// RegisterInput carries the fields needed to create an account and its
// role-matching profile row.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     model.Role

	// Employer profile fields, used when Role is employer.
	CompanyName string
	ContactInfo string
	Position    string

	// Job seeker profile fields, used when Role is jobseeker.
	EducationDetails string
	Skills           string
	College          string
	WorkStatus       string
	Experience       int
}

// AuthService handles authentication operations.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*model.User, error)
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, user *model.User, err error)
	RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPasswordWithToken(ctx context.Context, token, newPassword string) error
}

type authService struct {
	userRepo      repository.UserRepository
	employerRepo  repository.EmployerRepository
	jobSeekerRepo repository.JobSeekerRepository
	resetRepo     repository.PasswordResetRepository
	jwtService    *auth.JWTService
	tokenStore    auth.TokenStoreInterface
	mailer        mail.Mailer
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	userRepo repository.UserRepository,
	employerRepo repository.EmployerRepository,
	jobSeekerRepo repository.JobSeekerRepository,
	resetRepo repository.PasswordResetRepository,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
	mailer mail.Mailer,
) AuthService {
	return &authService{
		userRepo:      userRepo,
		employerRepo:  employerRepo,
		jobSeekerRepo: jobSeekerRepo,
		resetRepo:     resetRepo,
		jwtService:    jwtService,
		tokenStore:    tokenStore,
		mailer:        mailer,
	}
}

// Register creates a new user with hashed password plus the profile row
// matching the requested role.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if !in.Role.Valid() {
		return nil, apperrors.ErrInvalidRole
	}

	existing, err := s.userRepo.FindByEmail(ctx, in.Email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrDuplicateEmail
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hashedPassword),
		Role:         in.Role,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	switch in.Role {
	case model.RoleEmployer:
		employer := &model.Employer{
			CompanyName: in.CompanyName,
			ContactInfo: in.ContactInfo,
			Position:    in.Position,
			UserID:      user.ID,
		}
		if err := s.employerRepo.Create(ctx, employer); err != nil {
			return nil, fmt.Errorf("create employer profile: %w", err)
		}
		user.Employer = employer
	case model.RoleJobSeeker:
		seeker := &model.JobSeeker{
			EducationDetails: in.EducationDetails,
			Skills:           in.Skills,
			College:          in.College,
			WorkStatus:       in.WorkStatus,
			Experience:       in.Experience,
			UserID:           user.ID,
		}
		if err := s.jobSeekerRepo.Create(ctx, seeker); err != nil {
			return nil, fmt.Errorf("create job seeker profile: %w", err)
		}
		user.JobSeeker = seeker
	}

	return user, nil
}

// Login authenticates a user and returns access and refresh tokens. Unknown
// email and wrong password both map to ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, email, password string) (string, string, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", "", nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return "", "", nil, fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return "", "", nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, user.ID, user.Email, string(user.Role), auth.RefreshTokenExpiry); err != nil {
		return "", "", nil, fmt.Errorf("store refresh token: %w", err)
	}

	return accessToken, refreshToken, user, nil
}

// RefreshToken validates a refresh token and returns a new access token.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	storedUserID, storedEmail, storedRole, err := s.tokenStore.GetRefreshToken(ctx, tokenID)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	if storedUserID != claims.UserID || storedEmail != claims.Email || storedRole != claims.Role {
		return "", ErrInvalidRefreshToken
	}

	accessToken, err := s.jwtService.GenerateAccessToken(claims.UserID, claims.Email, claims.Role)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}

	return accessToken, nil
}

// Logout invalidates a refresh token.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return ErrInvalidRefreshToken
	}
	return s.tokenStore.DeleteRefreshToken(ctx, tokenID)
}

// RequestPasswordReset issues a reset token for the account behind email. An
// unknown email returns nil without creating a record, so callers cannot
// probe which addresses have accounts.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("find user: %w", err)
	}

	raw, hash, err := auth.GenerateResetToken()
	if err != nil {
		return err
	}

	reset := &model.PasswordReset{
		UserID:    user.ID,
		TokenHash: hash,
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := s.resetRepo.Create(ctx, reset); err != nil {
		return fmt.Errorf("create reset record: %w", err)
	}

	body := fmt.Sprintf("Hello %s,\n\nUse this token to reset your password: %s\n\nIt expires in %d minutes.",
		user.Name, raw, int(resetTokenTTL.Minutes()))
	if err := s.mailer.Send(user.Email, "Password reset", body); err != nil {
		// Best effort. The record exists; the user can request again.
		log.Printf("password reset mail to %s failed: %v", user.Email, err)
	}
	return nil
}

// ResetPasswordWithToken consumes a reset token and stores the new password.
func (s *authService) ResetPasswordWithToken(ctx context.Context, token, newPassword string) error {
	reset, err := s.resetRepo.FindByTokenHash(ctx, auth.HashResetToken(token))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvalidResetToken
		}
		return fmt.Errorf("find reset record: %w", err)
	}
	if reset.Used {
		return apperrors.ErrInvalidResetToken
	}
	if time.Now().After(reset.ExpiresAt) {
		return apperrors.ErrResetTokenExpired
	}

	user, err := s.userRepo.FindByID(ctx, reset.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hashedPassword)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	reset.Used = true
	if err := s.resetRepo.Update(ctx, reset); err != nil {
		return fmt.Errorf("mark reset used: %w", err)
	}
	return nil
}
