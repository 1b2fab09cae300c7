package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "jobboard/internal/errors"
	"jobboard/internal/mail"
	"jobboard/internal/model"
	"jobboard/internal/repository"
)

// NotificationService exposes notification operations.
type NotificationService interface {
	Create(ctx context.Context, userID uuid.UUID, subject, message string, sendEmail bool) (*model.Notification, error)
	GetNotification(ctx context.Context, id uint) (*model.Notification, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Notification, error)
	ListUnsentEmail(ctx context.Context) ([]model.Notification, error)
	MarkRead(ctx context.Context, id uint) (*model.Notification, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	Delete(ctx context.Context, id uint) error
}

type notificationService struct {
	repo     repository.NotificationRepository
	userRepo repository.UserRepository
	mailer   mail.Mailer
}

// NewNotificationService builds a NotificationService.
func NewNotificationService(repo repository.NotificationRepository, userRepo repository.UserRepository, mailer mail.Mailer) NotificationService {
	return &notificationService{repo: repo, userRepo: userRepo, mailer: mailer}
}

// Create persists the notification, then attempts a synchronous email when
// requested. A failed send leaves SentEmail false and never fails the create;
// ListUnsentEmail exposes such rows to an external retry job.
func (s *notificationService) Create(ctx context.Context, userID uuid.UUID, subject, message string, sendEmail bool) (*model.Notification, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	n := &model.Notification{
		UserID:  userID,
		Subject: subject,
		Message: message,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}

	if sendEmail {
		if err := s.mailer.Send(user.Email, subject, message); err != nil {
			log.Printf("notification %d: email to %s failed: %v", n.ID, user.Email, err)
		} else {
			n.SentEmail = true
			if err := s.repo.Update(ctx, n); err != nil {
				log.Printf("notification %d: mark sent failed: %v", n.ID, err)
			}
		}
	}

	return n, nil
}

func (s *notificationService) GetNotification(ctx context.Context, id uint) (*model.Notification, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, err
	}
	return n, nil
}

func (s *notificationService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *notificationService) ListUnsentEmail(ctx context.Context) ([]model.Notification, error) {
	return s.repo.ListUnsentEmail(ctx)
}

func (s *notificationService) MarkRead(ctx context.Context, id uint) (*model.Notification, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, err
	}

	n.IsRead = true
	if err := s.repo.Update(ctx, n); err != nil {
		return nil, fmt.Errorf("mark read: %w", err)
	}
	return n, nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *notificationService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return err
	}
	return nil
}
