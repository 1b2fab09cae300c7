package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a message addressed to a user. SentEmail records whether the
// best-effort email delivery succeeded; it is never retried automatically.
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index"`
	Subject   string    `json:"subject" gorm:"size:255"`
	Message   string    `json:"message" gorm:"size:2000;not null"`
	IsRead    bool      `json:"is_read" gorm:"default:false;index"`
	SentEmail bool      `json:"sent_email" gorm:"default:false;index"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User *User `json:"-" gorm:"foreignKey:UserID"`
}
