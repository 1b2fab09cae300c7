package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employer is the company-side profile attached to a user with the employer role.
type Employer struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	CompanyName string    `json:"company_name" gorm:"size:255;not null;index"`
	ContactInfo string    `json:"contact_info" gorm:"size:255"`
	Position    string    `json:"position" gorm:"size:100"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:char(36);not null;uniqueIndex"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	User *User `json:"-" gorm:"foreignKey:UserID"`
	Jobs []Job `json:"jobs,omitempty" gorm:"foreignKey:EmployerID"`
}

// BeforeCreate sets UUID before creating the record.
func (e *Employer) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
