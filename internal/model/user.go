package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role determines which profile row a user may own and which routes it may call.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleEmployer  Role = "employer"
	RoleJobSeeker Role = "jobseeker"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEmployer, RoleJobSeeker:
		return true
	}
	return false
}

// User represents an account on the job board.
type User struct {
	ID            uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Name          string     `json:"name" gorm:"size:255;not null;index"`
	Email         string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash  string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role          Role       `json:"role" gorm:"type:varchar(20);not null;index"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty"`
	Gender        string     `json:"gender,omitempty" gorm:"size:20"`
	Address       string     `json:"address,omitempty" gorm:"size:500"`
	IsActive      bool       `json:"is_active" gorm:"default:true;index"`
	DeactivatedAt *time.Time `json:"deactivated_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// Relations
	Employer      *Employer      `json:"employer,omitempty" gorm:"foreignKey:UserID"`
	JobSeeker     *JobSeeker     `json:"job_seeker,omitempty" gorm:"foreignKey:UserID"`
	Notifications []Notification `json:"notifications,omitempty" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
