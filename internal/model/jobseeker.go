package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobSeeker is the candidate-side profile attached to a user with the jobseeker role.
type JobSeeker struct {
	ID               uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	EducationDetails string    `json:"education_details" gorm:"size:1000"`
	Skills           string    `json:"skills" gorm:"size:1000;index"`
	College          string    `json:"college" gorm:"size:255;index"`
	WorkStatus       string    `json:"work_status" gorm:"size:50"`
	Experience       int       `json:"experience"` // years
	UserID           uuid.UUID `json:"user_id" gorm:"type:char(36);not null;uniqueIndex"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Relations
	User         *User         `json:"-" gorm:"foreignKey:UserID"`
	Resumes      []Resume      `json:"resumes,omitempty" gorm:"foreignKey:JobSeekerID"`
	Applications []Application `json:"applications,omitempty" gorm:"foreignKey:JobSeekerID"`
}

// BeforeCreate sets UUID before creating the record.
func (j *JobSeeker) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}
