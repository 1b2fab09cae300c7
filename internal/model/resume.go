package model

import (
	"time"

	"github.com/google/uuid"
)

// Resume is an uploaded CV. FilePath is the object key in the storage bucket,
// not a filesystem path.
type Resume struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	ResumeName   string    `json:"resume_name" gorm:"size:255;not null"`
	FilePath     string    `json:"file_path" gorm:"size:500"`
	FileType     string    `json:"file_type" gorm:"size:50"`
	ParsedSkills string    `json:"parsed_skills" gorm:"size:1000"`
	IsDefault    bool      `json:"is_default" gorm:"default:false;index"`
	UpdatedAt    time.Time `json:"updated_at"`
	CreatedAt    time.Time `json:"created_at"`
	JobSeekerID  uuid.UUID `json:"job_seeker_id" gorm:"type:char(36);not null;index"`

	// Relations
	JobSeeker *JobSeeker `json:"-" gorm:"foreignKey:JobSeekerID"`
}
