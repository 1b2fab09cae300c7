package model

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus values conventionally cycle Applied -> Shortlisted/Reviewed
// -> Interview -> Accepted/Rejected, but no transition rules are enforced.
type ApplicationStatus = string

const (
	ApplicationStatusApplied     ApplicationStatus = "Applied"
	ApplicationStatusShortlisted ApplicationStatus = "Shortlisted"
	ApplicationStatusReviewed    ApplicationStatus = "Reviewed"
	ApplicationStatusInterview   ApplicationStatus = "Interview"
	ApplicationStatusAccepted    ApplicationStatus = "Accepted"
	ApplicationStatusRejected    ApplicationStatus = "Rejected"
)

// Application ties a job seeker and one of their resumes to a job posting.
type Application struct {
	ID               uint              `json:"id" gorm:"primaryKey"`
	JobID            uint              `json:"job_id" gorm:"not null;index"`
	JobSeekerID      uuid.UUID         `json:"job_seeker_id" gorm:"type:char(36);not null;index"`
	ResumeID         uint              `json:"resume_id" gorm:"not null;index"`
	CoverLetter      string            `json:"cover_letter" gorm:"size:4000"`
	Status           ApplicationStatus `json:"status" gorm:"size:50;default:'Applied';index"`
	AppliedAt        time.Time         `json:"applied_at"`
	ReviewedAt       *time.Time        `json:"reviewed_at,omitempty"`
	Notes            string            `json:"notes" gorm:"size:2000"`
	IsShortlisted    bool              `json:"is_shortlisted" gorm:"default:false"`
	InterviewDate    *time.Time        `json:"interview_date,omitempty"`
	EmployerFeedback string            `json:"employer_feedback" gorm:"size:2000"`
	UpdatedAt        time.Time         `json:"updated_at"`

	// Relations
	Job       *Job       `json:"job,omitempty" gorm:"foreignKey:JobID"`
	JobSeeker *JobSeeker `json:"job_seeker,omitempty" gorm:"foreignKey:JobSeekerID"`
	Resume    *Resume    `json:"resume,omitempty" gorm:"foreignKey:ResumeID"`
}
