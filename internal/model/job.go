package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JobStatus is the conventional lifecycle value of a posting. The field is
// free text on purpose: any value can be written through Update.
type JobStatus = string

const (
	JobStatusOpen   JobStatus = "Open"
	JobStatusClosed JobStatus = "Closed"
	JobStatusOnHold JobStatus = "OnHold"
)

// Job is a posting published by an employer.
type Job struct {
	ID                  uint            `json:"id" gorm:"primaryKey"`
	Title               string          `json:"title" gorm:"size:255;not null;index"`
	Description         string          `json:"description" gorm:"size:4000"`
	Location            string          `json:"location" gorm:"size:255;index"`
	Salary              decimal.Decimal `json:"salary" gorm:"type:decimal(20,2)"`
	SkillsRequired      string          `json:"skills_required" gorm:"size:1000"`
	EligibilityCriteria string          `json:"eligibility_criteria" gorm:"size:1000"`
	Status              JobStatus       `json:"status" gorm:"size:50;default:'Open';index"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	EmployerID          uuid.UUID       `json:"employer_id" gorm:"type:char(36);not null;index"`

	// Relations
	Employer     *Employer     `json:"employer,omitempty" gorm:"foreignKey:EmployerID"`
	Applications []Application `json:"applications,omitempty" gorm:"foreignKey:JobID"`
}
