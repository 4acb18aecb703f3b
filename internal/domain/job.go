package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"
	JobStatusDraft  = "draft"
)

type Job struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	Title        string     `gorm:"size:191" json:"title"`
	Company      string     `gorm:"size:191" json:"company"`
	Location     string     `gorm:"size:191" json:"location"`
	JobType      string     `gorm:"size:32" json:"job_type"` // full-time/part-time/contract/remote
	SalaryRange  *string    `gorm:"size:64" json:"salary_range"`
	Description  string     `json:"description"`
	Requirements []string   `gorm:"serializer:json" json:"requirements"`
	Benefits     []string   `gorm:"serializer:json" json:"benefits"`
	EmployerID   string     `gorm:"index;size:36" json:"employer_id"`
	PostedAt     time.Time  `json:"posted_at"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	Status       string     `gorm:"size:16;index" json:"status"` // active/closed/draft
}

func (Job) TableName() string { return "jobs" }

func (j *Job) AfterFind(_ *gorm.DB) error {
	if j.Requirements == nil {
		j.Requirements = []string{}
	}
	if j.Benefits == nil {
		j.Benefits = []string{}
	}
	return nil
}

// JobFilter narrows the public job listing. Search and Location are
// case-insensitive substring matches, JobType is exact; the listing itself
// is always restricted to active jobs.
type JobFilter struct {
	Skip     int
	Limit    int
	Search   string
	Location string
	JobType  string
}

type JobRepository interface {
	Create(ctx context.Context, j *Job) error
	FindByID(ctx context.Context, id string) (*Job, error)
	List(ctx context.Context, f JobFilter) ([]Job, error)
	ByEmployer(ctx context.Context, employerID string) ([]Job, error)
	IDsByEmployer(ctx context.Context, employerID string) ([]string, error)
	CountByEmployer(ctx context.Context, employerID string) (int64, error)
	CountActiveByEmployer(ctx context.Context, employerID string) (int64, error)
}
