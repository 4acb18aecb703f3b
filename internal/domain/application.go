package domain

import (
	"context"
	"time"
)

const (
	ApplicationStatusPending     = "pending"
	ApplicationStatusReviewed    = "reviewed"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusRejected    = "rejected"
	ApplicationStatusHired       = "hired"
)

// Application records one candidate applying to one job. The composite
// unique index is the real duplicate guard: the handler-level pre-check can
// race with a concurrent identical request, the constraint cannot.
type Application struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	JobID       string    `gorm:"size:36;uniqueIndex:idx_job_applicant;index" json:"job_id"`
	ApplicantID string    `gorm:"size:36;uniqueIndex:idx_job_applicant;index" json:"applicant_id"`
	CoverLetter *string   `json:"cover_letter"`
	Status      string    `gorm:"size:16;index" json:"status"` // pending/reviewed/shortlisted/rejected/hired
	AppliedAt   time.Time `json:"applied_at"`
	Notes       *string   `json:"notes,omitempty"`
}

func (Application) TableName() string { return "applications" }

type ApplicationRepository interface {
	Create(ctx context.Context, a *Application) error
	Exists(ctx context.Context, jobID, applicantID string) (bool, error)
	ByApplicant(ctx context.Context, applicantID string) ([]Application, error)
	ByJob(ctx context.Context, jobID string) ([]Application, error)
	CountByApplicant(ctx context.Context, applicantID, status string) (int64, error)
	CountByJobIDs(ctx context.Context, jobIDs []string) (int64, error)
}
