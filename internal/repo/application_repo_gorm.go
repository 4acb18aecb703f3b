package repo

import (
	"context"

	"gorm.io/gorm"

	"go-jobportal-api/internal/domain"
)

type ApplicationRepo struct{ db *gorm.DB }

func NewApplicationRepo(db *gorm.DB) *ApplicationRepo { return &ApplicationRepo{db: db} }

// Create inserts the application. A concurrent duplicate that slipped past
// the handler pre-check lands on the (job_id, applicant_id) unique index;
// callers detect that with IsDuplicateKey.
func (r *ApplicationRepo) Create(ctx context.Context, a *domain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepo) Exists(ctx context.Context, jobID, applicantID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Application{}).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		Limit(1).
		Count(&n).Error
	return n > 0, err
}

func (r *ApplicationRepo) ByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error) {
	apps := make([]domain.Application, 0)
	err := r.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Order("applied_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepo) ByJob(ctx context.Context, jobID string) ([]domain.Application, error) {
	apps := make([]domain.Application, 0)
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("applied_at DESC").
		Find(&apps).Error
	return apps, err
}

// CountByApplicant counts the applicant's applications, optionally
// restricted to one status ("" counts all).
func (r *ApplicationRepo) CountByApplicant(ctx context.Context, applicantID, status string) (int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Application{}).
		Where("applicant_id = ?", applicantID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

func (r *ApplicationRepo) CountByJobIDs(ctx context.Context, jobIDs []string) (int64, error) {
	if len(jobIDs) == 0 {
		return 0, nil
	}
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Application{}).
		Where("job_id IN ?", jobIDs).
		Count(&n).Error
	return n, err
}
