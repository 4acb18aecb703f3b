package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"go-jobportal-api/internal/domain"
)

type JobRepo struct{ db *gorm.DB }

func NewJobRepo(db *gorm.DB) *JobRepo { return &JobRepo{db: db} }

func (r *JobRepo) Create(ctx context.Context, j *domain.Job) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *JobRepo) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	var j domain.Job
	err := r.db.WithContext(ctx).First(&j, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// List returns the public page of active jobs. LOWER(...) LIKE keeps the
// substring matches case-insensitive on every supported driver.
func (r *JobRepo) List(ctx context.Context, f domain.JobFilter) ([]domain.Job, error) {
	q := r.db.WithContext(ctx).Model(&domain.Job{}).Where("status = ?", domain.JobStatusActive)

	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(company) LIKE ? OR LOWER(description) LIKE ?", like, like, like)
	}
	if l := strings.TrimSpace(f.Location); l != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(l)+"%")
	}
	if f.JobType != "" {
		q = q.Where("job_type = ?", f.JobType)
	}

	jobs := make([]domain.Job, 0, f.Limit)
	err := q.Order("posted_at DESC").Offset(f.Skip).Limit(f.Limit).Find(&jobs).Error
	return jobs, err
}

func (r *JobRepo) ByEmployer(ctx context.Context, employerID string) ([]domain.Job, error) {
	jobs := make([]domain.Job, 0)
	err := r.db.WithContext(ctx).
		Where("employer_id = ?", employerID).
		Order("posted_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepo) IDsByEmployer(ctx context.Context, employerID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&domain.Job{}).
		Where("employer_id = ?", employerID).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *JobRepo) CountByEmployer(ctx context.Context, employerID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Job{}).
		Where("employer_id = ?", employerID).
		Count(&n).Error
	return n, err
}

func (r *JobRepo) CountActiveByEmployer(ctx context.Context, employerID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Job{}).
		Where("employer_id = ? AND status = ?", employerID, domain.JobStatusActive).
		Count(&n).Error
	return n, err
}
