package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/atelierhq/atelier/internal/db/models"
)

// JobRepository provides access to job-related database operations
type JobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository instance
func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create inserts a new job.
func (r *JobRepository) Create(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// GetByID retrieves a job with its client and job type. Returns nil when no
// job exists with the given id.
func (r *JobRepository) GetByID(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).
		Preload("Client").Preload("JobType").
		First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &job, nil
}

// List returns all jobs, newest first.
func (r *JobRepository) List(ctx context.Context, opts *models.ListOptions) ([]models.Job, error) {
	var jobs []models.Job
	err := scopeList(r.db.WithContext(ctx), opts).
		Preload("Client").Preload("JobType").
		Order(models.CreatedAtField + " DESC").
		Find(&jobs).Error
	return jobs, err
}

// ListByClient returns the jobs owned by a client, newest first.
func (r *JobRepository) ListByClient(ctx context.Context, clientID uint) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Preload("Client").Preload("JobType").
		Where("client_id = ?", clientID).
		Order(models.CreatedAtField + " DESC").
		Find(&jobs).Error
	return jobs, err
}

// ListByStatus returns the jobs in the given status, newest first.
func (r *JobRepository) ListByStatus(ctx context.Context, status models.Status) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Preload("Client").Preload("JobType").
		Where("status = ?", status).
		Order(models.CreatedAtField + " DESC").
		Find(&jobs).Error
	return jobs, err
}

// UpdateFields applies a partial update to the given job row.
func (r *JobRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Job{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return false, fmt.Errorf("failed to update job: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Delete removes a job row, reporting whether one was removed.
func (r *JobRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Job{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete job: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Search finds jobs whose title, description or client name contains the
// term, case-insensitively.
func (r *JobRepository) Search(ctx context.Context, term string) ([]models.Job, error) {
	var jobs []models.Job
	pattern := likePattern(term)
	err := r.db.WithContext(ctx).
		Preload("Client").Preload("JobType").
		Joins("LEFT JOIN clients ON clients.id = jobs.client_id").
		Where("LOWER(jobs.title) LIKE ? OR LOWER(jobs.description) LIKE ? OR LOWER(clients.name) LIKE ?",
			pattern, pattern, pattern).
		Order("jobs." + models.CreatedAtField + " DESC").
		Find(&jobs).Error
	return jobs, err
}

// Count returns the number of jobs, optionally filtered by status.
func (r *JobRepository) Count(ctx context.Context, status *models.Status) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.Job{})
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	err := q.Count(&count).Error
	return count, err
}

// CountByJobType returns the number of jobs referencing a job type.
func (r *JobRepository) CountByJobType(ctx context.Context, jobTypeID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("job_type_id = ?", jobTypeID).
		Count(&count).Error
	return count, err
}

// TopPriced returns up to limit jobs ordered by price descending.
func (r *JobRepository) TopPriced(ctx context.Context, limit int) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Preload("Client").
		Order("price DESC").
		Limit(limit).
		Find(&jobs).Error
	return jobs, err
}
