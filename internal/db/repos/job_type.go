package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/atelierhq/atelier/internal/db/models"
)

// JobTypeRepository provides access to job-type-related database operations
type JobTypeRepository struct {
	db *gorm.DB
}

// NewJobTypeRepository creates a new job type repository instance
func NewJobTypeRepository(db *gorm.DB) *JobTypeRepository {
	return &JobTypeRepository{db: db}
}

// Create inserts a new job type.
func (r *JobTypeRepository) Create(ctx context.Context, jobType *models.JobType) error {
	return r.db.WithContext(ctx).Create(jobType).Error
}

// GetByID retrieves a job type. Returns nil when no job type exists with
// the given id.
func (r *JobTypeRepository) GetByID(ctx context.Context, id uint) (*models.JobType, error) {
	var jobType models.JobType
	err := r.db.WithContext(ctx).First(&jobType, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job type: %w", err)
	}
	return &jobType, nil
}

// List returns all job types ordered by name.
func (r *JobTypeRepository) List(ctx context.Context) ([]models.JobType, error) {
	var jobTypes []models.JobType
	err := r.db.WithContext(ctx).
		Order(models.NameField + " ASC").
		Find(&jobTypes).Error
	return jobTypes, err
}

// UpdateFields applies a partial update to the given job type row.
func (r *JobTypeRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.JobType{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return false, fmt.Errorf("failed to update job type: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Delete removes a job type row, reporting whether one was removed. The
// referential guard against in-use job types lives in the service layer.
func (r *JobTypeRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.JobType{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete job type: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Search finds job types whose name or description contains the term,
// case-insensitively.
func (r *JobTypeRepository) Search(ctx context.Context, term string) ([]models.JobType, error) {
	var jobTypes []models.JobType
	pattern := likePattern(term)
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Order(models.NameField + " ASC").
		Find(&jobTypes).Error
	return jobTypes, err
}
