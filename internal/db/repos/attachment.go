package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/atelierhq/atelier/internal/db/models"
)

// AttachmentRepository provides access to attachment-related database
// operations. Physical file handling lives in the service layer.
type AttachmentRepository struct {
	db *gorm.DB
}

// NewAttachmentRepository creates a new attachment repository instance
func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

// Create inserts a new attachment record.
func (r *AttachmentRepository) Create(ctx context.Context, attachment *models.Attachment) error {
	return r.db.WithContext(ctx).Create(attachment).Error
}

// GetByID retrieves an attachment with its job. Returns nil when no
// attachment exists with the given id.
func (r *AttachmentRepository) GetByID(ctx context.Context, id uint) (*models.Attachment, error) {
	var attachment models.Attachment
	err := r.db.WithContext(ctx).Preload("Job").First(&attachment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attachment: %w", err)
	}
	return &attachment, nil
}

// List returns all attachment records, newest first.
func (r *AttachmentRepository) List(ctx context.Context) ([]models.Attachment, error) {
	var attachments []models.Attachment
	err := r.db.WithContext(ctx).
		Preload("Job").
		Order(models.CreatedAtField + " DESC").
		Find(&attachments).Error
	return attachments, err
}

// ListByJob returns the attachments linked to a job.
func (r *AttachmentRepository) ListByJob(ctx context.Context, jobID uint) ([]models.Attachment, error) {
	var attachments []models.Attachment
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Find(&attachments).Error
	return attachments, err
}

// ListByPayment returns the attachments linked to a payment.
func (r *AttachmentRepository) ListByPayment(ctx context.Context, paymentID uint) ([]models.Attachment, error) {
	var attachments []models.Attachment
	err := r.db.WithContext(ctx).
		Where("payment_id = ?", paymentID).
		Find(&attachments).Error
	return attachments, err
}

// Delete removes an attachment row, reporting whether one was removed.
func (r *AttachmentRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Attachment{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete attachment: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
