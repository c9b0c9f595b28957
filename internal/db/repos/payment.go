package repos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/atelierhq/atelier/internal/db/models"
)

// PaymentRepository provides access to payment-related database operations
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository instance
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create inserts a new payment.
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// GetByID retrieves a payment with its job and attachments. Returns nil
// when no payment exists with the given id.
func (r *PaymentRepository) GetByID(ctx context.Context, id uint) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).
		Preload("Job").Preload("Attachments").
		First(&payment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &payment, nil
}

// List returns all payments, newest first.
func (r *PaymentRepository) List(ctx context.Context, opts *models.ListOptions) ([]models.Payment, error) {
	var payments []models.Payment
	err := scopeList(r.db.WithContext(ctx), opts).
		Preload("Job").Preload("Attachments").
		Order(models.CreatedAtField + " DESC").
		Find(&payments).Error
	return payments, err
}

// ListByJob returns the payments recorded against a job, newest first.
func (r *PaymentRepository) ListByJob(ctx context.Context, jobID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.WithContext(ctx).
		Preload("Job").Preload("Attachments").
		Where("job_id = ?", jobID).
		Order(models.CreatedAtField + " DESC").
		Find(&payments).Error
	return payments, err
}

// ListByCreatedRange returns payments whose creation timestamp falls in
// [start, end], newest first.
func (r *PaymentRepository) ListByCreatedRange(ctx context.Context, start, end time.Time) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.WithContext(ctx).
		Preload("Job").Preload("Attachments").
		Where("created_at >= ? AND created_at <= ?", start, end).
		Order(models.CreatedAtField + " DESC").
		Find(&payments).Error
	return payments, err
}

// UpdateFields applies a partial update to the given payment row.
func (r *PaymentRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Payment{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return false, fmt.Errorf("failed to update payment: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Delete removes a payment row, reporting whether one was removed. Cascade
// deletion of attachments is the service's responsibility.
func (r *PaymentRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Payment{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete payment: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// TotalAmount returns the sum of all payment amounts.
func (r *PaymentRepository) TotalAmount(ctx context.Context) (float64, error) {
	var total *float64
	err := r.db.WithContext(ctx).Model(&models.Payment{}).
		Select("SUM(amount)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum payments: %w", err)
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

// Count returns the number of payments.
func (r *PaymentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Payment{}).Count(&count).Error
	return count, err
}
