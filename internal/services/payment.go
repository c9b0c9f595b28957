package services

import (
	"context"
	"fmt"
	"time"

	"github.com/atelierhq/atelier/internal/db/models"
	"github.com/atelierhq/atelier/internal/db/repos"
	"github.com/atelierhq/atelier/internal/logger"
)

// PaymentService provides business logic for payment operations, including
// the attachment cascade on deletion.
type PaymentService struct {
	repo        *repos.PaymentRepository
	attachments *AttachmentService
}

// NewPaymentService creates a new payment service instance.
func NewPaymentService(repo *repos.PaymentRepository, attachments *AttachmentService) *PaymentService {
	return &PaymentService{repo: repo, attachments: attachments}
}

// PaymentCreate names the fields a caller may supply when recording a
// payment.
type PaymentCreate struct {
	Amount      float64 `json:"amount"`
	PaymentDate *string `json:"payment_date"`
	Description string  `json:"description"`
	JobID       *uint   `json:"job_id"`
}

// PaymentUpdate names the updatable scalar fields of a payment. Nil fields
// are left untouched; JobID reassigns the relation by id.
type PaymentUpdate struct {
	Amount      *float64 `json:"amount"`
	PaymentDate *string  `json:"payment_date"`
	Description *string  `json:"description"`
	JobID       *uint    `json:"job_id"`
}

// PaymentStats summarizes payment totals, overall and for the current
// calendar month.
type PaymentStats struct {
	TotalAmount   float64 `json:"totalAmount"`
	TotalCount    int64   `json:"totalCount"`
	MonthlyAmount float64 `json:"monthlyAmount"`
	MonthlyCount  int     `json:"monthlyCount"`
}

// Create records a payment. The amount must be positive; the payment date,
// when supplied, is canonicalized and a malformed one fails the call.
func (s *PaymentService) Create(ctx context.Context, in PaymentCreate) (*models.Payment, error) {
	if in.Amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive")
	}
	paymentDate, err := canonicalField(in.PaymentDate)
	if err != nil {
		return nil, err
	}
	payment := models.Payment{
		Amount:      in.Amount,
		PaymentDate: paymentDate,
		Description: in.Description,
		JobID:       in.JobID,
	}
	if err := s.repo.Create(ctx, &payment); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, payment.ID)
}

// GetAll returns all payments, newest first.
func (s *PaymentService) GetAll(ctx context.Context, opts *models.ListOptions) ([]models.Payment, error) {
	return s.repo.List(ctx, opts)
}

// GetByID returns a payment, or nil when it does not exist.
func (s *PaymentService) GetByID(ctx context.Context, id uint) (*models.Payment, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByJob returns a job's payments, newest first.
func (s *PaymentService) GetByJob(ctx context.Context, jobID uint) ([]models.Payment, error) {
	return s.repo.ListByJob(ctx, jobID)
}

// GetByDateRange returns the payments recorded in [start, end], newest
// first.
func (s *PaymentService) GetByDateRange(ctx context.Context, start, end time.Time) ([]models.Payment, error) {
	return s.repo.ListByCreatedRange(ctx, start, end)
}

// Update applies a partial update. Returns nil when the payment does not
// exist.
func (s *PaymentService) Update(ctx context.Context, id uint, in PaymentUpdate) (*models.Payment, error) {
	fields := map[string]interface{}{}
	if in.Amount != nil {
		if *in.Amount <= 0 {
			return nil, fmt.Errorf("payment amount must be positive")
		}
		fields["amount"] = *in.Amount
	}
	if in.PaymentDate != nil {
		canonical, err := canonicalField(in.PaymentDate)
		if err != nil {
			return nil, err
		}
		fields["payment_date"] = canonical
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.JobID != nil {
		fields["job_id"] = *in.JobID
	}
	if len(fields) > 0 {
		if _, err := s.repo.UpdateFields(ctx, id, fields); err != nil {
			return nil, err
		}
	}
	return s.repo.GetByID(ctx, id)
}

// Delete removes a payment, cascading to its attachments first. Each
// attachment's record and physical file are deleted best-effort: one
// failing does not stop the others, and the payment row is removed
// regardless. Reports whether the payment row was removed.
func (s *PaymentService) Delete(ctx context.Context, id uint) (bool, error) {
	attachments, err := s.attachments.GetByPayment(ctx, id)
	if err != nil {
		return false, err
	}
	for _, attachment := range attachments {
		if _, err := s.attachments.Delete(ctx, attachment.ID); err != nil {
			logger.Warnf("failed to delete attachment %d while deleting payment %d: %v", attachment.ID, id, err)
		}
	}
	return s.repo.Delete(ctx, id)
}

// Stats returns payment totals, overall and for the current month.
func (s *PaymentService) Stats(ctx context.Context) (*PaymentStats, error) {
	totalAmount, err := s.repo.TotalAmount(ctx)
	if err != nil {
		return nil, err
	}
	totalCount, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)
	monthly, err := s.repo.ListByCreatedRange(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	var monthlyAmount float64
	for _, payment := range monthly {
		monthlyAmount += payment.Amount
	}

	return &PaymentStats{
		TotalAmount:   totalAmount,
		TotalCount:    totalCount,
		MonthlyAmount: monthlyAmount,
		MonthlyCount:  len(monthly),
	}, nil
}
