package services

import (
	"context"
	"fmt"

	"github.com/atelierhq/atelier/internal/dates"
	"github.com/atelierhq/atelier/internal/db/models"
	"github.com/atelierhq/atelier/internal/db/repos"
	"github.com/atelierhq/atelier/internal/logger"
)

// JobService provides business logic for job operations, including the
// status lifecycle policy and calendar date-range queries.
type JobService struct {
	repo        *repos.JobRepository
	payments    *PaymentService
	attachments *AttachmentService
}

// NewJobService creates a new job service instance.
func NewJobService(repo *repos.JobRepository, payments *PaymentService, attachments *AttachmentService) *JobService {
	return &JobService{repo: repo, payments: payments, attachments: attachments}
}

// JobCreate names the fields a caller may supply when creating a job.
// Relations are assigned by id only.
type JobCreate struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Status      *models.Status `json:"status"`
	Price       *float64       `json:"price"`
	DueDate     *string        `json:"due_date"`
	StartDate   *string        `json:"start_date"`
	ClientID    *uint          `json:"client_id"`
	JobTypeID   *uint          `json:"job_type_id"`
}

// JobUpdate names the updatable scalar fields of a job. Nil fields are left
// untouched; ClientID and JobTypeID reassign the relations by id.
// completed_date is never caller-supplied: the lifecycle policy derives it
// from the status change.
type JobUpdate struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Status      *models.Status `json:"status"`
	Price       *float64       `json:"price"`
	DueDate     *string        `json:"due_date"`
	StartDate   *string        `json:"start_date"`
	ClientID    *uint          `json:"client_id"`
	JobTypeID   *uint          `json:"job_type_id"`
}

// JobStats summarizes job counts per status.
type JobStats struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"inProgress"`
	Completed  int64 `json:"completed"`
	Cancelled  int64 `json:"cancelled"`
}

// Create creates a new job. Status defaults to pending when not supplied;
// date fields are canonicalized and a malformed one fails the whole call.
func (s *JobService) Create(ctx context.Context, in JobCreate) (*models.Job, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("job title is required")
	}
	if in.Price != nil && *in.Price < 0 {
		return nil, fmt.Errorf("job price must not be negative")
	}

	status := models.StatusPending
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, fmt.Errorf("invalid job status: %q", *in.Status)
		}
		status = *in.Status
	}

	dueDate, err := canonicalField(in.DueDate)
	if err != nil {
		return nil, err
	}
	startDate, err := canonicalField(in.StartDate)
	if err != nil {
		return nil, err
	}

	job := models.Job{
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
		Price:       in.Price,
		DueDate:     dueDate,
		StartDate:   startDate,
		ClientID:    in.ClientID,
		JobTypeID:   in.JobTypeID,
	}

	// Creating straight into completed is a transition out of nothing, so
	// the policy stamps the completion date.
	if value, touch := resolveCompletedDate("", status, nil, dates.Today()); touch {
		job.CompletedDate = value
	}

	if err := s.repo.Create(ctx, &job); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, job.ID)
}

// GetAll returns all jobs, newest first.
func (s *JobService) GetAll(ctx context.Context, opts *models.ListOptions) ([]models.Job, error) {
	return s.repo.List(ctx, opts)
}

// GetByID returns a job, or nil when it does not exist.
func (s *JobService) GetByID(ctx context.Context, id uint) (*models.Job, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByClient returns a client's jobs, newest first.
func (s *JobService) GetByClient(ctx context.Context, clientID uint) ([]models.Job, error) {
	return s.repo.ListByClient(ctx, clientID)
}

// GetByStatus returns the jobs in the given status, newest first.
func (s *JobService) GetByStatus(ctx context.Context, status models.Status) ([]models.Job, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid job status: %q", status)
	}
	return s.repo.ListByStatus(ctx, status)
}

// Update applies a partial update. A status change runs through the
// lifecycle policy; a malformed date fails the whole update with nothing
// applied. Returns nil when the job does not exist.
func (s *JobService) Update(ctx context.Context, id uint, in JobUpdate) (*models.Job, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	fields := map[string]interface{}{}
	if in.Title != nil {
		if *in.Title == "" {
			return nil, fmt.Errorf("job title is required")
		}
		fields["title"] = *in.Title
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, fmt.Errorf("job price must not be negative")
		}
		fields["price"] = *in.Price
	}
	if in.DueDate != nil {
		canonical, err := canonicalField(in.DueDate)
		if err != nil {
			return nil, err
		}
		// An explicit empty string clears the column
		if canonical == nil {
			fields["due_date"] = nil
		} else {
			fields["due_date"] = *canonical
		}
	}
	if in.StartDate != nil {
		canonical, err := canonicalField(in.StartDate)
		if err != nil {
			return nil, err
		}
		if canonical == nil {
			fields["start_date"] = nil
		} else {
			fields["start_date"] = *canonical
		}
	}
	if in.ClientID != nil {
		fields["client_id"] = *in.ClientID
	}
	if in.JobTypeID != nil {
		fields["job_type_id"] = *in.JobTypeID
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, fmt.Errorf("invalid job status: %q", *in.Status)
		}
		fields["status"] = *in.Status
		if value, touch := resolveCompletedDate(existing.Status, *in.Status, existing.CompletedDate, dates.Today()); touch {
			if value == nil {
				fields["completed_date"] = nil
			} else {
				fields["completed_date"] = *value
			}
		}
	}

	if len(fields) > 0 {
		if _, err := s.repo.UpdateFields(ctx, id, fields); err != nil {
			return nil, err
		}
	}
	return s.repo.GetByID(ctx, id)
}

// UpdateStatus changes only the job's status, applying the lifecycle
// policy's completed_date side effects. Returns nil when the job does not
// exist.
func (s *JobService) UpdateStatus(ctx context.Context, id uint, status models.Status) (*models.Job, error) {
	return s.Update(ctx, id, JobUpdate{Status: &status})
}

// Delete removes a job and cascades to its payments (and their attachments)
// and its own attachments. Reports whether the job row was removed.
func (s *JobService) Delete(ctx context.Context, id uint) (bool, error) {
	payments, err := s.payments.GetByJob(ctx, id)
	if err != nil {
		return false, err
	}
	for _, payment := range payments {
		if _, err := s.payments.Delete(ctx, payment.ID); err != nil {
			logger.Warnf("failed to delete payment %d while deleting job %d: %v", payment.ID, id, err)
		}
	}

	attachments, err := s.attachments.GetByJob(ctx, id)
	if err != nil {
		return false, err
	}
	for _, attachment := range attachments {
		if _, err := s.attachments.Delete(ctx, attachment.ID); err != nil {
			logger.Warnf("failed to delete attachment %d while deleting job %d: %v", attachment.ID, id, err)
		}
	}

	return s.repo.Delete(ctx, id)
}

// Search finds jobs by title, description or client name.
func (s *JobService) Search(ctx context.Context, term string) ([]models.Job, error) {
	return s.repo.Search(ctx, term)
}

// Stats returns job counts per status.
func (s *JobService) Stats(ctx context.Context) (*JobStats, error) {
	stats := &JobStats{}
	counts := []struct {
		status *models.Status
		dest   *int64
	}{
		{nil, &stats.Total},
		{ptr(models.StatusPending), &stats.Pending},
		{ptr(models.StatusInProgress), &stats.InProgress},
		{ptr(models.StatusCompleted), &stats.Completed},
		{ptr(models.StatusCancelled), &stats.Cancelled},
	}
	for _, c := range counts {
		n, err := s.repo.Count(ctx, c.status)
		if err != nil {
			return nil, err
		}
		*c.dest = n
	}
	return stats, nil
}

// HighestPriced returns the ten most expensive jobs.
func (s *JobService) HighestPriced(ctx context.Context) ([]models.Job, error) {
	return s.repo.TopPriced(ctx, 10)
}

// GetByDateRange returns the jobs occupying the given calendar window,
// optionally filtered by status, ordered by due date ascending. An empty end
// queries the exact day of start.
func (s *JobService) GetByDateRange(ctx context.Context, start, end string, status *models.Status) ([]models.Job, error) {
	startDay, err := canonicalDay(start)
	if err != nil {
		return nil, err
	}
	var endDay *dates.Day
	if end != "" {
		d, err := canonicalDay(end)
		if err != nil {
			return nil, err
		}
		endDay = &d
	}
	window, err := NewWindow(startDay, endDay)
	if err != nil {
		return nil, err
	}

	var jobs []models.Job
	if status != nil {
		if !status.Valid() {
			return nil, fmt.Errorf("invalid job status: %q", *status)
		}
		jobs, err = s.repo.ListByStatus(ctx, *status)
	} else {
		jobs, err = s.repo.List(ctx, nil)
	}
	if err != nil {
		return nil, err
	}
	return window.Filter(jobs, status), nil
}

// resolveCompletedDate applies the completion-date side effects of a status
// change. The second return value reports whether the column should be
// written at all: transitions into completed stamp today, transitions out of
// completed clear the date, re-saving a completed job leaves it untouched.
func resolveCompletedDate(prev, next models.Status, existing *string, today dates.Day) (*string, bool) {
	switch {
	case next == models.StatusCompleted && prev != models.StatusCompleted:
		value := today.String()
		return &value, true
	case prev == models.StatusCompleted && next != models.StatusCompleted:
		return nil, true
	default:
		_ = existing // preserved unchanged on completed -> completed
		return nil, false
	}
}

// canonicalField canonicalizes an optional caller-supplied date string.
func canonicalField(s *string) (*string, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	canonical, err := dates.Canonical(*s)
	if err != nil {
		return nil, err
	}
	return &canonical, nil
}

// canonicalDay canonicalizes a date string and parses it into a Day.
func canonicalDay(s string) (dates.Day, error) {
	canonical, err := dates.Canonical(s)
	if err != nil {
		return dates.Day{}, err
	}
	return dates.Parse(canonical)
}

func ptr[T any](v T) *T {
	return &v
}
