package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/atelierhq/atelier/internal/dates"
	"github.com/atelierhq/atelier/internal/db/models"
)

type JobServiceTestSuite struct {
	ServiceTestSuite
}

func TestJobService(t *testing.T) {
	suite.Run(t, new(JobServiceTestSuite))
}

func (s *JobServiceTestSuite) TestCreateDefaultsToPending() {
	job, err := s.jobs.Create(s.ctx, JobCreate{Title: "Banner"})
	s.Require().NoError(err)
	s.Equal(models.StatusPending, job.Status)
	s.Nil(job.CompletedDate)
}

func (s *JobServiceTestSuite) TestCreateValidation() {
	_, err := s.jobs.Create(s.ctx, JobCreate{})
	s.Error(err)

	price := -10.0
	_, err = s.jobs.Create(s.ctx, JobCreate{Title: "Banner", Price: &price})
	s.Error(err)

	bad := models.Status("archived")
	_, err = s.jobs.Create(s.ctx, JobCreate{Title: "Banner", Status: &bad})
	s.Error(err)
}

func (s *JobServiceTestSuite) TestCreateCanonicalizesDates() {
	due := "05/12/2024"
	job, err := s.jobs.Create(s.ctx, JobCreate{Title: "Banner", DueDate: &due})
	s.Require().NoError(err)
	s.Require().NotNil(job.DueDate)
	s.Equal("05/12/2024", *job.DueDate)

	// ISO input is normalized to the canonical format
	iso := "2024-12-05"
	job, err = s.jobs.Create(s.ctx, JobCreate{Title: "Banner", StartDate: &iso})
	s.Require().NoError(err)
	s.Require().NotNil(job.StartDate)
	s.Equal("05/12/2024", *job.StartDate)

	bad := "31/02/2024"
	_, err = s.jobs.Create(s.ctx, JobCreate{Title: "Banner", DueDate: &bad})
	s.Require().Error(err)
	s.ErrorIs(err, dates.ErrInvalidFormat)
}

func (s *JobServiceTestSuite) TestCreateIntoCompletedStampsDate() {
	completed := models.StatusCompleted
	job, err := s.jobs.Create(s.ctx, JobCreate{Title: "Banner", Status: &completed})
	s.Require().NoError(err)
	s.Require().NotNil(job.CompletedDate)
	s.Equal(dates.Today().String(), *job.CompletedDate)
}

func (s *JobServiceTestSuite) TestStatusTransitionStampsCompletedDate() {
	job, err := s.jobs.Create(s.ctx, JobCreate{Title: "Banner"})
	s.Require().NoError(err)

	updated, err := s.jobs.UpdateStatus(s.ctx, job.ID, models.StatusCompleted)
	s.Require().NoError(err)
	s.Require().NotNil(updated.CompletedDate)
	s.Equal(dates.Today().String(), *updated.CompletedDate)
}

func (s *JobServiceTestSuite) TestLeavingCompletedClearsDate() {
	completed := models.StatusCompleted
	job, err := s.jobs.Create(s.ctx, JobCreate{Title: "Banner", Status: &completed})
	s.Require().NoError(err)
	s.Require().NotNil(job.CompletedDate)

	updated, err := s.jobs.UpdateStatus(s.ctx, job.ID, models.StatusInProgress)
	s.Require().NoError(err)
	s.Nil(updated.CompletedDate)
}

func (s *JobServiceTestSuite) TestCompletedToCompletedPreservesDate() {
	completed := models.StatusCompleted
	job, err := s.jobs.Create(s.ctx, JobCreate{Title: "Banner", Status: &completed})
	s.Require().NoError(err)

	// Backdate the completion as if the job finished long ago
	_, err = s.jobRepo.UpdateFields(s.ctx, job.ID, map[string]interface{}{"completed_date": "10/05/2024"})
	s.Require().NoError(err)

	updated, err := s.jobs.UpdateStatus(s.ctx, job.ID, models.StatusCompleted)
	s.Require().NoError(err)
	s.Require().NotNil(updated.CompletedDate)
	s.Equal("10/05/2024", *updated.CompletedDate)
}

func (s *JobServiceTestSuite) TestUpdateMissingJob() {
	title := "New title"
	job, err := s.jobs.Update(s.ctx, 999, JobUpdate{Title: &title})
	s.NoError(err)
	s.Nil(job)
}

func (s *JobServiceTestSuite) TestUpdateRejectsBadDateWithoutPartialWrite() {
	job, err := s.jobs.Create(s.ctx, JobCreate{Title: "Banner"})
	s.Require().NoError(err)

	title := "Renamed"
	bad := "99/99/2024"
	_, err = s.jobs.Update(s.ctx, job.ID, JobUpdate{Title: &title, DueDate: &bad})
	s.Require().Error(err)

	// Nothing was applied
	found, err := s.jobs.GetByID(s.ctx, job.ID)
	s.Require().NoError(err)
	s.Equal("Banner", found.Title)
	s.Nil(found.DueDate)
}

func (s *JobServiceTestSuite) TestDeleteCascades() {
	job, err := s.jobs.Create(s.ctx, JobCreate{Title: "Banner"})
	s.Require().NoError(err)

	payment, err := s.payments.Create(s.ctx, PaymentCreate{Amount: 100, JobID: &job.ID})
	s.Require().NoError(err)

	_, err = s.attachments.SaveFile(s.ctx, "brief.pdf", []byte("brief"), &job.ID, nil)
	s.Require().NoError(err)
	_, err = s.attachments.SaveFile(s.ctx, "receipt.pdf", []byte("receipt"), &job.ID, &payment.ID)
	s.Require().NoError(err)

	removed, err := s.jobs.Delete(s.ctx, job.ID)
	s.Require().NoError(err)
	s.True(removed)

	found, err := s.jobs.GetByID(s.ctx, job.ID)
	s.NoError(err)
	s.Nil(found)

	payments, err := s.payments.GetByJob(s.ctx, job.ID)
	s.NoError(err)
	s.Empty(payments)

	attachments, err := s.attachments.GetByJob(s.ctx, job.ID)
	s.NoError(err)
	s.Empty(attachments)
}

func (s *JobServiceTestSuite) TestStats() {
	completed := models.StatusCompleted
	_, err := s.jobs.Create(s.ctx, JobCreate{Title: "A"})
	s.Require().NoError(err)
	_, err = s.jobs.Create(s.ctx, JobCreate{Title: "B"})
	s.Require().NoError(err)
	_, err = s.jobs.Create(s.ctx, JobCreate{Title: "C", Status: &completed})
	s.Require().NoError(err)

	stats, err := s.jobs.Stats(s.ctx)
	s.Require().NoError(err)
	s.EqualValues(3, stats.Total)
	s.EqualValues(2, stats.Pending)
	s.EqualValues(1, stats.Completed)
	s.Zero(stats.Cancelled)
}

func (s *JobServiceTestSuite) TestGetByDateRange() {
	due := "15/05/2024"
	_, err := s.jobs.Create(s.ctx, JobCreate{Title: "In window", DueDate: &due})
	s.Require().NoError(err)

	outside := "15/06/2024"
	_, err = s.jobs.Create(s.ctx, JobCreate{Title: "Outside", DueDate: &outside})
	s.Require().NoError(err)

	jobs, err := s.jobs.GetByDateRange(s.ctx, "01/05/2024", "31/05/2024", nil)
	s.Require().NoError(err)
	s.Require().Len(jobs, 1)
	s.Equal("In window", jobs[0].Title)

	// Empty end queries the exact start day
	jobs, err = s.jobs.GetByDateRange(s.ctx, "15/05/2024", "", nil)
	s.Require().NoError(err)
	s.Len(jobs, 1)

	// Inverted range fails fast
	_, err = s.jobs.GetByDateRange(s.ctx, "31/05/2024", "01/05/2024", nil)
	s.Require().Error(err)
	s.ErrorIs(err, ErrInvalidRange)

	// Malformed bound fails fast
	_, err = s.jobs.GetByDateRange(s.ctx, "2024/05/01", "", nil)
	s.Require().Error(err)
	s.ErrorIs(err, dates.ErrInvalidFormat)
}

func (s *JobServiceTestSuite) TestGetByDateRangeStatusFilter() {
	start := "10/05/2024"
	pendingDue := "15/05/2024"
	inProgress := models.StatusInProgress
	_, err := s.jobs.Create(s.ctx, JobCreate{Title: "Pending", DueDate: &pendingDue})
	s.Require().NoError(err)
	_, err = s.jobs.Create(s.ctx, JobCreate{Title: "Running", Status: &inProgress, StartDate: &start})
	s.Require().NoError(err)

	jobs, err := s.jobs.GetByDateRange(s.ctx, "01/05/2024", "31/05/2024", &inProgress)
	s.Require().NoError(err)
	s.Require().Len(jobs, 1)
	s.Equal("Running", jobs[0].Title)
}

func TestResolveCompletedDate(t *testing.T) {
	today := dates.Day{Year: 2024, Month: 5, Dom: 10}
	existing := "01/01/2024"

	value, touch := resolveCompletedDate(models.StatusPending, models.StatusCompleted, nil, today)
	assert.True(t, touch)
	assert.Equal(t, "10/05/2024", *value)

	value, touch = resolveCompletedDate(models.StatusCompleted, models.StatusPending, &existing, today)
	assert.True(t, touch)
	assert.Nil(t, value)

	_, touch = resolveCompletedDate(models.StatusCompleted, models.StatusCompleted, &existing, today)
	assert.False(t, touch)

	_, touch = resolveCompletedDate(models.StatusPending, models.StatusInProgress, nil, today)
	assert.False(t, touch)
}
