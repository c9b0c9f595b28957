package repos

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/atelierhq/atelier/internal/db/models"
)

type JobRepositoryTestSuite struct {
	RepositoryTestSuite
}

func TestJobRepository(t *testing.T) {
	suite.Run(t, new(JobRepositoryTestSuite))
}

func (s *JobRepositoryTestSuite) TestCreate() {
	job := s.createTestJob(models.StatusPending)
	s.NotZero(job.ID)
}

func (s *JobRepositoryTestSuite) TestGetByID() {
	original := s.createTestJob(models.StatusPending)

	found, err := s.jobRepo.GetByID(s.ctx, original.ID)
	s.NoError(err)
	s.Require().NotNil(found)
	s.Equal(original.ID, found.ID)
	s.Equal(original.Title, found.Title)

	found, err = s.jobRepo.GetByID(s.ctx, 999)
	s.NoError(err)
	s.Nil(found)
}

func (s *JobRepositoryTestSuite) TestListByStatus() {
	s.createTestJob(models.StatusPending)
	s.createTestJob(models.StatusPending)
	s.createTestJob(models.StatusCompleted)

	pending, err := s.jobRepo.ListByStatus(s.ctx, models.StatusPending)
	s.NoError(err)
	s.Len(pending, 2)

	completed, err := s.jobRepo.ListByStatus(s.ctx, models.StatusCompleted)
	s.NoError(err)
	s.Len(completed, 1)

	cancelled, err := s.jobRepo.ListByStatus(s.ctx, models.StatusCancelled)
	s.NoError(err)
	s.Empty(cancelled)
}

func (s *JobRepositoryTestSuite) TestListByClient() {
	client := s.createTestClient()
	job := s.createTestJob(models.StatusPending)
	_, err := s.jobRepo.UpdateFields(s.ctx, job.ID, map[string]interface{}{"client_id": client.ID})
	s.Require().NoError(err)
	s.createTestJob(models.StatusPending)

	jobs, err := s.jobRepo.ListByClient(s.ctx, client.ID)
	s.NoError(err)
	s.Require().Len(jobs, 1)
	s.Equal(job.ID, jobs[0].ID)
	s.Require().NotNil(jobs[0].Client)
	s.Equal(client.Name, jobs[0].Client.Name)
}

func (s *JobRepositoryTestSuite) TestCount() {
	s.createTestJob(models.StatusPending)
	s.createTestJob(models.StatusCompleted)

	total, err := s.jobRepo.Count(s.ctx, nil)
	s.NoError(err)
	s.EqualValues(2, total)

	completed := models.StatusCompleted
	n, err := s.jobRepo.Count(s.ctx, &completed)
	s.NoError(err)
	s.EqualValues(1, n)
}

func (s *JobRepositoryTestSuite) TestCountByJobType() {
	jobType := s.createTestJobType()
	job := s.createTestJob(models.StatusPending)
	_, err := s.jobRepo.UpdateFields(s.ctx, job.ID, map[string]interface{}{"job_type_id": jobType.ID})
	s.Require().NoError(err)

	count, err := s.jobRepo.CountByJobType(s.ctx, jobType.ID)
	s.NoError(err)
	s.EqualValues(1, count)

	count, err = s.jobRepo.CountByJobType(s.ctx, 999)
	s.NoError(err)
	s.Zero(count)
}

func (s *JobRepositoryTestSuite) TestTopPriced() {
	cheap := s.createTestJob(models.StatusPending)
	dear := s.createTestJob(models.StatusPending)
	_, err := s.jobRepo.UpdateFields(s.ctx, cheap.ID, map[string]interface{}{"price": 50.0})
	s.Require().NoError(err)
	_, err = s.jobRepo.UpdateFields(s.ctx, dear.ID, map[string]interface{}{"price": 900.0})
	s.Require().NoError(err)

	jobs, err := s.jobRepo.TopPriced(s.ctx, 1)
	s.NoError(err)
	s.Require().Len(jobs, 1)
	s.Equal(dear.ID, jobs[0].ID)
}

func (s *JobRepositoryTestSuite) TestSearch() {
	client := s.createTestClient()
	job := s.createTestJob(models.StatusPending)
	_, err := s.jobRepo.UpdateFields(s.ctx, job.ID, map[string]interface{}{"client_id": client.ID})
	s.Require().NoError(err)

	// By title
	jobs, err := s.jobRepo.Search(s.ctx, "banner")
	s.NoError(err)
	s.Len(jobs, 1)

	// By client name
	jobs, err = s.jobRepo.Search(s.ctx, "lovelace")
	s.NoError(err)
	s.Len(jobs, 1)

	jobs, err = s.jobRepo.Search(s.ctx, "nothing here")
	s.NoError(err)
	s.Empty(jobs)
}

func (s *JobRepositoryTestSuite) TestUpdateFieldsClearsDate() {
	job := s.createTestJob(models.StatusCompleted)
	_, err := s.jobRepo.UpdateFields(s.ctx, job.ID, map[string]interface{}{"completed_date": "10/05/2024"})
	s.Require().NoError(err)

	found, err := s.jobRepo.GetByID(s.ctx, job.ID)
	s.NoError(err)
	s.Require().NotNil(found.CompletedDate)
	s.Equal("10/05/2024", *found.CompletedDate)

	// A nil value clears the column
	_, err = s.jobRepo.UpdateFields(s.ctx, job.ID, map[string]interface{}{"completed_date": nil})
	s.Require().NoError(err)

	found, err = s.jobRepo.GetByID(s.ctx, job.ID)
	s.NoError(err)
	s.Nil(found.CompletedDate)
}
