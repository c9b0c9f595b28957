package services

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/atelierhq/atelier/internal/db/models"
)

type JobTypeServiceTestSuite struct {
	ServiceTestSuite
}

func TestJobTypeService(t *testing.T) {
	suite.Run(t, new(JobTypeServiceTestSuite))
}

func (s *JobTypeServiceTestSuite) TestCreateDefaultsColor() {
	jobType, err := s.jobTypes.Create(s.ctx, JobTypeCreate{Name: "Logo", BaseHours: 4})
	s.Require().NoError(err)
	s.Equal(models.DefaultJobTypeColor, jobType.ColorHex)
}

func (s *JobTypeServiceTestSuite) TestCreateValidation() {
	_, err := s.jobTypes.Create(s.ctx, JobTypeCreate{BaseHours: 4})
	s.Error(err)

	_, err = s.jobTypes.Create(s.ctx, JobTypeCreate{Name: "Logo", BaseHours: 0})
	s.Error(err)

	_, err = s.jobTypes.Create(s.ctx, JobTypeCreate{Name: "Logo", BaseHours: 4, BasePrice: -1})
	s.Error(err)

	_, err = s.jobTypes.Create(s.ctx, JobTypeCreate{Name: "Logo", BaseHours: 4, ColorHex: "blue"})
	s.Error(err)

	_, err = s.jobTypes.Create(s.ctx, JobTypeCreate{Name: "Logo", BaseHours: 4, ColorHex: "#12AB34"})
	s.NoError(err)
}

func (s *JobTypeServiceTestSuite) TestDeleteGuard() {
	jobType, err := s.jobTypes.Create(s.ctx, JobTypeCreate{Name: "Logo", BaseHours: 4})
	s.Require().NoError(err)

	_, err = s.jobs.Create(s.ctx, JobCreate{Title: "Banner", JobTypeID: &jobType.ID})
	s.Require().NoError(err)

	// Referenced job types cannot be deleted
	_, err = s.jobTypes.Delete(s.ctx, jobType.ID)
	s.Require().Error(err)
	s.ErrorIs(err, ErrJobTypeInUse)

	found, err := s.jobTypes.GetByID(s.ctx, jobType.ID)
	s.NoError(err)
	s.NotNil(found)
}

func (s *JobTypeServiceTestSuite) TestDeleteUnreferenced() {
	jobType, err := s.jobTypes.Create(s.ctx, JobTypeCreate{Name: "Logo", BaseHours: 4})
	s.Require().NoError(err)

	removed, err := s.jobTypes.Delete(s.ctx, jobType.ID)
	s.NoError(err)
	s.True(removed)
}

func (s *JobTypeServiceTestSuite) TestUpdate() {
	jobType, err := s.jobTypes.Create(s.ctx, JobTypeCreate{Name: "Logo", BaseHours: 4})
	s.Require().NoError(err)

	price := 300.0
	updated, err := s.jobTypes.Update(s.ctx, jobType.ID, JobTypeUpdate{BasePrice: &price})
	s.Require().NoError(err)
	s.Equal(300.0, updated.BasePrice)

	bad := "red"
	_, err = s.jobTypes.Update(s.ctx, jobType.ID, JobTypeUpdate{ColorHex: &bad})
	s.Error(err)
}
