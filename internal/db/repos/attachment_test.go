package repos

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/atelierhq/atelier/internal/db/models"
)

type AttachmentRepositoryTestSuite struct {
	RepositoryTestSuite
}

func TestAttachmentRepository(t *testing.T) {
	suite.Run(t, new(AttachmentRepositoryTestSuite))
}

func (s *AttachmentRepositoryTestSuite) createTestAttachment(jobID, paymentID *uint) *models.Attachment {
	attachment := &models.Attachment{
		FileName:      "sketch.png",
		FileExtension: ".png",
		FilePath:      "/tmp/sketch.png",
		JobID:         jobID,
		PaymentID:     paymentID,
	}
	err := s.attachmentRepo.Create(s.ctx, attachment)
	s.Require().NoError(err)
	return attachment
}

func (s *AttachmentRepositoryTestSuite) TestListByOwner() {
	job := s.createTestJob("pending")
	payment := s.createTestPayment(&job.ID, 100)

	s.createTestAttachment(&job.ID, nil)
	s.createTestAttachment(&job.ID, &payment.ID)
	s.createTestAttachment(nil, nil)

	byJob, err := s.attachmentRepo.ListByJob(s.ctx, job.ID)
	s.NoError(err)
	s.Len(byJob, 2)

	byPayment, err := s.attachmentRepo.ListByPayment(s.ctx, payment.ID)
	s.NoError(err)
	s.Len(byPayment, 1)

	all, err := s.attachmentRepo.List(s.ctx)
	s.NoError(err)
	s.Len(all, 3)
}

func (s *AttachmentRepositoryTestSuite) TestDelete() {
	attachment := s.createTestAttachment(nil, nil)

	removed, err := s.attachmentRepo.Delete(s.ctx, attachment.ID)
	s.NoError(err)
	s.True(removed)

	found, err := s.attachmentRepo.GetByID(s.ctx, attachment.ID)
	s.NoError(err)
	s.Nil(found)
}
