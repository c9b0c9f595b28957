package services

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/suite"
)

type AttachmentServiceTestSuite struct {
	ServiceTestSuite
}

func TestAttachmentService(t *testing.T) {
	suite.Run(t, new(AttachmentServiceTestSuite))
}

func (s *AttachmentServiceTestSuite) TestSaveFileLayout() {
	job, err := s.jobs.Create(s.ctx, JobCreate{Title: "Banner"})
	s.Require().NoError(err)
	payment, err := s.payments.Create(s.ctx, PaymentCreate{Amount: 100, JobID: &job.ID})
	s.Require().NoError(err)

	jobDir := filepath.Join(s.root, "jobs", strconv.FormatUint(uint64(job.ID), 10))

	// Job file
	attachment, err := s.attachments.SaveFile(s.ctx, "brief.pdf", []byte("brief"), &job.ID, nil)
	s.Require().NoError(err)
	s.Equal("brief.pdf", attachment.FileName)
	s.Equal(".pdf", attachment.FileExtension)
	s.Equal(jobDir, filepath.Dir(attachment.FilePath))

	// Payment file
	attachment, err = s.attachments.SaveFile(s.ctx, "receipt.pdf", []byte("receipt"), &job.ID, &payment.ID)
	s.Require().NoError(err)
	s.Equal(filepath.Join(jobDir, "payments"), filepath.Dir(attachment.FilePath))

	// Orphan file
	attachment, err = s.attachments.SaveFile(s.ctx, "note.txt", []byte("note"), nil, nil)
	s.Require().NoError(err)
	s.Equal(filepath.Join(s.root, "general"), filepath.Dir(attachment.FilePath))
}

func (s *AttachmentServiceTestSuite) TestSaveFileUniqueNames() {
	first, err := s.attachments.SaveFile(s.ctx, "draft.png", []byte("v1"), nil, nil)
	s.Require().NoError(err)
	second, err := s.attachments.SaveFile(s.ctx, "draft.png", []byte("v2"), nil, nil)
	s.Require().NoError(err)

	s.NotEqual(first.FilePath, second.FilePath)

	data, err := s.attachments.Content(s.ctx, first.ID)
	s.Require().NoError(err)
	s.Equal([]byte("v1"), data)
}

func (s *AttachmentServiceTestSuite) TestContentMissing() {
	data, err := s.attachments.Content(s.ctx, 999)
	s.NoError(err)
	s.Nil(data)
}

func (s *AttachmentServiceTestSuite) TestDeleteRemovesFile() {
	attachment, err := s.attachments.SaveFile(s.ctx, "sketch.png", []byte("png"), nil, nil)
	s.Require().NoError(err)

	removed, err := s.attachments.Delete(s.ctx, attachment.ID)
	s.Require().NoError(err)
	s.True(removed)

	_, err = os.Stat(attachment.FilePath)
	s.True(os.IsNotExist(err))
}

func (s *AttachmentServiceTestSuite) TestDeleteSurvivesMissingFile() {
	attachment, err := s.attachments.SaveFile(s.ctx, "sketch.png", []byte("png"), nil, nil)
	s.Require().NoError(err)
	s.Require().NoError(os.Remove(attachment.FilePath))

	removed, err := s.attachments.Delete(s.ctx, attachment.ID)
	s.NoError(err)
	s.True(removed)
}

func (s *AttachmentServiceTestSuite) TestSaveFileWritesDebugLog() {
	_, err := s.attachments.SaveFile(s.ctx, "brief.pdf", []byte("brief"), nil, nil)
	s.Require().NoError(err)

	data, err := os.ReadFile(filepath.Join(s.root, "debug.txt"))
	s.Require().NoError(err)
	s.Contains(string(data), `"fileName":"brief.pdf"`)
}
