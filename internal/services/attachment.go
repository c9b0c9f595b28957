package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/atelierhq/atelier/internal/db/models"
	"github.com/atelierhq/atelier/internal/db/repos"
	"github.com/atelierhq/atelier/internal/logger"
)

// AttachmentService manages attachment records and the physical files
// behind them. Files live under the attachments root in a layout derived
// from the owning job and payment:
//
//	jobs/{jobId}/            job files
//	jobs/{jobId}/payments/   payment files
//	general/                 files with no known owner
type AttachmentService struct {
	repo *repos.AttachmentRepository
	root string
}

// NewAttachmentService creates a new attachment service storing files under
// root.
func NewAttachmentService(repo *repos.AttachmentRepository, root string) *AttachmentService {
	return &AttachmentService{repo: repo, root: root}
}

// AttachmentCreate names the fields a caller may supply when creating an
// attachment record for an already-existing file.
type AttachmentCreate struct {
	FileName      string `json:"file_name"`
	FileExtension string `json:"file_extension"`
	FilePath      string `json:"file_path"`
	JobID         *uint  `json:"job_id"`
	PaymentID     *uint  `json:"payment_id"`
}

// Create records an attachment pointing at an existing file.
func (s *AttachmentService) Create(ctx context.Context, in AttachmentCreate) (*models.Attachment, error) {
	if in.FileName == "" {
		return nil, fmt.Errorf("attachment file name is required")
	}
	if in.FilePath == "" {
		return nil, fmt.Errorf("attachment file path is required")
	}
	attachment := models.Attachment{
		FileName:      in.FileName,
		FileExtension: in.FileExtension,
		FilePath:      in.FilePath,
		JobID:         in.JobID,
		PaymentID:     in.PaymentID,
	}
	if err := s.repo.Create(ctx, &attachment); err != nil {
		return nil, err
	}
	return &attachment, nil
}

// GetAll returns all attachment records, newest first.
func (s *AttachmentService) GetAll(ctx context.Context) ([]models.Attachment, error) {
	return s.repo.List(ctx)
}

// GetByID returns an attachment, or nil when it does not exist.
func (s *AttachmentService) GetByID(ctx context.Context, id uint) (*models.Attachment, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByJob returns the attachments linked to a job.
func (s *AttachmentService) GetByJob(ctx context.Context, jobID uint) ([]models.Attachment, error) {
	return s.repo.ListByJob(ctx, jobID)
}

// GetByPayment returns the attachments linked to a payment.
func (s *AttachmentService) GetByPayment(ctx context.Context, paymentID uint) ([]models.Attachment, error) {
	return s.repo.ListByPayment(ctx, paymentID)
}

// Delete removes the attachment record, best-effort deleting the physical
// file first. A file that cannot be removed is logged and does not block
// record deletion.
func (s *AttachmentService) Delete(ctx context.Context, id uint) (bool, error) {
	attachment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if attachment != nil && attachment.FilePath != "" {
		if err := os.Remove(attachment.FilePath); err != nil && !os.IsNotExist(err) {
			logger.Warnf("could not delete attachment file %q: %v", attachment.FilePath, err)
		}
	}
	return s.repo.Delete(ctx, id)
}

// SaveFile writes the file bytes under the attachments root and creates the
// corresponding record. The stored name gets a timestamp appended before
// the extension so repeated uploads never collide.
func (s *AttachmentService) SaveFile(ctx context.Context, fileName string, data []byte, jobID, paymentID *uint) (*models.Attachment, error) {
	if fileName == "" {
		return nil, fmt.Errorf("attachment file name is required")
	}

	s.appendDebugLog(fileName, len(data), jobID, paymentID)

	ext := filepath.Ext(fileName)
	base := fileName[:len(fileName)-len(ext)]
	unique := fmt.Sprintf("%s_%d%s", base, time.Now().UnixNano(), ext)

	var dir string
	switch {
	case paymentID != nil && jobID != nil:
		dir = filepath.Join(s.root, "jobs", strconv.FormatUint(uint64(*jobID), 10), "payments")
	case jobID != nil:
		dir = filepath.Join(s.root, "jobs", strconv.FormatUint(uint64(*jobID), 10))
	default:
		dir = filepath.Join(s.root, "general")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create attachment directory %q: %w", dir, err)
	}

	path := filepath.Join(dir, unique)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write attachment file %q: %w", path, err)
	}

	return s.Create(ctx, AttachmentCreate{
		FileName:      fileName,
		FileExtension: ext,
		FilePath:      path,
		JobID:         jobID,
		PaymentID:     paymentID,
	})
}

// Content reads the physical file behind an attachment. Returns nil when
// the record does not exist.
func (s *AttachmentService) Content(ctx context.Context, id uint) ([]byte, error) {
	attachment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if attachment == nil {
		return nil, nil
	}
	data, err := os.ReadFile(attachment.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment file %q: %w", attachment.FilePath, err)
	}
	return data, nil
}

// Root returns the attachments root directory.
func (s *AttachmentService) Root() string {
	return s.root
}

// appendDebugLog appends a one-line save record to debug.txt under the
// attachments root. Failures are ignored.
func (s *AttachmentService) appendDebugLog(fileName string, size int, jobID, paymentID *uint) {
	entry := map[string]interface{}{
		"timestamp": time.Now().Format(time.RFC3339),
		"method":    "saveFile",
		"fileName":  fileName,
		"size":      size,
	}
	if jobID != nil {
		entry["jobId"] = *jobID
	}
	if paymentID != nil {
		entry["paymentId"] = *paymentID
	}
	line, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(filepath.Join(s.root, "debug.txt"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Warnf("could not write attachment debug log: %v", err)
		return
	}
	defer func() { _ = f.Close() }()
	_, _ = f.Write(append(line, '\n'))
}
