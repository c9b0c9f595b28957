package repos

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/atelierhq/atelier/internal/db/models"
)

// RepositoryTestSuite provides a base test suite for repository tests
type RepositoryTestSuite struct {
	suite.Suite
	db             *gorm.DB
	ctx            context.Context
	clientRepo     *ClientRepository
	jobRepo        *JobRepository
	jobTypeRepo    *JobTypeRepository
	paymentRepo    *PaymentRepository
	attachmentRepo *AttachmentRepository
	configRepo     *ConfigRepository
}

func (s *RepositoryTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err, "Failed to create in-memory database")

	err = db.AutoMigrate(
		&models.Client{},
		&models.JobType{},
		&models.Job{},
		&models.Payment{},
		&models.Attachment{},
		&models.Config{},
	)
	require.NoError(s.T(), err, "Failed to run database migrations")

	s.db = db
	s.clientRepo = NewClientRepository(db)
	s.jobRepo = NewJobRepository(db)
	s.jobTypeRepo = NewJobTypeRepository(db)
	s.paymentRepo = NewPaymentRepository(db)
	s.attachmentRepo = NewAttachmentRepository(db)
	s.configRepo = NewConfigRepository(db)
	s.ctx = context.Background()
}

func (s *RepositoryTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}

// Helper methods for creating test data

func (s *RepositoryTestSuite) createTestClient() *models.Client {
	client := &models.Client{
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
		Phone: "555-0110",
	}
	err := s.clientRepo.Create(s.ctx, client)
	s.Require().NoError(err)
	return client
}

func (s *RepositoryTestSuite) createTestJobType() *models.JobType {
	jobType := &models.JobType{
		Name:      "Logo design",
		BasePrice: 250,
		BaseHours: 4,
		ColorHex:  models.DefaultJobTypeColor,
	}
	err := s.jobTypeRepo.Create(s.ctx, jobType)
	s.Require().NoError(err)
	return jobType
}

func (s *RepositoryTestSuite) createTestJob(status models.Status) *models.Job {
	job := &models.Job{
		Title:       "Banner illustration",
		Description: "Full colour banner",
		Status:      status,
	}
	err := s.jobRepo.Create(s.ctx, job)
	s.Require().NoError(err)
	return job
}

func (s *RepositoryTestSuite) createTestPayment(jobID *uint, amount float64) *models.Payment {
	payment := &models.Payment{
		Amount: amount,
		JobID:  jobID,
	}
	err := s.paymentRepo.Create(s.ctx, payment)
	s.Require().NoError(err)
	return payment
}

// TestRepositorySuite runs the base suite to verify setup does not panic
func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
