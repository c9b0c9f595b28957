package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/atelierhq/atelier/internal/db/models"
	"github.com/atelierhq/atelier/internal/db/repos"
)

// ServiceTestSuite provides a base test suite wiring every service over an
// in-memory database and a throwaway attachments directory.
type ServiceTestSuite struct {
	suite.Suite
	db          *gorm.DB
	ctx         context.Context
	root        string
	jobRepo     *repos.JobRepository
	clients     *ClientService
	jobs        *JobService
	jobTypes    *JobTypeService
	payments    *PaymentService
	attachments *AttachmentService
	config      *ConfigService
}

func (s *ServiceTestSuite) SetupTest() {
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
	s.ctx = context.Background()
	s.root = s.T().TempDir()

	s.jobRepo = repos.NewJobRepository(db)
	s.clients = NewClientService(repos.NewClientRepository(db))
	s.attachments = NewAttachmentService(repos.NewAttachmentRepository(db), s.root)
	s.payments = NewPaymentService(repos.NewPaymentRepository(db), s.attachments)
	s.jobs = NewJobService(s.jobRepo, s.payments, s.attachments)
	s.jobTypes = NewJobTypeService(repos.NewJobTypeRepository(db), s.jobRepo)

	s.config, err = NewConfigService(s.ctx, repos.NewConfigRepository(db))
	require.NoError(s.T(), err, "Failed to initialize config service")
}

func (s *ServiceTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}

// TestServiceSuite runs the base suite to verify setup does not panic
func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
