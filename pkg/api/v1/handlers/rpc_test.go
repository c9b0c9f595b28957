package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/atelierhq/atelier/internal/db/models"
	"github.com/atelierhq/atelier/internal/db/repos"
	"github.com/atelierhq/atelier/internal/services"
)

type RPCHandlerTestSuite struct {
	suite.Suite
	db  *gorm.DB
	app *fiber.App
}

func (s *RPCHandlerTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Silent),
	})
	s.Require().NoError(err, "Failed to create in-memory database")

	err = db.AutoMigrate(
		&models.Client{},
		&models.Job{},
		&models.JobType{},
		&models.Payment{},
		&models.Attachment{},
		&models.Config{},
	)
	s.Require().NoError(err, "Failed to run database migrations")
	s.db = db

	jobRepo := repos.NewJobRepository(db)
	clients := services.NewClientService(repos.NewClientRepository(db))
	attachments := services.NewAttachmentService(repos.NewAttachmentRepository(db), s.T().TempDir())
	payments := services.NewPaymentService(repos.NewPaymentRepository(db), attachments)
	jobs := services.NewJobService(jobRepo, payments, attachments)
	jobTypes := services.NewJobTypeService(repos.NewJobTypeRepository(db), jobRepo)
	config, err := services.NewConfigService(context.Background(), repos.NewConfigRepository(db))
	s.Require().NoError(err, "Failed to initialize config service")

	handler := NewRPCHandler(clients, jobs, jobTypes, payments, attachments, config)

	s.app = fiber.New()
	s.app.Post("/", handler.HandleRPC)
}

func (s *RPCHandlerTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil && sqlDB != nil {
		s.NoError(sqlDB.Close())
	}
}

func TestRPCHandlerSuite(t *testing.T) {
	suite.Run(t, new(RPCHandlerTestSuite))
}

// postRPC posts a request to the RPC endpoint and decodes the envelope.
func (s *RPCHandlerTestSuite) postRPC(method string, params interface{}, id string) (int, RPCResponse) {
	body, err := json.Marshal(RPCRequest{Method: method, Params: params, ID: id})
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	var envelope RPCResponse
	s.Require().NoError(json.Unmarshal(raw, &envelope))
	return resp.StatusCode, envelope
}

func (s *RPCHandlerTestSuite) TestMethodRequired() {
	status, envelope := s.postRPC("", nil, "")
	s.Equal(fiber.StatusBadRequest, status)
	s.False(envelope.Success)
	s.Require().NotNil(envelope.Error)
	s.Equal(ErrMsgMethodRequired, envelope.Error.Message)
}

func (s *RPCHandlerTestSuite) TestUnknownMethod() {
	status, envelope := s.postRPC("widget:create", nil, "")
	s.Equal(fiber.StatusBadRequest, status)
	s.Require().NotNil(envelope.Error)
	s.Equal(ErrMsgUnknownMethod, envelope.Error.Message)
}

func (s *RPCHandlerTestSuite) TestEchoesRequestID() {
	status, envelope := s.postRPC(ClientGetAll, nil, "req-42")
	s.Equal(fiber.StatusOK, status)
	s.True(envelope.Success)
	s.Equal("req-42", envelope.ID)
}

func (s *RPCHandlerTestSuite) TestClientLifecycle() {
	status, envelope := s.postRPC(ClientCreate, services.ClientCreate{
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
	}, "")
	s.Require().Equal(fiber.StatusOK, status)
	s.Require().True(envelope.Success)

	created := envelope.Data.(map[string]interface{})
	id := uint(created["id"].(float64))
	s.NotZero(id)

	status, envelope = s.postRPC(ClientGetByID, IDParams{ID: id}, "")
	s.Require().Equal(fiber.StatusOK, status)
	fetched := envelope.Data.(map[string]interface{})
	s.Equal("Ada Lovelace", fetched["name"])

	status, envelope = s.postRPC(ClientDelete, IDParams{ID: id}, "")
	s.Require().Equal(fiber.StatusOK, status)
	s.True(envelope.Success)

	status, envelope = s.postRPC(ClientGetByID, IDParams{ID: id}, "")
	s.Equal(fiber.StatusNotFound, status)
	s.Require().NotNil(envelope.Error)
	s.Equal(ErrMsgClientNotFound, envelope.Error.Message)
}

func (s *RPCHandlerTestSuite) TestInvalidDateIsBadRequest() {
	due := "31/02/2024"
	status, envelope := s.postRPC(JobCreate, services.JobCreate{
		Title:   "Banner illustration",
		DueDate: &due,
	}, "")
	s.Equal(fiber.StatusBadRequest, status)
	s.False(envelope.Success)
}

func (s *RPCHandlerTestSuite) TestInvalidRangeIsBadRequest() {
	status, envelope := s.postRPC(JobGetByDateRange, JobDateRangeParams{
		Start: "10/05/2024",
		End:   "01/05/2024",
	}, "")
	s.Equal(fiber.StatusBadRequest, status)
	s.False(envelope.Success)
}

func (s *RPCHandlerTestSuite) TestJobTypeInUseIsConflict() {
	status, envelope := s.postRPC(JobTypeCreate, services.JobTypeCreate{
		Name:      "Logo design",
		BaseHours: 4,
	}, "")
	s.Require().Equal(fiber.StatusOK, status)
	jobTypeID := uint(envelope.Data.(map[string]interface{})["id"].(float64))

	status, _ = s.postRPC(JobCreate, services.JobCreate{
		Title:     "Banner illustration",
		JobTypeID: &jobTypeID,
	}, "")
	s.Require().Equal(fiber.StatusOK, status)

	status, envelope = s.postRPC(JobTypeDelete, IDParams{ID: jobTypeID}, "")
	s.Equal(fiber.StatusConflict, status)
	s.Require().NotNil(envelope.Error)
	s.Equal(ErrMsgJobTypeInUse, envelope.Error.Message)
}

func (s *RPCHandlerTestSuite) TestStatusTransitionStampsCompletedDate() {
	status, envelope := s.postRPC(JobCreate, services.JobCreate{Title: "Banner illustration"}, "")
	s.Require().Equal(fiber.StatusOK, status)
	jobID := uint(envelope.Data.(map[string]interface{})["id"].(float64))

	status, envelope = s.postRPC(JobUpdateStatus, JobUpdateStatusParams{
		ID:     jobID,
		Status: models.StatusCompleted,
	}, "")
	s.Require().Equal(fiber.StatusOK, status)
	job := envelope.Data.(map[string]interface{})
	s.Equal(string(models.StatusCompleted), job["status"])
	s.NotEmpty(job["completed_date"])
}

func (s *RPCHandlerTestSuite) TestConfigRoundTrip() {
	status, _ := s.postRPC(ConfigSet, ConfigSetParams{Key: "currency", Value: "EUR"}, "")
	s.Require().Equal(fiber.StatusOK, status)

	status, envelope := s.postRPC(ConfigGet, ConfigKeyParams{Key: "currency"}, "")
	s.Require().Equal(fiber.StatusOK, status)
	s.Equal("EUR", envelope.Data)
}
