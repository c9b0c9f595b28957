// Package client provides the API client for interacting with the Atelier API
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/atelierhq/atelier/internal/db/models"
	"github.com/atelierhq/atelier/internal/services"
	"github.com/atelierhq/atelier/pkg/api/v1/handlers"
	"github.com/atelierhq/atelier/pkg/api/v1/routes"
)

// DefaultTimeout is the default timeout for API requests
const DefaultTimeout = 30 * time.Second

// Client is the interface for API client
type Client interface {
	// Health Check
	HealthCheck(ctx context.Context) (map[string]string, error)

	// Client endpoints
	CreateClient(ctx context.Context, params services.ClientCreate) (models.Client, error)
	GetClients(ctx context.Context, opts *models.ListOptions) ([]models.Client, error)
	GetClient(ctx context.Context, id uint) (models.Client, error)
	UpdateClient(ctx context.Context, params handlers.ClientUpdateParams) (models.Client, error)
	DeleteClient(ctx context.Context, id uint) error
	SearchClients(ctx context.Context, term string) ([]models.Client, error)

	// Job endpoints
	CreateJob(ctx context.Context, params services.JobCreate) (models.Job, error)
	GetJobs(ctx context.Context, opts *models.ListOptions) ([]models.Job, error)
	GetJob(ctx context.Context, id uint) (models.Job, error)
	GetJobsByClient(ctx context.Context, clientID uint) ([]models.Job, error)
	GetJobsByStatus(ctx context.Context, status models.Status) ([]models.Job, error)
	GetJobsByDateRange(ctx context.Context, params handlers.JobDateRangeParams) ([]models.Job, error)
	UpdateJob(ctx context.Context, params handlers.JobUpdateParams) (models.Job, error)
	UpdateJobStatus(ctx context.Context, id uint, status models.Status) (models.Job, error)
	DeleteJob(ctx context.Context, id uint) error
	SearchJobs(ctx context.Context, term string) ([]models.Job, error)
	GetJobStats(ctx context.Context) (services.JobStats, error)
	GetHighestPricedJobs(ctx context.Context) ([]models.Job, error)

	// Job type endpoints
	CreateJobType(ctx context.Context, params services.JobTypeCreate) (models.JobType, error)
	GetJobTypes(ctx context.Context) ([]models.JobType, error)
	GetJobType(ctx context.Context, id uint) (models.JobType, error)
	UpdateJobType(ctx context.Context, params handlers.JobTypeUpdateParams) (models.JobType, error)
	DeleteJobType(ctx context.Context, id uint) error
	SearchJobTypes(ctx context.Context, term string) ([]models.JobType, error)

	// Payment endpoints
	CreatePayment(ctx context.Context, params services.PaymentCreate) (models.Payment, error)
	GetPayments(ctx context.Context, opts *models.ListOptions) ([]models.Payment, error)
	GetPayment(ctx context.Context, id uint) (models.Payment, error)
	GetPaymentsByJob(ctx context.Context, jobID uint) ([]models.Payment, error)
	GetPaymentsByDateRange(ctx context.Context, start, end time.Time) ([]models.Payment, error)
	UpdatePayment(ctx context.Context, params handlers.PaymentUpdateParams) (models.Payment, error)
	DeletePayment(ctx context.Context, id uint) error
	GetPaymentStats(ctx context.Context) (services.PaymentStats, error)

	// Attachment endpoints
	CreateAttachment(ctx context.Context, params services.AttachmentCreate) (models.Attachment, error)
	GetAttachments(ctx context.Context) ([]models.Attachment, error)
	GetAttachment(ctx context.Context, id uint) (models.Attachment, error)
	GetAttachmentsByJob(ctx context.Context, jobID uint) ([]models.Attachment, error)
	DeleteAttachment(ctx context.Context, id uint) error
	SaveAttachmentFile(ctx context.Context, params handlers.AttachmentSaveFileParams) (models.Attachment, error)
	GetAttachmentContent(ctx context.Context, id uint) ([]byte, error)

	// Config endpoints
	GetConfig(ctx context.Context, key string) (string, error)
	SetConfig(ctx context.Context, key, value string) (models.Config, error)
	GetAllConfig(ctx context.Context) ([]models.Config, error)
	DeleteConfig(ctx context.Context, key string) error
}

var _ Client = &APIClient{}

// Options contains configuration options for the API client
type Options struct {
	// BaseURL is the base URL of the API
	BaseURL string

	// Timeout is the request timeout
	Timeout time.Duration
}

// DefaultOptions returns the default client options
func DefaultOptions() *Options {
	return &Options{
		BaseURL: routes.DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// APIClient implements the Client interface
type APIClient struct {
	baseURL string
	timeout time.Duration
}

// NewClient creates a new API client with the given options
func NewClient(opts *Options) (Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	// Validate the base URL
	_, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	return &APIClient{
		baseURL: opts.BaseURL,
		timeout: opts.Timeout,
	}, nil
}

// createAgent creates a new Fiber Agent for the given method and endpoint
func (c *APIClient) createAgent(ctx context.Context, method, endpoint string, body interface{}) (*fiber.Agent, error) {
	fullURL := c.baseURL + endpoint

	var agent *fiber.Agent
	switch method {
	case http.MethodGet:
		agent = fiber.Get(fullURL)
	case http.MethodPost:
		agent = fiber.Post(fullURL)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	// Set timeout from context or client default
	if deadline, ok := ctx.Deadline(); ok {
		agent.Timeout(time.Until(deadline))
	} else {
		agent.Timeout(c.timeout)
	}

	agent.Set("Content-Type", "application/json")
	agent.Set("Accept", "application/json")

	if body != nil {
		agent.JSON(body)
	}

	return agent, nil
}

// executeRequest sends a plain HTTP request and decodes the response body
func (c *APIClient) executeRequest(ctx context.Context, method, endpoint string, body, response interface{}) error {
	agent, err := c.createAgent(ctx, method, endpoint, body)
	if err != nil {
		return err
	}

	statusCode, respBody, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("error sending request: %w", errs[0])
	}

	if statusCode < 200 || statusCode >= 300 {
		return &fiber.Error{
			Code:    statusCode,
			Message: string(respBody),
		}
	}

	if response != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, response); err != nil {
			return fmt.Errorf("error decoding response: %w", err)
		}
	}

	return nil
}

// executeRPC performs the actual RPC call
func (c *APIClient) executeRPC(ctx context.Context, method string, params interface{}, result interface{}) error {
	endpoint := routes.RPCURL()

	requestBody := map[string]interface{}{
		"method": method,
		"params": params,
	}

	agent, err := c.createAgent(ctx, http.MethodPost, endpoint, requestBody)
	if err != nil {
		return err
	}

	statusCode, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("error sending RPC request: %w", errs[0])
	}

	// The envelope carries the error details even on non-2xx responses, so
	// prefer it over the raw body when it decodes.
	var rpcResp handlers.RPCResponse
	if err := json.Unmarshal(body, &rpcResp); err != nil {
		if statusCode < 200 || statusCode >= 300 {
			return &fiber.Error{
				Code:    statusCode,
				Message: string(body),
			}
		}
		return fmt.Errorf("failed to unmarshal RPC response body: %w", err)
	}

	if rpcResp.Error != nil {
		return fmt.Errorf("RPC error: %s (code: %d)", rpcResp.Error.Message, rpcResp.Error.Code)
	}

	if !rpcResp.Success {
		return fmt.Errorf("RPC call failed without specific error details")
	}

	if result == nil {
		return nil
	}

	// Data is decoded as interface{}, so round-trip it through JSON into the
	// caller's result type.
	dataBytes, err := json.Marshal(rpcResp.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal RPC data field: %w", err)
	}

	if err := json.Unmarshal(dataBytes, result); err != nil {
		return fmt.Errorf("failed to unmarshal RPC data into result: %w", err)
	}

	return nil
}

// Health check implementation

// HealthCheck checks the health of the API
func (c *APIClient) HealthCheck(ctx context.Context) (map[string]string, error) {
	endpoint := routes.HealthCheckURL()
	var response map[string]string
	if err := c.executeRequest(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return map[string]string{}, err
	}
	return response, nil
}

// Client methods implementation

// CreateClient creates a new client record
func (c *APIClient) CreateClient(ctx context.Context, params services.ClientCreate) (models.Client, error) {
	var client models.Client
	if err := c.executeRPC(ctx, handlers.ClientCreate, params, &client); err != nil {
		return models.Client{}, err
	}
	return client, nil
}

// GetClients lists client records
func (c *APIClient) GetClients(ctx context.Context, opts *models.ListOptions) ([]models.Client, error) {
	var clients []models.Client
	if err := c.executeRPC(ctx, handlers.ClientGetAll, listParams(opts), &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// GetClient retrieves a client record by ID
func (c *APIClient) GetClient(ctx context.Context, id uint) (models.Client, error) {
	var client models.Client
	if err := c.executeRPC(ctx, handlers.ClientGetByID, handlers.IDParams{ID: id}, &client); err != nil {
		return models.Client{}, err
	}
	return client, nil
}

// UpdateClient applies a partial update to a client record
func (c *APIClient) UpdateClient(ctx context.Context, params handlers.ClientUpdateParams) (models.Client, error) {
	var client models.Client
	if err := c.executeRPC(ctx, handlers.ClientUpdate, params, &client); err != nil {
		return models.Client{}, err
	}
	return client, nil
}

// DeleteClient deletes a client record by ID
func (c *APIClient) DeleteClient(ctx context.Context, id uint) error {
	return c.executeRPC(ctx, handlers.ClientDelete, handlers.IDParams{ID: id}, nil)
}

// SearchClients searches client records by name or email
func (c *APIClient) SearchClients(ctx context.Context, term string) ([]models.Client, error) {
	var clients []models.Client
	if err := c.executeRPC(ctx, handlers.ClientSearch, handlers.SearchParams{Term: term}, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// Job methods implementation

// CreateJob creates a new job
func (c *APIClient) CreateJob(ctx context.Context, params services.JobCreate) (models.Job, error) {
	var job models.Job
	if err := c.executeRPC(ctx, handlers.JobCreate, params, &job); err != nil {
		return models.Job{}, err
	}
	return job, nil
}

// GetJobs lists jobs
func (c *APIClient) GetJobs(ctx context.Context, opts *models.ListOptions) ([]models.Job, error) {
	var jobs []models.Job
	if err := c.executeRPC(ctx, handlers.JobGetAll, listParams(opts), &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetJob retrieves a job by ID
func (c *APIClient) GetJob(ctx context.Context, id uint) (models.Job, error) {
	var job models.Job
	if err := c.executeRPC(ctx, handlers.JobGetByID, handlers.IDParams{ID: id}, &job); err != nil {
		return models.Job{}, err
	}
	return job, nil
}

// GetJobsByClient lists the jobs of one client
func (c *APIClient) GetJobsByClient(ctx context.Context, clientID uint) ([]models.Job, error) {
	var jobs []models.Job
	if err := c.executeRPC(ctx, handlers.JobGetByClient, handlers.JobByClientParams{ClientID: clientID}, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetJobsByStatus lists the jobs in one lifecycle status
func (c *APIClient) GetJobsByStatus(ctx context.Context, status models.Status) ([]models.Job, error) {
	var jobs []models.Job
	if err := c.executeRPC(ctx, handlers.JobGetByStatus, handlers.JobByStatusParams{Status: status}, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetJobsByDateRange lists the jobs whose activity falls in a date window
func (c *APIClient) GetJobsByDateRange(ctx context.Context, params handlers.JobDateRangeParams) ([]models.Job, error) {
	var jobs []models.Job
	if err := c.executeRPC(ctx, handlers.JobGetByDateRange, params, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// UpdateJob applies a partial update to a job
func (c *APIClient) UpdateJob(ctx context.Context, params handlers.JobUpdateParams) (models.Job, error) {
	var job models.Job
	if err := c.executeRPC(ctx, handlers.JobUpdate, params, &job); err != nil {
		return models.Job{}, err
	}
	return job, nil
}

// UpdateJobStatus moves a job to a new lifecycle status
func (c *APIClient) UpdateJobStatus(ctx context.Context, id uint, status models.Status) (models.Job, error) {
	var job models.Job
	params := handlers.JobUpdateStatusParams{ID: id, Status: status}
	if err := c.executeRPC(ctx, handlers.JobUpdateStatus, params, &job); err != nil {
		return models.Job{}, err
	}
	return job, nil
}

// DeleteJob deletes a job by ID
func (c *APIClient) DeleteJob(ctx context.Context, id uint) error {
	return c.executeRPC(ctx, handlers.JobDelete, handlers.IDParams{ID: id}, nil)
}

// SearchJobs searches jobs by title or description
func (c *APIClient) SearchJobs(ctx context.Context, term string) ([]models.Job, error) {
	var jobs []models.Job
	if err := c.executeRPC(ctx, handlers.JobSearch, handlers.SearchParams{Term: term}, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetJobStats retrieves per-status job counts
func (c *APIClient) GetJobStats(ctx context.Context) (services.JobStats, error) {
	var stats services.JobStats
	if err := c.executeRPC(ctx, handlers.JobGetStats, nil, &stats); err != nil {
		return services.JobStats{}, err
	}
	return stats, nil
}

// GetHighestPricedJobs retrieves the top priced jobs
func (c *APIClient) GetHighestPricedJobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := c.executeRPC(ctx, handlers.JobGetHighestPrice, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// Job type methods implementation

// CreateJobType creates a new job type
func (c *APIClient) CreateJobType(ctx context.Context, params services.JobTypeCreate) (models.JobType, error) {
	var jobType models.JobType
	if err := c.executeRPC(ctx, handlers.JobTypeCreate, params, &jobType); err != nil {
		return models.JobType{}, err
	}
	return jobType, nil
}

// GetJobTypes lists job types
func (c *APIClient) GetJobTypes(ctx context.Context) ([]models.JobType, error) {
	var jobTypes []models.JobType
	if err := c.executeRPC(ctx, handlers.JobTypeGetAll, nil, &jobTypes); err != nil {
		return nil, err
	}
	return jobTypes, nil
}

// GetJobType retrieves a job type by ID
func (c *APIClient) GetJobType(ctx context.Context, id uint) (models.JobType, error) {
	var jobType models.JobType
	if err := c.executeRPC(ctx, handlers.JobTypeGetByID, handlers.IDParams{ID: id}, &jobType); err != nil {
		return models.JobType{}, err
	}
	return jobType, nil
}

// UpdateJobType applies a partial update to a job type
func (c *APIClient) UpdateJobType(ctx context.Context, params handlers.JobTypeUpdateParams) (models.JobType, error) {
	var jobType models.JobType
	if err := c.executeRPC(ctx, handlers.JobTypeUpdate, params, &jobType); err != nil {
		return models.JobType{}, err
	}
	return jobType, nil
}

// DeleteJobType deletes a job type by ID
func (c *APIClient) DeleteJobType(ctx context.Context, id uint) error {
	return c.executeRPC(ctx, handlers.JobTypeDelete, handlers.IDParams{ID: id}, nil)
}

// SearchJobTypes searches job types by name
func (c *APIClient) SearchJobTypes(ctx context.Context, term string) ([]models.JobType, error) {
	var jobTypes []models.JobType
	if err := c.executeRPC(ctx, handlers.JobTypeSearch, handlers.SearchParams{Term: term}, &jobTypes); err != nil {
		return nil, err
	}
	return jobTypes, nil
}

// Payment methods implementation

// CreatePayment records a payment
func (c *APIClient) CreatePayment(ctx context.Context, params services.PaymentCreate) (models.Payment, error) {
	var payment models.Payment
	if err := c.executeRPC(ctx, handlers.PaymentCreate, params, &payment); err != nil {
		return models.Payment{}, err
	}
	return payment, nil
}

// GetPayments lists payments
func (c *APIClient) GetPayments(ctx context.Context, opts *models.ListOptions) ([]models.Payment, error) {
	var payments []models.Payment
	if err := c.executeRPC(ctx, handlers.PaymentGetAll, listParams(opts), &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// GetPayment retrieves a payment by ID
func (c *APIClient) GetPayment(ctx context.Context, id uint) (models.Payment, error) {
	var payment models.Payment
	if err := c.executeRPC(ctx, handlers.PaymentGetByID, handlers.IDParams{ID: id}, &payment); err != nil {
		return models.Payment{}, err
	}
	return payment, nil
}

// GetPaymentsByJob lists a job's payments
func (c *APIClient) GetPaymentsByJob(ctx context.Context, jobID uint) ([]models.Payment, error) {
	var payments []models.Payment
	if err := c.executeRPC(ctx, handlers.PaymentGetByJob, handlers.PaymentByJobParams{JobID: jobID}, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// GetPaymentsByDateRange lists the payments recorded in [start, end]
func (c *APIClient) GetPaymentsByDateRange(ctx context.Context, start, end time.Time) ([]models.Payment, error) {
	var payments []models.Payment
	params := handlers.PaymentDateRangeParams{Start: start, End: end}
	if err := c.executeRPC(ctx, handlers.PaymentGetByDateRange, params, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// UpdatePayment applies a partial update to a payment
func (c *APIClient) UpdatePayment(ctx context.Context, params handlers.PaymentUpdateParams) (models.Payment, error) {
	var payment models.Payment
	if err := c.executeRPC(ctx, handlers.PaymentUpdate, params, &payment); err != nil {
		return models.Payment{}, err
	}
	return payment, nil
}

// DeletePayment deletes a payment by ID
func (c *APIClient) DeletePayment(ctx context.Context, id uint) error {
	return c.executeRPC(ctx, handlers.PaymentDelete, handlers.IDParams{ID: id}, nil)
}

// GetPaymentStats retrieves payment totals
func (c *APIClient) GetPaymentStats(ctx context.Context) (services.PaymentStats, error) {
	var stats services.PaymentStats
	if err := c.executeRPC(ctx, handlers.PaymentGetStats, nil, &stats); err != nil {
		return services.PaymentStats{}, err
	}
	return stats, nil
}

// Attachment methods implementation

// CreateAttachment records an attachment for an existing file
func (c *APIClient) CreateAttachment(ctx context.Context, params services.AttachmentCreate) (models.Attachment, error) {
	var attachment models.Attachment
	if err := c.executeRPC(ctx, handlers.AttachmentCreate, params, &attachment); err != nil {
		return models.Attachment{}, err
	}
	return attachment, nil
}

// GetAttachments lists attachment records
func (c *APIClient) GetAttachments(ctx context.Context) ([]models.Attachment, error) {
	var attachments []models.Attachment
	if err := c.executeRPC(ctx, handlers.AttachmentGetAll, nil, &attachments); err != nil {
		return nil, err
	}
	return attachments, nil
}

// GetAttachment retrieves an attachment record by ID
func (c *APIClient) GetAttachment(ctx context.Context, id uint) (models.Attachment, error) {
	var attachment models.Attachment
	if err := c.executeRPC(ctx, handlers.AttachmentGetByID, handlers.IDParams{ID: id}, &attachment); err != nil {
		return models.Attachment{}, err
	}
	return attachment, nil
}

// GetAttachmentsByJob lists a job's attachments
func (c *APIClient) GetAttachmentsByJob(ctx context.Context, jobID uint) ([]models.Attachment, error) {
	var attachments []models.Attachment
	if err := c.executeRPC(ctx, handlers.AttachmentGetByJob, handlers.PaymentByJobParams{JobID: jobID}, &attachments); err != nil {
		return nil, err
	}
	return attachments, nil
}

// DeleteAttachment deletes an attachment record and its file by ID
func (c *APIClient) DeleteAttachment(ctx context.Context, id uint) error {
	return c.executeRPC(ctx, handlers.AttachmentDelete, handlers.IDParams{ID: id}, nil)
}

// SaveAttachmentFile uploads file bytes and records the attachment
func (c *APIClient) SaveAttachmentFile(ctx context.Context, params handlers.AttachmentSaveFileParams) (models.Attachment, error) {
	var attachment models.Attachment
	if err := c.executeRPC(ctx, handlers.AttachmentSaveFile, params, &attachment); err != nil {
		return models.Attachment{}, err
	}
	return attachment, nil
}

// GetAttachmentContent downloads the file behind an attachment
func (c *APIClient) GetAttachmentContent(ctx context.Context, id uint) ([]byte, error) {
	var data []byte
	if err := c.executeRPC(ctx, handlers.AttachmentGetContent, handlers.IDParams{ID: id}, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// Config methods implementation

// GetConfig retrieves a config value by key
func (c *APIClient) GetConfig(ctx context.Context, key string) (string, error) {
	var value string
	if err := c.executeRPC(ctx, handlers.ConfigGet, handlers.ConfigKeyParams{Key: key}, &value); err != nil {
		return "", err
	}
	return value, nil
}

// SetConfig upserts a config key to a value
func (c *APIClient) SetConfig(ctx context.Context, key, value string) (models.Config, error) {
	var config models.Config
	params := handlers.ConfigSetParams{Key: key, Value: value}
	if err := c.executeRPC(ctx, handlers.ConfigSet, params, &config); err != nil {
		return models.Config{}, err
	}
	return config, nil
}

// GetAllConfig lists every config setting
func (c *APIClient) GetAllConfig(ctx context.Context) ([]models.Config, error) {
	var configs []models.Config
	if err := c.executeRPC(ctx, handlers.ConfigGetAll, nil, &configs); err != nil {
		return nil, err
	}
	return configs, nil
}

// DeleteConfig removes a config setting by key
func (c *APIClient) DeleteConfig(ctx context.Context, key string) error {
	return c.executeRPC(ctx, handlers.ConfigDelete, handlers.ConfigKeyParams{Key: key}, nil)
}

// listParams converts ListOptions into RPC list parameters
func listParams(opts *models.ListOptions) handlers.ListParams {
	if opts == nil {
		return handlers.ListParams{}
	}
	return handlers.ListParams{Limit: opts.Limit, Offset: opts.Offset}
}
