// Package handlers provides the RPC method table and request handling
package handlers

import (
	"encoding/json"
	"errors"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/atelierhq/atelier/internal/dates"
	"github.com/atelierhq/atelier/internal/services"
)

// RPCRequest defines the structure for RPC-style API requests
type RPCRequest struct {
	// Method is the operation to perform (e.g., "job:create", "payment:getStats")
	Method string `json:"method"`

	// Params contains the operation parameters
	Params interface{} `json:"params"`

	// ID is an optional request identifier that will be echoed back in the response
	ID string `json:"id,omitempty"`
}

// RPCResponse defines the structure for RPC-style API responses
type RPCResponse struct {
	// Data contains the operation result
	Data interface{} `json:"data,omitempty"`

	// Error contains error information if the operation failed
	Error *RPCError `json:"error,omitempty"`

	// ID echoes back the request ID if provided
	ID string `json:"id,omitempty"`

	// Success indicates if the operation was successful
	Success bool `json:"success"`
}

// RPCError defines the structure for RPC errors
type RPCError struct {
	// Code is a numeric error code
	Code int `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Data contains additional error details (optional)
	Data interface{} `json:"data,omitempty"`
}

// RPCHandler dispatches RPC requests to the business services. All
// dependencies are injected explicitly; the handler holds no global state.
type RPCHandler struct {
	clients     *services.ClientService
	jobs        *services.JobService
	jobTypes    *services.JobTypeService
	payments    *services.PaymentService
	attachments *services.AttachmentService
	config      *services.ConfigService
}

// NewRPCHandler creates an RPC handler over the given services.
func NewRPCHandler(
	clients *services.ClientService,
	jobs *services.JobService,
	jobTypes *services.JobTypeService,
	payments *services.PaymentService,
	attachments *services.AttachmentService,
	config *services.ConfigService,
) *RPCHandler {
	return &RPCHandler{
		clients:     clients,
		jobs:        jobs,
		jobTypes:    jobTypes,
		payments:    payments,
		attachments: attachments,
		config:      config,
	}
}

// HandleRPC handles all RPC requests for every entity.
func (h *RPCHandler) HandleRPC(c *fiber.Ctx) error {
	var req RPCRequest
	if err := c.BodyParser(&req); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidReqFormat, err.Error(), req.ID)
	}

	if req.Method == "" {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgMethodRequired, nil, req.ID)
	}

	switch {
	case IsClientMethod(req.Method):
		return h.handleClientMethod(c, req)
	case IsJobMethod(req.Method):
		return h.handleJobMethod(c, req)
	case IsJobTypeMethod(req.Method):
		return h.handleJobTypeMethod(c, req)
	case IsPaymentMethod(req.Method):
		return h.handlePaymentMethod(c, req)
	case IsAttachmentMethod(req.Method):
		return h.handleAttachmentMethod(c, req)
	case IsConfigMethod(req.Method):
		return h.handleConfigMethod(c, req)
	default:
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgUnknownMethod, req.Method, req.ID)
	}
}

// parseParams is a helper function to parse RPC parameters into a specific struct type
func parseParams[T any](req RPCRequest) (T, error) {
	var params T

	paramsJSON, err := json.Marshal(req.Params)
	if err != nil {
		return params, err
	}

	if err := json.Unmarshal(paramsJSON, &params); err != nil {
		return params, err
	}

	return params, nil
}

// respondWithRPCError creates a standardized RPC error response
func respondWithRPCError(c *fiber.Ctx, httpCode int, message string, data interface{}, id string) error {
	return c.Status(httpCode).JSON(RPCResponse{
		Error: &RPCError{
			Code:    httpCode,
			Message: message,
			Data:    data,
		},
		Success: false,
		ID:      id,
	})
}

// respondWithData creates a standardized RPC success response
func respondWithData(c *fiber.Ctx, data interface{}, id string) error {
	return c.JSON(RPCResponse{
		Data:    data,
		Success: true,
		ID:      id,
	})
}

// serviceErrorStatus maps known service errors to HTTP status codes. User
// mistakes (bad dates, inverted ranges) are bad requests, the referential
// guard is a conflict, everything else is a server error.
func serviceErrorStatus(err error) int {
	switch {
	case errors.Is(err, dates.ErrInvalidFormat):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrInvalidRange):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrJobTypeInUse):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
