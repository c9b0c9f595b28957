// Package handlers provides the RPC method table and request handling
package handlers

// Common error messages
const (
	ErrMsgInvalidParams    = "Invalid parameters"
	ErrMsgInvalidReqFormat = "Invalid request format"
	ErrMsgMethodRequired   = "Method is required"
	ErrMsgUnknownMethod    = "Unknown method"
)

// Client error messages
const (
	ErrMsgClientNotFound     = "Client not found"
	ErrMsgClientCreateFailed = "Failed to create client"
	ErrMsgClientListFailed   = "Failed to list clients"
	ErrMsgClientUpdateFailed = "Failed to update client"
	ErrMsgClientDeleteFailed = "Failed to delete client"
)

// Job error messages
const (
	ErrMsgJobNotFound     = "Job not found"
	ErrMsgJobCreateFailed = "Failed to create job"
	ErrMsgJobListFailed   = "Failed to list jobs"
	ErrMsgJobUpdateFailed = "Failed to update job"
	ErrMsgJobDeleteFailed = "Failed to delete job"
	ErrMsgJobStatsFailed  = "Failed to compute job stats"
)

// Job type error messages
const (
	ErrMsgJobTypeNotFound     = "Job type not found"
	ErrMsgJobTypeCreateFailed = "Failed to create job type"
	ErrMsgJobTypeListFailed   = "Failed to list job types"
	ErrMsgJobTypeUpdateFailed = "Failed to update job type"
	ErrMsgJobTypeDeleteFailed = "Failed to delete job type"
	ErrMsgJobTypeInUse        = "Job type is in use by existing jobs"
)

// Payment error messages
const (
	ErrMsgPaymentNotFound     = "Payment not found"
	ErrMsgPaymentCreateFailed = "Failed to create payment"
	ErrMsgPaymentListFailed   = "Failed to list payments"
	ErrMsgPaymentUpdateFailed = "Failed to update payment"
	ErrMsgPaymentDeleteFailed = "Failed to delete payment"
	ErrMsgPaymentStatsFailed  = "Failed to compute payment stats"
)

// Attachment error messages
const (
	ErrMsgAttachmentNotFound     = "Attachment not found"
	ErrMsgAttachmentCreateFailed = "Failed to create attachment"
	ErrMsgAttachmentListFailed   = "Failed to list attachments"
	ErrMsgAttachmentDeleteFailed = "Failed to delete attachment"
	ErrMsgAttachmentSaveFailed   = "Failed to save attachment file"
	ErrMsgAttachmentReadFailed   = "Failed to read attachment file"
)

// Config error messages
const (
	ErrMsgConfigGetFailed    = "Failed to get config"
	ErrMsgConfigSetFailed    = "Failed to set config"
	ErrMsgConfigListFailed   = "Failed to list config"
	ErrMsgConfigDeleteFailed = "Failed to delete config"
)
