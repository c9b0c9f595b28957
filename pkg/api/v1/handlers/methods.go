// Package handlers provides the RPC method table and request handling
package handlers

// RPC method constants. Names follow the entity:verb channel convention the
// UI process invokes.
const (
	// Client methods
	ClientCreate  = "client:create"
	ClientGetAll  = "client:getAll"
	ClientGetByID = "client:getById"
	ClientUpdate  = "client:update"
	ClientDelete  = "client:delete"
	ClientSearch  = "client:search"

	// Job methods
	JobCreate          = "job:create"
	JobGetAll          = "job:getAll"
	JobGetByID         = "job:getById"
	JobGetByClient     = "job:getByClient"
	JobGetByStatus     = "job:getByStatus"
	JobGetByDateRange  = "job:getByDateRange"
	JobUpdate          = "job:update"
	JobUpdateStatus    = "job:updateStatus"
	JobDelete          = "job:delete"
	JobSearch          = "job:search"
	JobGetStats        = "job:getStats"
	JobGetHighestPrice = "job:getHighestPriced"

	// Job type methods
	JobTypeCreate  = "jobType:create"
	JobTypeGetAll  = "jobType:getAll"
	JobTypeGetByID = "jobType:getById"
	JobTypeUpdate  = "jobType:update"
	JobTypeDelete  = "jobType:delete"
	JobTypeSearch  = "jobType:search"

	// Payment methods
	PaymentCreate         = "payment:create"
	PaymentGetAll         = "payment:getAll"
	PaymentGetByID        = "payment:getById"
	PaymentGetByJob       = "payment:getByJob"
	PaymentGetByDateRange = "payment:getByDateRange"
	PaymentUpdate         = "payment:update"
	PaymentDelete         = "payment:delete"
	PaymentGetStats       = "payment:getStats"

	// Attachment methods
	AttachmentCreate     = "attachment:create"
	AttachmentGetAll     = "attachment:getAll"
	AttachmentGetByID    = "attachment:getById"
	AttachmentGetByJob   = "attachment:getByJob"
	AttachmentDelete     = "attachment:delete"
	AttachmentSaveFile   = "attachment:saveFile"
	AttachmentGetContent = "attachment:getContent"

	// Config methods
	ConfigGet    = "config:get"
	ConfigSet    = "config:set"
	ConfigGetAll = "config:getAll"
	ConfigDelete = "config:delete"
)

// IsClientMethod checks if the given method is a client operation
func IsClientMethod(method string) bool {
	switch method {
	case ClientCreate, ClientGetAll, ClientGetByID, ClientUpdate, ClientDelete, ClientSearch:
		return true
	default:
		return false
	}
}

// IsJobMethod checks if the given method is a job operation
func IsJobMethod(method string) bool {
	switch method {
	case JobCreate, JobGetAll, JobGetByID, JobGetByClient, JobGetByStatus, JobGetByDateRange,
		JobUpdate, JobUpdateStatus, JobDelete, JobSearch, JobGetStats, JobGetHighestPrice:
		return true
	default:
		return false
	}
}

// IsJobTypeMethod checks if the given method is a job type operation
func IsJobTypeMethod(method string) bool {
	switch method {
	case JobTypeCreate, JobTypeGetAll, JobTypeGetByID, JobTypeUpdate, JobTypeDelete, JobTypeSearch:
		return true
	default:
		return false
	}
}

// IsPaymentMethod checks if the given method is a payment operation
func IsPaymentMethod(method string) bool {
	switch method {
	case PaymentCreate, PaymentGetAll, PaymentGetByID, PaymentGetByJob, PaymentGetByDateRange,
		PaymentUpdate, PaymentDelete, PaymentGetStats:
		return true
	default:
		return false
	}
}

// IsAttachmentMethod checks if the given method is an attachment operation
func IsAttachmentMethod(method string) bool {
	switch method {
	case AttachmentCreate, AttachmentGetAll, AttachmentGetByID, AttachmentGetByJob,
		AttachmentDelete, AttachmentSaveFile, AttachmentGetContent:
		return true
	default:
		return false
	}
}

// IsConfigMethod checks if the given method is a config operation
func IsConfigMethod(method string) bool {
	switch method {
	case ConfigGet, ConfigSet, ConfigGetAll, ConfigDelete:
		return true
	default:
		return false
	}
}
