// Package handlers provides the RPC method table and request handling
package handlers

import (
	"fmt"
	"time"

	"github.com/atelierhq/atelier/internal/db/models"
	"github.com/atelierhq/atelier/internal/services"
)

// IDParams addresses a single entity by id.
type IDParams struct {
	ID uint `json:"id"`
}

// Validate validates the parameters
func (p IDParams) Validate() error {
	if p.ID == 0 {
		return fmt.Errorf("id is required")
	}
	return nil
}

// SearchParams carries a substring search term.
type SearchParams struct {
	Term string `json:"term"`
}

// Validate validates the parameters
func (p SearchParams) Validate() error {
	if p.Term == "" {
		return fmt.Errorf("search term is required")
	}
	return nil
}

// ListParams carries optional pagination.
type ListParams struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Options converts the params into store list options.
func (p ListParams) Options() *models.ListOptions {
	if p.Limit == 0 && p.Offset == 0 {
		return nil
	}
	return &models.ListOptions{Limit: p.Limit, Offset: p.Offset}
}

// ClientUpdateParams carries a client id and its partial update.
type ClientUpdateParams struct {
	ID     uint                  `json:"id"`
	Update services.ClientUpdate `json:"update"`
}

// Validate validates the parameters
func (p ClientUpdateParams) Validate() error {
	if p.ID == 0 {
		return fmt.Errorf("id is required")
	}
	return nil
}

// JobUpdateParams carries a job id and its partial update.
type JobUpdateParams struct {
	ID     uint               `json:"id"`
	Update services.JobUpdate `json:"update"`
}

// Validate validates the parameters
func (p JobUpdateParams) Validate() error {
	if p.ID == 0 {
		return fmt.Errorf("id is required")
	}
	return nil
}

// JobUpdateStatusParams carries a job id and its new status.
type JobUpdateStatusParams struct {
	ID     uint          `json:"id"`
	Status models.Status `json:"status"`
}

// Validate validates the parameters
func (p JobUpdateStatusParams) Validate() error {
	if p.ID == 0 {
		return fmt.Errorf("id is required")
	}
	if !p.Status.Valid() {
		return fmt.Errorf("invalid job status: %q", p.Status)
	}
	return nil
}

// JobByClientParams selects jobs by owning client.
type JobByClientParams struct {
	ClientID uint `json:"client_id"`
}

// Validate validates the parameters
func (p JobByClientParams) Validate() error {
	if p.ClientID == 0 {
		return fmt.Errorf("client_id is required")
	}
	return nil
}

// JobByStatusParams selects jobs by status.
type JobByStatusParams struct {
	Status models.Status `json:"status"`
}

// Validate validates the parameters
func (p JobByStatusParams) Validate() error {
	if !p.Status.Valid() {
		return fmt.Errorf("invalid job status: %q", p.Status)
	}
	return nil
}

// JobDateRangeParams selects jobs occupying a calendar window. End may be
// empty for an exact-day query; Status optionally restricts matching.
// Start and End accept canonical DD/MM/YYYY or ISO date strings.
type JobDateRangeParams struct {
	Start  string         `json:"start"`
	End    string         `json:"end"`
	Status *models.Status `json:"status"`
}

// Validate validates the parameters
func (p JobDateRangeParams) Validate() error {
	if p.Start == "" {
		return fmt.Errorf("start date is required")
	}
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("invalid job status: %q", *p.Status)
	}
	return nil
}

// JobTypeUpdateParams carries a job type id and its partial update.
type JobTypeUpdateParams struct {
	ID     uint                   `json:"id"`
	Update services.JobTypeUpdate `json:"update"`
}

// Validate validates the parameters
func (p JobTypeUpdateParams) Validate() error {
	if p.ID == 0 {
		return fmt.Errorf("id is required")
	}
	return nil
}

// PaymentUpdateParams carries a payment id and its partial update.
type PaymentUpdateParams struct {
	ID     uint                   `json:"id"`
	Update services.PaymentUpdate `json:"update"`
}

// Validate validates the parameters
func (p PaymentUpdateParams) Validate() error {
	if p.ID == 0 {
		return fmt.Errorf("id is required")
	}
	return nil
}

// PaymentByJobParams selects payments by owning job.
type PaymentByJobParams struct {
	JobID uint `json:"job_id"`
}

// Validate validates the parameters
func (p PaymentByJobParams) Validate() error {
	if p.JobID == 0 {
		return fmt.Errorf("job_id is required")
	}
	return nil
}

// PaymentDateRangeParams selects payments recorded inside a timestamp
// window.
type PaymentDateRangeParams struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Validate validates the parameters
func (p PaymentDateRangeParams) Validate() error {
	if p.Start.IsZero() || p.End.IsZero() {
		return fmt.Errorf("start and end are required")
	}
	if p.End.Before(p.Start) {
		return fmt.Errorf("end precedes start")
	}
	return nil
}

// AttachmentSaveFileParams carries an uploaded file. Data travels base64 in
// JSON.
type AttachmentSaveFileParams struct {
	FileName  string `json:"file_name"`
	Data      []byte `json:"data"`
	JobID     *uint  `json:"job_id"`
	PaymentID *uint  `json:"payment_id"`
}

// Validate validates the parameters
func (p AttachmentSaveFileParams) Validate() error {
	if p.FileName == "" {
		return fmt.Errorf("file_name is required")
	}
	return nil
}

// ConfigKeyParams addresses a setting by key.
type ConfigKeyParams struct {
	Key string `json:"key"`
}

// Validate validates the parameters
func (p ConfigKeyParams) Validate() error {
	if p.Key == "" {
		return fmt.Errorf("key is required")
	}
	return nil
}

// ConfigSetParams upserts a setting.
type ConfigSetParams struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Validate validates the parameters
func (p ConfigSetParams) Validate() error {
	if p.Key == "" {
		return fmt.Errorf("key is required")
	}
	return nil
}
