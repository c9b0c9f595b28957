package models

import "fmt"

// Status represents the current state of a job. Values are persisted as the
// lowercase strings below; there is no enforced transition graph.
type Status string

// Job status constants
const (
	// StatusPending indicates the job has not been started yet
	StatusPending Status = "pending"
	// StatusInProgress indicates work on the job is underway
	StatusInProgress Status = "in_progress"
	// StatusCompleted indicates the job has been finished
	StatusCompleted Status = "completed"
	// StatusCancelled indicates the job was abandoned
	StatusCancelled Status = "cancelled"
)

// ParseStatus converts a string representation of a job status to Status
func ParseStatus(str string) (Status, error) {
	s := Status(str)
	if !s.Valid() {
		return "", fmt.Errorf("invalid job status: %q", str)
	}
	return s, nil
}

// Valid reports whether s is one of the defined job statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

// Job represents a unit of billable work. All date columns hold canonical
// DD/MM/YYYY strings; consumers reading the store directly must respect that
// format (it is not ISO-8601).
type Job struct {
	Base
	Title       string   `gorm:"not null" json:"title"`
	Description string   `gorm:"type:text" json:"description,omitempty"`
	Status      Status   `gorm:"type:varchar(20);not null;default:pending;index" json:"status"`
	Price       *float64 `json:"price,omitempty"`

	DueDate       *string `gorm:"column:due_date" json:"due_date,omitempty"`
	StartDate     *string `gorm:"column:start_date" json:"start_date,omitempty"`
	CompletedDate *string `gorm:"column:completed_date" json:"completed_date,omitempty"`

	ClientID *uint   `gorm:"index" json:"client_id,omitempty"`
	Client   *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	JobTypeID *uint    `gorm:"index" json:"job_type_id,omitempty"`
	JobType   *JobType `gorm:"foreignKey:JobTypeID" json:"job_type,omitempty"`

	Payments    []Payment    `gorm:"foreignKey:JobID" json:"payments,omitempty"`
	Attachments []Attachment `gorm:"foreignKey:JobID" json:"attachments,omitempty"`
}
