package models

// Payment is a monetary record tied to a job. PaymentDate, when present,
// holds a canonical DD/MM/YYYY string.
type Payment struct {
	Base
	Amount      float64 `gorm:"not null" json:"amount"`
	PaymentDate *string `gorm:"column:payment_date" json:"payment_date,omitempty"`
	Description string  `gorm:"type:text" json:"description,omitempty"`

	JobID *uint `gorm:"index" json:"job_id,omitempty"`
	Job   *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`

	Attachments []Attachment `gorm:"foreignKey:PaymentID" json:"attachments,omitempty"`
}
