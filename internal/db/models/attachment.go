package models

// Attachment is a reference to a file on disk, optionally linked to a job
// and/or a payment. FilePath is the absolute location of the physical file.
type Attachment struct {
	Base
	FileName      string `gorm:"not null" json:"file_name"`
	FileExtension string `json:"file_extension"`
	FilePath      string `gorm:"not null" json:"file_path"`

	JobID *uint `gorm:"index" json:"job_id,omitempty"`
	Job   *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`

	PaymentID *uint    `gorm:"index" json:"payment_id,omitempty"`
	Payment   *Payment `gorm:"foreignKey:PaymentID" json:"payment,omitempty"`
}
