package models

// DefaultJobTypeColor is the color assigned to job types created without one.
const DefaultJobTypeColor = "#3B82F6"

// JobType is a reusable billing template referenced by zero or more jobs.
type JobType struct {
	Base
	Name        string  `gorm:"not null;uniqueIndex" json:"name"`
	Description string  `gorm:"type:text" json:"description,omitempty"`
	BasePrice   float64 `gorm:"not null;default:0" json:"base_price"`
	BaseHours   float64 `gorm:"not null;default:1" json:"base_hours"`
	ColorHex    string  `gorm:"type:varchar(7);not null;default:#3B82F6" json:"color_hex"`

	Jobs []Job `gorm:"foreignKey:JobTypeID" json:"jobs,omitempty"`
}
