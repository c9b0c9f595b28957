package models

// Client is a billing contact that owns zero or more jobs.
type Client struct {
	Base
	Name    string `gorm:"not null;index" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Phone   string `json:"phone,omitempty"`
	Discord string `json:"discord,omitempty"`

	Jobs []Job `gorm:"foreignKey:ClientID" json:"jobs,omitempty"`
}
