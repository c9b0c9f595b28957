// Package models defines the persisted entities of the business store.
package models

import "time"

// Database field names shared by the repositories.
const (
	// CreatedAtField is the database field name for creation timestamps
	CreatedAtField = "created_at"
	// NameField is the database field name for entity names
	NameField = "name"
)

// Base holds the store-managed columns every entity carries. The store
// assigns IDs on creation and maintains both timestamps.
type Base struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListOptions provides pagination options for listing entities. Zero values
// disable the corresponding constraint.
type ListOptions struct {
	Limit  int
	Offset int
}
