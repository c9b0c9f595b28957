// Package repos provides data access for the business entities.
package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/atelierhq/atelier/internal/db/models"
)

// ClientRepository provides access to client-related database operations
type ClientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository instance
func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// Create inserts a new client.
func (r *ClientRepository) Create(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

// GetByID retrieves a client with its jobs. Returns nil when no client
// exists with the given id.
func (r *ClientRepository) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	err := r.db.WithContext(ctx).Preload("Jobs").First(&client, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return &client, nil
}

// List returns all clients, newest first.
func (r *ClientRepository) List(ctx context.Context, opts *models.ListOptions) ([]models.Client, error) {
	var clients []models.Client
	err := scopeList(r.db.WithContext(ctx), opts).
		Preload("Jobs").
		Order(models.CreatedAtField + " DESC").
		Find(&clients).Error
	return clients, err
}

// UpdateFields applies a partial update to the given client row.
func (r *ClientRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Client{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return false, fmt.Errorf("failed to update client: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Delete removes a client row, reporting whether one was removed.
func (r *ClientRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Client{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete client: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Search finds clients whose name, email, phone or discord handle contains
// the term, case-insensitively.
func (r *ClientRepository) Search(ctx context.Context, term string) ([]models.Client, error) {
	var clients []models.Client
	pattern := likePattern(term)
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(phone) LIKE ? OR LOWER(discord) LIKE ?",
			pattern, pattern, pattern, pattern).
		Order(models.CreatedAtField + " DESC").
		Find(&clients).Error
	return clients, err
}
