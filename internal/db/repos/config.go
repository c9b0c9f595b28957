package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/atelierhq/atelier/internal/db/models"
)

// ConfigRepository provides access to the key/value settings table
type ConfigRepository struct {
	db *gorm.DB
}

// NewConfigRepository creates a new config repository instance
func NewConfigRepository(db *gorm.DB) *ConfigRepository {
	return &ConfigRepository{db: db}
}

// Get retrieves a setting. Returns nil when the key is not set.
func (r *ConfigRepository) Get(ctx context.Context, key string) (*models.Config, error) {
	var config models.Config
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&config).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get config %q: %w", key, err)
	}
	return &config, nil
}

// Upsert sets a key to a value, inserting or overwriting as needed.
func (r *ConfigRepository) Upsert(ctx context.Context, key, value string) (*models.Config, error) {
	config := models.Config{Key: key, Value: value}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&config).Error
	if err != nil {
		return nil, fmt.Errorf("failed to set config %q: %w", key, err)
	}
	return &config, nil
}

// List returns every setting.
func (r *ConfigRepository) List(ctx context.Context) ([]models.Config, error) {
	var configs []models.Config
	err := r.db.WithContext(ctx).Find(&configs).Error
	return configs, err
}

// Delete removes a setting, reporting whether one was removed.
func (r *ConfigRepository) Delete(ctx context.Context, key string) (bool, error) {
	res := r.db.WithContext(ctx).Where("key = ?", key).Delete(&models.Config{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete config %q: %w", key, res.Error)
	}
	return res.RowsAffected > 0, nil
}
