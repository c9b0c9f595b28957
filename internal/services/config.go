package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/atelierhq/atelier/internal/db/models"
	"github.com/atelierhq/atelier/internal/db/repos"
)

// Well-known config keys.
const (
	ConfigKeyAttachmentsPath = "attachmentsPath"
	ConfigKeyCurrency        = "currency"
	ConfigKeyTaxRate         = "taxRate"
	ConfigKeyCompanyName     = "companyName"
	ConfigKeyCompanyEmail    = "companyEmail"
)

// defaultConfigs are seeded on startup for keys not yet set.
var defaultConfigs = []models.Config{
	{Key: ConfigKeyAttachmentsPath, Value: "./attachments"},
	{Key: ConfigKeyCurrency, Value: "USD"},
	{Key: ConfigKeyTaxRate, Value: "0.00"},
	{Key: ConfigKeyCompanyName, Value: "Your Company"},
	{Key: ConfigKeyCompanyEmail, Value: "contact@yourcompany.com"},
}

// ConfigService provides access to the key/value application settings.
type ConfigService struct {
	repo *repos.ConfigRepository
}

// NewConfigService creates a new config service and seeds the default
// settings for keys that are not set yet.
func NewConfigService(ctx context.Context, repo *repos.ConfigRepository) (*ConfigService, error) {
	s := &ConfigService{repo: repo}
	for _, def := range defaultConfigs {
		existing, err := repo.Get(ctx, def.Key)
		if err != nil {
			return nil, fmt.Errorf("failed to seed config defaults: %w", err)
		}
		if existing == nil {
			if _, err := repo.Upsert(ctx, def.Key, def.Value); err != nil {
				return nil, fmt.Errorf("failed to seed config defaults: %w", err)
			}
		}
	}
	return s, nil
}

// Get returns the value for a key, or the empty string when unset.
func (s *ConfigService) Get(ctx context.Context, key string) (string, error) {
	config, err := s.repo.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if config == nil {
		return "", nil
	}
	return config.Value, nil
}

// Set upserts a key to a value.
func (s *ConfigService) Set(ctx context.Context, key, value string) (*models.Config, error) {
	if key == "" {
		return nil, fmt.Errorf("config key is required")
	}
	return s.repo.Upsert(ctx, key, value)
}

// GetAll returns every setting.
func (s *ConfigService) GetAll(ctx context.Context) ([]models.Config, error) {
	return s.repo.List(ctx)
}

// Delete removes a setting, reporting whether one was removed.
func (s *ConfigService) Delete(ctx context.Context, key string) (bool, error) {
	return s.repo.Delete(ctx, key)
}

// GetNumber returns a setting parsed as a float, or fallback when unset or
// unparseable.
func (s *ConfigService) GetNumber(ctx context.Context, key string, fallback float64) (float64, error) {
	value, err := s.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback, nil
	}
	return n, nil
}

// AttachmentsPath returns the configured attachments root.
func (s *ConfigService) AttachmentsPath(ctx context.Context) (string, error) {
	value, err := s.Get(ctx, ConfigKeyAttachmentsPath)
	if err != nil {
		return "", err
	}
	if value == "" {
		value = "./attachments"
	}
	return value, nil
}

// Currency returns the configured currency code.
func (s *ConfigService) Currency(ctx context.Context) (string, error) {
	value, err := s.Get(ctx, ConfigKeyCurrency)
	if err != nil {
		return "", err
	}
	if value == "" {
		value = "USD"
	}
	return value, nil
}

// TaxRate returns the configured tax rate.
func (s *ConfigService) TaxRate(ctx context.Context) (float64, error) {
	return s.GetNumber(ctx, ConfigKeyTaxRate, 0)
}
