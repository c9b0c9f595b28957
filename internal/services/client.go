// Package services implements the business layer over the entity
// repositories: the job status lifecycle, calendar range queries, cascade
// deletion, aggregate statistics and attachment file storage.
package services

import (
	"context"
	"fmt"

	"github.com/atelierhq/atelier/internal/db/models"
	"github.com/atelierhq/atelier/internal/db/repos"
)

// ClientService provides business logic for client operations.
type ClientService struct {
	repo *repos.ClientRepository
}

// NewClientService creates a new client service instance.
func NewClientService(repo *repos.ClientRepository) *ClientService {
	return &ClientService{repo: repo}
}

// ClientCreate names the fields a caller may supply when creating a client.
type ClientCreate struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Discord string `json:"discord"`
}

// ClientUpdate names the updatable scalar fields of a client. Nil fields
// are left untouched.
type ClientUpdate struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Discord *string `json:"discord"`
}

// Create creates a new client. Name and email are required.
func (s *ClientService) Create(ctx context.Context, in ClientCreate) (*models.Client, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("client name is required")
	}
	if in.Email == "" {
		return nil, fmt.Errorf("client email is required")
	}
	client := models.Client{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Discord: in.Discord,
	}
	if err := s.repo.Create(ctx, &client); err != nil {
		return nil, err
	}
	return &client, nil
}

// GetAll returns all clients with their jobs, newest first.
func (s *ClientService) GetAll(ctx context.Context, opts *models.ListOptions) ([]models.Client, error) {
	return s.repo.List(ctx, opts)
}

// GetByID returns a client, or nil when it does not exist.
func (s *ClientService) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies a partial update. Returns nil when the client does not
// exist.
func (s *ClientService) Update(ctx context.Context, id uint, in ClientUpdate) (*models.Client, error) {
	fields := map[string]interface{}{}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("client name is required")
		}
		fields["name"] = *in.Name
	}
	if in.Email != nil {
		if *in.Email == "" {
			return nil, fmt.Errorf("client email is required")
		}
		fields["email"] = *in.Email
	}
	if in.Phone != nil {
		fields["phone"] = *in.Phone
	}
	if in.Discord != nil {
		fields["discord"] = *in.Discord
	}
	if len(fields) > 0 {
		if _, err := s.repo.UpdateFields(ctx, id, fields); err != nil {
			return nil, err
		}
	}
	return s.repo.GetByID(ctx, id)
}

// Delete removes a client, reporting whether a row was removed. Jobs keep
// their rows; their client reference simply dangles no further (job
// deletion cascades are job-side, see JobService.Delete).
func (s *ClientService) Delete(ctx context.Context, id uint) (bool, error) {
	return s.repo.Delete(ctx, id)
}

// Search finds clients by name, email, phone or discord handle.
func (s *ClientService) Search(ctx context.Context, term string) ([]models.Client, error) {
	return s.repo.Search(ctx, term)
}
