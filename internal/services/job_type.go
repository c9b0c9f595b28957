package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/atelierhq/atelier/internal/db/models"
	"github.com/atelierhq/atelier/internal/db/repos"
)

// ErrJobTypeInUse is returned when deleting a job type that jobs still
// reference.
var ErrJobTypeInUse = errors.New("job type is in use by existing jobs")

var colorHexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// JobTypeService provides business logic for job type operations, including
// the referential guard on deletion.
type JobTypeService struct {
	repo *repos.JobTypeRepository
	jobs *repos.JobRepository
}

// NewJobTypeService creates a new job type service instance.
func NewJobTypeService(repo *repos.JobTypeRepository, jobs *repos.JobRepository) *JobTypeService {
	return &JobTypeService{repo: repo, jobs: jobs}
}

// JobTypeCreate names the fields a caller may supply when creating a job
// type.
type JobTypeCreate struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price"`
	BaseHours   float64 `json:"base_hours"`
	ColorHex    string  `json:"color_hex"`
}

// JobTypeUpdate names the updatable scalar fields of a job type. Nil fields
// are left untouched.
type JobTypeUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	BasePrice   *float64 `json:"base_price"`
	BaseHours   *float64 `json:"base_hours"`
	ColorHex    *string  `json:"color_hex"`
}

// Create creates a new job type. The color defaults to the standard blue
// when not supplied.
func (s *JobTypeService) Create(ctx context.Context, in JobTypeCreate) (*models.JobType, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("job type name is required")
	}
	if in.BasePrice < 0 {
		return nil, fmt.Errorf("job type base price must not be negative")
	}
	if in.BaseHours <= 0 {
		return nil, fmt.Errorf("job type base hours must be positive")
	}
	color := in.ColorHex
	if color == "" {
		color = models.DefaultJobTypeColor
	}
	if !colorHexPattern.MatchString(color) {
		return nil, fmt.Errorf("invalid color %q, expected #RRGGBB", color)
	}
	jobType := models.JobType{
		Name:        in.Name,
		Description: in.Description,
		BasePrice:   in.BasePrice,
		BaseHours:   in.BaseHours,
		ColorHex:    color,
	}
	if err := s.repo.Create(ctx, &jobType); err != nil {
		return nil, err
	}
	return &jobType, nil
}

// GetAll returns all job types ordered by name.
func (s *JobTypeService) GetAll(ctx context.Context) ([]models.JobType, error) {
	return s.repo.List(ctx)
}

// GetByID returns a job type, or nil when it does not exist.
func (s *JobTypeService) GetByID(ctx context.Context, id uint) (*models.JobType, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies a partial update. Returns nil when the job type does not
// exist.
func (s *JobTypeService) Update(ctx context.Context, id uint, in JobTypeUpdate) (*models.JobType, error) {
	fields := map[string]interface{}{}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("job type name is required")
		}
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.BasePrice != nil {
		if *in.BasePrice < 0 {
			return nil, fmt.Errorf("job type base price must not be negative")
		}
		fields["base_price"] = *in.BasePrice
	}
	if in.BaseHours != nil {
		if *in.BaseHours <= 0 {
			return nil, fmt.Errorf("job type base hours must be positive")
		}
		fields["base_hours"] = *in.BaseHours
	}
	if in.ColorHex != nil {
		if !colorHexPattern.MatchString(*in.ColorHex) {
			return nil, fmt.Errorf("invalid color %q, expected #RRGGBB", *in.ColorHex)
		}
		fields["color_hex"] = *in.ColorHex
	}
	if len(fields) > 0 {
		if _, err := s.repo.UpdateFields(ctx, id, fields); err != nil {
			return nil, err
		}
	}
	return s.repo.GetByID(ctx, id)
}

// Delete removes a job type unless any job still references it. Reports
// whether a row was removed.
func (s *JobTypeService) Delete(ctx context.Context, id uint) (bool, error) {
	count, err := s.jobs.CountByJobType(ctx, id)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, fmt.Errorf("%w: %d job(s) reference job type %d", ErrJobTypeInUse, count, id)
	}
	return s.repo.Delete(ctx, id)
}

// Search finds job types by name or description.
func (s *JobTypeService) Search(ctx context.Context, term string) ([]models.JobType, error) {
	return s.repo.Search(ctx, term)
}
