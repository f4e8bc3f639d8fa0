package size

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/kubaGzk/eaty-backend/internal/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Create size
// --------------------------------------------------
func (s *Service) Create(ctx context.Context, name string, values []string) (*Size, error) {
	if err := validateInput(name, values); err != nil {
		return nil, err
	}

	size := &Size{
		ID:     uuid.New().String(),
		Name:   name,
		Values: values,
	}

	if err := s.repo.Create(ctx, size); err != nil {
		return nil, err
	}

	return size, nil
}

// --------------------------------------------------
// Read sizes
// --------------------------------------------------
func (s *Service) Get(ctx context.Context, id string) (*Size, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Size, error) {
	return s.repo.List(ctx)
}

// validateInput accumulates every failing field for display.
func validateInput(name string, values []string) error {
	errors := map[string]string{}

	if strings.TrimSpace(name) == "" {
		errors["name"] = "Name must not be empty."
	}

	if len(values) == 0 {
		errors["values"] = "At least one size value must be provided."
	} else {
		seen := map[string]bool{}
		for _, v := range values {
			if strings.TrimSpace(v) == "" {
				errors["values"] = "Size values must not be empty."
				break
			}
			if seen[v] {
				errors["values"] = "Size values must be unique."
				break
			}
			seen[v] = true
		}
	}

	if len(errors) > 0 {
		return apperr.NewValidation(errors)
	}
	return nil
}
