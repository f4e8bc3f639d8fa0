package ingredient

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/kubaGzk/eaty-backend/internal/apperr"
	"github.com/kubaGzk/eaty-backend/internal/pricing"
	"github.com/kubaGzk/eaty-backend/internal/size"
)

type Service struct {
	repo  Repository
	sizes size.Repository
}

func NewService(repo Repository, sizes size.Repository) *Service {
	return &Service{repo: repo, sizes: sizes}
}

// --------------------------------------------------
// Create ingredient
// --------------------------------------------------
func (s *Service) Create(
	ctx context.Context,
	name string,
	uniqueName string,
	sizeID string,
	price []pricing.Entry,
) (*Ingredient, error) {

	if err := validateInput(name, uniqueName); err != nil {
		return nil, err
	}

	sizeObj, err := s.sizes.FindByID(ctx, sizeID)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByUniqueName(ctx, uniqueName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.NewValidation(map[string]string{
			"uniqueName": "Unique name of ingredient is already used.",
		})
	}

	if err := pricing.CheckNonNegative(price); err != nil {
		return nil, err
	}

	// Price table must cover the size labels exactly, no gaps, no extras.
	if err := pricing.CheckSizeLabels(price, sizeObj.Values); err != nil {
		return nil, err
	}

	ing := &Ingredient{
		ID:         uuid.New().String(),
		Name:       name,
		UniqueName: uniqueName,
		Size:       sizeID,
		Price:      price,
	}

	if err := s.repo.Create(ctx, ing); err != nil {
		return nil, err
	}

	return ing, nil
}

// --------------------------------------------------
// Read ingredients
// --------------------------------------------------
func (s *Service) Get(ctx context.Context, id string) (*Ingredient, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter Filter) ([]*Ingredient, error) {
	return s.repo.List(ctx, filter)
}

// CheckSize fetches an ingredient and verifies it carries the required
// size. Shared by compositions, categories and items.
func (s *Service) CheckSize(ctx context.Context, id string, requiredSize string) (*Ingredient, error) {
	ing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if ing.Size != requiredSize {
		return nil, apperr.New(apperr.SizeMismatch,
			"One of the ingredients has different Size than provided.")
	}

	return ing, nil
}

func validateInput(name, uniqueName string) error {
	errors := map[string]string{}

	if strings.TrimSpace(name) == "" {
		errors["name"] = "Name must not be empty."
	}

	trimmed := strings.TrimSpace(uniqueName)
	if trimmed == "" {
		errors["uniqueName"] = "Unique name must not be empty."
	} else if strings.Contains(trimmed, " ") {
		errors["uniqueName"] = "Unique name must not contain spaces."
	}

	if len(errors) > 0 {
		return apperr.NewValidation(errors)
	}
	return nil
}
