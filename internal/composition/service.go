package composition

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/kubaGzk/eaty-backend/internal/apperr"
	"github.com/kubaGzk/eaty-backend/internal/ingredient"
	"github.com/kubaGzk/eaty-backend/internal/size"
)

type Service struct {
	repo        Repository
	ingredients *ingredient.Service
	sizes       size.Repository
}

func NewService(repo Repository, ingredients *ingredient.Service, sizes size.Repository) *Service {
	return &Service{repo: repo, ingredients: ingredients, sizes: sizes}
}

// --------------------------------------------------
// Create custom composition
// --------------------------------------------------
func (s *Service) Create(
	ctx context.Context,
	name string,
	sizeID string,
	groups []Group,
	ingredients []CompositionIngredient,
) (*CustomComposition, error) {

	if err := validateInput(name, groups); err != nil {
		return nil, err
	}

	if _, err := s.sizes.FindByID(ctx, sizeID); err != nil {
		return nil, err
	}

	// Every declared ingredient must exist and carry the composition's size.
	for _, ing := range ingredients {
		if _, err := s.ingredients.CheckSize(ctx, ing.Ingredient, sizeID); err != nil {
			return nil, err
		}
	}

	// Structural rules: declared group membership and sane per-line caps.
	for _, ing := range ingredients {
		if !groupDeclared(groups, ing.Group) {
			return nil, apperr.New(apperr.Configuration,
				"One of the ingredients has incorrect group.")
		}
		if ing.MaxNumber < 1 {
			return nil, apperr.New(apperr.InvalidQuantity,
				"One of the ingredients has maximum number less than one.")
		}
	}

	cc := &CustomComposition{
		ID:          uuid.New().String(),
		Name:        name,
		Size:        sizeID,
		Groups:      groups,
		Ingredients: ingredients,
		Categories:  []string{},
		Items:       []string{},
	}

	if err := s.repo.Create(ctx, cc); err != nil {
		return nil, err
	}

	return cc, nil
}

// --------------------------------------------------
// Read custom compositions
// --------------------------------------------------
func (s *Service) Get(ctx context.Context, id string) (*CustomComposition, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*CustomComposition, error) {
	return s.repo.List(ctx)
}

// --------------------------------------------------
// Selection check against a composition's rules
// --------------------------------------------------

// CheckSelection verifies membership, resolves every selected ingredient
// record, then evaluates the group quotas. Read-only: validating the same
// selection twice yields the same outcome.
func (s *Service) CheckSelection(
	ctx context.Context,
	cc *CustomComposition,
	selection []SelectedIngredient,
	strict bool,
) error {

	for _, sel := range selection {
		if _, ok := cc.FindIngredient(sel.Ingredient); !ok {
			return apperr.New(apperr.NotInComposition,
				"One of the ingredients is not part of provided Custom Composition.")
		}

		if _, err := s.ingredients.Get(ctx, sel.Ingredient); err != nil {
			return err
		}
	}

	return cc.ValidateSelection(selection, strict)
}

func groupDeclared(groups []Group, name string) bool {
	for _, gr := range groups {
		if gr.Name == name {
			return true
		}
	}
	return false
}

func validateInput(name string, groups []Group) error {
	errors := map[string]string{}

	if strings.TrimSpace(name) == "" {
		errors["name"] = "Name must not be empty."
	}

	if len(groups) == 0 {
		errors["groups"] = "At least one group must be provided."
	} else {
		seen := map[string]bool{}
		for _, gr := range groups {
			if strings.TrimSpace(gr.Name) == "" {
				errors["groups"] = "Group names must not be empty."
				break
			}
			if seen[gr.Name] {
				errors["groups"] = "Group names must be unique."
				break
			}
			seen[gr.Name] = true

			if gr.MinIng < 0 || gr.MaxIng < gr.MinIng || gr.MaxTotal < 1 {
				errors["groups"] = "Group limits must be consistent."
				break
			}
		}
	}

	if len(errors) > 0 {
		return apperr.NewValidation(errors)
	}
	return nil
}
