package category

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/kubaGzk/eaty-backend/internal/apperr"
	"github.com/kubaGzk/eaty-backend/internal/composition"
	"github.com/kubaGzk/eaty-backend/internal/ingredient"
	"github.com/kubaGzk/eaty-backend/internal/pricing"
	"github.com/kubaGzk/eaty-backend/internal/size"
)

type Service struct {
	repo         Repository
	compositions *composition.Service
	ingredients  *ingredient.Service
	sizes        size.Repository
	sides        SideChecker
}

func NewService(
	repo Repository,
	compositions *composition.Service,
	ingredients *ingredient.Service,
	sizes size.Repository,
	sides SideChecker,
) *Service {
	return &Service{
		repo:         repo,
		compositions: compositions,
		ingredients:  ingredients,
		sizes:        sizes,
		sides:        sides,
	}
}

// CreateInput carries everything a category creation needs. Exactly one
// of Size or CustomComposition must be set.
type CreateInput struct {
	Name              string
	Size              string
	CustomComposition string
	BasePrice         []pricing.Entry
	BaseIngredients   []BaseIngredient
	Options           []Option
	AvailableSides    []string
}

// --------------------------------------------------
// Create category
// --------------------------------------------------
func (s *Service) Create(ctx context.Context, in CreateInput) (*Category, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	if in.Size != "" && in.CustomComposition != "" {
		return nil, apperr.New(apperr.Configuration,
			"Please specify either Custom Composition or Size, not both.")
	}

	cat := &Category{
		ID:              uuid.New().String(),
		Name:            in.Name,
		BasePrice:       in.BasePrice,
		BaseIngredients: in.BaseIngredients,
		Options:         in.Options,
		AvailableSides:  in.AvailableSides,
		Items:           []string{},
	}

	var sizeObj *size.Size

	switch {
	case in.CustomComposition != "":
		cc, err := s.compositions.Get(ctx, in.CustomComposition)
		if err != nil {
			return nil, err
		}

		// Base ingredients must be declared members of the composition;
		// the minimum quotas do not apply to a category definition.
		selection := make([]composition.SelectedIngredient, 0, len(in.BaseIngredients))
		for _, ing := range in.BaseIngredients {
			selection = append(selection, composition.SelectedIngredient{
				Ingredient: ing.Ingredient,
				Number:     ing.Number,
			})
		}
		if err := s.compositions.CheckSelection(ctx, cc, selection, false); err != nil {
			return nil, err
		}

		sizeObj, err = s.sizes.FindByID(ctx, cc.Size)
		if err != nil {
			return nil, err
		}

		cat.CustomComposition = cc.ID
		cat.Size = cc.Size

	case in.Size != "":
		var err error
		sizeObj, err = s.sizes.FindByID(ctx, in.Size)
		if err != nil {
			return nil, err
		}

		for _, ing := range in.BaseIngredients {
			if _, err := s.ingredients.CheckSize(ctx, ing.Ingredient, in.Size); err != nil {
				return nil, err
			}
		}

		cat.Size = in.Size

	default:
		return nil, apperr.New(apperr.Configuration,
			"Please specify either Custom Composition or Size.")
	}

	if len(in.BasePrice) > 0 {
		if err := pricing.CheckNonNegative(in.BasePrice); err != nil {
			return nil, err
		}
		if err := pricing.CheckSizeLabels(in.BasePrice, sizeObj.Values); err != nil {
			return nil, err
		}
	}

	for _, side := range in.AvailableSides {
		exists, err := s.sides.Exists(ctx, side)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperr.New(apperr.NotFound, "Could not find one of provided side dishes.")
		}
	}

	if err := s.repo.Create(ctx, cat); err != nil {
		return nil, err
	}

	return cat, nil
}

// --------------------------------------------------
// Read categories
// --------------------------------------------------
func (s *Service) Get(ctx context.Context, id string) (*Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Category, error) {
	return s.repo.List(ctx)
}

func validateInput(in CreateInput) error {
	errors := map[string]string{}

	if strings.TrimSpace(in.Name) == "" {
		errors["name"] = "Name must not be empty."
	}

	for _, ing := range in.BaseIngredients {
		if ing.Number < 1 {
			errors["baseIngredients"] = "Base ingredients cannot have number less than one."
			break
		}
	}

	for _, opt := range in.Options {
		if strings.TrimSpace(opt.Name) == "" || len(opt.Values) == 0 {
			errors["options"] = "Options must have a name and at least one value."
			break
		}
	}

	if len(errors) > 0 {
		return apperr.NewValidation(errors)
	}
	return nil
}
