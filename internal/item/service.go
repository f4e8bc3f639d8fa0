package item

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/kubaGzk/eaty-backend/internal/apperr"
	"github.com/kubaGzk/eaty-backend/internal/category"
	"github.com/kubaGzk/eaty-backend/internal/composition"
	"github.com/kubaGzk/eaty-backend/internal/ingredient"
	"github.com/kubaGzk/eaty-backend/internal/pricing"
	"github.com/kubaGzk/eaty-backend/internal/size"
)

type Service struct {
	repo         Repository
	categories   category.Repository
	compositions *composition.Service
	ingredients  *ingredient.Service
	sizes        size.Repository
}

func NewService(
	repo Repository,
	categories category.Repository,
	compositions *composition.Service,
	ingredients *ingredient.Service,
	sizes size.Repository,
) *Service {
	return &Service{
		repo:         repo,
		categories:   categories,
		compositions: compositions,
		ingredients:  ingredients,
		sizes:        sizes,
	}
}

// CreateInput carries everything an item creation needs.
type CreateInput struct {
	Name                  string
	Description           string
	Category              string
	NoInheritFromCategory bool
	Size                  string
	CustomComposition     string
	BasePrice             []pricing.Entry
	Ingredients           []ItemIngredient
	ItemOptions           []category.Option
	AvailableSides        []string
}

// --------------------------------------------------
// Create item
// --------------------------------------------------
func (s *Service) Create(ctx context.Context, in CreateInput) (*Item, error) {
	// A non-inherited item has no category price to fall back to, so the
	// missing base price aborts before anything else is considered.
	if in.NoInheritFromCategory && len(in.BasePrice) == 0 {
		return nil, apperr.New(apperr.Configuration,
			"Base price for non-inherited items must be provided.")
	}

	if err := validateInput(in); err != nil {
		return nil, err
	}

	cat, err := s.categories.FindByID(ctx, in.Category)
	if err != nil {
		return nil, err
	}

	it := &Item{
		ID:                    uuid.New().String(),
		Name:                  in.Name,
		Description:           in.Description,
		Category:              cat.ID,
		NoInheritFromCategory: in.NoInheritFromCategory,
		Ingredients:           in.Ingredients,
		ItemOptions:           in.ItemOptions,
		AvailableSides:        in.AvailableSides,
	}

	if in.NoInheritFromCategory {
		if err := s.applyOwnDefinition(ctx, it, in); err != nil {
			return nil, err
		}
	} else {
		if err := s.applyInheritedDefinition(ctx, it, in, cat); err != nil {
			return nil, err
		}
	}

	for _, side := range in.AvailableSides {
		exists, err := s.repo.Exists(ctx, side)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperr.New(apperr.NotFound, "Could not find one of provided side dishes.")
		}
	}

	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}

	return it, nil
}

// applyOwnDefinition handles the non-inherited flow: the item supplies
// its own custom composition or size, and its mandatory base price.
func (s *Service) applyOwnDefinition(ctx context.Context, it *Item, in CreateInput) error {
	var sizeObj *size.Size

	switch {
	case in.CustomComposition != "":
		cc, err := s.compositions.Get(ctx, in.CustomComposition)
		if err != nil {
			return err
		}

		if err := s.compositions.CheckSelection(ctx, cc, toSelection(in.Ingredients), true); err != nil {
			return err
		}

		sizeObj, err = s.sizes.FindByID(ctx, cc.Size)
		if err != nil {
			return err
		}

		it.CustomComposition = cc.ID
		it.Size = cc.Size

	case in.Size != "":
		var err error
		sizeObj, err = s.sizes.FindByID(ctx, in.Size)
		if err != nil {
			return err
		}

		for _, ing := range in.Ingredients {
			if _, err := s.ingredients.CheckSize(ctx, ing.Ingredient, in.Size); err != nil {
				return err
			}
		}

		it.Size = in.Size

	default:
		return apperr.New(apperr.Configuration,
			"Please specify either Custom Composition or Size.")
	}

	if err := pricing.CheckNonNegative(in.BasePrice); err != nil {
		return err
	}
	if err := pricing.CheckSizeLabels(in.BasePrice, sizeObj.Values); err != nil {
		return err
	}
	it.BasePrice = in.BasePrice

	return nil
}

// applyInheritedDefinition handles the inherited flow: size and
// ingredient constraints come from the category, directly or through its
// custom composition, and the category's base price is the fallback.
func (s *Service) applyInheritedDefinition(ctx context.Context, it *Item, in CreateInput, cat *category.Category) error {
	if cat.CustomComposition != "" {
		cc, err := s.compositions.Get(ctx, cat.CustomComposition)
		if err != nil {
			return err
		}

		// The category's base ingredients extend the selection, so the
		// quotas see the full composed item.
		selection := toSelection(in.Ingredients)
		for _, base := range cat.BaseIngredients {
			selection = append(selection, composition.SelectedIngredient{
				Ingredient: base.Ingredient,
				Number:     base.Number,
			})
		}

		if err := s.compositions.CheckSelection(ctx, cc, selection, true); err != nil {
			return err
		}
	} else {
		for _, ing := range in.Ingredients {
			if _, err := s.ingredients.CheckSize(ctx, ing.Ingredient, cat.Size); err != nil {
				return err
			}
		}
	}

	it.Size = cat.Size

	if len(in.BasePrice) > 0 {
		sizeObj, err := s.sizes.FindByID(ctx, cat.Size)
		if err != nil {
			return err
		}

		if err := pricing.CheckNonNegative(in.BasePrice); err != nil {
			return err
		}
		if err := pricing.CheckSizeLabels(in.BasePrice, sizeObj.Values); err != nil {
			return err
		}
		it.BasePrice = in.BasePrice
	} else if len(cat.BasePrice) == 0 {
		return apperr.New(apperr.Configuration,
			"Base price for this item is required as category does not provide any.")
	}

	return nil
}

// --------------------------------------------------
// Read items
// --------------------------------------------------
func (s *Service) Get(ctx context.Context, id string) (*Item, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) ListByCategories(ctx context.Context, categoryIDs []string) ([]*Item, error) {
	return s.repo.ListByCategories(ctx, categoryIDs)
}

// --------------------------------------------------
// Price computation
// --------------------------------------------------

// Price computes the item's per-size price vector: base price plus every
// selected ingredient and, for inheriting items, the category's base
// ingredients. Ingredients are resolved fresh on every call, so the
// result reflects prices at query time, not at item-creation time.
func (s *Service) Price(ctx context.Context, it *Item) ([]pricing.Entry, error) {
	base := it.BasePrice

	var cat *category.Category
	if !it.NoInheritFromCategory {
		var err error
		cat, err = s.categories.FindByID(ctx, it.Category)
		if err != nil {
			return nil, err
		}
		if len(base) == 0 {
			base = cat.BasePrice
		}
	}

	var lines []pricing.Line

	for _, sel := range it.Ingredients {
		ing, err := s.ingredients.Get(ctx, sel.Ingredient)
		if err != nil {
			return nil, err
		}
		lines = append(lines, pricing.Line{Price: ing.Price, Number: sel.Number})
	}

	if cat != nil {
		for _, sel := range cat.BaseIngredients {
			ing, err := s.ingredients.Get(ctx, sel.Ingredient)
			if err != nil {
				return nil, err
			}
			lines = append(lines, pricing.Line{Price: ing.Price, Number: sel.Number})
		}
	}

	return pricing.Aggregate(base, lines), nil
}

func toSelection(ingredients []ItemIngredient) []composition.SelectedIngredient {
	selection := make([]composition.SelectedIngredient, 0, len(ingredients))
	for _, ing := range ingredients {
		selection = append(selection, composition.SelectedIngredient{
			Ingredient: ing.Ingredient,
			Number:     ing.Number,
		})
	}
	return selection
}

func validateInput(in CreateInput) error {
	errors := map[string]string{}

	if strings.TrimSpace(in.Name) == "" {
		errors["name"] = "Name must not be empty."
	}

	for _, opt := range in.ItemOptions {
		if strings.TrimSpace(opt.Name) == "" || len(opt.Values) == 0 {
			errors["itemOptions"] = "Item options must have a name and at least one value."
			break
		}
	}

	if len(errors) > 0 {
		return apperr.NewValidation(errors)
	}

	for _, ing := range in.Ingredients {
		if ing.Number < 1 {
			return apperr.New(apperr.InvalidQuantity,
				"Ingredient cannot have number less than one.")
		}
	}

	return nil
}
