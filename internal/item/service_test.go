package item

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kubaGzk/eaty-backend/internal/apperr"
	"github.com/kubaGzk/eaty-backend/internal/category"
	"github.com/kubaGzk/eaty-backend/internal/composition"
	"github.com/kubaGzk/eaty-backend/internal/ingredient"
	"github.com/kubaGzk/eaty-backend/internal/pricing"
	"github.com/kubaGzk/eaty-backend/internal/size"
)

type fixture struct {
	service      *Service
	repo         *InMemoryRepository
	categories   *category.InMemoryRepository
	compositions *composition.InMemoryRepository
	ingredients  *ingredient.Service
	sizes        *size.InMemoryRepository
	sizeID       string
	otherSizeID  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	sizes := size.NewInMemoryRepository()
	ingredientRepo := ingredient.NewInMemoryRepository()
	compositionRepo := composition.NewInMemoryRepository()
	categoryRepo := category.NewInMemoryRepository(compositionRepo)
	itemRepo := NewInMemoryRepository(categoryRepo, compositionRepo)

	ingredientService := ingredient.NewService(ingredientRepo, sizes)
	compositionService := composition.NewService(compositionRepo, ingredientService, sizes)
	service := NewService(itemRepo, categoryRepo, compositionService, ingredientService, sizes)

	pizza := &size.Size{ID: uuid.New().String(), Name: "Pizza", Values: []string{"Small", "Large"}}
	require.NoError(t, sizes.Create(ctx, pizza))
	drink := &size.Size{ID: uuid.New().String(), Name: "Drink", Values: []string{"Regular"}}
	require.NoError(t, sizes.Create(ctx, drink))

	return &fixture{
		service:      service,
		repo:         itemRepo,
		categories:   categoryRepo,
		compositions: compositionRepo,
		ingredients:  ingredientService,
		sizes:        sizes,
		sizeID:       pizza.ID,
		otherSizeID:  drink.ID,
	}
}

func (f *fixture) addIngredient(t *testing.T, small, large int64) string {
	t.Helper()

	name := "ing-" + uuid.New().String()[:8]
	ing, err := f.ingredients.Create(context.Background(), name, name, f.sizeID,
		[]pricing.Entry{
			{Size: "Small", Price: decimal.NewFromInt(small)},
			{Size: "Large", Price: decimal.NewFromInt(large)},
		})
	require.NoError(t, err)
	return ing.ID
}

// addComposition declares a single Toppings group requiring between two
// and three ingredient kinds. removableID may be left out of selections,
// requiredID must always be present.
func (f *fixture) addComposition(t *testing.T, removableID, requiredID string) *composition.CustomComposition {
	t.Helper()

	cc := &composition.CustomComposition{
		ID:   uuid.New().String(),
		Name: "Build your own",
		Size: f.sizeID,
		Groups: []composition.Group{
			{Name: "Toppings", MinIng: 2, MaxIng: 3, MaxTotal: 5},
		},
		Ingredients: []composition.CompositionIngredient{
			{Ingredient: removableID, Removable: true, Group: "Toppings", MaxNumber: 3},
			{Ingredient: requiredID, Removable: false, Group: "Toppings", MaxNumber: 3},
		},
		Categories: []string{},
		Items:      []string{},
	}
	require.NoError(t, f.compositions.Create(context.Background(), cc))
	return cc
}

func (f *fixture) addCategory(t *testing.T, cat *category.Category) *category.Category {
	t.Helper()

	if cat.ID == "" {
		cat.ID = uuid.New().String()
	}
	if cat.Items == nil {
		cat.Items = []string{}
	}
	require.NoError(t, f.categories.Create(context.Background(), cat))
	return cat
}

func basePrice(small, large int64) []pricing.Entry {
	return []pricing.Entry{
		{Size: "Small", Price: decimal.NewFromInt(small)},
		{Size: "Large", Price: decimal.NewFromInt(large)},
	}
}

func TestCreateItem_NonInheritedMissingBasePrice(t *testing.T) {
	f := newFixture(t)

	// The missing base price aborts before any other validation: the
	// empty name and unknown category are never reached.
	_, err := f.service.Create(context.Background(), CreateInput{
		Name:                  "",
		Category:              "nope",
		NoInheritFromCategory: true,
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.Configuration))
	assert.Contains(t, err.Error(), "non-inherited")
}

func TestCreateItem_InheritedSizeBranch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ingID := f.addIngredient(t, 2, 3)
	cat := f.addCategory(t, &category.Category{
		Name:      "Pizzas",
		Size:      f.sizeID,
		BasePrice: basePrice(10, 15),
	})

	it, err := f.service.Create(ctx, CreateInput{
		Name:        "Margherita",
		Category:    cat.ID,
		Ingredients: []ItemIngredient{{Ingredient: ingID, Number: 1}},
	})
	require.NoError(t, err)

	// Size comes from the category, the base price falls back to it.
	assert.Equal(t, f.sizeID, it.Size)
	assert.Empty(t, it.BasePrice)
	assert.Empty(t, it.CustomComposition)

	// The category's reverse index lists the item.
	stored, err := f.categories.FindByID(ctx, cat.ID)
	require.NoError(t, err)
	assert.Contains(t, stored.Items, it.ID)
}

func TestCreateItem_InheritedNoBasePriceAnywhere(t *testing.T) {
	f := newFixture(t)

	cat := f.addCategory(t, &category.Category{Name: "Pizzas", Size: f.sizeID})

	_, err := f.service.Create(context.Background(), CreateInput{
		Name:     "Margherita",
		Category: cat.ID,
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.Configuration))
	assert.Contains(t, err.Error(), "category does not provide any")
}

func TestCreateItem_InheritedIngredientSizeMismatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	wrong, err := f.ingredients.Create(ctx, "Straw", "straw", f.otherSizeID,
		[]pricing.Entry{{Size: "Regular", Price: decimal.NewFromInt(1)}})
	require.NoError(t, err)

	cat := f.addCategory(t, &category.Category{
		Name:      "Pizzas",
		Size:      f.sizeID,
		BasePrice: basePrice(10, 15),
	})

	_, err = f.service.Create(ctx, CreateInput{
		Name:        "Weird Pizza",
		Category:    cat.ID,
		Ingredients: []ItemIngredient{{Ingredient: wrong.ID, Number: 1}},
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.SizeMismatch))
}

func TestCreateItem_InheritedCompositionExtendsSelection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	removable := f.addIngredient(t, 2, 3)
	required := f.addIngredient(t, 1, 2)
	cc := f.addComposition(t, removable, required)

	cat := f.addCategory(t, &category.Category{
		Name:              "Custom Pizzas",
		Size:              f.sizeID,
		CustomComposition: cc.ID,
		BasePrice:         basePrice(10, 15),
		BaseIngredients:   []category.BaseIngredient{{Ingredient: required, Number: 1}},
	})

	// On its own the selection misses the required ingredient and the
	// group minimum; the category's base ingredients fill both.
	it, err := f.service.Create(ctx, CreateInput{
		Name:        "House Special",
		Category:    cat.ID,
		Ingredients: []ItemIngredient{{Ingredient: removable, Number: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, f.sizeID, it.Size)

	// Inherited involvement does not mark the item with the composition,
	// so its reverse index still only lists the category.
	assert.Empty(t, it.CustomComposition)
	stored, err := f.compositions.FindByID(ctx, cc.ID)
	require.NoError(t, err)
	assert.NotContains(t, stored.Items, it.ID)
}

func TestCreateItem_InheritedCompositionStillStrict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	removable := f.addIngredient(t, 2, 3)
	required := f.addIngredient(t, 1, 2)
	cc := f.addComposition(t, removable, required)

	// No base ingredients: the item's selection must satisfy the rules
	// alone, and one distinct ingredient is below the group minimum. The
	// minimum check only runs in strict mode, so hitting it shows the
	// inherited path validates strictly.
	cat := f.addCategory(t, &category.Category{
		Name:              "Custom Pizzas",
		Size:              f.sizeID,
		CustomComposition: cc.ID,
		BasePrice:         basePrice(10, 15),
	})

	_, err := f.service.Create(ctx, CreateInput{
		Name:        "Bare Pizza",
		Category:    cat.ID,
		Ingredients: []ItemIngredient{{Ingredient: removable, Number: 2}},
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.BelowMinimum))
}

func TestCreateItem_OwnComposition(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	removable := f.addIngredient(t, 2, 3)
	required := f.addIngredient(t, 1, 2)
	cc := f.addComposition(t, removable, required)

	cat := f.addCategory(t, &category.Category{
		Name:      "Pizzas",
		Size:      f.sizeID,
		BasePrice: basePrice(10, 15),
	})

	it, err := f.service.Create(ctx, CreateInput{
		Name:                  "Signature",
		Category:              cat.ID,
		NoInheritFromCategory: true,
		CustomComposition:     cc.ID,
		BasePrice:             basePrice(12, 18),
		Ingredients: []ItemIngredient{
			{Ingredient: removable, Number: 1},
			{Ingredient: required, Number: 1},
		},
	})
	require.NoError(t, err)

	// Size derives from the composition, and the item is marked with it.
	assert.Equal(t, f.sizeID, it.Size)
	assert.Equal(t, cc.ID, it.CustomComposition)

	stored, err := f.compositions.FindByID(ctx, cc.ID)
	require.NoError(t, err)
	assert.Contains(t, stored.Items, it.ID)
}

func TestCreateItem_OwnDefinitionNeitherSizeNorComposition(t *testing.T) {
	f := newFixture(t)

	cat := f.addCategory(t, &category.Category{
		Name:      "Pizzas",
		Size:      f.sizeID,
		BasePrice: basePrice(10, 15),
	})

	_, err := f.service.Create(context.Background(), CreateInput{
		Name:                  "Orphan",
		Category:              cat.ID,
		NoInheritFromCategory: true,
		BasePrice:             basePrice(12, 18),
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.Configuration))
}

func TestCreateItem_RollbackOnCompositionAppendFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	removable := f.addIngredient(t, 2, 3)
	required := f.addIngredient(t, 1, 2)
	cc := f.addComposition(t, removable, required)

	cat := f.addCategory(t, &category.Category{
		Name:      "Pizzas",
		Size:      f.sizeID,
		BasePrice: basePrice(10, 15),
	})

	f.repo.FailCompositionAppend = apperr.New(apperr.Persistence, "boom")

	_, err := f.service.Create(ctx, CreateInput{
		Name:                  "Doomed",
		Category:              cat.ID,
		NoInheritFromCategory: true,
		CustomComposition:     cc.ID,
		BasePrice:             basePrice(12, 18),
		Ingredients: []ItemIngredient{
			{Ingredient: removable, Number: 1},
			{Ingredient: required, Number: 1},
		},
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.Persistence))

	// Nothing survives the failed creation: no item, and the category
	// index append was compensated.
	items, err := f.repo.ListByCategories(ctx, []string{cat.ID})
	require.NoError(t, err)
	assert.Empty(t, items)

	storedCat, err := f.categories.FindByID(ctx, cat.ID)
	require.NoError(t, err)
	assert.Empty(t, storedCat.Items)

	storedCC, err := f.compositions.FindByID(ctx, cc.ID)
	require.NoError(t, err)
	assert.Empty(t, storedCC.Items)
}

func TestCreateItem_UnknownSide(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cat := f.addCategory(t, &category.Category{
		Name:      "Pizzas",
		Size:      f.sizeID,
		BasePrice: basePrice(10, 15),
	})

	side, err := f.service.Create(ctx, CreateInput{Name: "Garlic Bread", Category: cat.ID})
	require.NoError(t, err)

	_, err = f.service.Create(ctx, CreateInput{
		Name:           "Margherita",
		Category:       cat.ID,
		AvailableSides: []string{side.ID, uuid.New().String()},
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.NotFound))

	it, err := f.service.Create(ctx, CreateInput{
		Name:           "Margherita",
		Category:       cat.ID,
		AvailableSides: []string{side.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{side.ID}, it.AvailableSides)
}

func TestPrice_InheritedFallbackAndLines(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	topping := f.addIngredient(t, 2, 3)
	cat := f.addCategory(t, &category.Category{
		Name:      "Pizzas",
		Size:      f.sizeID,
		BasePrice: basePrice(10, 15),
	})

	it, err := f.service.Create(ctx, CreateInput{
		Name:        "Triple Topping",
		Category:    cat.ID,
		Ingredients: []ItemIngredient{{Ingredient: topping, Number: 3}},
	})
	require.NoError(t, err)

	price, err := f.service.Price(ctx, it)
	require.NoError(t, err)
	require.Len(t, price, 2)
	assert.Equal(t, "Small", price[0].Size)
	assert.True(t, price[0].Price.Equal(decimal.NewFromInt(16)), price[0].Price.String())
	assert.Equal(t, "Large", price[1].Size)
	assert.True(t, price[1].Price.Equal(decimal.NewFromInt(24)), price[1].Price.String())
}

func TestPrice_CategoryBaseIngredientsIncluded(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	base := f.addIngredient(t, 1, 2)
	cat := f.addCategory(t, &category.Category{
		Name:            "Pizzas",
		Size:            f.sizeID,
		BasePrice:       basePrice(10, 15),
		BaseIngredients: []category.BaseIngredient{{Ingredient: base, Number: 2}},
	})

	it, err := f.service.Create(ctx, CreateInput{Name: "Plain", Category: cat.ID})
	require.NoError(t, err)

	price, err := f.service.Price(ctx, it)
	require.NoError(t, err)
	require.Len(t, price, 2)
	assert.True(t, price[0].Price.Equal(decimal.NewFromInt(12)), price[0].Price.String())
	assert.True(t, price[1].Price.Equal(decimal.NewFromInt(19)), price[1].Price.String())
}

func TestPrice_OwnBasePriceIgnoresCategory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cat := f.addCategory(t, &category.Category{
		Name:      "Pizzas",
		Size:      f.sizeID,
		BasePrice: basePrice(10, 15),
	})

	it, err := f.service.Create(ctx, CreateInput{
		Name:                  "Flat Priced",
		Category:              cat.ID,
		NoInheritFromCategory: true,
		Size:                  f.sizeID,
		BasePrice:             basePrice(7, 9),
	})
	require.NoError(t, err)

	price, err := f.service.Price(ctx, it)
	require.NoError(t, err)
	require.Len(t, price, 2)
	assert.True(t, price[0].Price.Equal(decimal.NewFromInt(7)))
	assert.True(t, price[1].Price.Equal(decimal.NewFromInt(9)))
}

func TestListByCategories(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	catA := f.addCategory(t, &category.Category{
		Name: "Pizzas", Size: f.sizeID, BasePrice: basePrice(10, 15),
	})
	catB := f.addCategory(t, &category.Category{
		Name: "Pastas", Size: f.sizeID, BasePrice: basePrice(8, 12),
	})

	for _, in := range []CreateInput{
		{Name: "Margherita", Category: catA.ID},
		{Name: "Carbonara", Category: catB.ID},
		{Name: "Diavola", Category: catA.ID},
	} {
		_, err := f.service.Create(ctx, in)
		require.NoError(t, err)
	}

	pizzas, err := f.service.ListByCategories(ctx, []string{catA.ID})
	require.NoError(t, err)
	assert.Len(t, pizzas, 2)

	all, err := f.service.ListByCategories(ctx, []string{catA.ID, catB.ID})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
