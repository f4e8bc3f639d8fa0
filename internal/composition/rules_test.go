package composition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kubaGzk/eaty-backend/internal/apperr"
)

func toppingsComposition() *CustomComposition {
	return &CustomComposition{
		ID:   "cc-1",
		Name: "Build your own pizza",
		Size: "size-1",
		Groups: []Group{
			{Name: "Toppings", MinIng: 1, MaxIng: 3, MaxTotal: 5},
		},
		Ingredients: []CompositionIngredient{
			{Ingredient: "ing-a", Removable: true, Group: "Toppings", MaxNumber: 2},
			{Ingredient: "ing-b", Removable: false, Group: "Toppings", MaxNumber: 4},
		},
	}
}

func sel(pairs ...SelectedIngredient) []SelectedIngredient {
	return pairs
}

func TestValidateSelection_Strict_RequiredIngredientMissing(t *testing.T) {
	cc := toppingsComposition()

	err := cc.ValidateSelection(sel(SelectedIngredient{"ing-a", 2}), true)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.RequiredIngredientMissing))
}

func TestValidateSelection_Strict_Valid(t *testing.T) {
	cc := toppingsComposition()

	err := cc.ValidateSelection(sel(
		SelectedIngredient{"ing-a", 2},
		SelectedIngredient{"ing-b", 1},
	), true)
	require.NoError(t, err)
}

func TestValidateSelection_Strict_PerIngredientLimit(t *testing.T) {
	cc := toppingsComposition()

	// The oversized line also pushes the group total past maxTotal; the
	// per-line cap is still the reported violation.
	err := cc.ValidateSelection(sel(
		SelectedIngredient{"ing-a", 2},
		SelectedIngredient{"ing-b", 5},
	), true)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.PerIngredientLimit))
}

func TestValidateSelection_NotInComposition(t *testing.T) {
	cc := toppingsComposition()

	err := cc.ValidateSelection(sel(SelectedIngredient{"ing-x", 1}), false)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.NotInComposition))
}

func TestValidateSelection_InvalidQuantity(t *testing.T) {
	cc := toppingsComposition()

	err := cc.ValidateSelection(sel(SelectedIngredient{"ing-a", 0}), false)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.InvalidQuantity))
}

func TestValidateSelection_GroupQuotas(t *testing.T) {
	cc := &CustomComposition{
		Groups: []Group{
			{Name: "Sauces", MinIng: 1, MaxIng: 2, MaxTotal: 4},
		},
		Ingredients: []CompositionIngredient{
			{Ingredient: "s1", Removable: true, Group: "Sauces", MaxNumber: 4},
			{Ingredient: "s2", Removable: true, Group: "Sauces", MaxNumber: 4},
			{Ingredient: "s3", Removable: true, Group: "Sauces", MaxNumber: 4},
		},
	}

	// Below minimum fails only in strict mode.
	err := cc.ValidateSelection(nil, true)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.BelowMinimum))

	require.NoError(t, cc.ValidateSelection(nil, false))

	// minIng..maxIng distinct ingredients succeed.
	require.NoError(t, cc.ValidateSelection(sel(SelectedIngredient{"s1", 1}), true))
	require.NoError(t, cc.ValidateSelection(sel(
		SelectedIngredient{"s1", 1},
		SelectedIngredient{"s2", 1},
	), true))

	// maxIng+1 distinct ingredients fail in both modes.
	tooMany := sel(
		SelectedIngredient{"s1", 1},
		SelectedIngredient{"s2", 1},
		SelectedIngredient{"s3", 1},
	)
	err = cc.ValidateSelection(tooMany, true)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.AboveMaximum))

	err = cc.ValidateSelection(tooMany, false)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.AboveMaximum))

	// Total quantity above maxTotal fails.
	err = cc.ValidateSelection(sel(
		SelectedIngredient{"s1", 3},
		SelectedIngredient{"s2", 2},
	), true)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.QuantityExceeded))
}

func TestValidateSelection_DuplicatesMergeBeforeQuotas(t *testing.T) {
	cc := &CustomComposition{
		Groups: []Group{
			{Name: "Toppings", MinIng: 1, MaxIng: 1, MaxTotal: 4},
		},
		Ingredients: []CompositionIngredient{
			{Ingredient: "t1", Removable: true, Group: "Toppings", MaxNumber: 6},
		},
	}

	// Two lines for the same ingredient count as one against maxIng,
	// with their numbers summed against maxTotal and maxNumber.
	require.NoError(t, cc.ValidateSelection(sel(
		SelectedIngredient{"t1", 1},
		SelectedIngredient{"t1", 2},
	), true))

	// Summed total 5 is within the per-line cap but over maxTotal.
	err := cc.ValidateSelection(sel(
		SelectedIngredient{"t1", 3},
		SelectedIngredient{"t1", 2},
	), true)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.QuantityExceeded))

	// Summed total 7 breaks the per-line cap too, which wins.
	err = cc.ValidateSelection(sel(
		SelectedIngredient{"t1", 4},
		SelectedIngredient{"t1", 3},
	), true)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.PerIngredientLimit))
}

func TestValidateSelection_Idempotent(t *testing.T) {
	cc := toppingsComposition()
	selection := sel(
		SelectedIngredient{"ing-a", 2},
		SelectedIngredient{"ing-b", 1},
	)

	require.NoError(t, cc.ValidateSelection(selection, true))
	require.NoError(t, cc.ValidateSelection(selection, true))

	bad := sel(SelectedIngredient{"ing-a", 2})
	first := cc.ValidateSelection(bad, true)
	second := cc.ValidateSelection(bad, true)
	assert.Equal(t, apperr.KindOf(first), apperr.KindOf(second))
}
