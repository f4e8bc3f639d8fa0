package composition

import "github.com/kubaGzk/eaty-backend/internal/apperr"

type groupTally struct {
	ingredientCount int
	totalQuantity   int
}

// mergeSelection collapses duplicate lines for the same ingredient by
// summing their numbers, keeping first-seen order, so group quotas see
// one logical line per ingredient.
func mergeSelection(selection []SelectedIngredient) []SelectedIngredient {
	merged := make([]SelectedIngredient, 0, len(selection))
	index := make(map[string]int, len(selection))

	for _, sel := range selection {
		if i, ok := index[sel.Ingredient]; ok {
			merged[i].Number += sel.Number
			continue
		}
		index[sel.Ingredient] = len(merged)
		merged = append(merged, sel)
	}

	return merged
}

// ValidateSelection decides whether a selection is legal under the
// composition's group quotas. Strict mode is used when an actual item or
// order is created from the composition; lenient mode only validates
// structural membership and skips the minimum and required checks.
// The first violated rule aborts: per-line checks (membership, quantity,
// the declared per-ingredient cap) run before the group quotas, so a
// single oversized line is reported as such even when it also blows the
// group's total.
func (cc *CustomComposition) ValidateSelection(selection []SelectedIngredient, strict bool) error {
	merged := mergeSelection(selection)

	tallies := make(map[string]*groupTally, len(cc.Groups))
	for _, gr := range cc.Groups {
		tallies[gr.Name] = &groupTally{}
	}

	for _, sel := range merged {
		declared, ok := cc.FindIngredient(sel.Ingredient)
		if !ok {
			return apperr.New(apperr.NotInComposition,
				"One of the ingredients is not part of provided Custom Composition.")
		}

		if sel.Number < 1 {
			return apperr.New(apperr.InvalidQuantity,
				"Ingredient cannot have number less than one.")
		}

		if sel.Number > declared.MaxNumber {
			return apperr.New(apperr.PerIngredientLimit,
				"One of the ingredients number is higher than Custom Composition allows to.")
		}

		tally := tallies[declared.Group]
		tally.ingredientCount++
		tally.totalQuantity += sel.Number
	}

	for _, gr := range cc.Groups {
		tally := tallies[gr.Name]

		if strict && tally.ingredientCount < gr.MinIng {
			return apperr.New(apperr.BelowMinimum,
				"One of the ingredients doesn't match minimum requirements.")
		}
		if tally.ingredientCount > gr.MaxIng {
			return apperr.New(apperr.AboveMaximum,
				"One of the ingredients doesn't match maximum requirements.")
		}
		if tally.totalQuantity > gr.MaxTotal {
			return apperr.New(apperr.QuantityExceeded,
				"One of the ingredients doesn't match total maximum requirements.")
		}
	}

	if strict {
		for _, declared := range cc.Ingredients {
			if declared.Removable {
				continue
			}

			selected := false
			for _, sel := range merged {
				if sel.Ingredient == declared.Ingredient {
					selected = true
					break
				}
			}

			if !selected {
				return apperr.New(apperr.RequiredIngredientMissing,
					"One of the ingredients that cannot be removed is not provided. "+
						"Please check required ingredients on Custom Composition.")
			}
		}
	}

	return nil
}
