package composition

// Group is one named constraint bucket of a custom composition:
// how many distinct ingredients it must and may hold, and the cap on
// their summed quantity.
type Group struct {
	Name     string `json:"name"`
	MinIng   int    `json:"min_ing"`
	MaxIng   int    `json:"max_ing"`
	MaxTotal int    `json:"max_total"`
}

// CompositionIngredient declares one eligible ingredient: which group it
// counts against, whether an order may drop it, and its per-line cap.
type CompositionIngredient struct {
	Ingredient string `json:"ingredient"`
	Removable  bool   `json:"removable"`
	Group      string `json:"group"`
	MaxNumber  int    `json:"max_number"`
}

// CustomComposition is a build-your-own rule set over one size.
// Categories and Items are denormalized reverse indices, appended only
// inside the transaction that creates the referencing record.
type CustomComposition struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	Size        string                  `json:"size"`
	Groups      []Group                 `json:"groups"`
	Ingredients []CompositionIngredient `json:"ingredients"`
	Categories  []string                `json:"categories"`
	Items       []string                `json:"items"`
}

// SelectedIngredient is one line of a proposed selection.
type SelectedIngredient struct {
	Ingredient string `json:"ingredient"`
	Number     int    `json:"number"`
}

// FindIngredient looks up a declared ingredient by identity.
func (cc *CustomComposition) FindIngredient(id string) (CompositionIngredient, bool) {
	for _, ing := range cc.Ingredients {
		if ing.Ingredient == id {
			return ing, true
		}
	}
	return CompositionIngredient{}, false
}
