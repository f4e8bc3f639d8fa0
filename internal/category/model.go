package category

import (
	"github.com/shopspring/decimal"

	"github.com/kubaGzk/eaty-backend/internal/pricing"
)

// BaseIngredient is an ingredient the category contributes by default to
// every inheriting item's price and composition.
type BaseIngredient struct {
	Ingredient string `json:"ingredient"`
	Number     int    `json:"number"`
}

type OptionValue struct {
	Value       string          `json:"value"`
	PriceChange decimal.Decimal `json:"price_change"`
}

// Option is a selectable option group offered with a category or item.
type Option struct {
	Mandatory bool          `json:"mandatory"`
	Multi     bool          `json:"multi"`
	MaxSelect int           `json:"max_select"`
	Name      string        `json:"name"`
	Values    []OptionValue `json:"values"`
}

// Category groups items. Exactly one of Size or CustomComposition is set;
// when the composition is set the size is derived from it. Items is a
// denormalized reverse index maintained by the Item creation transaction.
type Category struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Size              string           `json:"size"`
	BasePrice         []pricing.Entry  `json:"base_price"`
	BaseIngredients   []BaseIngredient `json:"base_ingredients"`
	Options           []Option         `json:"options"`
	AvailableSides    []string         `json:"available_sides"`
	CustomComposition string           `json:"custom_composition"`
	Items             []string         `json:"items"`
}
