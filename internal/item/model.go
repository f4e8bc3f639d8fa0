package item

import (
	"github.com/kubaGzk/eaty-backend/internal/category"
	"github.com/kubaGzk/eaty-backend/internal/pricing"
)

// ItemIngredient is one selected ingredient of an item.
type ItemIngredient struct {
	Ingredient string `json:"ingredient"`
	Number     int    `json:"number"`
}

// Item is a sellable unit. Inherited items (NoInheritFromCategory false)
// take size, ingredient constraints and base-price fallback from their
// category; non-inherited items declare their own size or custom
// composition and must carry a base price. CustomComposition is only set
// when the item itself declares one.
type Item struct {
	ID                    string            `json:"id"`
	Name                  string            `json:"name"`
	Description           string            `json:"description"`
	Category              string            `json:"category"`
	NoInheritFromCategory bool              `json:"no_inherit_from_category"`
	Size                  string            `json:"size"`
	BasePrice             []pricing.Entry   `json:"base_price"`
	Ingredients           []ItemIngredient  `json:"ingredients"`
	ItemOptions           []category.Option `json:"item_options"`
	AvailableSides        []string          `json:"available_sides"`
	CustomComposition     string            `json:"custom_composition"`
}
