package ingredient

import "github.com/kubaGzk/eaty-backend/internal/pricing"

// Ingredient is a priced, sized atomic item. Its price table always
// covers exactly the labels of its Size; size and uniqueName are
// immutable after creation.
type Ingredient struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	UniqueName string          `json:"unique_name"`
	Size       string          `json:"size"`
	Price      []pricing.Entry `json:"price"`
}

// Filter narrows List results. Name matches name or uniqueName,
// case-insensitive substring.
type Filter struct {
	Name string
	Size string
}
