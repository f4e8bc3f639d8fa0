package ingredient

import "context"

// Repository defines all database operations for ingredients.
type Repository interface {
	Create(ctx context.Context, ing *Ingredient) error
	FindByID(ctx context.Context, id string) (*Ingredient, error)
	List(ctx context.Context, filter Filter) ([]*Ingredient, error)
	ExistsByUniqueName(ctx context.Context, uniqueName string) (bool, error)
}
