package category

import "context"

// Repository defines all database operations for categories.
// Create must atomically persist the category together with the
// custom-composition reverse-index append when one is referenced;
// no partial state may survive a failure.
type Repository interface {
	Create(ctx context.Context, cat *Category) error
	FindByID(ctx context.Context, id string) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
}

// SideChecker reports whether an item exists; implemented by the item
// repository. Declared here so categories can validate available sides
// without importing the item package.
type SideChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}
