package item

import "context"

// Repository defines all database operations for items.
// Create must atomically persist the item row together with the
// category reverse-index append and, when the item declares a custom
// composition, that composition's reverse-index append. A failure at
// any step leaves nothing behind.
type Repository interface {
	Create(ctx context.Context, it *Item) error
	FindByID(ctx context.Context, id string) (*Item, error)
	ListByCategories(ctx context.Context, categoryIDs []string) ([]*Item, error)
	Exists(ctx context.Context, id string) (bool, error)
}
