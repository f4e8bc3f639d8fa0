package composition

import "context"

// Repository defines all database operations for custom compositions.
// The categories/items reverse indices are appended by the Category and
// Item creation transactions, not through this interface.
type Repository interface {
	Create(ctx context.Context, cc *CustomComposition) error
	FindByID(ctx context.Context, id string) (*CustomComposition, error)
	List(ctx context.Context) ([]*CustomComposition, error)
}
