package size

import "context"

// Repository defines all database operations for sizes.
type Repository interface {
	Create(ctx context.Context, size *Size) error
	FindByID(ctx context.Context, id string) (*Size, error)
	List(ctx context.Context) ([]*Size, error)
}
