package size

import (
	"context"
	"sync"

	"github.com/kubaGzk/eaty-backend/internal/apperr"
)

type InMemoryRepository struct {
	mu    sync.RWMutex
	sizes map[string]*Size
	order []string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{sizes: make(map[string]*Size)}
}

func (r *InMemoryRepository) Create(_ context.Context, size *Size) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *size
	r.sizes[size.ID] = &cp
	r.order = append(r.order, size.ID)
	return nil
}

func (r *InMemoryRepository) FindByID(_ context.Context, id string) (*Size, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sizes[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "Could not find Size for provided ID.")
	}
	cp := *s
	return &cp, nil
}

func (r *InMemoryRepository) List(_ context.Context) ([]*Size, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sizes := make([]*Size, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.sizes[id]
		sizes = append(sizes, &cp)
	}
	return sizes, nil
}
