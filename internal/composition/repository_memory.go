package composition

import (
	"context"
	"sync"

	"github.com/kubaGzk/eaty-backend/internal/apperr"
)

type InMemoryRepository struct {
	mu           sync.RWMutex
	compositions map[string]*CustomComposition
	order        []string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{compositions: make(map[string]*CustomComposition)}
}

func (r *InMemoryRepository) Create(_ context.Context, cc *CustomComposition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := copyComposition(cc)
	r.compositions[cc.ID] = cp
	r.order = append(r.order, cc.ID)
	return nil
}

func (r *InMemoryRepository) FindByID(_ context.Context, id string) (*CustomComposition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cc, ok := r.compositions[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "Could not find Custom Composition for provided ID.")
	}
	return copyComposition(cc), nil
}

func (r *InMemoryRepository) List(_ context.Context) ([]*CustomComposition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ccs := make([]*CustomComposition, 0, len(r.order))
	for _, id := range r.order {
		ccs = append(ccs, copyComposition(r.compositions[id]))
	}
	return ccs, nil
}

// AppendCategory and AppendItem mirror the reverse-index UPDATEs the
// postgres Category/Item creation transactions perform. Exposed on the
// in-memory type only, for the in-memory Category/Item repositories.

func (r *InMemoryRepository) AppendCategory(id, categoryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cc, ok := r.compositions[id]
	if !ok {
		return apperr.New(apperr.NotFound, "Could not find Custom Composition for provided ID.")
	}
	cc.Categories = append(cc.Categories, categoryID)
	return nil
}

func (r *InMemoryRepository) AppendItem(id, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cc, ok := r.compositions[id]
	if !ok {
		return apperr.New(apperr.NotFound, "Could not find Custom Composition for provided ID.")
	}
	cc.Items = append(cc.Items, itemID)
	return nil
}

func (r *InMemoryRepository) RemoveCategory(id, categoryID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cc, ok := r.compositions[id]; ok {
		cc.Categories = removeID(cc.Categories, categoryID)
	}
}

func (r *InMemoryRepository) RemoveItem(id, itemID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cc, ok := r.compositions[id]; ok {
		cc.Items = removeID(cc.Items, itemID)
	}
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func copyComposition(cc *CustomComposition) *CustomComposition {
	cp := *cc
	cp.Groups = append([]Group(nil), cc.Groups...)
	cp.Ingredients = append([]CompositionIngredient(nil), cc.Ingredients...)
	cp.Categories = append([]string(nil), cc.Categories...)
	cp.Items = append([]string(nil), cc.Items...)
	return &cp
}
