package category

import (
	"context"
	"sync"

	"github.com/kubaGzk/eaty-backend/internal/apperr"
	"github.com/kubaGzk/eaty-backend/internal/composition"
	"github.com/kubaGzk/eaty-backend/internal/pricing"
)

// InMemoryRepository mirrors the postgres transaction semantics with
// compensating writes: the category insert and the composition
// reverse-index append either both apply or neither does.
type InMemoryRepository struct {
	mu           sync.RWMutex
	categories   map[string]*Category
	order        []string
	compositions *composition.InMemoryRepository
}

func NewInMemoryRepository(compositions *composition.InMemoryRepository) *InMemoryRepository {
	return &InMemoryRepository{
		categories:   make(map[string]*Category),
		compositions: compositions,
	}
}

func (r *InMemoryRepository) Create(_ context.Context, cat *Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cat.CustomComposition != "" {
		if err := r.compositions.AppendCategory(cat.CustomComposition, cat.ID); err != nil {
			return err
		}
	}

	cp := copyCategory(cat)
	r.categories[cat.ID] = cp
	r.order = append(r.order, cat.ID)
	return nil
}

func (r *InMemoryRepository) FindByID(_ context.Context, id string) (*Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cat, ok := r.categories[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "Could not find category for provided ID.")
	}
	return copyCategory(cat), nil
}

func (r *InMemoryRepository) List(_ context.Context) ([]*Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cats := make([]*Category, 0, len(r.order))
	for _, id := range r.order {
		cats = append(cats, copyCategory(r.categories[id]))
	}
	return cats, nil
}

// AppendItem and RemoveItem are the reverse-index hooks used by the
// in-memory item repository's creation transaction.

func (r *InMemoryRepository) AppendItem(id, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cat, ok := r.categories[id]
	if !ok {
		return apperr.New(apperr.NotFound, "Could not find category for provided ID.")
	}
	cat.Items = append(cat.Items, itemID)
	return nil
}

func (r *InMemoryRepository) RemoveItem(id, itemID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cat, ok := r.categories[id]
	if !ok {
		return
	}

	items := cat.Items[:0]
	for _, v := range cat.Items {
		if v != itemID {
			items = append(items, v)
		}
	}
	cat.Items = items
}

func copyCategory(cat *Category) *Category {
	cp := *cat
	cp.BasePrice = append([]pricing.Entry(nil), cat.BasePrice...)
	cp.BaseIngredients = append([]BaseIngredient(nil), cat.BaseIngredients...)
	cp.Options = append([]Option(nil), cat.Options...)
	cp.AvailableSides = append([]string(nil), cat.AvailableSides...)
	cp.Items = append([]string(nil), cat.Items...)
	return &cp
}
