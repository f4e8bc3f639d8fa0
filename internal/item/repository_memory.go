package item

import (
	"context"
	"sync"

	"github.com/kubaGzk/eaty-backend/internal/apperr"
	"github.com/kubaGzk/eaty-backend/internal/category"
	"github.com/kubaGzk/eaty-backend/internal/composition"
	"github.com/kubaGzk/eaty-backend/internal/pricing"
)

// InMemoryRepository mirrors the postgres transaction with compensating
// writes: the item insert and both reverse-index appends either all
// apply or none do. The fail hooks let tests force a failure at either
// append step to exercise the rollback.
type InMemoryRepository struct {
	mu           sync.RWMutex
	items        map[string]*Item
	order        []string
	categories   *category.InMemoryRepository
	compositions *composition.InMemoryRepository

	FailCategoryAppend    error
	FailCompositionAppend error
}

func NewInMemoryRepository(
	categories *category.InMemoryRepository,
	compositions *composition.InMemoryRepository,
) *InMemoryRepository {
	return &InMemoryRepository{
		items:        make(map[string]*Item),
		categories:   categories,
		compositions: compositions,
	}
}

func (r *InMemoryRepository) Create(_ context.Context, it *Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.appendCategoryIndex(it); err != nil {
		return err
	}

	if it.CustomComposition != "" {
		if err := r.appendCompositionIndex(it); err != nil {
			r.categories.RemoveItem(it.Category, it.ID)
			return err
		}
	}

	cp := copyItem(it)
	r.items[it.ID] = cp
	r.order = append(r.order, it.ID)
	return nil
}

func (r *InMemoryRepository) appendCategoryIndex(it *Item) error {
	if r.FailCategoryAppend != nil {
		return r.FailCategoryAppend
	}
	return r.categories.AppendItem(it.Category, it.ID)
}

func (r *InMemoryRepository) appendCompositionIndex(it *Item) error {
	if r.FailCompositionAppend != nil {
		return r.FailCompositionAppend
	}
	return r.compositions.AppendItem(it.CustomComposition, it.ID)
}

func (r *InMemoryRepository) FindByID(_ context.Context, id string) (*Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.items[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "Could not find Item for provided ID.")
	}
	return copyItem(it), nil
}

func (r *InMemoryRepository) ListByCategories(_ context.Context, categoryIDs []string) ([]*Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]bool, len(categoryIDs))
	for _, id := range categoryIDs {
		wanted[id] = true
	}

	var items []*Item
	for _, id := range r.order {
		if wanted[r.items[id].Category] {
			items = append(items, copyItem(r.items[id]))
		}
	}
	return items, nil
}

func (r *InMemoryRepository) Exists(_ context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.items[id]
	return ok, nil
}

func copyItem(it *Item) *Item {
	cp := *it
	cp.BasePrice = append([]pricing.Entry(nil), it.BasePrice...)
	cp.Ingredients = append([]ItemIngredient(nil), it.Ingredients...)
	cp.ItemOptions = append([]category.Option(nil), it.ItemOptions...)
	cp.AvailableSides = append([]string(nil), it.AvailableSides...)
	return &cp
}
