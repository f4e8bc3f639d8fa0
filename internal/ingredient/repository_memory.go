package ingredient

import (
	"context"
	"strings"
	"sync"

	"github.com/kubaGzk/eaty-backend/internal/apperr"
)

type InMemoryRepository struct {
	mu          sync.RWMutex
	ingredients map[string]*Ingredient
	order       []string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{ingredients: make(map[string]*Ingredient)}
}

func (r *InMemoryRepository) Create(_ context.Context, ing *Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *ing
	r.ingredients[ing.ID] = &cp
	r.order = append(r.order, ing.ID)
	return nil
}

func (r *InMemoryRepository) FindByID(_ context.Context, id string) (*Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ing, ok := r.ingredients[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "Could not find Ingredient for provided ID.")
	}
	cp := *ing
	return &cp, nil
}

func (r *InMemoryRepository) List(_ context.Context, filter Filter) ([]*Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name := strings.ToLower(filter.Name)

	var ings []*Ingredient
	for _, id := range r.order {
		ing := r.ingredients[id]

		if name != "" &&
			!strings.Contains(strings.ToLower(ing.Name), name) &&
			!strings.Contains(strings.ToLower(ing.UniqueName), name) {
			continue
		}
		if filter.Size != "" && ing.Size != filter.Size {
			continue
		}

		cp := *ing
		ings = append(ings, &cp)
	}
	return ings, nil
}

func (r *InMemoryRepository) ExistsByUniqueName(_ context.Context, uniqueName string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ing := range r.ingredients {
		if ing.UniqueName == uniqueName {
			return true, nil
		}
	}
	return false, nil
}
