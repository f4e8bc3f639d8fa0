package item

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kubaGzk/eaty-backend/internal/apperr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create writes the item row and appends the reverse indices in one
// transaction. The row locks taken by the UPDATEs serialize concurrent
// creations against the same category or composition, so no append is
// lost.
func (r *PostgresRepository) Create(ctx context.Context, it *Item) error {
	basePrice, err := json.Marshal(it.BasePrice)
	if err != nil {
		return apperr.New(apperr.Persistence, "Unexpected error. %v", err)
	}
	ingredients, err := json.Marshal(it.Ingredients)
	if err != nil {
		return apperr.New(apperr.Persistence, "Unexpected error. %v", err)
	}
	options, err := json.Marshal(it.ItemOptions)
	if err != nil {
		return apperr.New(apperr.Persistence, "Unexpected error. %v", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperr.New(apperr.Persistence, "Unexpected error. %v", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO items
			(id, name, description, category_id, no_inherit, size_id, base_price,
			 ingredients, item_options, available_sides, custom_composition_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now())
	`, it.ID, it.Name, it.Description, it.Category, it.NoInheritFromCategory,
		it.Size, basePrice, ingredients, options, it.AvailableSides, it.CustomComposition)
	if err != nil {
		return apperr.New(apperr.Persistence, "Unexpected error. %v", err)
	}

	cmd, err := tx.Exec(ctx, `
		UPDATE categories
		SET items = array_append(items, $1)
		WHERE id = $2
	`, it.ID, it.Category)
	if err != nil {
		return apperr.New(apperr.Persistence, "Unexpected error. %v", err)
	}
	if cmd.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "Could not find category for provided ID.")
	}

	if it.CustomComposition != "" {
		cmd, err := tx.Exec(ctx, `
			UPDATE custom_compositions
			SET items = array_append(items, $1)
			WHERE id = $2
		`, it.ID, it.CustomComposition)
		if err != nil {
			return apperr.New(apperr.Persistence, "Unexpected error. %v", err)
		}
		if cmd.RowsAffected() == 0 {
			return apperr.New(apperr.NotFound, "Could not find Custom Composition for provided ID.")
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return apperr.New(apperr.Persistence, "Unexpected error. %v", err)
	}
	return nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*Item, error) {
	it, err := scanItem(r.db.QueryRow(ctx, `
		SELECT id, name, description, category_id, no_inherit, size_id, base_price,
		       ingredients, item_options, available_sides, custom_composition_id
		FROM items
		WHERE id = $1
	`, id))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.New(apperr.NotFound, "Could not find Item for provided ID.")
		}
		return nil, apperr.New(apperr.Persistence, "Unexpected error. %v", err)
	}

	return it, nil
}

func (r *PostgresRepository) ListByCategories(ctx context.Context, categoryIDs []string) ([]*Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, category_id, no_inherit, size_id, base_price,
		       ingredients, item_options, available_sides, custom_composition_id
		FROM items
		WHERE category_id = ANY($1)
		ORDER BY created_at ASC
	`, categoryIDs)
	if err != nil {
		return nil, apperr.New(apperr.Persistence, "Unexpected error. %v", err)
	}
	defer rows.Close()

	var items []*Item

	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, apperr.New(apperr.Persistence, "Unexpected error. %v", err)
		}
		items = append(items, it)
	}

	return items, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool

	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM items WHERE id = $1)
	`, id).Scan(&exists)

	if err != nil {
		return false, apperr.New(apperr.Persistence, "Unexpected error. %v", err)
	}
	return exists, nil
}

func scanItem(row pgx.Row) (*Item, error) {
	it := &Item{}
	var basePrice, ingredients, options []byte

	err := row.Scan(&it.ID, &it.Name, &it.Description, &it.Category,
		&it.NoInheritFromCategory, &it.Size, &basePrice, &ingredients,
		&options, &it.AvailableSides, &it.CustomComposition)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(basePrice, &it.BasePrice); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(ingredients, &it.Ingredients); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(options, &it.ItemOptions); err != nil {
		return nil, err
	}

	return it, nil
}
