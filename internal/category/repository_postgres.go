package category

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

// Create writes the category row and, when a custom composition is
// referenced, appends this category to its reverse index in the same
// transaction. The row lock taken by the UPDATE serializes concurrent
// appends against the same composition.
func (r *PostgresRepository) Create(ctx context.Context, cat *Category) error {
	basePrice, err := json.Marshal(cat.BasePrice)
	if err != nil {
		return apperr.New(apperr.Persistence, "Unexpected error. %v", err)
	}
	baseIngredients, err := json.Marshal(cat.BaseIngredients)
	if err != nil {
		return apperr.New(apperr.Persistence, "Unexpected error. %v", err)
	}
	options, err := json.Marshal(cat.Options)
	if err != nil {
		return apperr.New(apperr.Persistence, "Unexpected error. %v", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperr.New(apperr.Persistence, "Unexpected error. %v", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO categories
			(id, name, size_id, base_price, base_ingredients, options,
			 available_sides, custom_composition_id, items, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, '{}', now())
	`, cat.ID, cat.Name, cat.Size, basePrice, baseIngredients, options,
		cat.AvailableSides, cat.CustomComposition)
	if err != nil {
		return apperr.New(apperr.Persistence, "Unexpected error. %v", err)
	}

	if cat.CustomComposition != "" {
		cmd, err := tx.Exec(ctx, `
			UPDATE custom_compositions
			SET categories = array_append(categories, $1)
			WHERE id = $2
		`, cat.ID, cat.CustomComposition)
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

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*Category, error) {
	cat, err := scanCategory(r.db.QueryRow(ctx, `
		SELECT id, name, size_id, base_price, base_ingredients, options,
		       available_sides, custom_composition_id, items
		FROM categories
		WHERE id = $1
	`, id))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.New(apperr.NotFound, "Could not find category for provided ID.")
		}
		return nil, apperr.New(apperr.Persistence, "Unexpected error. %v", err)
	}

	return cat, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Category, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, size_id, base_price, base_ingredients, options,
		       available_sides, custom_composition_id, items
		FROM categories
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, apperr.New(apperr.Persistence, "Unexpected error. %v", err)
	}
	defer rows.Close()

	var cats []*Category

	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, apperr.New(apperr.Persistence, "Unexpected error. %v", err)
		}
		cats = append(cats, cat)
	}

	return cats, nil
}

func scanCategory(row pgx.Row) (*Category, error) {
	cat := &Category{}
	var basePrice, baseIngredients, options []byte

	err := row.Scan(&cat.ID, &cat.Name, &cat.Size, &basePrice, &baseIngredients,
		&options, &cat.AvailableSides, &cat.CustomComposition, &cat.Items)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(basePrice, &cat.BasePrice); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(baseIngredients, &cat.BaseIngredients); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(options, &cat.Options); err != nil {
		return nil, err
	}

	return cat, nil
}
