package ingredient

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kubaGzk/eaty-backend/internal/apperr"
	"github.com/kubaGzk/eaty-backend/internal/pricing"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, ing *Ingredient) error {
	price, err := json.Marshal(ing.Price)
	if err != nil {
		return apperr.New(apperr.Persistence, "Unexpected error. %v", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO ingredients (id, name, unique_name, size_id, price, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
	`, ing.ID, ing.Name, ing.UniqueName, ing.Size, price)

	if err != nil {
		return apperr.New(apperr.Persistence, "Unexpected error. %v", err)
	}
	return nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*Ingredient, error) {
	ing := &Ingredient{}
	var price []byte

	err := r.db.QueryRow(ctx, `
		SELECT id, name, unique_name, size_id, price
		FROM ingredients
		WHERE id = $1
	`, id).Scan(&ing.ID, &ing.Name, &ing.UniqueName, &ing.Size, &price)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.New(apperr.NotFound, "Could not find Ingredient for provided ID.")
		}
		return nil, apperr.New(apperr.Persistence, "Unexpected error. %v", err)
	}

	if err := json.Unmarshal(price, &ing.Price); err != nil {
		return nil, apperr.New(apperr.Persistence, "Unexpected error. %v", err)
	}

	return ing, nil
}

func (r *PostgresRepository) List(ctx context.Context, filter Filter) ([]*Ingredient, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, unique_name, size_id, price
		FROM ingredients
		WHERE ($1 = ''
		       OR name ILIKE '%' || $1 || '%'
		       OR unique_name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR size_id = $2)
		ORDER BY created_at ASC
	`, filter.Name, filter.Size)
	if err != nil {
		return nil, apperr.New(apperr.Persistence, "Unexpected error. %v", err)
	}
	defer rows.Close()

	var ings []*Ingredient

	for rows.Next() {
		ing := &Ingredient{}
		var price []byte

		if err := rows.Scan(&ing.ID, &ing.Name, &ing.UniqueName, &ing.Size, &price); err != nil {
			return nil, apperr.New(apperr.Persistence, "Unexpected error. %v", err)
		}

		var entries []pricing.Entry
		if err := json.Unmarshal(price, &entries); err != nil {
			return nil, apperr.New(apperr.Persistence, "Unexpected error. %v", err)
		}
		ing.Price = entries

		ings = append(ings, ing)
	}

	return ings, nil
}

func (r *PostgresRepository) ExistsByUniqueName(ctx context.Context, uniqueName string) (bool, error) {
	var exists bool

	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM ingredients WHERE unique_name = $1)
	`, uniqueName).Scan(&exists)

	if err != nil {
		return false, apperr.New(apperr.Persistence, "Unexpected error. %v", err)
	}
	return exists, nil
}
