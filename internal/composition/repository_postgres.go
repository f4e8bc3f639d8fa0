package composition

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

func (r *PostgresRepository) Create(ctx context.Context, cc *CustomComposition) error {
	groups, err := json.Marshal(cc.Groups)
	if err != nil {
		return apperr.New(apperr.Persistence, "Unexpected error. %v", err)
	}

	ingredients, err := json.Marshal(cc.Ingredients)
	if err != nil {
		return apperr.New(apperr.Persistence, "Unexpected error. %v", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO custom_compositions
			(id, name, size_id, groups, ingredients, categories, items, created_at)
		VALUES ($1, $2, $3, $4, $5, '{}', '{}', now())
	`, cc.ID, cc.Name, cc.Size, groups, ingredients)

	if err != nil {
		return apperr.New(apperr.Persistence, "Unexpected error. %v", err)
	}
	return nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*CustomComposition, error) {
	cc, err := scanComposition(r.db.QueryRow(ctx, `
		SELECT id, name, size_id, groups, ingredients, categories, items
		FROM custom_compositions
		WHERE id = $1
	`, id))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.New(apperr.NotFound, "Could not find Custom Composition for provided ID.")
		}
		return nil, apperr.New(apperr.Persistence, "Unexpected error. %v", err)
	}

	return cc, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*CustomComposition, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, size_id, groups, ingredients, categories, items
		FROM custom_compositions
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, apperr.New(apperr.Persistence, "Unexpected error. %v", err)
	}
	defer rows.Close()

	var ccs []*CustomComposition

	for rows.Next() {
		cc, err := scanComposition(rows)
		if err != nil {
			return nil, apperr.New(apperr.Persistence, "Unexpected error. %v", err)
		}
		ccs = append(ccs, cc)
	}

	return ccs, nil
}

func scanComposition(row pgx.Row) (*CustomComposition, error) {
	cc := &CustomComposition{}
	var groups, ingredients []byte

	err := row.Scan(&cc.ID, &cc.Name, &cc.Size, &groups, &ingredients, &cc.Categories, &cc.Items)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(groups, &cc.Groups); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(ingredients, &cc.Ingredients); err != nil {
		return nil, err
	}

	return cc, nil
}
