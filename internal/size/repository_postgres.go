package size

import (
	"context"
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

func (r *PostgresRepository) Create(ctx context.Context, size *Size) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO sizes (id, name, size_values, created_at)
		VALUES ($1, $2, $3, now())
	`, size.ID, size.Name, size.Values)

	if err != nil {
		return apperr.New(apperr.Persistence, "Unexpected error. %v", err)
	}
	return nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*Size, error) {
	s := &Size{}

	err := r.db.QueryRow(ctx, `
		SELECT id, name, size_values
		FROM sizes
		WHERE id = $1
	`, id).Scan(&s.ID, &s.Name, &s.Values)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.New(apperr.NotFound, "Could not find Size for provided ID.")
		}
		return nil, apperr.New(apperr.Persistence, "Unexpected error. %v", err)
	}

	return s, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Size, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, size_values
		FROM sizes
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, apperr.New(apperr.Persistence, "Unexpected error. %v", err)
	}
	defer rows.Close()

	var sizes []*Size

	for rows.Next() {
		s := &Size{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Values); err != nil {
			return nil, apperr.New(apperr.Persistence, "Unexpected error. %v", err)
		}
		sizes = append(sizes, s)
	}

	return sizes, nil
}
