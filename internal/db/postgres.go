package db

import (
	"context"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal().Msg("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid DATABASE_URL")
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create connection pool")
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}

	log.Info().Msg("connected to PostgreSQL")

	if err := initSchema(pool); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize schema")
	}

	return pool
}

// initSchema creates the catalog tables. Price tables and rule sets are
// jsonb; reverse indices are text[] appended inside the creation
// transactions of the records that reference them.
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS sizes (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			size_values TEXT[] NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS ingredients (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			unique_name TEXT UNIQUE NOT NULL,
			size_id TEXT NOT NULL REFERENCES sizes(id),
			price JSONB NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS custom_compositions (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			size_id TEXT NOT NULL REFERENCES sizes(id),
			groups JSONB NOT NULL,
			ingredients JSONB NOT NULL,
			categories TEXT[] NOT NULL DEFAULT '{}',
			items TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			size_id TEXT NOT NULL,
			base_price JSONB NOT NULL DEFAULT '[]',
			base_ingredients JSONB NOT NULL DEFAULT '[]',
			options JSONB NOT NULL DEFAULT '[]',
			available_sides TEXT[] NOT NULL DEFAULT '{}',
			custom_composition_id TEXT NOT NULL DEFAULT '',
			items TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS items (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category_id TEXT NOT NULL REFERENCES categories(id),
			no_inherit BOOLEAN NOT NULL DEFAULT FALSE,
			size_id TEXT NOT NULL,
			base_price JSONB NOT NULL DEFAULT '[]',
			ingredients JSONB NOT NULL DEFAULT '[]',
			item_options JSONB NOT NULL DEFAULT '[]',
			available_sides TEXT[] NOT NULL DEFAULT '{}',
			custom_composition_id TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	log.Info().Msg("schema initialized")
	return nil
}
