package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kubaGzk/eaty-backend/internal/authz"
	"github.com/kubaGzk/eaty-backend/internal/category"
	"github.com/kubaGzk/eaty-backend/internal/composition"
	"github.com/kubaGzk/eaty-backend/internal/db"
	"github.com/kubaGzk/eaty-backend/internal/ingredient"
	"github.com/kubaGzk/eaty-backend/internal/item"
	"github.com/kubaGzk/eaty-backend/internal/router"
	"github.com/kubaGzk/eaty-backend/internal/size"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatal().Str("var", k).Msg("missing env var")
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── AUTHORIZATION ─────────────────────────
	policy := authz.Default()

	// ───────────────────────── REPOS ─────────────────────────
	sizeRepo := size.NewPostgresRepository(pgDB)
	ingredientRepo := ingredient.NewPostgresRepository(pgDB)
	compositionRepo := composition.NewPostgresRepository(pgDB)
	categoryRepo := category.NewPostgresRepository(pgDB)
	itemRepo := item.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES (ORDER MATTERS) ─────────────────────────
	sizeService := size.NewService(sizeRepo)
	ingredientService := ingredient.NewService(ingredientRepo, sizeRepo)
	compositionService := composition.NewService(compositionRepo, ingredientService, sizeRepo)
	categoryService := category.NewService(
		categoryRepo,
		compositionService,
		ingredientService,
		sizeRepo,
		itemRepo,
	)
	itemService := item.NewService(
		itemRepo,
		categoryRepo,
		compositionService,
		ingredientService,
		sizeRepo,
	)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(policy, router.Handlers{
		Sizes:        size.NewHandler(sizeService),
		Ingredients:  ingredient.NewHandler(ingredientService),
		Compositions: composition.NewHandler(compositionService),
		Categories:   category.NewHandler(categoryService),
		Items:        item.NewHandler(itemService),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info().Str("port", port).Msg("server starting")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
