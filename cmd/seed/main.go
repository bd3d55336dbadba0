package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/federalbonds/backend/config"
	"github.com/federalbonds/backend/internal/application"
	"github.com/federalbonds/backend/internal/domain/entity"
	"github.com/federalbonds/backend/internal/domain/repository"
	"github.com/federalbonds/backend/internal/infrastructure/postgres"
	"github.com/federalbonds/backend/pkg/helpers"
)

const (
	demoEmail    = "demo@federalbonds.gov"
	demoPassword = "demo123"
)

// Seeds the bond catalog and a demo account for local development.
// Safe to run repeatedly.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	catalog := &application.CatalogService{Products: postgres.NewProductRepository(pool), Logger: logger}
	inserted, err := catalog.Seed(ctx)
	if err != nil {
		log.Fatalf("product seeding failed: %v", err)
	}
	if inserted > 0 {
		log.Printf("seeded %d products", inserted)
	} else {
		log.Println("products already present, skipping")
	}

	hash, err := helpers.HashPassword(demoPassword)
	if err != nil {
		log.Fatalf("failed to hash demo password: %v", err)
	}
	accounts := postgres.NewAccountRepository(pool)
	user := &entity.User{Email: demoEmail, Password: hash}
	profile := &entity.Profile{FirstName: "Demo", LastName: "Investor", IsActive: true}
	err = accounts.CreateWithProfile(ctx, user, profile)
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		log.Println("demo account already present, skipping")
	case err != nil:
		log.Fatalf("failed to create demo account: %v", err)
	default:
		log.Printf("created demo account %s (password %q)", demoEmail, demoPassword)
	}

	log.Println("seeding complete")
}
