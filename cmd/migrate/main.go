package main

// Apply the recipes table migrations:
//   DATABASE_URL=postgres://... go run ./cmd/migrate

import (
	"context"
	"log"
	"os"
	"strings"

	"recipe-backend/internal/shared/config"
	"recipe-backend/internal/shared/storage/db"
)

func main() {
	cfg := config.Load()
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Printf("DATABASE_URL is required to run migrations")
		os.Exit(1)
	}
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("failed to connect database: %v", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		log.Printf("failed to run migrations: %v", err)
		os.Exit(1)
	}
	log.Printf("migrations applied")
}
