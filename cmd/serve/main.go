// Command serve runs the report browser over the Postgres report store.
package main

import (
	"context"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"dataprof/adapters/postgres"
	"dataprof/internal"
	"dataprof/internal/config"
	"dataprof/ui"
)

func main() {
	_ = godotenv.Load()

	logger := internal.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	if cfg.Database.URL == "" {
		logger.Error("DATABASE_URL is required")
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		logger.Error("failed to connect to database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.EnsureSchema(context.Background(), db); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	server := ui.NewServer(postgres.NewReportStore(db), logger)
	if err := server.ListenAndServe(cfg.Server.Port); err != nil {
		logger.Error("server stopped: %v", err)
		os.Exit(1)
	}
}
