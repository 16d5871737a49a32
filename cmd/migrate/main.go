package main

import (
	"context"
	"log/slog"
	"os"

	"sheshape-storefront/internal/config"
	"sheshape-storefront/internal/db"
	"sheshape-storefront/internal/migrate"
)

// Usage: migrate [up|down|version]; defaults to up.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	path := os.Getenv("SHESHAPE_CONFIG")
	if path == "" {
		path = "config/config.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		logger.Error("connect db", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "up":
		if err := migrate.Apply(ctx, pool); err != nil {
			logger.Error("apply migrations", "err", err)
			os.Exit(1)
		}
		logger.Info("migrations applied")
	case "down":
		if err := migrate.Rollback(ctx, pool); err != nil {
			logger.Error("roll back migration", "err", err)
			os.Exit(1)
		}
		logger.Info("migration rolled back")
	case "version":
		version, dirty, err := migrate.Version(ctx, pool)
		if err != nil {
			logger.Error("read schema version", "err", err)
			os.Exit(1)
		}
		logger.Info("schema version", "version", version, "dirty", dirty)
	default:
		logger.Error("unknown command", "cmd", cmd)
		os.Exit(1)
	}
}
