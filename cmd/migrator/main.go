package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"shorturl-service/internal/config"
	"shorturl-service/internal/lib/logger"

	"github.com/golang-migrate/migrate/v4"

	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	var direction string

	flag.StringVar(&direction, "direction", "up", "migration direction, up or down")
	cfg := config.MustLoad()

	log := logger.Setup(cfg.Env)

	log.Info("running migrations",
		slog.String("storage_path", cfg.StoragePath),
		slog.String("migrations_path", cfg.Migrations.MigrationsPath),
		slog.String("direction", direction),
	)

	if err := run(log, cfg, direction); err != nil {
		log.Error("migration failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("done")
}

func run(log *slog.Logger, cfg *config.Config, direction string) error {
	sourceURL := fmt.Sprintf("file://%s", cfg.Migrations.MigrationsPath)
	databaseURL := fmt.Sprintf("sqlite3://%s?x-migrations-table=%s", cfg.StoragePath, cfg.Migrations.MigrationTable)

	m, err := migrate.New(sourceURL, databaseURL)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			log.Error("failed to close migration source", slog.String("error", srcErr.Error()))
		}
		if dbErr != nil {
			log.Error("failed to close database", slog.String("error", dbErr.Error()))
		}
	}()

	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	default:
		return fmt.Errorf("unknown direction %q, expected up or down", direction)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("schema already up to date")
		return nil
	}
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
