package postgres

import (
	"database/sql"
	"errors"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/tasknest/backend/internal/config"
)

// Migrate applies pending schema migrations from the configured file source.
// A no-op when migrations are disabled or already up to date.
func Migrate(dbURL string, cfg config.MigrationsConfig, logger *zap.Logger) error {
	if !cfg.Enabled {
		return nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	// golang-migrate drives a plain database/sql connection, separate from
	// the pgx pool the repositories use.
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		return err
	}

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://"+filepath.ToSlash(cfg.Path), "postgres", driver)
	if err != nil {
		return err
	}
	defer m.Close()

	switch err := m.Up(); {
	case err == nil:
		logger.Info("schema migrations applied", zap.String("path", cfg.Path))
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("schema already up to date")
	default:
		return err
	}
	return nil
}
