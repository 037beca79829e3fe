package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"talent-portal-backend/pkg/logger"
)

// RunMigrations applies all pending migrations from sourcePath against the
// database at databaseURL. A database that is already up to date is not an
// error.
func RunMigrations(sourcePath, databaseURL string) error {
	m, err := migrate.New("file://"+sourcePath, databaseURL)
	if err != nil {
		return fmt.Errorf("migrate init: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Log.Info("Database schema already up to date")
			return nil
		}
		return fmt.Errorf("migrate up: %w", err)
	}

	logger.Log.Info("Database migrations applied")
	return nil
}
