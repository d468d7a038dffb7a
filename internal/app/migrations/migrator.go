// Package migrations applies the embedded SQL schema with golang-migrate.
package migrations

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // registers the pgx5:// scheme
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/adithi-k-max/FSAD-project/internal/pkg/logger"
)

//go:embed sql/*.sql
var files embed.FS

// Migrator manages database migrations
type Migrator struct {
	m *migrate.Migrate
}

// NewMigrator opens a migrator for the postgres database at connString.
// Both postgres:// and postgresql:// URLs are accepted.
func NewMigrator(connString string) (*Migrator, error) {
	src, err := iofs.New(files, "sql")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, driverURL(connString))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize migrator: %w", err)
	}
	m.Log = migrateLogger{}

	return &Migrator{m: m}, nil
}

// Up applies all pending migrations
func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// Down rolls back steps migrations
func (mg *Migrator) Down(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}
	if err := mg.m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to roll back migrations: %w", err)
	}
	return nil
}

// Force sets the recorded version without running migrations, clearing the dirty flag
func (mg *Migrator) Force(version int) error {
	if err := mg.m.Force(version); err != nil {
		return fmt.Errorf("failed to force version %d: %w", version, err)
	}
	return nil
}

// Version returns the applied schema version. Version 0 means no migration has run.
func (mg *Migrator) Version() (version uint, dirty bool, err error) {
	version, dirty, err = mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

// Close releases the source and database handles
func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	return errors.Join(srcErr, dbErr)
}

func driverURL(connString string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(connString, prefix) {
			return "pgx5://" + strings.TrimPrefix(connString, prefix)
		}
	}
	return connString
}

// migrateLogger forwards golang-migrate progress to the application logger
type migrateLogger struct{}

func (migrateLogger) Printf(format string, v ...interface{}) {
	logger.Info().Msgf(strings.TrimSuffix(format, "\n"), v...)
}

func (migrateLogger) Verbose() bool {
	return false
}
