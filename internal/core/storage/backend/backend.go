// Package backend opens the EventStore selected by configuration.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aevon-lab/contact-ledger/internal/core/config"
	"github.com/aevon-lab/contact-ledger/internal/core/storage"
	"github.com/aevon-lab/contact-ledger/internal/core/storage/memory"
	"github.com/aevon-lab/contact-ledger/internal/core/storage/postgres"
	"github.com/aevon-lab/contact-ledger/internal/core/storage/sqlite"
	"github.com/aevon-lab/contact-ledger/internal/migrations"
)

// Open opens the configured database, brings its schema up to date and returns the
// store. The caller must Close it.
func Open(ctx context.Context, cfg config.DatabaseConfig) (storage.EventStore, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		slog.Info("[Storage] Using in-memory store")
		return memory.New(), nil

	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.DSN)
		if err != nil {
			return nil, err
		}
		if err := migrations.RunMigrations(db, migrations.DialectSQLite, cfg.AutoMigrate); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		store := sqlite.New(db)
		if err := store.Ping(ctx); err != nil {
			store.Close()
			return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
		}
		return store, nil

	case config.DriverPostgres:
		db, err := postgres.Open(cfg.DSN, cfg.MaxOpenConns, cfg.MaxIdleConns)
		if err != nil {
			return nil, err
		}
		if err := migrations.RunMigrations(db, migrations.DialectPostgres, cfg.AutoMigrate); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		adapter, err := postgres.NewAdapter(db)
		if err != nil {
			db.Close()
			return nil, err
		}
		return adapter, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
