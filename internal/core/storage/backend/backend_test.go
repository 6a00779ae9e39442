package backend

import (
	"context"
	"path/filepath"
	"testing"

	v1 "github.com/aevon-lab/contact-ledger/internal/api/v1"
	"github.com/aevon-lab/contact-ledger/internal/core/config"
	"github.com/aevon-lab/contact-ledger/internal/core/storage/memory"
	"github.com/aevon-lab/contact-ledger/internal/core/storage/sqlite"
	"github.com/stretchr/testify/require"
)

func TestOpen_Memory(t *testing.T) {
	store, err := Open(context.Background(), config.DatabaseConfig{Driver: config.DriverMemory})
	require.NoError(t, err)
	defer store.Close()

	require.IsType(t, &memory.Store{}, store)
}

func TestOpen_SQLiteMigratesSchema(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, config.DatabaseConfig{
		Driver:      config.DriverSQLite,
		DSN:         filepath.Join(t.TempDir(), "contacts.db"),
		AutoMigrate: true,
	})
	require.NoError(t, err)
	defer store.Close()

	require.IsType(t, &sqlite.Store{}, store)
	require.NoError(t, store.Put(ctx, &v1.Event{
		ID:        "heyreach_1",
		Email:     "a@x.com",
		Platform:  v1.PlatformHeyreach,
		Type:      v1.TypeSend,
		Timestamp: "2024-01-01T00:00:00Z",
	}))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), config.DatabaseConfig{Driver: "mysql"})
	require.ErrorContains(t, err, "unsupported database driver")
}
