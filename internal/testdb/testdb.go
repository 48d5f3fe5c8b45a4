// Package testdb opens migrated in-memory databases for package tests.
package testdb

import (
	"context"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/alexivanou/travel-planner/internal/config"
	"github.com/alexivanou/travel-planner/internal/database"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// MigrationsDir returns the absolute path of the repository migrations directory
func MigrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "migrations")
}

// New returns a fresh, migrated in-memory SQLite database private to t.
// It is closed when the test finishes.
func New(t *testing.T) *sqlx.DB {
	t.Helper()

	cfg := config.DBConfig{
		Type: config.DBTypeMemory,
		Name: "test_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
	}

	db, err := database.Connect(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db, cfg, MigrationsDir()))
	return db
}
