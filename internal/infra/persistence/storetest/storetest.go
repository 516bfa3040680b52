// Package storetest opens migrated in-memory SQLite stores for tests.
package storetest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"

	"holocron/config"
	"holocron/internal/infra/persistence/migration"
	"holocron/internal/infra/persistence/store"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var dbSeq atomic.Int64

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Config returns a config pointing at a fresh named in-memory database.
// A single connection keeps the database alive for the life of the pool.
func Config(t testing.TB) *config.Config {
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())

	return &config.Config{
		Database: &config.DatabaseConfig{
			URL:          fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, dbSeq.Add(1)),
			MaxOpenConns: 1,
		},
	}
}

// OpenEmpty opens an in-memory store with no schema.
func OpenEmpty(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := store.Open(Config(t), DiscardLogger())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

// Open opens an in-memory store migrated to the latest revision.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db := OpenEmpty(t)

	migrator, err := migration.New(db, DiscardLogger())
	require.NoError(t, err)

	_, err = migrator.Upgrade(context.Background(), migration.Head)
	require.NoError(t, err)

	return db
}
