// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"cvnapi/internal/db"
)

// OpenTestDB creates a migrated database in a temp directory and
// returns it. File-backed rather than :memory: because freshness comes
// from the file's modification time.
func OpenTestDB(t *testing.T) *db.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cvn.sqlite")

	database, err := db.New(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(database.Close)

	require.NoError(t, database.RunMigrations())

	return database
}

// InsertUser seeds one users row. Zero expiry and empty reason store as
// NULL, matching how the list-keeping bots write absent fields.
func InsertUser(t *testing.T, database *db.DB, name string, listType int64, reason string, expiryTicks int64, adder string) {
	t.Helper()

	_, err := database.Conn.ExecContext(context.Background(),
		`INSERT INTO users (name, type, reason, expiry, adder) VALUES (?, ?, ?, ?, ?)`,
		name, listType, nullIfEmpty(reason), nullIfZero(expiryTicks), adder,
	)
	require.NoError(t, err)
}

// InsertPage seeds one watchlist row.
func InsertPage(t *testing.T, database *db.DB, article, project, reason string, expiryTicks int64, adder string) {
	t.Helper()

	_, err := database.Conn.ExecContext(context.Background(),
		`INSERT INTO watchlist (article, project, reason, expiry, adder) VALUES (?, ?, ?, ?, ?)`,
		article, project, nullIfEmpty(reason), nullIfZero(expiryTicks), adder,
	)
	require.NoError(t, err)
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullIfZero(n int64) any {
	if n == 0 {
		return nil
	}
	return n
}
