package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"

	"cvnapi/migrations"
)

// DB wraps the SQLite handle for the moderation data file. The file is
// written by an external process; this service only reads it, so the
// path is kept around to stat for freshness.
type DB struct {
	Conn *sql.DB
	path string
}

// New opens the data file and verifies the connection.
func New(ctx context.Context, path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", "file:"+path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{Conn: conn, path: path}, nil
}

// RunMigrations applies the embedded SQL migrations, but only when the
// domain tables are missing. A populated data file is owned by the
// list-keeping bots: writing to it would add migration bookkeeping they
// never created and bump the mtime that LastModified reports as the
// freshness timestamp.
func (d *DB) RunMigrations() error {
	present, err := d.schemaPresent()
	if err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}
	if present {
		return nil
	}

	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, "sqlite3://"+d.path)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	// The migrator holds its own SQLite handle; release it so it does
	// not keep a lock on the data file.
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

// schemaPresent reports whether both domain tables already exist.
func (d *DB) schemaPresent() (bool, error) {
	var n int
	err := d.Conn.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('users', 'watchlist')`,
	).Scan(&n)
	if err != nil {
		return false, err
	}
	return n == 2, nil
}

// Ping checks that the data file is still reachable.
func (d *DB) Ping(ctx context.Context) error {
	return d.Conn.PingContext(ctx)
}

// Close closes the underlying handle.
func (d *DB) Close() {
	d.Conn.Close()
}

// Path returns the location of the backing data file.
func (d *DB) Path() string {
	return d.path
}

// LastModified returns the data file's modification time in Unix
// seconds. This is the freshness timestamp for HTTP caching: the file
// is replaced wholesale by the producer, so its mtime tracks content.
func (d *DB) LastModified() (int64, error) {
	fi, err := os.Stat(d.path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat data file: %w", err)
	}
	return fi.ModTime().Unix(), nil
}
