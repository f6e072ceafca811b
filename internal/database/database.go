// Package database handles SQLite connection management and schema setup.
// It provides a Connect function that returns a ready-to-use *sqlx.DB and
// creates the schema on first start; there is no migration tooling.
package database

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// schema declares the two tables. Statements are idempotent so startup is
// safe against an existing database file.
const schema = `
CREATE TABLE IF NOT EXISTS categories (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS posts (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL,
	slug        TEXT NOT NULL UNIQUE,
	content     TEXT NOT NULL,
	image_url   TEXT,
	category_id INTEGER NOT NULL REFERENCES categories(id)
);

CREATE INDEX IF NOT EXISTS idx_posts_category_id ON posts(category_id);
`

// Connect opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the schema if absent. The DSN enables WAL
// mode for concurrent readers, a busy timeout so writers wait instead of
// failing with SQLITE_BUSY, and foreign key enforcement on every pooled
// connection.
func Connect(path string) (*sqlx.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("database open: %w", err)
	}
	if path == ":memory:" {
		// An in-memory database exists per connection; the pool must be
		// pinned to a single connection or state silently disappears.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	} else {
		db.SetMaxOpenConns(4)
		db.SetMaxIdleConns(4)
	}

	// Verify the connection is alive.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	slog.Info("database connected", "path", path)
	return db, nil
}
