// Package database tests cover SQLite connection setup and schema creation.
package database

import (
	"path/filepath"
	"testing"
)

func TestConnectCreatesSchema(t *testing.T) {
	db, err := Connect(":memory:")
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer db.Close()

	for _, table := range []string{"categories", "posts"} {
		var name string
		err := db.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q not created: %v", table, err)
		}
	}
}

func TestConnectCreatesDataDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "app.db")

	db, err := Connect(path)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		t.Errorf("ping failed after Connect: %v", err)
	}
}

func TestConnectIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.db")

	// Opening the same file twice must not fail on the existing schema.
	first, err := Connect(path)
	if err != nil {
		t.Fatalf("first Connect: %v", err)
	}
	if _, err := first.Exec(`INSERT INTO categories (name) VALUES ('tech')`); err != nil {
		t.Fatalf("insert: %v", err)
	}
	first.Close()

	second, err := Connect(path)
	if err != nil {
		t.Fatalf("second Connect: %v", err)
	}
	defer second.Close()

	var count int
	if err := second.QueryRow(`SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("categories after reopen: got %d, want 1", count)
	}
}

func TestConnectEnforcesForeignKeys(t *testing.T) {
	db, err := Connect(":memory:")
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer db.Close()

	_, err = db.Exec(
		`INSERT INTO posts (name, slug, content, category_id) VALUES ('x', 'x', 'x', 999)`,
	)
	if err == nil {
		t.Error("expected foreign key violation inserting post with unknown category")
	}
}
