// store_test.go provides a shared test database helper for all store tests.
// Each test gets its own in-memory SQLite database with the schema applied.
package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"microcms/internal/database"
)

// testDB opens a fresh in-memory database with the schema created. A
// cleanup function is registered to close the connection when the test
// finishes.
func testDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// uniqueName returns a name that cannot collide with fixtures from other
// tests sharing helpers.
func uniqueName(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}

// seedCategory inserts a category and returns its ID.
func seedCategory(t *testing.T, s *CategoryStore, name string) int64 {
	t.Helper()
	c, err := s.Create(name)
	if err != nil {
		t.Fatalf("seed category %q: %v", name, err)
	}
	return c.ID
}
