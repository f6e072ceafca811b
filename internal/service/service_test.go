// service_test.go provides shared fixtures for service tests. Every test
// runs against its own in-memory SQLite database.
package service

import (
	"testing"

	"github.com/google/uuid"

	"microcms/internal/database"
	"microcms/internal/store"
)

type testEnv struct {
	Categories *CategoryService
	Posts      *PostService
}

// newTestEnv wires stores and services over a fresh in-memory database.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.Connect(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	categoryStore := store.NewCategoryStore(db)
	postStore := store.NewPostStore(db)

	return &testEnv{
		Categories: NewCategoryService(categoryStore, postStore),
		Posts:      NewPostService(postStore, categoryStore),
	}
}

// uniqueName returns a fixture name that cannot collide across tests.
func uniqueName(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}

// ptr returns a pointer to v, for building partial-update inputs.
func ptr[T any](v T) *T {
	return &v
}
