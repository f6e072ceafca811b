// handler_test.go provides shared test infrastructure for handler tests.
// Each test runs against its own in-memory SQLite database.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"microcms/internal/database"
	"microcms/internal/models"
	"microcms/internal/service"
	"microcms/internal/store"
)

// testEnv holds the handler groups wired over a fresh database.
type testEnv struct {
	Categories *Categories
	Posts      *Posts
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.Connect(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	categoryStore := store.NewCategoryStore(db)
	postStore := store.NewPostStore(db)
	categoryService := service.NewCategoryService(categoryStore, postStore)
	postService := service.NewPostService(postStore, categoryStore)

	return &testEnv{
		Categories: NewCategories(categoryService),
		Posts:      NewPosts(postService),
	}
}

// withChiURLParam injects a chi URL parameter into the request context, so
// handlers can be exercised without a full router.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// jsonRequest builds a request with a JSON-encoded body.
func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// decodeJSON decodes a response body into out.
func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(out); err != nil {
		t.Fatalf("decode response: %v (body: %s)", err, rec.Body.String())
	}
}

// errorCode extracts the machine-readable code from an error response.
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	decodeJSON(t, rec, &resp)
	return resp.Code
}

// uniqueName returns a fixture name that cannot collide across tests.
func uniqueName(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}

// createCategory creates a category through the handler and returns it.
func createCategory(t *testing.T, env *testEnv, name string) models.Category {
	t.Helper()
	rec := httptest.NewRecorder()
	env.Categories.Create(rec, jsonRequest(t, http.MethodPost, "/categories", map[string]string{"name": name}))
	if rec.Code != http.StatusOK {
		t.Fatalf("create category %q: status %d, body %s", name, rec.Code, rec.Body.String())
	}
	var c models.Category
	decodeJSON(t, rec, &c)
	return c
}

// createPost creates a post through the handler and returns it.
func createPost(t *testing.T, env *testEnv, name string, categoryID int64) models.Post {
	t.Helper()
	rec := httptest.NewRecorder()
	env.Posts.Create(rec, jsonRequest(t, http.MethodPost, "/posts", map[string]any{
		"name":        name,
		"content":     "body of " + name,
		"category_id": categoryID,
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("create post %q: status %d, body %s", name, rec.Code, rec.Body.String())
	}
	var p models.Post
	decodeJSON(t, rec, &p)
	return p
}
