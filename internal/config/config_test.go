package config

import "testing"

// TestLoad_Defaults verifies that Load returns sensible development defaults
// when no environment variables are set.
func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_HOST", "APP_PORT", "APP_ENV", "DB_PATH"} {
		// envOrDefault treats empty the same as unset.
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.Host != "0.0.0.0" {
		t.Errorf("Host: got %q, want %q", cfg.Host, "0.0.0.0")
	}
	if cfg.Port != "8080" {
		t.Errorf("Port: got %q, want %q", cfg.Port, "8080")
	}
	if cfg.Env != "development" {
		t.Errorf("Env: got %q, want %q", cfg.Env, "development")
	}
	if cfg.DBPath != "data/app.db" {
		t.Errorf("DBPath: got %q, want %q", cfg.DBPath, "data/app.db")
	}
	if !cfg.IsDev() {
		t.Error("IsDev: got false, want true")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PATH", "/var/lib/microcms/app.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if got, want := cfg.Addr(), "127.0.0.1:9090"; got != want {
		t.Errorf("Addr: got %q, want %q", got, want)
	}
	if cfg.IsDev() {
		t.Error("IsDev: got true, want false")
	}
	if cfg.DBPath != "/var/lib/microcms/app.db" {
		t.Errorf("DBPath: got %q, want %q", cfg.DBPath, "/var/lib/microcms/app.db")
	}
}

func TestLoad_RejectsMemoryDBInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PATH", ":memory:")

	if _, err := Load(); err == nil {
		t.Error("expected error for in-memory DB in production")
	}
}
