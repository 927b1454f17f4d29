package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(configPathEnv, "")
	t.Setenv(storagePathEnv, "")
	t.Setenv(logLevelEnv, "")

	cfg := Load()
	if cfg.Logging.Level != "info" {
		t.Fatalf("unexpected default log level: %s", cfg.Logging.Level)
	}
	if cfg.Storage.Path != "pricescanner.db" {
		t.Fatalf("unexpected default storage path: %s", cfg.Storage.Path)
	}
	if len(cfg.Sites) != 2 {
		t.Fatalf("expected 2 default sites, got %d", len(cfg.Sites))
	}
	if cfg.Sites[0].Name != "amazon" || cfg.Sites[0].Adapter != "marketplace" {
		t.Fatalf("unexpected first site: %+v", cfg.Sites[0])
	}
}

func TestLoadFileMerge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
logging:
  level: debug
sites:
  - name: amazon
    adapter: marketplace
    patterns:
      - "*://*.amazon.de/*"
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(configPathEnv, path)
	t.Setenv(storagePathEnv, "")
	t.Setenv(logLevelEnv, "")

	cfg := Load()
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected file log level, got %s", cfg.Logging.Level)
	}
	// Untouched sections keep their defaults.
	if cfg.Storage.Path != "pricescanner.db" {
		t.Fatalf("expected default storage path, got %s", cfg.Storage.Path)
	}
	if len(cfg.Sites) != 1 || len(cfg.Sites[0].Patterns) != 1 {
		t.Fatalf("expected the file site list to win, got %+v", cfg.Sites)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(configPathEnv, "")
	t.Setenv(storagePathEnv, "/tmp/custom.db")
	t.Setenv(logLevelEnv, "error")

	cfg := Load()
	if cfg.Storage.Path != "/tmp/custom.db" {
		t.Fatalf("expected env storage path, got %s", cfg.Storage.Path)
	}
	if cfg.Logging.Level != "error" {
		t.Fatalf("expected env log level, got %s", cfg.Logging.Level)
	}
}
