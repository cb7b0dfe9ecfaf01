package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LOADPROFILE_CONFIG", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SEED_ON_START", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("default addr %q", cfg.HTTP.Addr)
	}
	if !cfg.Catalogue.SeedOnStart {
		t.Fatal("seed on start must default to true")
	}
	if cfg.Catalogue.Table != "appliances" {
		t.Fatalf("default table %q", cfg.Catalogue.Table)
	}
}

func TestLoadYAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("http:\n  addr: \":9090\"\ndatabase:\n  url: postgres://file\ncatalogue:\n  seed_on_start: false\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("LOADPROFILE_CONFIG", path)
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("DATABASE_URL", "postgres://env")
	t.Setenv("SEED_ON_START", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Fatalf("yaml addr not applied: %q", cfg.HTTP.Addr)
	}
	if cfg.Database.URL != "postgres://env" {
		t.Fatalf("env must override yaml, got %q", cfg.Database.URL)
	}
	if cfg.Catalogue.SeedOnStart {
		t.Fatal("yaml seed_on_start=false not applied")
	}
}
