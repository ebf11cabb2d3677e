package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `memory_dir = "/srv/memories"

[defaults]
scope = "analytics-platform"
domain = "analytics"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.MemoryDir != "/srv/memories" {
		t.Errorf("MemoryDir = %q, want /srv/memories", cfg.MemoryDir)
	}
	if cfg.Defaults["scope"] != "analytics-platform" {
		t.Errorf("Defaults[scope] = %q, want analytics-platform", cfg.Defaults["scope"])
	}
	if cfg.Defaults["domain"] != "analytics" {
		t.Errorf("Defaults[domain] = %q, want analytics", cfg.Defaults["domain"])
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("memory_dir = [broken"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("expected parse error for invalid TOML")
	}
}

func TestLoadFrom_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.MemoryDir != "" || len(cfg.Defaults) != 0 {
		t.Errorf("empty config should have zero values, got %+v", cfg)
	}
}
