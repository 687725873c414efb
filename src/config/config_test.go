package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SEA.NodeVersion == "" {
		t.Fatalf("defaults missing node version")
	}
	if len(cfg.Models.Assets) == 0 {
		t.Fatalf("defaults missing model assets")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".vigil.yml")
	content := []byte(`
org: acme
api:
  base_url: https://api.staging.vigilhq.com/v0
sea:
  node_version: "20.18.0"
  use_code_cache: false
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Org != "acme" {
		t.Fatalf("org = %q", cfg.Org)
	}
	if cfg.API.BaseURL != "https://api.staging.vigilhq.com/v0" {
		t.Fatalf("base_url = %q", cfg.API.BaseURL)
	}
	if cfg.SEA.NodeVersion != "20.18.0" {
		t.Fatalf("node_version = %q", cfg.SEA.NodeVersion)
	}
	if cfg.SEA.UseCodeCache {
		t.Fatalf("use_code_cache not overridden")
	}
	// Untouched sections keep defaults.
	if cfg.SEA.BinaryName != "vigil" {
		t.Fatalf("binary_name = %q", cfg.SEA.BinaryName)
	}
}

func TestLoadBadYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".vigil.yml")
	if err := os.WriteFile(path, []byte("org: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for malformed YAML")
	}
}
