package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"partnerline/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:8080" || cfg.Server.BasePath != "/v0" {
		t.Fatalf("unexpected defaults: %+v", cfg.Server)
	}
	if cfg.Sample.Projects != nil {
		t.Fatalf("sample overrides should be unset by default")
	}
}

func TestFromYAML(t *testing.T) {
	cfg, err := config.FromYAML([]byte(`
server:
  addr: 127.0.0.1:9999
sample:
  projects: 3
  fortune30: 2
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9999" {
		t.Fatalf("addr not applied: %s", cfg.Server.Addr)
	}
	if cfg.Sample.Projects == nil || *cfg.Sample.Projects != 3 {
		t.Fatalf("projects override missing: %+v", cfg.Sample)
	}
	if cfg.Sample.Fortune30 == nil || *cfg.Sample.Fortune30 != 2 {
		t.Fatalf("fortune30 override missing: %+v", cfg.Sample)
	}
	if cfg.Sample.SPIs != nil {
		t.Fatalf("unset override should stay nil")
	}
}

func TestFromYAMLRejectsNegativeQuantities(t *testing.T) {
	_, err := config.FromYAML([]byte("sample:\n  sitreps: -1\n"))
	if err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadWorkspaceFile(t *testing.T) {
	workspace := t.TempDir()
	dir := filepath.Join(workspace, ".partnerline")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(config.Path(workspace), []byte("sample:\n  objectives: 4\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := config.Load(workspace)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Sample.Objectives == nil || *cfg.Sample.Objectives != 4 {
		t.Fatalf("workspace override not loaded: %+v", cfg.Sample)
	}
}
