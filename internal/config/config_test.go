package config

import (
	"path/filepath"
	"testing"

	"github.com/fbkclanna/jspkg/internal/pm"
)

func TestLoad_missingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("missing config file should not error: %v", err)
	}
	if got := cfg.DefaultManager(); got != pm.Default {
		t.Errorf("default manager = %s, want %s", got, pm.Default)
	}
}

func TestSaveLoad_roundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	if err := Save(path, &Config{Manager: "pnpm"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := cfg.DefaultManager(); got != pm.PNPM {
		t.Errorf("manager = %s, want pnpm", got)
	}
}

func TestDefaultManager_unknownValue(t *testing.T) {
	cfg := &Config{Manager: "cargo"}
	if got := cfg.DefaultManager(); got != pm.Default {
		t.Errorf("unknown configured manager should fall back to %s, got %s", pm.Default, got)
	}
}
