// ABOUTME: Tests for config loading and overrides
// ABOUTME: Covers defaults, file round-trip, and environment precedence
package config

import (
	"testing"

	"github.com/adrg/xdg"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	xdg.Reload()
	t.Setenv(EnvIdentity, "")
	t.Setenv(EnvBackend, "")
	t.Setenv(EnvDBPath, "")
	t.Cleanup(xdg.Reload)
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Backend != BackendBadger {
		t.Errorf("Expected badger default, got %q", cfg.Backend)
	}
	if cfg.Identity != "" {
		t.Errorf("Expected empty identity, got %q", cfg.Identity)
	}
}

func TestSaveAndLoad(t *testing.T) {
	isolate(t)

	saved := &Config{
		Identity: "alice",
		Backend:  BackendSQLite,
		DBPath:   "/data/newsdesk.db",
	}
	if err := saved.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Identity != "alice" || cfg.Backend != BackendSQLite || cfg.DBPath != "/data/newsdesk.db" {
		t.Errorf("Round-trip mismatch: %+v", cfg)
	}
}

func TestEnvironmentBeatsFile(t *testing.T) {
	isolate(t)

	if err := (&Config{Identity: "alice", Backend: BackendBadger}).Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv(EnvIdentity, "bob")
	t.Setenv(EnvBackend, BackendSQLite)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Identity != "bob" {
		t.Errorf("Expected env identity to win, got %q", cfg.Identity)
	}
	if cfg.Backend != BackendSQLite {
		t.Errorf("Expected env backend to win, got %q", cfg.Backend)
	}
}

func TestDefaultDBPath(t *testing.T) {
	isolate(t)

	if DefaultDBPath(BackendBadger) == DefaultDBPath(BackendSQLite) {
		t.Error("Backends must not share a default path")
	}
}
