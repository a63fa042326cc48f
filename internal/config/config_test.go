package config

import (
	"os"
	"path/filepath"
	"testing"
)

// pointConfigAt routes os.UserConfigDir into a temp directory and returns
// the app config dir inside it.
func pointConfigAt(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	return filepath.Join(base, "dailyq")
}

func TestLoad_Defaults(t *testing.T) {
	dir := pointConfigAt(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != BackendSQLite {
		t.Errorf("backend = %q", cfg.Backend)
	}
	if cfg.Path != filepath.Join(dir, "dailyq.db") {
		t.Errorf("path = %q", cfg.Path)
	}
	if cfg.ExportDir != filepath.Join(dir, "exports") {
		t.Errorf("export dir = %q", cfg.ExportDir)
	}
	if cfg.Debug {
		t.Error("debug on by default")
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := pointConfigAt(t)
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	yaml := "backend: diskv\npath: /tmp/dailyq-data\ndebug: true\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != BackendDiskv || cfg.Path != "/tmp/dailyq-data" || !cfg.Debug {
		t.Errorf("cfg = %+v", cfg)
	}
	// unset keys keep their defaults
	if cfg.ExportDir != filepath.Join(dir, "exports") {
		t.Errorf("export dir = %q", cfg.ExportDir)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	pointConfigAt(t)
	t.Setenv("DAILYQ_BACKEND", "diskv")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != BackendDiskv {
		t.Errorf("backend = %q", cfg.Backend)
	}
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	pointConfigAt(t)
	t.Setenv("DAILYQ_BACKEND", "redis")

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted unknown backend")
	}
}
