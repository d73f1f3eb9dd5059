package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cssel/config"
)

func TestLoadConfiguration_Defaults(t *testing.T) {
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("failed to load default configuration: %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("expected version 1, got %d", cfg.Version)
	}
	if !cfg.Linting.Enable {
		t.Error("expected linting enabled by default")
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("expected console level 'normal', got %q", cfg.Logging.ConsoleLogger.Level)
	}
	if cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("expected file level 'none', got %q", cfg.Logging.FileLogger.Level)
	}
}

func TestLoadConfiguration_FileOverride(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "cfg.yaml")
	override := `
linting:
  warnings_as_errors: true
logging:
  console:
    level: debug
`
	if err := os.WriteFile(fname, []byte(override), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := config.LoadConfiguration(fname)
	if err != nil {
		t.Fatalf("failed to load configuration: %v", err)
	}
	if !cfg.Linting.WarningsAsErrors {
		t.Error("expected warnings_as_errors override")
	}
	if cfg.Logging.ConsoleLogger.Level != "debug" {
		t.Errorf("expected console level 'debug', got %q", cfg.Logging.ConsoleLogger.Level)
	}
	// untouched defaults survive
	if cfg.Version != 1 {
		t.Errorf("expected version 1, got %d", cfg.Version)
	}
}

func TestLoadConfiguration_UnknownFieldRejected(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(fname, []byte("no_such_key: true\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	if _, err := config.LoadConfiguration(fname); err == nil {
		t.Error("expected error for unknown configuration key")
	}
}

func TestDump(t *testing.T) {
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("failed to load default configuration: %v", err)
	}
	data, err := config.Dump(cfg)
	if err != nil {
		t.Fatalf("failed to dump configuration: %v", err)
	}
	if !strings.Contains(string(data), "version: 1") {
		t.Errorf("dump missing version field:\n%s", data)
	}
}
