package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.ListenAddr != ":8080" {
		t.Errorf("Expected default listen addr :8080, got %s", cfg.Server.ListenAddr)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("Expected 10s shutdown timeout, got %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Storage.SQLitePath != "" || cfg.Patterns.TablePath != "" {
		t.Errorf("Expected empty storage and table paths, got %+v", cfg)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Expected info log level, got %s", cfg.Logging.Level)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  listen_addr: "127.0.0.1:9090"
storage:
  sqlite_path: "/tmp/draws.db"
patterns:
  table_path: "/tmp/table.json"
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.ListenAddr != "127.0.0.1:9090" {
		t.Errorf("Expected listen addr from file, got %s", cfg.Server.ListenAddr)
	}
	if cfg.Storage.SQLitePath != "/tmp/draws.db" {
		t.Errorf("Expected sqlite path from file, got %s", cfg.Storage.SQLitePath)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected debug level, got %s", cfg.Logging.Level)
	}
	// Unset fields keep their defaults.
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("Expected default shutdown timeout, got %v", cfg.Server.ShutdownTimeout)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  listen_addr: \"\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected validation error for empty listen addr")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}
