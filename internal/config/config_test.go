package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
listen: ":9000"
logger:
  level: debug
storage:
  database: /tmp/quiz.db
  logo: /tmp/logo.png
admin:
  password: topsecret
cors:
  allowed_origins:
    - "https://quiz.example.com"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Listen != ":9000" {
		t.Errorf("expected listen :9000, got %s", cfg.Listen)
	}
	if cfg.Logger.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Logger.Level)
	}
	if cfg.Storage.Database != "/tmp/quiz.db" {
		t.Errorf("unexpected database path: %s", cfg.Storage.Database)
	}
	if cfg.Admin.Password != "topsecret" {
		t.Errorf("unexpected admin password: %s", cfg.Admin.Password)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "https://quiz.example.com" {
		t.Errorf("unexpected cors origins: %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Listen != ":8000" {
		t.Errorf("expected default listen, got %s", cfg.Listen)
	}
	if cfg.Storage.Database != "data/quizboard.db" {
		t.Errorf("expected default database path, got %s", cfg.Storage.Database)
	}
	if cfg.Admin.Password != "admin123" {
		t.Errorf("expected default admin password, got %s", cfg.Admin.Password)
	}
}

func TestLoadHashOnlyKeepsPasswordEmpty(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
admin:
  password_hash: "$2a$10$abcdefghijklmnopqrstuv"
`))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Admin.Password != "" {
		t.Errorf("default password must not override a configured hash, got %q", cfg.Admin.Password)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
