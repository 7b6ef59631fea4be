package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// A named file that does not exist is an error; discovery mode
	// tolerates a missing file and applies defaults.
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("missing named config file accepted")
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Path != "./data/alumniconnect.db" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	if cfg.Auth.TokenTTLHour != 24 {
		t.Errorf("Auth.TokenTTLHour = %d, want 24", cfg.Auth.TokenTTLHour)
	}
	if cfg.Cache.Enabled {
		t.Errorf("cache enabled by default")
	}
	if cfg.Analytics.TopSkills != 10 {
		t.Errorf("Analytics.TopSkills = %d, want 10", cfg.Analytics.TopSkills)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte(`
server:
  port: 9000
  debug: true
auth:
  jwt_secret: "${TEST_JWT_SECRET}"
cache:
  enabled: true
  addr: "redis:6379"
  ttl: 60
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TEST_JWT_SECRET", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9000 || !cfg.Server.Debug {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Auth.JWTSecret != "from-env" {
		t.Errorf("JWTSecret = %q, want env expansion", cfg.Auth.JWTSecret)
	}
	if !cfg.Cache.Enabled || cfg.Cache.Addr != "redis:6379" || cfg.Cache.TTL != 60 {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	// Unset keys still fall back to defaults.
	if cfg.Auth.TokenTTLHour != 24 {
		t.Errorf("TokenTTLHour = %d, want default 24", cfg.Auth.TokenTTLHour)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ALUMNICONNECT_SERVER_PORT", "7070")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want env override 7070", cfg.Server.Port)
	}
}
