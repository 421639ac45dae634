package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadAppliesDefaultsAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	raw := `
server:
  port: "9090"
quiz:
  time_limit: 15m
  auto_submit: false
auth:
  enabled: true
  jwt_secret: from-file
`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("AUTH_JWT_SECRET", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Server.Port)
	}
	if cfg.Auth.JWTSecret != "from-env" {
		t.Fatalf("expected env secret, got %q", cfg.Auth.JWTSecret)
	}
	if cfg.Auth.CookieName != "session" {
		t.Fatalf("expected default cookie name, got %q", cfg.Auth.CookieName)
	}
	if cfg.AutoSubmitEnabled() {
		t.Fatalf("expected auto submit disabled")
	}
	if got := Seconds(cfg.Quiz.TimeLimit, 1800); got != 900 {
		t.Fatalf("expected 900 seconds, got %d", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestTTLDurationFallback(t *testing.T) {
	if got := TTLDuration("", time.Minute); got != time.Minute {
		t.Fatalf("expected fallback, got %v", got)
	}
	if got := TTLDuration("bogus", time.Minute); got != time.Minute {
		t.Fatalf("expected fallback for bad input, got %v", got)
	}
	if got := TTLDuration("90s", time.Minute); got != 90*time.Second {
		t.Fatalf("expected 90s, got %v", got)
	}
	if !(Config{}).AutoSubmitEnabled() {
		t.Fatalf("auto submit should default to true")
	}
}
