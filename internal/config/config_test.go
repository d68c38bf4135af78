package config

import (
	"testing"
	"time"
)

// TestFromEnvDefaults checks that an empty environment yields the
// documented defaults.
func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.BaseURL != "https://stats.nba.com/stats" {
		t.Errorf("BaseURL: want stats.nba.com default, got %q", cfg.BaseURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("HTTPTimeout: want 30s, got %v", cfg.HTTPTimeout)
	}
	if cfg.RequestDelay != 5*time.Second {
		t.Errorf("RequestDelay: want 5s, got %v", cfg.RequestDelay)
	}
	if cfg.Model == "" {
		t.Error("Model: want a non-empty default")
	}
}

// TestFromEnvOverrides checks that set variables win over defaults.
func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("NBA_API_BASE_URL", "http://localhost:8080/stats")
	t.Setenv("NBA_REQUEST_DELAY", "250ms")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.BaseURL != "http://localhost:8080/stats" {
		t.Errorf("BaseURL: want override, got %q", cfg.BaseURL)
	}
	if cfg.RequestDelay != 250*time.Millisecond {
		t.Errorf("RequestDelay: want 250ms, got %v", cfg.RequestDelay)
	}
}

// TestFromEnvBadDuration checks that malformed durations surface as
// errors instead of being silently defaulted.
func TestFromEnvBadDuration(t *testing.T) {
	t.Setenv("NBA_HTTP_TIMEOUT", "not-a-duration")

	if _, err := FromEnv(); err == nil {
		t.Fatal("FromEnv: want error for bad duration, got nil")
	}
}
