package config

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// t.Setenv registers the restore; unsetting afterwards leaves the
	// variable absent for this test only.
	for _, key := range []string{"PORT", "ENV", "LOG_LEVEL", "GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_TIMEOUT", "GEMINI_RPS", "REDIS_ADDR", "REDIS_DB", "CHAT_CACHE_TTL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("env = %q, want development", cfg.Env)
	}
	if cfg.Gemini.Model != "gemini-3-flash-preview" {
		t.Errorf("model = %q", cfg.Gemini.Model)
	}
	if cfg.Gemini.Timeout != 15*time.Second {
		t.Errorf("timeout = %v, want 15s", cfg.Gemini.Timeout)
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("redis addr = %q, want empty (cache disabled)", cfg.Redis.Addr)
	}
	if cfg.Redis.ReplyTTL != 10*time.Minute {
		t.Errorf("reply ttl = %v, want 10m", cfg.Redis.ReplyTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("GEMINI_TIMEOUT", "5s")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.Port)
	}
	if cfg.Gemini.APIKey != "secret" {
		t.Errorf("api key = %q", cfg.Gemini.APIKey)
	}
	if cfg.Gemini.Timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", cfg.Gemini.Timeout)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("redis addr = %q", cfg.Redis.Addr)
	}
}
