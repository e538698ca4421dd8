package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Gemini GeminiConfig
	Redis  RedisConfig
}

type GeminiConfig struct {
	// APIKey may be empty: the concierge then answers with its fixed
	// offline apology instead of calling out.
	APIKey  string        `env:"GEMINI_API_KEY"`
	Model   string        `env:"GEMINI_MODEL,   default=gemini-3-flash-preview"`
	Timeout time.Duration `env:"GEMINI_TIMEOUT, default=15s"`
	RPS     int           `env:"GEMINI_RPS,     default=2"`
}

type RedisConfig struct {
	// Addr empty disables the concierge reply cache entirely.
	Addr     string        `env:"REDIS_ADDR"`
	DB       int           `env:"REDIS_DB, default=0"`
	ReplyTTL time.Duration `env:"CHAT_CACHE_TTL, default=10m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
