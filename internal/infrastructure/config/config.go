package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=5000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
	// CORSOrigins lists the browser origins allowed to send the session
	// cookie cross-site.
	CORSOrigins []string `env:"CORS_ORIGINS, default=http://localhost:5173"`
	Token       TokenConfig
	Mongo       MongoConfig
	Redis       RedisConfig
}

type TokenConfig struct {
	// Secret has no default on purpose: an unset secret is a startup error,
	// never a per-request one.
	Secret string        `env:"JWT_SECRET"`
	TTL    time.Duration `env:"TOKEN_TTL, default=24h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=KhulnaTravelsDB"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Token.Secret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET must be set")
	}
	return &cfg, nil
}
