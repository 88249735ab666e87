package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr    string        `env:"HTTP_ADDR" envDefault:":8080"`
	ServerDB    string        `env:"SERVER_DB" envDefault:"data/scores.db"`
	LocalDB     string        `env:"LOCAL_DB" envDefault:"data/dailypuzzle.db"`
	SyncURL     string        `env:"SYNC_URL" envDefault:"http://localhost:8080/sync/daily-scores"`
	SyncTimeout time.Duration `env:"SYNC_TIMEOUT" envDefault:"10s"`
	LogLevel    slog.Level    `env:"LOG_LEVEL" envDefault:"INFO"`
}

// Load reads configuration from the environment, after overlaying a .env
// file if one exists in the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
