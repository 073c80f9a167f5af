package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string `env:"APP_PORT" envDefault:"3000"`

	DatabaseDSN string `env:"DATABASE_DSN,required"`

	RedisAddr     string `env:"REDIS_ADDR,required"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	GitHubClientID     string `env:"GITHUB_ID,required"`
	GitHubClientSecret string `env:"GITHUB_SECRET,required"`
	GitHubRedirectURL  string `env:"GITHUB_CALLBACK_URL" envDefault:"http://127.0.0.1:3000/auth/github/callback"`

	SlackClientID     string `env:"SLACK_ID,required"`
	SlackClientSecret string `env:"SLACK_SECRET,required"`
	SlackRedirectURL  string `env:"SLACK_CALLBACK_URL" envDefault:"http://127.0.0.1:3000/auth/slack/callback"`
}

// Load reads configuration from the environment, with an optional .env
// file for local development. Missing required values are a startup
// error, never a per-request condition.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
