package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port  string `envconfig:"PORT" default:"8080"`
	Debug bool   `envconfig:"DEBUG" default:"false"`

	// CorpusPath overrides the built-in knowledge corpus.
	CorpusPath string `envconfig:"CORPUS_PATH"`

	OpenAIAPIKey string        `envconfig:"OPENAI_API_KEY"`
	ChatModel    string        `envconfig:"CHAT_MODEL"`
	ChatTimeout  time.Duration `envconfig:"CHAT_TIMEOUT" default:"20s"`

	TopK int `envconfig:"TOP_K" default:"4"`

	SentryDSN   string `envconfig:"SENTRY_DSN"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("ASSIST", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.TopK <= 0 {
		return nil, fmt.Errorf("ASSIST_TOP_K must be positive, got %d", cfg.TopK)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

func (c *Config) HasOpenAI() bool {
	return c.OpenAIAPIKey != ""
}
