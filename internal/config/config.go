package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               int
	RecommenderBaseURL string
	HTTPTimeout        time.Duration
	TopN               int
	SessionTTL         time.Duration
	RedisURL           string
}

// Load configuration from env. Values in a .env file in the working
// directory fill in anything the environment does not set.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Port:               getEnvInt("PORT", 8080),
		RecommenderBaseURL: getEnv("RECOMMENDER_BASE_URL", "http://localhost:8000"),
		HTTPTimeout:        getEnvDuration("HTTP_TIMEOUT", 20*time.Second),
		TopN:               getEnvInt("TOP_N", 10),
		SessionTTL:         getEnvDuration("SESSION_TTL", 30*time.Minute),
		RedisURL:           getEnv("REDIS_URL", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.RecommenderBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid RECOMMENDER_BASE_URL %q", c.RecommenderBaseURL)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.TopN < 1 || c.TopN > 100 {
		return fmt.Errorf("TOP_N must be between 1 and 100, got %d", c.TopN)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("HTTP_TIMEOUT must not be negative")
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return fallback
}
