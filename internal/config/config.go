package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultOutputPath    = "employer_stocks.xlsx"
	defaultMaxRetries    = 3
	defaultBackoffMin    = 3000 * time.Millisecond
	defaultBackoffMax    = 8000 * time.Millisecond
	defaultPolitenessMin = 1000 * time.Millisecond
	defaultPolitenessMax = 3000 * time.Millisecond
	defaultHTTPTimeout   = 10000 * time.Millisecond
)

// Config holds every externally tunable parameter of a run.
type Config struct {
	OutputPath    string
	MaxRetries    int
	BackoffMin    time.Duration
	BackoffMax    time.Duration
	PolitenessMin time.Duration
	PolitenessMax time.Duration
	HTTPTimeout   time.Duration
}

// Load reads configuration from the environment, falling back to defaults.
// A .env file is honored when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, continuing with system environment variables")
	}

	cfg := &Config{
		OutputPath:    defaultOutputPath,
		MaxRetries:    defaultMaxRetries,
		BackoffMin:    defaultBackoffMin,
		BackoffMax:    defaultBackoffMax,
		PolitenessMin: defaultPolitenessMin,
		PolitenessMax: defaultPolitenessMax,
		HTTPTimeout:   defaultHTTPTimeout,
	}

	if v := os.Getenv("OUTPUT_PATH"); v != "" {
		cfg.OutputPath = v
	}
	var err error
	if cfg.MaxRetries, err = intFromEnv("MAX_RETRIES", cfg.MaxRetries); err != nil {
		return nil, err
	}
	if cfg.BackoffMin, err = millisFromEnv("BACKOFF_MIN_MS", cfg.BackoffMin); err != nil {
		return nil, err
	}
	if cfg.BackoffMax, err = millisFromEnv("BACKOFF_MAX_MS", cfg.BackoffMax); err != nil {
		return nil, err
	}
	if cfg.PolitenessMin, err = millisFromEnv("POLITENESS_MIN_MS", cfg.PolitenessMin); err != nil {
		return nil, err
	}
	if cfg.PolitenessMax, err = millisFromEnv("POLITENESS_MAX_MS", cfg.PolitenessMax); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = millisFromEnv("HTTP_TIMEOUT_MS", cfg.HTTPTimeout); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.OutputPath == "" {
		return fmt.Errorf("output path must not be empty")
	}
	if c.MaxRetries < 1 {
		return fmt.Errorf("MAX_RETRIES must be at least 1, got %d", c.MaxRetries)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT_MS must be positive, got %s", c.HTTPTimeout)
	}
	if c.BackoffMin < 0 || c.BackoffMax < c.BackoffMin {
		return fmt.Errorf("backoff range %s..%s is invalid", c.BackoffMin, c.BackoffMax)
	}
	if c.PolitenessMin < 0 || c.PolitenessMax < c.PolitenessMin {
		return fmt.Errorf("politeness range %s..%s is invalid", c.PolitenessMin, c.PolitenessMax)
	}
	return nil
}

func intFromEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", key, v)
	}
	return n, nil
}

func millisFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer millisecond count", key, v)
	}
	return time.Duration(n) * time.Millisecond, nil
}
