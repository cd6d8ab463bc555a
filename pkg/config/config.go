package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all environment-derived configuration for the updater.
// Dashboard content (project, indicators, output location) lives in the
// YAML file handled by internal/dashboard; only process-level settings and
// credentials come from the environment.
type Config struct {
	Env string // development, staging, production

	// FRED API
	FRED FREDConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// FREDConfig holds FRED (Federal Reserve Economic Data) API configuration.
// APIKey may be empty: that is a per-indicator error at fetch time, not a
// startup failure.
type FREDConfig struct {
	APIKey      string
	BaseURL     string
	Timeout     time.Duration // per-attempt HTTP deadline
	MaxAttempts int
	RatePerSec  float64 // client-side request rate limit
}

// Load reads configuration from environment variables.
// Only this function calls os.Getenv().
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Env: getEnv("ENV", "development"),

		FRED: FREDConfig{
			APIKey:      getEnv("FRED_API_KEY", ""),
			BaseURL:     getEnv("FRED_BASE_URL", "https://api.stlouisfed.org"),
			Timeout:     getEnvAsDuration("FRED_TIMEOUT", "15s"),
			MaxAttempts: getEnvAsInt("FRED_MAX_ATTEMPTS", 4),
			RatePerSec:  getEnvAsFloat("FRED_RATE_PER_SEC", 2),
		},

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks that settings required at startup are sane.
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.FRED.MaxAttempts < 1 {
		return fmt.Errorf("FRED_MAX_ATTEMPTS must be at least 1")
	}

	if c.FRED.Timeout <= 0 {
		return fmt.Errorf("FRED_TIMEOUT must be positive")
	}

	return nil
}

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env",
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
