package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
// All environment variables are read here and nowhere else.
type Config struct {
	Env string // development, staging, production

	// Bazaar sources
	Bazaar BazaarConfig

	// Artifact output
	Output OutputConfig

	// Serve mode
	Serve ServeConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// BazaarConfig holds bazaar API source configuration.
type BazaarConfig struct {
	// Endpoints are tried in order until one yields a usable snapshot.
	Endpoints []string

	Timeout        time.Duration
	RatePerSecond  float64
	RateBurst      int
	SaveRawPayload bool
}

// OutputConfig holds artifact output configuration.
type OutputConfig struct {
	Dir string
}

// ServeConfig holds HTTP API configuration for serve mode.
type ServeConfig struct {
	Port string
}

// DefaultEndpoints are the bazaar sources tried in order when no override is
// configured.
var DefaultEndpoints = []string{
	"https://api.hypixel.net/skyblock/bazaar",
	"https://api.hypixel.net/resources/skyblock/bazaar",
	"https://sky.shiiyu.moe/api/v2/bazaar",
	"https://api.slothpixel.me/api/skyblock/bazaar",
}

// Load reads configuration from environment variables.
// Only this function calls os.Getenv().
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Env: getEnv("ENV", "development"),

		Bazaar: BazaarConfig{
			Endpoints:      getEnvAsList("BAZAAR_ENDPOINTS", DefaultEndpoints),
			Timeout:        getEnvAsDuration("BAZAAR_TIMEOUT", "10s"),
			RatePerSecond:  getEnvAsFloat("BAZAAR_RATE_PER_SECOND", 2.0),
			RateBurst:      getEnvAsInt("BAZAAR_RATE_BURST", 1),
			SaveRawPayload: getEnvAsBool("BAZAAR_SAVE_RAW", true),
		},

		Output: OutputConfig{
			Dir: getEnv("OUTPUT_DIR", "."),
		},

		Serve: ServeConfig{
			Port: getEnv("PORT", "8089"),
		},

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set.
func (c *Config) validate() error {
	if len(c.Bazaar.Endpoints) == 0 {
		return fmt.Errorf("at least one bazaar endpoint is required")
	}

	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations.
func loadEnvFile() {
	paths := []string{
		".env", // Current directory
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

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
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

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
