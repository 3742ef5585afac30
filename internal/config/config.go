package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// Upstream prediction service
	UpstreamBaseURL string
	UpstreamTimeout time.Duration

	// Redis query cache. Empty URL disables caching (pass-through).
	RedisURL string

	// Cache TTLs per data kind
	ScheduleTTL   time.Duration
	RosterTTL     time.Duration
	StatsTTL      time.Duration
	PredictionTTL time.Duration

	// Schedule poller
	GamesRefreshInterval time.Duration

	// Over/under calculator
	CalcConfidenceThreshold float64
}

// Load loads configuration from environment variables.
// Every value has a development default; it returns an error only when a set
// variable cannot be parsed.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Env:  getEnv("ENV", "development"),

		UpstreamBaseURL: getEnv("UPSTREAM_BASE_URL", "http://127.0.0.1:8000"),
		UpstreamTimeout: getEnvDuration("UPSTREAM_TIMEOUT", 20*time.Second),

		RedisURL: getEnv("REDIS_URL", ""),

		ScheduleTTL:   getEnvDuration("SCHEDULE_TTL", 60*time.Second),
		RosterTTL:     getEnvDuration("ROSTER_TTL", 15*time.Minute),
		StatsTTL:      getEnvDuration("STATS_TTL", 5*time.Minute),
		PredictionTTL: getEnvDuration("PREDICTION_TTL", 2*time.Minute),

		GamesRefreshInterval: getEnvDuration("GAMES_REFRESH_INTERVAL", 60*time.Second),
	}

	threshold, err := getEnvFloat("CALC_CONFIDENCE_THRESHOLD", 0.60)
	if err != nil {
		return nil, err
	}
	if threshold <= 0 || threshold >= 1 {
		return nil, fmt.Errorf("CALC_CONFIDENCE_THRESHOLD must be in (0,1), got %v", threshold)
	}
	cfg.CalcConfidenceThreshold = threshold

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	rawOrigins := strings.Split(origins, ",")
	for _, o := range rawOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
