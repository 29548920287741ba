package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const devSessionSecret = "default-secret-key"

type Config struct {
	Port        string
	Environment string
	LogLevel    string

	SessionSecret string
	TokenTTL      time.Duration

	GeminiAPIKey    string
	GeminiModel     string
	GeminiFastModel string

	StylistTimeout         time.Duration
	StylistRate            float64
	StylistBurst           int
	StylistBreakerFailures uint32

	CORSOrigins    []string
	MaxUploadBytes int64

	AuthRateLimit  int
	AuthRateWindow time.Duration
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:            getEnvWithDefault("PORT", "8080"),
		Environment:     getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:        getEnvWithDefault("LOG_LEVEL", "info"),
		SessionSecret:   os.Getenv("SESSION_SECRET"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     getEnvWithDefault("GEMINI_MODEL", "gemini-2.5-pro"),
		GeminiFastModel: getEnvWithDefault("GEMINI_FAST_MODEL", "gemini-2.5-flash"),
		CORSOrigins:     splitList(getEnvWithDefault("CORS_ORIGINS", "http://localhost:5000")),
	}

	var err error
	if cfg.TokenTTL, err = durationEnv("TOKEN_TTL", 7*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.StylistTimeout, err = durationEnv("STYLIST_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}
	if cfg.AuthRateWindow, err = durationEnv("AUTH_RATE_WINDOW", time.Minute); err != nil {
		return nil, err
	}
	if cfg.StylistRate, err = floatEnv("STYLIST_RATE", 2); err != nil {
		return nil, err
	}
	if cfg.StylistBurst, err = intEnv("STYLIST_BURST", 4); err != nil {
		return nil, err
	}
	if cfg.AuthRateLimit, err = intEnv("AUTH_RATE_LIMIT", 20); err != nil {
		return nil, err
	}
	failures, err := intEnv("STYLIST_BREAKER_FAILURES", 5)
	if err != nil {
		return nil, err
	}
	if failures < 1 {
		return nil, fmt.Errorf("STYLIST_BREAKER_FAILURES must be at least 1")
	}
	cfg.StylistBreakerFailures = uint32(failures)

	maxUpload, err := intEnv("MAX_UPLOAD_BYTES", 5<<20)
	if err != nil {
		return nil, err
	}
	cfg.MaxUploadBytes = int64(maxUpload)

	// Validate required fields
	if cfg.SessionSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("SESSION_SECRET is required in production")
		}
		cfg.SessionSecret = devSessionSecret
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration, got %q", key, raw)
	}
	return d, nil
}

func intEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	return v, nil
}

func floatEnv(key string, def float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s must be a positive number, got %q", key, raw)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// MockStylist reports whether AI responses will be served by the mock.
func (c *Config) MockStylist() bool {
	return c.GeminiAPIKey == ""
}
