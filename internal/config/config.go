package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every environment-driven setting of the service.
type Config struct {
	Port        string
	APIPrefix   string
	Environment string

	DatabaseHost     string
	DatabasePort     string
	DatabaseUser     string
	DatabasePassword string
	DatabaseName     string
	DatabaseSSLMode  string

	MercadoPagoAccessToken string
	MercadoPagoBaseURL     string
	ResendAPIKey           string
	ResendFromEmail        string
	ResendBaseURL          string

	WebhookBaseURL string
	FrontendURL    string

	RedisAddr string
	CacheTTL  time.Duration

	RateLimitWindow time.Duration
	RateLimitMax    int

	OTLPEndpoint string
	ServiceName  string
}

// Load reads .env when present and builds the config from the environment.
func Load() (*Config, error) {
	// A missing .env file is fine in containers; the environment wins anyway.
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8000"),
		APIPrefix:   getEnv("API_PREFIX", "/api"),
		Environment: getEnv("APP_ENV", "development"),

		DatabaseHost:     getEnv("DATABASE_HOST", "localhost"),
		DatabasePort:     getEnv("DATABASE_PORT", "5432"),
		DatabaseUser:     getEnv("DATABASE_USER", "postgres"),
		DatabasePassword: getEnv("DATABASE_PASSWORD", "postgres"),
		DatabaseName:     getEnv("DATABASE_NAME", "payments_db"),
		DatabaseSSLMode:  getEnv("DATABASE_SSLMODE", "disable"),

		MercadoPagoAccessToken: getEnv("MERCADOPAGO_ACCESS_TOKEN", ""),
		MercadoPagoBaseURL:     getEnv("MERCADOPAGO_BASE_URL", "https://api.mercadopago.com"),
		ResendAPIKey:           getEnv("RESEND_API_KEY", ""),
		ResendFromEmail:        getEnv("RESEND_FROM_EMAIL", "notifications@example.com"),
		ResendBaseURL:          getEnv("RESEND_BASE_URL", "https://api.resend.com"),

		WebhookBaseURL: getEnv("WEBHOOK_BASE_URL", "http://localhost:8000"),
		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:3000"),

		RedisAddr: getEnv("REDIS_ADDR", ""),
		CacheTTL:  time.Duration(getEnvAsInt("CACHE_DEFAULT_TTL", 300)) * time.Second,

		RateLimitWindow: time.Duration(getEnvAsInt("RATE_LIMIT_WINDOW", 60)) * time.Second,
		RateLimitMax:    getEnvAsInt("RATE_LIMIT_MAX", 120),

		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		ServiceName:  getEnv("SERVICE_NAME", "payment-automation"),
	}

	if cfg.RateLimitMax <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_MAX must be positive")
	}
	return cfg, nil
}

// DatabaseDSN builds the pgx connection string.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DatabaseUser,
		c.DatabasePassword,
		c.DatabaseHost,
		c.DatabasePort,
		c.DatabaseName,
		c.DatabaseSSLMode,
	)
}

// Production reports whether the service runs with production behavior
// (generic error bodies, no debug logging).
func (c *Config) Production() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
