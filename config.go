package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	Env                string
	JWTSecret          string
	TokenTTL           time.Duration
	AdminEmail         string
	AdminPassword      string
	AllowedOrigins     string
	RateLimitPerMinute int
	RateLimitBurst     int
}

// defaultJWTSecret keeps the server bootable without a .env file. It mirrors
// the storefront's development default and must be overridden in production.
const defaultJWTSecret = "your_super_secret_key_that_should_be_in_an_env_file"

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "5001"),
		Env:                getEnv("ENV", "development"),
		JWTSecret:          getEnv("JWT_SECRET", defaultJWTSecret),
		AdminEmail:         getEnv("ADMIN_EMAIL", "heritagemist.official@gmail.com"),
		AdminPassword:      getEnv("ADMIN_PASSWORD", "admin123"),
		AllowedOrigins:     getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 100),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 50),
	}

	if cfg.RateLimitPerMinute <= 0 || cfg.RateLimitBurst <= 0 {
		return nil, fmt.Errorf("rate limit config must be positive")
	}

	ttl := getEnv("TOKEN_TTL", "720h")
	d, err := time.ParseDuration(ttl)
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", ttl, err)
	}
	cfg.TokenTTL = d

	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil, fmt.Errorf("admin account config incomplete")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}
