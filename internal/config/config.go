package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Server
	Port     string
	GinMode  string
	LogLevel string

	// Store
	SeedData      bool
	CurrentUserID string

	// Redis (rate limiting, disabled when empty)
	RedisURL        string
	RateLimitMax    int
	RateLimitWindow int

	// MinIO (attachments, disabled when the endpoint is empty)
	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
	MinIOUseSSL    bool

	// Meilisearch (question index mirror, disabled when the URL is empty)
	MeiliURL    string
	MeiliAPIKey string

	// CORS
	CORSOrigins []string
}

func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8000"),
		GinMode:  getEnv("GIN_MODE", "debug"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		SeedData:      getEnv("SEED_DATA", "true") == "true",
		CurrentUserID: getEnv("CURRENT_USER_ID", "current-user"),

		RedisURL:        getEnv("REDIS_URL", ""),
		RateLimitMax:    getEnvInt("RATE_LIMIT_MAX", 60),
		RateLimitWindow: getEnvInt("RATE_LIMIT_WINDOW", 60),

		MinIOEndpoint:  getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinIOSecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinIOBucket:    getEnv("MINIO_BUCKET", "attachments"),
		MinIOUseSSL:    getEnv("MINIO_USE_SSL", "false") == "true",

		MeiliURL:    getEnv("MEILI_URL", ""),
		MeiliAPIKey: getEnv("MEILI_API_KEY", ""),

		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000"), ","),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
