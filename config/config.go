// File: /config/config.go
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string

	DatabaseDriver string
	DatabaseURL    string
	SeedData       bool

	JWTSecret string
	JWTTTL    time.Duration
}

func Load() *Config {
	env := getEnv("APP_ENV", "development")

	ttlHours, err := strconv.Atoi(getEnv("JWT_TTL_HOURS", "168"))
	if err != nil || ttlHours <= 0 {
		ttlHours = 168
	}

	seed, err := strconv.ParseBool(getEnv("SEED_DATA", strconv.FormatBool(env == "development")))
	if err != nil {
		seed = false
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: env,

		DatabaseDriver: getEnv("DB_DRIVER", "mysql"),
		DatabaseURL:    getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/comments?charset=utf8mb4&parseTime=True&loc=Local"),
		SeedData:       seed,

		JWTSecret: getEnv("JWT_SECRET", "your-secret-key"),
		JWTTTL:    time.Duration(ttlHours) * time.Hour,
	}
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
