package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env            string
	Port           string
	DBURL          string
	JWTSecret      string
	TokenExpiryMin int

	// Fallback lockout policy applied when a role has no row in
	// lockout_policies.
	DefaultMaxFailedAttempts int
	DefaultLockoutMinutes    int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment variables")
	}

	return &Config{
		Env:                      getEnv("ENV", "development"),
		Port:                     getEnv("PORT", "8080"),
		DBURL:                    mustGetEnv("DB_URL"),
		JWTSecret:                mustGetEnv("JWT_SECRET"),
		TokenExpiryMin:           getEnvAsInt("TOKEN_EXPIRY_MINUTES", 10080),
		DefaultMaxFailedAttempts: getEnvAsInt("DEFAULT_MAX_FAILED_ATTEMPTS", 5),
		DefaultLockoutMinutes:    getEnvAsInt("DEFAULT_LOCKOUT_MINUTES", 15),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
