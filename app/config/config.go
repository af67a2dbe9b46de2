package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port        string
	DatabaseURL string

	// SessionStore selects where session tokens live:
	// "postgres" (default), "redis", or "memory".
	SessionStore string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	UploadDir string
}

// Load reads .env (if present) and the environment. Missing values fall
// back to local development defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   getEnv("DATABASE_URL", "host=localhost port=5432 user=postgres dbname=results sslmode=disable"),
		SessionStore:  getEnv("SESSION_STORE", "postgres"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		UploadDir:     getEnv("UPLOAD_DIR", "static/uploads"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using %d", key, value, fallback)
		return fallback
	}
	return n
}
