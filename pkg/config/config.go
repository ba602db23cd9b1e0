package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all environment-sourced application settings.
type Config struct {
	Port         string
	MongoURI     string
	DatabaseName string

	MaxContentLength int
	MaxTagsPerPost   int
	DefaultPageSize  int
	MaxPageSize      int

	CORSOrigins  []string
	TrustedHosts []string
}

// Load reads configuration from the environment. MONGODB_URI is required;
// startup must fail fast without it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI environment variable is required")
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		MongoURI:         mongoURI,
		DatabaseName:     getEnv("DATABASE_NAME", "anti_linkedin"),
		MaxContentLength: getEnvInt("MAX_CONTENT_LENGTH", 2000),
		MaxTagsPerPost:   getEnvInt("MAX_TAGS_PER_POST", 10),
		DefaultPageSize:  getEnvInt("DEFAULT_PAGE_SIZE", 20),
		MaxPageSize:      getEnvInt("MAX_PAGE_SIZE", 100),
		CORSOrigins: getEnvList("CORS_ORIGINS",
			[]string{"http://localhost:3000", "http://localhost:8000"}),
		TrustedHosts: getEnvList("TRUSTED_HOSTS",
			[]string{"localhost", "127.0.0.1"}),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
