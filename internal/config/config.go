package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port           string
	OutputDir      string
	Environment    string
	LogLevel       string
	AllowedOrigins []string
}

// Load reads a .env file if one exists, then the environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getenv("PORT", "8001"),
		OutputDir:   getenv("DOCGEN_OUTPUT_DIR", "./generated_documents"),
		Environment: getenv("ENVIRONMENT", "development"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		AllowedOrigins: splitList(getenv("ALLOWED_ORIGINS",
			"http://localhost:5173,http://localhost:3000")),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
