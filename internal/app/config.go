package app

import (
	"os"
	"strconv"
)

// Config holds the console's runtime settings, read from the environment
// (godotenv is loaded by main before this runs).
type Config struct {
	// BaseURL is the backend API root, e.g. http://localhost:8080/api.
	BaseURL string
	// StatePath is where the role/employee selection is persisted.
	// Empty means the OS user config dir default.
	StatePath string
	// RequestsPerSecond bounds outbound traffic. Zero disables the limiter.
	RequestsPerSecond float64
}

func LoadConfig() Config {
	cfg := Config{
		BaseURL:           getEnv("HRIS_API_URL", "http://localhost:8080/api"),
		StatePath:         os.Getenv("HRIS_STATE_PATH"),
		RequestsPerSecond: 10,
	}
	if v := os.Getenv("HRIS_RATE_LIMIT"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RequestsPerSecond = parsed
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
