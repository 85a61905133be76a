package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all environment-driven settings
type Config struct {
	Port string

	// Remote backend
	APIBaseURL     string
	BackendEnabled bool
	ProbeTimeout   time.Duration

	// Local store
	CartFile string

	// Feature flags
	RolloutAPIKey string
	DebugLog      bool

	// Email
	SMTPHost  string
	SMTPPort  string
	EmailFrom string

	// Admin guard
	AdminEmail        string
	AdminPasswordHash string
	JWTSecret         string
}

// Load reads configuration from the environment with defaults
func Load() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:3001"),
		BackendEnabled: getEnvBool("BACKEND_ENABLED", true),
		ProbeTimeout:   getEnvDuration("PROBE_TIMEOUT", 5*time.Second),
		CartFile:       getEnv("CART_FILE", "data/cart.json"),
		RolloutAPIKey:  os.Getenv("ROLLOUT_API_KEY"),
		DebugLog:       getEnvBool("DEBUG_LOG", false),

		SMTPHost:  getEnv("SMTP_HOST", "localhost"),
		SMTPPort:  getEnv("SMTP_PORT", "1025"),
		EmailFrom: getEnv("EMAIL_FROM", "shop@example.com"),

		AdminEmail:        getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
