package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer string // Required: issuer claim for session tokens

	NumKeys              int           // Optional: number of signing keys to generate (default: 3, min: 1, max: 10)
	DatabaseFile         string        // Optional: path to SQLite database file (default: ./ferox.db)
	PepperFile           string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	BotURL               string        // Required for recovery delivery: base URL of the Discord bridge
	TokenTTL             time.Duration // Optional: session token lifetime (default: 168h)
	RecoveryCodeTTL      time.Duration // Optional: recovery code lifetime (default: 15m)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 15m)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:               os.Getenv("FEROX_ISSUER"),
		DatabaseFile:         getEnvOrDefault("FEROX_DATABASE_FILE", "ferox.db"),
		PepperFile:           getEnvOrDefault("FEROX_PEPPER_FILE", "pepper"),
		BotURL:               os.Getenv("FEROX_BOT_URL"),
		TokenTTL:             getEnvDurationOrDefault("FEROX_TOKEN_TTL", 0), // 0 falls back to jwtx default
		RecoveryCodeTTL:      getEnvDurationOrDefault("FEROX_RECOVERY_CODE_TTL", 0),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 15*time.Minute),
	}

	// Parse number of keys (default: 3)
	if numKeysStr := os.Getenv("FEROX_NUM_KEYS"); numKeysStr != "" {
		if numKeys, err := strconv.Atoi(numKeysStr); err == nil {
			cfg.NumKeys = numKeys
		}
		// If parsing fails, NumKeys remains 0 (will use default in KeyManager)
	}

	if cfg.Issuer == "" {
		cfg.Issuer = "ferox-api"
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
