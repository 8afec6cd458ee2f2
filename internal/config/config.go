package config

import (
	"os"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Sync    SyncConfig
	OCR     OCRConfig
	Redis   RedisConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// StorageConfig selects the local store backend. The default is an
// on-disk sqlite file; postgres is available for shared deployments.
type StorageConfig struct {
	Driver string // "sqlite" or "postgres"
	DSN    string
}

// SyncConfig holds the remote sheet/drive script endpoint settings
type SyncConfig struct {
	ScriptURL      string
	Timeout        time.Duration
	IndicatorReset time.Duration
}

// OCRConfig holds the AI vision extraction settings
type OCRConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	Password string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Storage: StorageConfig{
			Driver: getEnv("STORAGE_DRIVER", "sqlite"),
			DSN:    getEnv("STORAGE_DSN", "file:vfm_leads.db"),
		},
		Sync: SyncConfig{
			ScriptURL:      getEnv("SYNC_SCRIPT_URL", ""),
			Timeout:        getEnvAsDuration("SYNC_TIMEOUT", 30*time.Second),
			IndicatorReset: getEnvAsDuration("SYNC_INDICATOR_RESET", 3*time.Second),
		},
		OCR: OCRConfig{
			APIKey:  getEnv("OCR_API_KEY", ""),
			Model:   getEnv("OCR_MODEL", "gemini-flash-lite-latest"),
			BaseURL: getEnv("OCR_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
			Timeout: getEnvAsDuration("OCR_TIMEOUT", 60*time.Second),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
