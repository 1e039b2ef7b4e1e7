// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
)

// Store backend names accepted by LEDGER_STORE.
const (
	StoreBackendWorkbook = "workbook"
	StoreBackendSQLite   = "sqlite"
	StoreBackendMemory   = "memory"
)

// Config holds all application configuration.
type Config struct {
	Store StoreConfig
	Auth  AuthConfig
	Log   LogConfig
}

// StoreConfig holds record store configuration.
type StoreConfig struct {
	Backend    string // workbook, sqlite or memory
	DataDir    string // directory of the workbook collection files
	SQLitePath string
}

// AuthConfig holds password hashing configuration.
type AuthConfig struct {
	BcryptCost int
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Store: StoreConfig{
			Backend:    getEnv("LEDGER_STORE", StoreBackendWorkbook),
			DataDir:    getEnv("LEDGER_DATA_DIR", "data"),
			SQLitePath: getEnv("LEDGER_SQLITE_PATH", "data/ledger.db"),
		},
		Auth: AuthConfig{
			BcryptCost: getEnvAsInt("LEDGER_BCRYPT_COST", 12),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
