package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Data backends selectable via DATA_BACKEND.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds application configuration.
type Config struct {
	DBPath       string
	DataBackend  string
	IsProduction bool
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("DB_PATH", "./data/moneytracker.db")
	viper.SetDefault("DATA_BACKEND", BackendSQLite)
	viper.SetDefault("IS_PRODUCTION", false)

	viper.AutomaticEnv()

	cfg := &Config{
		DBPath:       viper.GetString("DB_PATH"),
		DataBackend:  viper.GetString("DATA_BACKEND"),
		IsProduction: viper.GetBool("IS_PRODUCTION"),
	}

	switch cfg.DataBackend {
	case BackendSQLite, BackendMemory:
	default:
		return nil, fmt.Errorf("invalid DATA_BACKEND %q: must be %q or %q", cfg.DataBackend, BackendSQLite, BackendMemory)
	}

	return cfg, nil
}
