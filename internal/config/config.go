package config

import (
	"github.com/spf13/viper"
)

type (
	// Config aggregates every runtime setting of the service.
	Config struct {
		HTTP
		Database
		Log
		Global
	}

	// HTTP contains the settings of the HTTP server.
	HTTP struct {
		Port int32
		Host string
	}

	// Database contains the settings of the storage layer.
	Database struct {
		Path string
	}

	// Log contains the settings of the logger.
	Log struct {
		Level string
	}

	// Global contains settings that do not belong to a single subsystem.
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

// NewConfig reads configuration from environment variables, falling back
// to the built-in defaults.
func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("log_level", "info")
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Log: Log{
			Level: v.GetString("LOG_LEVEL"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
