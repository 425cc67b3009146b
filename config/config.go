package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// It is composed of smaller structs that represent different concerns of the
// system: the HTTP server and the upstream fund API connection.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	FUNDS_API_BASE_URL=https://api.fondosargentina.org/v1
//	FUNDS_API_TIMEOUT_SECONDS=10
//	FUNDS_API_MAX_PARALLEL=4
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	FundsAPI FundsAPIConfig // Upstream fund price API settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// FundsAPIConfig defines how to reach the public fund price API.
//
// Fields:
//   - BaseURL: root URL of the upstream API (no trailing slash).
//   - TimeoutSeconds: per-request timeout, connect through body read.
//   - MaxParallel: how many upstream fetches the compare endpoint keeps in
//     flight at once.
type FundsAPIConfig struct {
	BaseURL        string
	TimeoutSeconds int
	MaxParallel    int
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and read throughout the application
// instead of reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from a .env file or
// directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() terminates the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("FUNDS_API_BASE_URL", "https://api.fondosargentina.org/v1")
	viper.SetDefault("FUNDS_API_TIMEOUT_SECONDS", 10)
	viper.SetDefault("FUNDS_API_MAX_PARALLEL", 4)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		FundsAPI: FundsAPIConfig{
			BaseURL:        viper.GetString("FUNDS_API_BASE_URL"),
			TimeoutSeconds: viper.GetInt("FUNDS_API_TIMEOUT_SECONDS"),
			MaxParallel:    viper.GetInt("FUNDS_API_MAX_PARALLEL"),
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates the
// application if they are missing. This avoids unexpected runtime failures
// due to incomplete configuration.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.FundsAPI.BaseURL == "" {
		missing = append(missing, "FUNDS_API_BASE_URL")
	}
	if AppConfig.FundsAPI.TimeoutSeconds <= 0 {
		missing = append(missing, "FUNDS_API_TIMEOUT_SECONDS")
	}
	if AppConfig.FundsAPI.MaxParallel <= 0 {
		missing = append(missing, "FUNDS_API_MAX_PARALLEL")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
