package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	CoinGecko CoinGeckoConfig
	Security  SecurityConfig
	Snapshot  SnapshotConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// CoinGeckoConfig holds price API configuration.
type CoinGeckoConfig struct {
	BaseURL string
}

// SecurityConfig holds the fernet key used to encrypt exchange credentials.
// The default key is a development key; deployments must override FERNET_KEY.
type SecurityConfig struct {
	FernetKey string
}

// SnapshotConfig holds the cron schedule for the daily snapshot capture job.
type SnapshotConfig struct {
	CronSchedule string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8888"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/patrimoine.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: strings.Split(
				getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost"),
				",",
			),
		},
		CoinGecko: CoinGeckoConfig{
			BaseURL: getEnv("COINGECKO_BASE_URL", "https://api.coingecko.com/api/v3"),
		},
		Security: SecurityConfig{
			FernetKey: getEnv("FERNET_KEY", "cw_0x689RpI-jtRR7oE8h_eQsKImvJapLeSbXpwF4e4="),
		},
		Snapshot: SnapshotConfig{
			CronSchedule: getEnv("SNAPSHOT_CRON", "30 0 * * *"),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
