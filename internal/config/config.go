package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Port            string
	Env             string
	LogLevel        string
	ShutdownTimeout time.Duration

	DBDriver   string
	SQLitePath string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	CORSAllowedOrigins []string
}

// LoadEnv reads a .env file into the process environment. A missing file is
// not an error for the caller to act on; it is returned so it can be logged.
func LoadEnv(filenames ...string) error {
	return godotenv.Load(filenames...)
}

// Load builds a Config from the environment, falling back to defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:       getEnvOrDefault("SERVER_PORT", "8000"),
		Env:        getEnvOrDefault("APP_ENV", "production"),
		LogLevel:   getEnvOrDefault("LOG_LEVEL", "info"),
		DBDriver:   strings.ToLower(getEnvOrDefault("DB_DRIVER", DriverSQLite)),
		SQLitePath: getEnvOrDefault("SQLITE_PATH", "finance.db"),
		DBHost:     getEnvOrDefault("DB_HOST", "localhost"),
		DBPort:     getEnvOrDefault("DB_PORT", "5432"),
		DBUser:     getEnvOrDefault("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnvOrDefault("DB_NAME", "finance"),
		DBSSLMode:  getEnvOrDefault("DB_SSLMODE", "disable"),
	}

	timeout, err := time.ParseDuration(getEnvOrDefault("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}
	cfg.ShutdownTimeout = timeout

	cfg.CORSAllowedOrigins = splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*"))

	switch cfg.DBDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	return cfg, nil
}

// PostgresDSN returns the lib/pq connection string for the configured database.
func (c *Config) PostgresDSN() string {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBName, c.DBSSLMode,
	)
	if c.DBPassword != "" {
		dsn += " password=" + c.DBPassword
	}
	return dsn
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
