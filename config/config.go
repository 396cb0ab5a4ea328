package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Sentry   SentryConfig
}

type ServerConfig struct {
	Port            string        `validate:"required,numeric"`
	GinMode         string        `validate:"oneof=debug release test"`
	Environment     string        `validate:"required"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

type DatabaseConfig struct {
	Driver     string `validate:"oneof=sqlite postgres"`
	SQLitePath string `validate:"required_if=Driver sqlite"`
	Host       string `validate:"required_if=Driver postgres"`
	Port       string
	User       string
	Password   string
	DBName     string `validate:"required_if=Driver postgres"`
	SSLMode    string
}

type LogConfig struct {
	Level      string `validate:"oneof=debug info warn error fatal"`
	Format     string `validate:"oneof=console json"`
	FilePath   string // empty means stdout only
	MaxSizeMB  int    `validate:"gte=0,lte=1024"`
	MaxBackups int    `validate:"gte=0,lte=100"`
	MaxAgeDays int    `validate:"gte=0,lte=365"`
}

type SentryConfig struct {
	DSN              string
	TracesSampleRate float64 `validate:"gte=0,lte=1"`
}

// Enabled reports whether error monitoring should be initialized.
func (c SentryConfig) Enabled() bool {
	return c.DSN != ""
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8000"),
			GinMode:         getEnv("GIN_MODE", "debug"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			ShutdownTimeout: parseDuration(getEnv("SERVER_SHUTDOWN_TIMEOUT", "10s"), 10*time.Second),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", DriverSQLite),
			SQLitePath: getEnv("DB_SQLITE_PATH", "oc-lettings-site.sqlite3"),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", ""),
			DBName:     getEnv("DB_NAME", "oc_lettings"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", ""),
			Format:     getEnv("LOG_FORMAT", "console"),
			FilePath:   getEnv("LOG_FILE", ""),
			MaxSizeMB:  parseInt(getEnv("LOG_MAX_SIZE_MB", "10"), 10),
			MaxBackups: parseInt(getEnv("LOG_MAX_BACKUPS", "3"), 3),
			MaxAgeDays: parseInt(getEnv("LOG_MAX_AGE_DAYS", "28"), 28),
		},
		Sentry: SentryConfig{
			DSN:              getEnv("SENTRY_DSN", ""),
			TracesSampleRate: parseFloat(getEnv("SENTRY_TRACES_SAMPLE_RATE", "1.0"), 1.0),
		},
	}

	if config.Log.Level == "" {
		config.Log.Level = "info"
		if config.Server.Environment == "development" {
			config.Log.Level = "debug"
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the loaded values against their struct constraints.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// DSN returns the connection string for the configured driver.
func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return fmt.Sprintf("file:%s?_foreign_keys=on", c.SQLitePath)
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("Invalid duration %s, using default %s", s, fallback)
		return fallback
	}
	return duration
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("Invalid integer %s, using default %d", s, fallback)
		return fallback
	}
	return n
}

func parseFloat(s string, fallback float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Printf("Invalid float %s, using default %v", s, fallback)
		return fallback
	}
	return f
}
