package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the console and the board need to start.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	Schema   string
	SSLMode  string
	TimeZone string

	LogFile   string
	LogLevel  string
	LogStderr bool

	HTTPAddr    string
	CORSOrigins []string
	PromptDelay time.Duration
}

// Load reads an optional .env file (or the given files) and then the
// environment, falling back to defaults for anything unset.
func Load(envFiles ...string) (*Config, error) {
	// 1) Load .env (if present)
	if err := godotenv.Load(envFiles...); err != nil {
		if len(envFiles) > 0 {
			return nil, fmt.Errorf("load env file %v: %w", envFiles, err)
		}
		log.Println("No .env file found – relying on env vars")
	}

	cfg := &Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "password"),
		DBName:   getEnv("DB_NAME", "postgres"),
		Schema:   getEnv("DB_SCHEMA", "trains"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
		TimeZone: getEnv("DB_TIMEZONE", "UTC"),

		LogFile:  getEnv("LOG_FILE", "./logs/app.log"),
		LogLevel: getEnv("LOG_LEVEL", "debug"),

		HTTPAddr: getEnv("HTTP_ADDR", "0.0.0.0:8080"),
	}

	var err error
	if cfg.LogStderr, err = strconv.ParseBool(getEnv("LOG_STDERR", "false")); err != nil {
		return nil, fmt.Errorf("parse LOG_STDERR: %w", err)
	}
	if cfg.PromptDelay, err = time.ParseDuration(getEnv("PROMPT_DELAY", "500ms")); err != nil {
		return nil, fmt.Errorf("parse PROMPT_DELAY: %w", err)
	}
	for _, o := range strings.Split(getEnv("CORS_ORIGINS", ""), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}
	if cfg.Schema == "" {
		return nil, fmt.Errorf("DB_SCHEMA must not be empty")
	}

	return cfg, nil
}

// DSN builds the keyword/value connection string for the postgres driver.
// search_path is part of the DSN so a reconnect lands in the same schema.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s search_path=%s",
		c.Host, c.User, c.Password, c.DBName, c.Port, c.SSLMode, c.TimeZone, c.Schema,
	)
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
