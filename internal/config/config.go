package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the full application configuration,
// populated from environment variables.
type Config struct {
	App   AppConfig
	Redis RedisConfig
	Queue QueueConfig
	API   APIConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type QueueConfig struct {
	MaxRetry    int           // broker redelivery attempts before a task is archived
	Retention   time.Duration // how long completed tasks stay inspectable
	Concurrency int
}

type APIConfig struct {
	Key string // static X-API-KEY expected on POST /books
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	retention, err := time.ParseDuration(getEnv("QUEUE_RETENTION", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid QUEUE_RETENTION: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Book Catalog API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Queue: QueueConfig{
			MaxRetry:    getEnvInt("QUEUE_MAX_RETRY", 3),
			Retention:   retention,
			Concurrency: getEnvInt("QUEUE_CONCURRENCY", 10),
		},
		API: APIConfig{
			Key: getEnv("API_KEY", "0123456789"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that the config is usable.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.API.Key == "0123456789" {
			return fmt.Errorf("API_KEY must be set in production")
		}
	}

	if c.Queue.MaxRetry < 0 {
		return fmt.Errorf("QUEUE_MAX_RETRY must not be negative")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
