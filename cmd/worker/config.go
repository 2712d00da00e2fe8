package main

import (
	"log"
	"strconv"

	"book-catalog/internal/shared/utils"
)

// Config holds the worker process settings.
type Config struct {
	RedisAddr   string
	Concurrency int
}

// loadConfig loads configuration from environment variables.
func loadConfig() *Config {
	concurrency, err := strconv.Atoi(utils.GetEnvVariable("QUEUE_CONCURRENCY", "10"))
	if err != nil {
		concurrency = 10
	}

	cfg := &Config{
		RedisAddr:   utils.GetEnvVariable("REDIS_HOST", "localhost:6379"),
		Concurrency: concurrency,
	}

	log.Printf("[Config] Redis: %s, Concurrency: %d", cfg.RedisAddr, cfg.Concurrency)

	return cfg
}
