package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"book-catalog/internal/shared/utils"
)

// startServices performs startup health checks and exposes the worker
// health endpoint used by orchestration probes.
func startServices(cfg *Config) error {
	log.Println("============================================")
	log.Println("[Startup] Catalog worker starting...")
	log.Println("============================================")

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer client.Close()

	log.Println("[Startup] Checking Redis connection...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}

	log.Println("[Startup] Redis connection OK")

	go startHealthCheckServer()

	return nil
}

// startHealthCheckServer starts the HTTP server for health probes.
func startHealthCheckServer() {
	port := utils.GetEnvVariable("WORKER_HEALTH_PORT", "9999")

	http.HandleFunc("/health", healthCheckHandler)
	http.HandleFunc("/ready", readyCheckHandler)

	log.Printf("[Health] Starting health check server on :%s", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Printf("[Health] Failed to start: %v", err)
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"UP","service":"catalog-worker"}`))
}

func readyCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"READY"}`))
}
