package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"quantum-logistics-router/internal/server"
	"quantum-logistics-router/internal/sqlite"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	addr := getEnv("SERVER_ADDR", "127.0.0.1:8080")
	cachePath := getEnv("CACHE_DB_PATH", filepath.Join("data", sqlite.DefaultDBFileName))

	timeout, err := time.ParseDuration(getEnv("SOLVE_TIMEOUT", "30s"))
	if err != nil {
		return fmt.Errorf("invalid SOLVE_TIMEOUT: %w", err)
	}

	srv, err := server.New(server.Config{
		Addr:         addr,
		ORSAPIKey:    os.Getenv("ORS_API_KEY"),
		CacheDBPath:  cachePath,
		SolveTimeout: timeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	if _, err := srv.Start(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	sig := <-shutdown
	log.Printf("Received signal %v, starting graceful shutdown", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("could not gracefully shutdown the server: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
