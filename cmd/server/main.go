// Package main implements the entry point for the Nexa Task API server,
// which persists typed task records and serves them back over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/nexalabs/nexa-task-api/internal/config"
	"github.com/nexalabs/nexa-task-api/internal/platform/logger"
)

// Service identity reported by the health endpoint.
const (
	serviceName    = "nexa-task-api"
	serviceVersion = "1.0.0"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run database migrations and exit (up, down, status)")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// run loads configuration, sets up logging, and either executes a
// migration command or starts the HTTP server.
func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	if migrateCmd != "" {
		return runMigrations(cfg, appLogger, migrateCmd)
	}

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.cleanup()

	return app.startHTTPServer(context.Background(), app.setupRouter())
}
