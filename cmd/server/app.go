package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/nexalabs/nexa-task-api/internal/config"
	"github.com/nexalabs/nexa-task-api/internal/platform/postgres"
	"github.com/nexalabs/nexa-task-api/internal/service"
)

// application holds the runtime dependencies of the server: the loaded
// configuration, the shared logger, the database pool, and the wired
// services. All dependencies are constructed explicitly and passed
// down; there is no package-level singleton state.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	db          *sql.DB
	taskService service.TaskService
}

// newApplication wires the application dependencies: database pool,
// stores, and services. Returns an error if any dependency fails to
// initialize.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupDatabase(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	taskStore := postgres.NewPostgresTaskStore(db, logger)

	// Production wiring uses a time-seeded random source; the mock
	// result block is intentionally non-reproducible across calls.
	taskService, err := service.NewTaskService(db, taskStore, nil, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	return &application{
		config:      cfg,
		logger:      logger,
		db:          db,
		taskService: taskService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}
