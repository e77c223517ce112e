// Package main implements the entry point for the stacks-api server, a JSON
// REST API for a book-review catalog: listing and searching books,
// registering users, logging in, and managing per-user reviews.
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/quietpage/stacks-api/internal/api/shared"
	"github.com/quietpage/stacks-api/internal/config"
	"github.com/quietpage/stacks-api/internal/platform/logger"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, and wires the
// application components.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, err
	}

	// Production responses carry sanitized messages only; any other
	// environment includes diagnostic detail in error envelopes.
	shared.SetVerboseErrors(cfg.Server.Env != "production")

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"env", cfg.Server.Env)

	return newApplication(cfg, appLogger)
}
