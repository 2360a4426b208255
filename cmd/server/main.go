package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/clinical-pathways-server/internal/api"
	"github.com/clinical-pathways-server/internal/audit"
	"github.com/clinical-pathways-server/internal/conditions"
	"github.com/clinical-pathways-server/internal/config"
	"github.com/clinical-pathways-server/internal/database"
	"github.com/clinical-pathways-server/internal/domain"
	"github.com/clinical-pathways-server/internal/scoring"
)

func main() {
	// Load configuration
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := configManager.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	cfg := configManager.GetConfig()
	logger := newLogger(cfg.Logging)

	store, err := openAuditStore(cfg.Audit, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open audit store")
	}
	defer store.Close()

	engine := scoring.NewEngine(logger)
	registry := conditions.NewRegistry(logger, engine)
	server := api.NewServer(cfg, logger, registry, engine, store)

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("Shutdown signal received, gracefully shutting down...")
		cancel()
	}()

	logger.WithFields(logrus.Fields{
		"host": cfg.Server.Host,
		"port": cfg.Server.Port,
	}).Info("Starting clinical pathways server")

	// Start server
	if err := server.Start(ctx); err != nil {
		logger.WithError(err).Fatal("Server failed")
	}

	logger.Info("Server stopped")
}

func newLogger(cfg domain.LoggingConfig) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if cfg.Output == "stderr" {
		logger.SetOutput(os.Stderr)
	} else {
		logger.SetOutput(os.Stdout)
	}

	return logger
}

func openAuditStore(cfg domain.AuditConfig, logger *logrus.Logger) (audit.Store, error) {
	if !cfg.Enabled {
		return audit.Nop{}, nil
	}
	if cfg.Backend == "postgres" {
		if cfg.MigrationsPath != "" {
			runner, err := database.NewMigrationRunner(cfg.DatabaseURL, cfg.MigrationsPath, logger)
			if err != nil {
				return nil, err
			}
			if err := runner.Up(); err != nil {
				runner.Close()
				return nil, err
			}
			if err := runner.Close(); err != nil {
				return nil, err
			}
		}
		return audit.NewPostgresStoreFromURL(cfg.DatabaseURL)
	}
	return audit.NewSQLiteStore(cfg.Path)
}
