package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jothamO/prism-app-sub003/internal/api"
	"github.com/jothamO/prism-app-sub003/internal/api/service"
	"github.com/jothamO/prism-app-sub003/internal/compliance/reconciler"
	"github.com/jothamO/prism-app-sub003/internal/compliance/resolver"
	"github.com/jothamO/prism-app-sub003/internal/compliance/risk"
	"github.com/jothamO/prism-app-sub003/internal/config"
	"github.com/jothamO/prism-app-sub003/internal/data/mongo"
	"github.com/jothamO/prism-app-sub003/internal/data/postgres"
	"github.com/jothamO/prism-app-sub003/internal/logger"
	"github.com/jothamO/prism-app-sub003/internal/platform/messaging/producers"
	"github.com/jothamO/prism-app-sub003/internal/platform/persistence"
)

func main() {
	// Create base context with cancellation
	appCtx, cancelAppCtx := context.WithCancel(context.Background())
	defer cancelAppCtx()

	// Initialize configuration
	cfg, err := config.LoadConfig("compliance_api")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewLogger(cfg)

	// Initialize databases with app context
	postgresDB, err := persistence.NewPostgresDB(appCtx, log, &cfg.Postgres)
	if err != nil {
		log.Error("Failed to initialize PostgreSQL", "error", err)
		os.Exit(1)
	}

	mongoDB, err := persistence.NewMongoDB(appCtx, log, &cfg.MongoDB)
	if err != nil {
		log.Error("Failed to initialize MongoDB", "error", err)
		os.Exit(1)
	}

	// Initialize Kafka producer for review queue escalations
	reviewQueueProducer, err := producers.NewReviewQueueProducer(appCtx, log, &cfg.Kafka)
	if err != nil {
		log.Error("Failed to initialize review queue Kafka producer", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	partyRepo := postgres.NewPartyRepository(postgresDB.Pool())
	levyRepo := mongo.NewLevyRepository(mongoDB.Database())

	// Initialize compliance engine components
	detector := reconciler.NewDetector(cfg.Engine, log)
	partyResolver := resolver.NewResolver(partyRepo, cfg.Engine.NameSimilarityThreshold, log)
	evaluator, err := risk.NewEvaluator(risk.DefaultRules(cfg.Engine), partyResolver, cfg.WorkerPool.Size, log)
	if err != nil {
		log.Error("Failed to initialize risk evaluator", "error", err)
		os.Exit(1)
	}

	// Initialize services
	escalationSink := producers.NewEscalationSink(reviewQueueProducer)
	levyService := service.NewLevyService(log, detector, levyRepo, escalationSink)
	avoidanceService := service.NewAvoidanceService(log, evaluator, escalationSink)

	// Initialize REST server
	server := api.NewServer(log, cfg, levyService, avoidanceService)
	log.Info("REST server initialized")

	// Create error channel for server errors
	errChan := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.Start(); err != nil {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Set up signal handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	// Wait for a shutdown signal or error
	var serverErr error
	select {
	case <-quit:
		log.Info("Shutdown signal received")
	case err := <-errChan:
		log.Error("Server error occurred", "error", err)
		serverErr = err
	}

	// Cancel the application context
	cancelAppCtx()

	// Create a shutdown context with timeout
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	// Graceful shutdown sequence
	log.Info("Starting graceful shutdown...")

	// Shutdown HTTP server
	if err = server.Stop(shutdownCtx); err != nil {
		log.Error("Error during server shutdown", "error", err)
	}

	// Release the evaluation worker pool
	evaluator.Release()

	if err = reviewQueueProducer.Close(); err != nil {
		log.Error("Error closing review queue Kafka producer", "error", err)
	}

	// Shutdown postgres connection pool
	postgresDB.Close()

	if err = mongoDB.Close(shutdownCtx); err != nil {
		log.Error("Error closing MongoDB connection", "error", err)
	}

	// Final status
	if serverErr != nil {
		log.Error("HTTP server shutdown with errors", "error", serverErr)
	}
	if err != nil {
		log.Error("Server shutdown completed with errors")
	} else {
		log.Info("Server shutdown completed successfully")
	}
}
