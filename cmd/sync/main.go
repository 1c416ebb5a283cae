package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"trade-journal-go/internal/broker"
	"trade-journal-go/internal/config"
	"trade-journal-go/internal/database"
	"trade-journal-go/internal/ledger"
	"trade-journal-go/internal/logger"

	"go.uber.org/zap"
)

func main() {
	// Load application configuration
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		// We can't use the logger here because it's not initialized yet.
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	log.Info("Configuration loaded")

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.DSN)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	log.Info("Database connection successful and schema migrated.")

	// Wire the ledger behind the persistence adapter
	ctrl, err := ledger.NewController(log, database.NewTradeStore(db))
	if err != nil {
		log.Fatal("Failed to initialize ledger", zap.Error(err))
	}

	// Initialize broker client
	client := broker.NewClient(&cfg.Broker, log)
	if err := client.Ping(); err != nil {
		log.Fatal("Failed to connect to broker API", zap.Error(err))
	}
	log.Info("Successfully connected to broker API.")

	// Setup context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sigchan := make(chan os.Signal, 1)
		signal.Notify(sigchan, syscall.SIGINT, syscall.SIGTERM)
		<-sigchan
		log.Info("Shutdown signal received, gracefully shutting down...")
		cancel()
	}()

	// Run the sync engine until cancelled
	engine := broker.NewSyncEngine(log, &cfg, client, ctrl)
	engine.Run(ctx)

	log.Info("Sync daemon has been shut down.")
}
