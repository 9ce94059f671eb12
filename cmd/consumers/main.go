package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"futsalbook/cmd/consumers/jobs"
	"futsalbook/internal/config"
	"futsalbook/internal/consumers"
	"futsalbook/internal/logger"
	"futsalbook/internal/metrics"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.LogLevel, cfg.LogFormat)
	metrics.Register()

	// Separate client ID so the API and consumers can share a cluster
	cfg.NATS.ClientID = "futsalbook-consumers"

	consumerService, err := consumers.NewConsumerService(cfg)
	if err != nil {
		logger.Fatal("Failed to create consumer service", "error", err)
	}

	if err := consumerService.Start(); err != nil {
		logger.Fatal("Failed to start consumers", "error", err)
	}

	monitor := jobs.NewStalePendingMonitor(consumerService.Repositories().Transactions)
	monitor.Start(context.Background())

	logger.Get().Info("Consumers service started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Get().Info("Shutting down consumers service...")

	monitor.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := consumerService.Shutdown(ctx); err != nil {
		logger.Get().Error("Error during shutdown", "error", err)
	}

	logger.Get().Info("Consumers service stopped")
}
