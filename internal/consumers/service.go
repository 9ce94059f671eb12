package consumers

import (
	"context"
	"log/slog"

	"futsalbook/internal/config"
	"futsalbook/internal/database"
	"futsalbook/internal/messaging"
	"futsalbook/internal/models"
	"futsalbook/internal/repository"
)

const consumerQueue = "consumers"

type ConsumerService struct {
	db       *database.DB
	nats     *messaging.NATSClient
	repos    *repository.Repositories
	handlers *Handlers
}

func NewConsumerService(cfg *config.Config) (*ConsumerService, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}

	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		return nil, err
	}

	repos := repository.NewRepositories(db)

	return &ConsumerService{
		db:       db,
		nats:     natsClient,
		repos:    repos,
		handlers: NewHandlers(repos),
	}, nil
}

// Repositories exposes the repository layer for background jobs.
func (cs *ConsumerService) Repositories() *repository.Repositories {
	return cs.repos
}

func (cs *ConsumerService) Start() error {
	slog.Info("Starting NATS consumers...")

	_, err := cs.nats.SubscribeQueue(models.EventTransactionCreated, consumerQueue, cs.handlers.HandleTransactionCreated)
	if err != nil {
		return err
	}

	_, err = cs.nats.SubscribeQueue(models.EventTransactionStatusChanged, consumerQueue, cs.handlers.HandleStatusChanged)
	if err != nil {
		return err
	}

	_, err = cs.nats.SubscribeQueue(models.EventProofUploaded, consumerQueue, cs.handlers.HandleProofUploaded)
	if err != nil {
		return err
	}

	slog.Info("All consumers started successfully")
	return nil
}

func (cs *ConsumerService) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down consumer service...")

	if cs.nats != nil {
		if err := cs.nats.Close(); err != nil {
			slog.Error("Error closing NATS connection", "error", err)
		}
	}

	if cs.db != nil {
		if err := cs.db.Close(); err != nil {
			slog.Error("Error closing database connection", "error", err)
			return err
		}
	}

	return nil
}
