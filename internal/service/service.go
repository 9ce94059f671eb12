package service

import (
	"futsalbook/internal/cache"
	"futsalbook/internal/config"
	"futsalbook/internal/messaging"
	"futsalbook/internal/repository"
	"futsalbook/internal/venues"
)

type Services struct {
	Auth         *AuthService
	Slots        *SlotService
	Bookings     *BookingService
	Transactions *TransactionService
	Dashboard    *DashboardService
}

func NewServices(cfg *config.Config, repos *repository.Repositories, catalog *venues.Catalog, sessions *cache.SessionStore, natsClient *messaging.NATSClient) *Services {
	transactionService := NewTransactionService(repos.Transactions, natsClient)

	return &Services{
		Auth:         NewAuthService(cfg.Admin, repos.Users, sessions),
		Slots:        NewSlotService(),
		Bookings:     NewBookingService(cfg.Upload, repos.Transactions, catalog, sessions, natsClient),
		Transactions: transactionService,
		Dashboard:    NewDashboardService(repos.Transactions, repos.Users),
	}
}
