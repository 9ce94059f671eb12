package service

import (
	"context"
	"fmt"
	"time"

	"futsalbook/internal/models"
	"futsalbook/internal/repository"
)

type DashboardService struct {
	transactions *repository.TransactionRepository
	users        *repository.UserRepository
}

func NewDashboardService(transactions *repository.TransactionRepository, users *repository.UserRepository) *DashboardService {
	return &DashboardService{
		transactions: transactions,
		users:        users,
	}
}

// Stats computes the admin overview aggregates. Everything is recomputed
// in full on every call; collections are demo-sized.
func (s *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	var err error
	if stats.TotalRevenue, err = s.transactions.SumRevenue(ctx); err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}
	if stats.TotalBookings, err = s.transactions.CountAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}
	if stats.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if stats.PendingTransactions, err = s.transactions.CountByStatus(ctx, models.StatusPending); err != nil {
		return nil, fmt.Errorf("failed to count pending: %w", err)
	}
	if stats.SuccessfulTransactions, err = s.transactions.CountByStatus(ctx, models.StatusSuccess); err != nil {
		return nil, fmt.Errorf("failed to count successful: %w", err)
	}
	if stats.FailedTransactions, err = s.transactions.CountByStatus(ctx, models.StatusFailed); err != nil {
		return nil, fmt.Errorf("failed to count failed: %w", err)
	}

	today := time.Now().Format("2006-01-02")
	if stats.TodayBookings, err = s.transactions.CountByDate(ctx, today); err != nil {
		return nil, fmt.Errorf("failed to count today's bookings: %w", err)
	}

	return stats, nil
}
