package service

import (
	"context"
	"fmt"
	"time"

	apperrors "futsalbook/internal/errors"
	"futsalbook/internal/logger"
	"futsalbook/internal/messaging"
	"futsalbook/internal/metrics"
	"futsalbook/internal/models"
	"futsalbook/internal/repository"
)

type TransactionService struct {
	transactions *repository.TransactionRepository
	natsClient   *messaging.NATSClient
}

func NewTransactionService(transactions *repository.TransactionRepository, natsClient *messaging.NATSClient) *TransactionService {
	return &TransactionService{
		transactions: transactions,
		natsClient:   natsClient,
	}
}

// History returns the user's transactions, newest first.
func (s *TransactionService) History(ctx context.Context, userID int64) ([]models.Transaction, error) {
	transactions, err := s.transactions.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// Get returns a single transaction. Regular users only see their own;
// admin sessions see any.
func (s *TransactionService) Get(ctx context.Context, sess *models.Session, id string) (*models.Transaction, error) {
	t, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if t == nil {
		return nil, apperrors.ErrNotFound
	}
	if !sess.IsAdmin() && t.UserID != sess.UserID {
		return nil, apperrors.ErrForbidden
	}
	return t, nil
}

// GetAdmin returns a single transaction joined with its owner's name and
// email for the admin detail view.
func (s *TransactionService) GetAdmin(ctx context.Context, id string) (*models.AdminTransaction, error) {
	t, err := s.transactions.GetAdminByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if t == nil {
		return nil, apperrors.ErrNotFound
	}
	return t, nil
}

// ListAdmin returns all transactions joined with their owners, optionally
// narrowed by free-text search and status.
func (s *TransactionService) ListAdmin(ctx context.Context, search string, status models.Status) ([]models.AdminTransaction, error) {
	if status != "" && !status.Valid() {
		return nil, apperrors.ErrIllegalTransition
	}

	transactions, err := s.transactions.ListAdmin(ctx, search, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// UpdateStatus applies a status transition under the policy: pending may
// move to success, failed or cancelled; terminal states are immutable; a
// same-value transition is an accepted no-op.
func (s *TransactionService) UpdateStatus(ctx context.Context, id string, next models.Status) (*models.Transaction, error) {
	t, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if t == nil {
		return nil, apperrors.ErrNotFound
	}

	if !t.Status.CanTransitionTo(next) {
		return nil, apperrors.ErrIllegalTransition
	}
	if t.Status == next {
		return t, nil
	}

	old := t.Status
	if err := s.transactions.UpdateStatus(ctx, id, old, next); err != nil {
		if err == apperrors.ErrIllegalTransition {
			// lost the race to a concurrent transition
			return nil, err
		}
		return nil, fmt.Errorf("failed to update status: %w", err)
	}
	t.Status = next
	t.UpdatedAt = time.Now()

	event := models.TransactionStatusChangedEvent{
		TransactionID: t.ID,
		UserID:        t.UserID,
		OldStatus:     old,
		NewStatus:     next,
		Timestamp:     time.Now(),
	}
	if err := s.natsClient.Publish(models.EventTransactionStatusChanged, event); err != nil {
		logger.WithContext(ctx).Error("Failed to publish status changed event",
			"error", err,
			"transaction_id", t.ID)
	}

	metrics.IncStatusTransitions(string(old), string(next))
	return t, nil
}

// CancelOwn lets a user cancel their own pending transaction.
func (s *TransactionService) CancelOwn(ctx context.Context, sess *models.Session, id string) (*models.Transaction, error) {
	t, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if t == nil {
		return nil, apperrors.ErrNotFound
	}
	if t.UserID != sess.UserID {
		return nil, apperrors.ErrForbidden
	}

	return s.UpdateStatus(ctx, id, models.StatusCancelled)
}
