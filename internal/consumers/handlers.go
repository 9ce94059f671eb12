package consumers

import (
	"encoding/json"
	"log/slog"

	"futsalbook/internal/models"
	"futsalbook/internal/repository"

	"github.com/nats-io/stan.go"
)

type Handlers struct {
	repos *repository.Repositories
}

func NewHandlers(repos *repository.Repositories) *Handlers {
	return &Handlers{repos: repos}
}

func (h *Handlers) HandleTransactionCreated(m *stan.Msg) {
	var event models.TransactionCreatedEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal transaction created event", "error", err)
		return
	}

	slog.Info("Transaction created",
		"transaction_id", event.TransactionID,
		"user_id", event.UserID,
		"venue_id", event.VenueID,
		"date", event.Date,
		"time", event.Time,
		"price", event.Price,
		"payment_method", event.PaymentMethod)

	// Confirmation emails and analytics would hang off this event; for
	// now recording it is enough.

	m.Ack()
}

func (h *Handlers) HandleStatusChanged(m *stan.Msg) {
	var event models.TransactionStatusChangedEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal status changed event", "error", err)
		return
	}

	slog.Info("Transaction status changed",
		"transaction_id", event.TransactionID,
		"user_id", event.UserID,
		"old_status", event.OldStatus,
		"new_status", event.NewStatus)

	m.Ack()
}

func (h *Handlers) HandleProofUploaded(m *stan.Msg) {
	var event models.ProofUploadedEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal proof uploaded event", "error", err)
		return
	}

	slog.Info("Payment proof uploaded",
		"transaction_id", event.TransactionID,
		"user_id", event.UserID,
		"file_name", event.FileName,
		"file_size", event.FileSize)

	m.Ack()
}
