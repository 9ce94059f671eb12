package models

import "time"

// NATS subjects for transaction lifecycle events
const (
	EventTransactionCreated       = "transaction.created"
	EventTransactionStatusChanged = "transaction.status_changed"
	EventProofUploaded            = "transaction.proof_uploaded"
)

// TransactionCreatedEvent is published after a successful checkout
type TransactionCreatedEvent struct {
	TransactionID string    `json:"transaction_id"`
	UserID        int64     `json:"user_id"`
	VenueID       string    `json:"venue_id"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Price         int64     `json:"price"`
	PaymentMethod string    `json:"payment_method"`
	Timestamp     time.Time `json:"timestamp"`
}

// TransactionStatusChangedEvent is published after a status transition
type TransactionStatusChangedEvent struct {
	TransactionID string    `json:"transaction_id"`
	UserID        int64     `json:"user_id"`
	OldStatus     Status    `json:"old_status"`
	NewStatus     Status    `json:"new_status"`
	Timestamp     time.Time `json:"timestamp"`
}

// ProofUploadedEvent is published after a payment proof is attached
type ProofUploadedEvent struct {
	TransactionID string    `json:"transaction_id"`
	UserID        int64     `json:"user_id"`
	FileName      string    `json:"file_name"`
	FileSize      int64     `json:"file_size"`
	Timestamp     time.Time `json:"timestamp"`
}
