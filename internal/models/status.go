package models

// Status is the lifecycle status of a transaction.
type Status string

const (
	StatusPending   Status = "pending"
	StatusSuccess   Status = "success"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusSuccess, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether s is an end state. Terminal transactions can
// never change status again.
func (s Status) Terminal() bool {
	return s == StatusSuccess || s == StatusFailed || s == StatusCancelled
}

// CanTransitionTo reports whether a transaction in status s may move to
// next. Only pending transactions may move, and only to a terminal
// status. A same-value transition is accepted as a no-op.
func (s Status) CanTransitionTo(next Status) bool {
	if !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	return s == StatusPending && next.Terminal()
}

// Label returns the Indonesian badge text shown for the status.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Menunggu Konfirmasi"
	case StatusSuccess:
		return "Dikonfirmasi"
	case StatusFailed:
		return "Ditolak"
	case StatusCancelled:
		return "Dibatalkan"
	}
	return "Unknown"
}
