// Package errors holds the sentinel errors shared between services and
// handlers. Handlers map them to HTTP status codes; services wrap them
// with context where useful.
package errors

import "errors"

var (
	ErrUnauthorized       = errors.New("user is not authorized")
	ErrForbidden          = errors.New("operation is forbidden for user")
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrDuplicateEmail - registration with an email that already exists
	// (case-sensitive match, same as the unique column).
	ErrDuplicateEmail = errors.New("email sudah terdaftar")

	// ErrVenueNotSelected - a booking operation was attempted before the
	// session selected a venue.
	ErrVenueNotSelected = errors.New("no venue selected")

	// ErrNoDraftBooking - checkout was attempted without a draft booking;
	// callers should send the user back to the booking step.
	ErrNoDraftBooking = errors.New("no draft booking in session")

	// ErrIllegalTransition - the requested status change violates the
	// transition policy (only pending may move, and only to a terminal
	// status).
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrDuplicateTransactionID - the millisecond-timestamp id collided;
	// the creator retries once with a bumped id.
	ErrDuplicateTransactionID = errors.New("transaction id already exists")

	// Payment proof validation failures, surfaced with distinct messages.
	ErrProofTooLarge = errors.New("ukuran file maksimal 5MB")
	ErrProofNotImage = errors.New("file harus berupa gambar")
	ErrPaymentMethod = errors.New("metode pembayaran tidak valid")
	ErrInvalidDate   = errors.New("invalid booking date")
	ErrInvalidTime   = errors.New("invalid booking time")
)
