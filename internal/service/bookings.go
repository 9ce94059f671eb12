package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"futsalbook/internal/cache"
	"futsalbook/internal/config"
	apperrors "futsalbook/internal/errors"
	"futsalbook/internal/logger"
	"futsalbook/internal/messaging"
	"futsalbook/internal/metrics"
	"futsalbook/internal/models"
	"futsalbook/internal/repository"
	"futsalbook/internal/venues"
)

// The accepted payment methods, keyed by the form value.
var paymentMethods = map[string]string{
	"bca":     "Bank BCA",
	"bri":     "Bank BRI",
	"mandiri": "Bank Mandiri",
	"ewallet": "E-Wallet",
}

// ProofUpload is an incoming payment-proof image before validation.
type ProofUpload struct {
	FileName    string
	Size        int64
	ContentType string
	Data        []byte
}

type BookingService struct {
	upload       config.UploadConfig
	transactions *repository.TransactionRepository
	catalog      *venues.Catalog
	sessions     *cache.SessionStore
	natsClient   *messaging.NATSClient
}

func NewBookingService(upload config.UploadConfig, transactions *repository.TransactionRepository, catalog *venues.Catalog, sessions *cache.SessionStore, natsClient *messaging.NATSClient) *BookingService {
	return &BookingService{
		upload:       upload,
		transactions: transactions,
		catalog:      catalog,
		sessions:     sessions,
		natsClient:   natsClient,
	}
}

// MaxProofBytes is the configured payment-proof size limit. Transport
// code uses it to refuse oversized bodies before buffering them.
func (s *BookingService) MaxProofBytes() int64 {
	return s.upload.MaxProofBytes
}

// SelectVenue sets the session's selected venue pointer.
func (s *BookingService) SelectVenue(ctx context.Context, sess *models.Session, venueID string) (*models.Venue, error) {
	venue := s.catalog.GetByID(venueID)
	if venue == nil {
		return nil, apperrors.ErrNotFound
	}

	sess.Venue = venue
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return venue, nil
}

// CreateDraft captures the slot selection as the session's draft booking.
// A new selection overwrites any prior unconsumed draft. The price is
// recomputed from the hour server-side; client prices are not trusted.
func (s *BookingService) CreateDraft(ctx context.Context, sess *models.Session, req *models.CreateDraftRequest) (*models.DraftBooking, error) {
	if sess.Venue == nil {
		return nil, apperrors.ErrVenueNotSelected
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, apperrors.ErrInvalidDate
	}

	hour, err := parseSlotHour(req.Time)
	if err != nil {
		return nil, err
	}

	draft := &models.DraftBooking{
		Date:  req.Date,
		Time:  req.Time,
		Price: SlotPrice(hour),
		Field: "Lapangan A",
		Venue: *sess.Venue,
	}

	sess.Draft = draft
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return draft, nil
}

// Checkout materializes the session's draft booking into a persisted
// pending transaction and consumes the draft. The proof image is
// optional; payment can also be proven later from the status page.
func (s *BookingService) Checkout(ctx context.Context, sess *models.Session, methodID string, upload *ProofUpload) (*models.Transaction, error) {
	if sess.Draft == nil {
		return nil, apperrors.ErrNoDraftBooking
	}

	methodName, ok := paymentMethods[methodID]
	if !ok {
		return nil, apperrors.ErrPaymentMethod
	}

	var proof *models.PaymentProof
	if upload != nil {
		var err error
		proof, err = s.buildProof(upload)
		if err != nil {
			return nil, err
		}
	}

	draft := sess.Draft
	now := time.Now()
	t := &models.Transaction{
		ID:                  transactionID(now),
		UserID:              sess.UserID,
		Date:                draft.Date,
		Time:                draft.Time,
		Field:               draft.Field,
		Price:               draft.Price,
		PaymentMethod:       methodName,
		Status:              models.StatusPending,
		Venue:               draft.Venue,
		PaymentInstructions: paymentInstructions(methodID),
		PaymentProof:        proof,
	}

	err := s.transactions.Create(ctx, t)
	if err == apperrors.ErrDuplicateTransactionID {
		// Millisecond ids can collide under back-to-back checkouts.
		t.ID = transactionID(now.Add(time.Millisecond))
		err = s.transactions.Create(ctx, t)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	sess.Draft = nil
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to clear draft: %w", err)
	}

	event := models.TransactionCreatedEvent{
		TransactionID: t.ID,
		UserID:        t.UserID,
		VenueID:       t.Venue.ID,
		Date:          t.Date,
		Time:          t.Time,
		Price:         t.Price,
		PaymentMethod: methodID,
		Timestamp:     time.Now(),
	}
	if err := s.natsClient.Publish(models.EventTransactionCreated, event); err != nil {
		logger.WithContext(ctx).Error("Failed to publish transaction created event",
			"error", err,
			"transaction_id", t.ID)
	}

	metrics.IncTransactionsCreated(methodID)
	return t, nil
}

// AttachProof validates the image and attaches it to the caller's own
// transaction. Attaching a proof does not change the status; an admin
// still has to confirm the payment.
func (s *BookingService) AttachProof(ctx context.Context, sess *models.Session, transactionID string, upload *ProofUpload) (*models.Transaction, error) {
	t, err := s.ownTransaction(ctx, sess, transactionID)
	if err != nil {
		return nil, err
	}

	proof, err := s.buildProof(upload)
	if err != nil {
		return nil, err
	}

	if err := s.transactions.SetProof(ctx, t.ID, proof); err != nil {
		return nil, fmt.Errorf("failed to attach proof: %w", err)
	}
	t.PaymentProof = proof

	event := models.ProofUploadedEvent{
		TransactionID: t.ID,
		UserID:        t.UserID,
		FileName:      proof.FileName,
		FileSize:      proof.FileSize,
		Timestamp:     time.Now(),
	}
	if err := s.natsClient.Publish(models.EventProofUploaded, event); err != nil {
		logger.WithContext(ctx).Error("Failed to publish proof uploaded event",
			"error", err,
			"transaction_id", t.ID)
	}

	metrics.IncProofUploads()
	return t, nil
}

// RemoveProof detaches the payment proof from the caller's transaction.
func (s *BookingService) RemoveProof(ctx context.Context, sess *models.Session, transactionID string) (*models.Transaction, error) {
	t, err := s.ownTransaction(ctx, sess, transactionID)
	if err != nil {
		return nil, err
	}

	if err := s.transactions.SetProof(ctx, t.ID, nil); err != nil {
		return nil, fmt.Errorf("failed to remove proof: %w", err)
	}
	t.PaymentProof = nil

	return t, nil
}

func (s *BookingService) ownTransaction(ctx context.Context, sess *models.Session, id string) (*models.Transaction, error) {
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
	return t, nil
}

// buildProof validates the upload and encodes it as a data URI.
func (s *BookingService) buildProof(upload *ProofUpload) (*models.PaymentProof, error) {
	if upload == nil {
		return nil, apperrors.ErrProofNotImage
	}
	if upload.Size > s.upload.MaxProofBytes {
		return nil, apperrors.ErrProofTooLarge
	}
	if !strings.HasPrefix(upload.ContentType, "image/") {
		return nil, apperrors.ErrProofNotImage
	}

	return &models.PaymentProof{
		FileName:   upload.FileName,
		FileSize:   upload.Size,
		FileType:   upload.ContentType,
		UploadedAt: time.Now(),
		FileData:   "data:" + upload.ContentType + ";base64," + base64.StdEncoding.EncodeToString(upload.Data),
	}, nil
}

func transactionID(t time.Time) string {
	return fmt.Sprintf("TRX-%d", t.UnixMilli())
}

func parseSlotHour(value string) (int, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 || parts[1] != "00" {
		return 0, apperrors.ErrInvalidTime
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < slotFirstHour || hour > slotLastHour {
		return 0, apperrors.ErrInvalidTime
	}
	return hour, nil
}

// paymentInstructions returns the static transfer steps for a method.
func paymentInstructions(methodID string) *models.PaymentInstructions {
	switch methodID {
	case "bca":
		return &models.PaymentInstructions{
			AccountNumber: "1234567890",
			AccountName:   "PT FutsalBook Indonesia",
			Steps: []string{
				"Transfer ke rekening BCA: 1234567890",
				"Atas nama: PT FutsalBook Indonesia",
				"Gunakan kode unik sebagai berita transfer",
				"Simpan bukti transfer untuk diupload nanti",
			},
		}
	case "bri":
		return &models.PaymentInstructions{
			AccountNumber: "0987654321",
			AccountName:   "PT FutsalBook Indonesia",
			Steps: []string{
				"Transfer ke rekening BRI: 0987654321",
				"Atas nama: PT FutsalBook Indonesia",
				"Gunakan kode unik sebagai berita transfer",
				"Simpan bukti transfer untuk diupload nanti",
			},
		}
	case "mandiri":
		return &models.PaymentInstructions{
			AccountNumber: "1122334455",
			AccountName:   "PT FutsalBook Indonesia",
			Steps: []string{
				"Transfer ke rekening Mandiri: 1122334455",
				"Atas nama: PT FutsalBook Indonesia",
				"Gunakan kode unik sebagai berita transfer",
				"Simpan bukti transfer untuk diupload nanti",
			},
		}
	case "ewallet":
		return &models.PaymentInstructions{
			QRCode: "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg==",
			Steps: []string{
				"Scan QR code dengan aplikasi e-wallet Anda",
				"Konfirmasi pembayaran di aplikasi",
				"Simpan screenshot bukti pembayaran",
				"Upload bukti di halaman Status Booking",
			},
		}
	}
	return nil
}
