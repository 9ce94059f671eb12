package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"futsalbook/internal/database"
	apperrors "futsalbook/internal/errors"
	"futsalbook/internal/models"

	"github.com/lib/pq"
)

type TransactionRepository struct {
	db *database.DB
}

func NewTransactionRepository(db *database.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `
	id, user_id, booking_date, booking_time, field, price, payment_method,
	status, venue, payment_instructions,
	proof_file_name, proof_file_size, proof_file_type, proof_uploaded_at, proof_file_data,
	created_at, updated_at`

// Create inserts the transaction and fills in the timestamps. A collision
// on the millisecond-timestamp id surfaces as ErrDuplicateTransactionID so
// the caller can retry with a bumped id.
func (r *TransactionRepository) Create(ctx context.Context, t *models.Transaction) error {
	venueJSON, err := json.Marshal(t.Venue)
	if err != nil {
		return fmt.Errorf("encode venue snapshot: %w", err)
	}

	var instructionsJSON []byte
	if t.PaymentInstructions != nil {
		instructionsJSON, err = json.Marshal(t.PaymentInstructions)
		if err != nil {
			return fmt.Errorf("encode payment instructions: %w", err)
		}
	}

	query := `
		INSERT INTO transactions (
			id, user_id, booking_date, booking_time, field, price, payment_method,
			status, venue, payment_instructions,
			proof_file_name, proof_file_size, proof_file_type, proof_uploaded_at, proof_file_data
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING created_at, updated_at`

	var (
		proofName, proofType, proofData sql.NullString
		proofSize                       sql.NullInt64
		proofAt                         sql.NullTime
	)
	if p := t.PaymentProof; p != nil {
		proofName = sql.NullString{String: p.FileName, Valid: true}
		proofSize = sql.NullInt64{Int64: p.FileSize, Valid: true}
		proofType = sql.NullString{String: p.FileType, Valid: true}
		proofAt = sql.NullTime{Time: p.UploadedAt, Valid: true}
		proofData = sql.NullString{String: p.FileData, Valid: true}
	}

	err = r.db.QueryRowContext(ctx, query,
		t.ID,
		t.UserID,
		t.Date,
		t.Time,
		t.Field,
		t.Price,
		t.PaymentMethod,
		t.Status,
		venueJSON,
		instructionsJSON,
		proofName,
		proofSize,
		proofType,
		proofAt,
		proofData,
	).Scan(&t.CreatedAt, &t.UpdatedAt)

	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqUniqueViolation {
		return apperrors.ErrDuplicateTransactionID
	}

	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner, t *models.Transaction) error {
	var (
		venueJSON        []byte
		instructionsJSON []byte

		proofName, proofType, proofData sql.NullString
		proofSize                       sql.NullInt64
		proofAt                         sql.NullTime
	)

	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.Date,
		&t.Time,
		&t.Field,
		&t.Price,
		&t.PaymentMethod,
		&t.Status,
		&venueJSON,
		&instructionsJSON,
		&proofName,
		&proofSize,
		&proofType,
		&proofAt,
		&proofData,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(venueJSON, &t.Venue); err != nil {
		return fmt.Errorf("decode venue snapshot: %w", err)
	}
	if len(instructionsJSON) > 0 {
		t.PaymentInstructions = &models.PaymentInstructions{}
		if err := json.Unmarshal(instructionsJSON, t.PaymentInstructions); err != nil {
			return fmt.Errorf("decode payment instructions: %w", err)
		}
	}
	if proofName.Valid {
		t.PaymentProof = &models.PaymentProof{
			FileName:   proofName.String,
			FileSize:   proofSize.Int64,
			FileType:   proofType.String,
			UploadedAt: proofAt.Time,
			FileData:   proofData.String,
		}
	}

	return nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	t := &models.Transaction{}
	err := scanTransaction(r.db.QueryRowContext(ctx, query, id), t)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return t, nil
}

// ListByUser returns the user's transactions, newest first.
func (r *TransactionRepository) ListByUser(ctx context.Context, userID int64) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := scanTransaction(rows, &t); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	return transactions, rows.Err()
}

// ListAdmin returns all transactions joined with their owner, newest
// first, optionally narrowed by a case-insensitive substring search over
// transaction id, customer name and email, and by status.
func (r *TransactionRepository) ListAdmin(ctx context.Context, search string, status models.Status) ([]models.AdminTransaction, error) {
	query := `
		SELECT ` + prefixedTransactionColumns("t") + `,
		       COALESCE(u.name, ''), COALESCE(u.email, '')
		FROM transactions t
		LEFT JOIN users u ON u.id = t.user_id
		WHERE ($1 = '' OR t.id ILIKE '%' || $1 || '%'
		       OR u.name ILIKE '%' || $1 || '%'
		       OR u.email ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR t.status = $2)
		ORDER BY t.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, escapeLike(search), string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.AdminTransaction
	for rows.Next() {
		var t adminRow
		if err := t.scan(rows); err != nil {
			return nil, err
		}
		transactions = append(transactions, t.AdminTransaction)
	}

	return transactions, rows.Err()
}

// GetAdminByID returns a single transaction joined with its owner for
// the admin detail view.
func (r *TransactionRepository) GetAdminByID(ctx context.Context, id string) (*models.AdminTransaction, error) {
	query := `
		SELECT ` + prefixedTransactionColumns("t") + `,
		       COALESCE(u.name, ''), COALESCE(u.email, '')
		FROM transactions t
		LEFT JOIN users u ON u.id = t.user_id
		WHERE t.id = $1`

	var a adminRow
	err := a.scan(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &a.AdminTransaction, nil
}

// UpdateStatus replaces the status and stamps updated_at. The update is
// conditional on the status the caller read, so a concurrent transition
// cannot be silently overwritten: zero rows means the transaction is gone
// or its status already moved, and surfaces as ErrIllegalTransition.
func (r *TransactionRepository) UpdateStatus(ctx context.Context, id string, from, to models.Status) error {
	query := `
		UPDATE transactions
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3`

	res, err := r.db.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperrors.ErrIllegalTransition
	}
	return nil
}

// SetProof attaches the payment proof, or clears it when proof is nil.
func (r *TransactionRepository) SetProof(ctx context.Context, id string, proof *models.PaymentProof) error {
	query := `
		UPDATE transactions
		SET proof_file_name = $1, proof_file_size = $2, proof_file_type = $3,
		    proof_uploaded_at = $4, proof_file_data = $5, updated_at = NOW()
		WHERE id = $6`

	var (
		name, ftype, data sql.NullString
		size              sql.NullInt64
		uploadedAt        sql.NullTime
	)
	if proof != nil {
		name = sql.NullString{String: proof.FileName, Valid: true}
		size = sql.NullInt64{Int64: proof.FileSize, Valid: true}
		ftype = sql.NullString{String: proof.FileType, Valid: true}
		uploadedAt = sql.NullTime{Time: proof.UploadedAt, Valid: true}
		data = sql.NullString{String: proof.FileData, Valid: true}
	}

	res, err := r.db.ExecContext(ctx, query, name, size, ftype, uploadedAt, data, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *TransactionRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count)
	return count, err
}

func (r *TransactionRepository) CountByStatus(ctx context.Context, status models.Status) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transactions WHERE status = $1`, status).Scan(&count)
	return count, err
}

// CountByDate counts bookings for an ISO date by string equality, the
// same comparison the dashboard has always used.
func (r *TransactionRepository) CountByDate(ctx context.Context, date string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transactions WHERE booking_date = $1`, date).Scan(&count)
	return count, err
}

// SumRevenue totals the price of confirmed transactions.
func (r *TransactionRepository) SumRevenue(ctx context.Context) (int64, error) {
	var sum int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(price), 0) FROM transactions WHERE status = $1`,
		models.StatusSuccess).Scan(&sum)
	return sum, err
}

// CountPendingOlderThan counts pending transactions created before the
// cutoff. Used by the consumer's stale-pending monitor.
func (r *TransactionRepository) CountPendingOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transactions WHERE status = $1 AND created_at < $2`,
		models.StatusPending, cutoff).Scan(&count)
	return count, err
}

// adminRow scans a joined transaction row.
type adminRow struct {
	models.AdminTransaction
}

func (a *adminRow) scan(rows rowScanner) error {
	var (
		venueJSON        []byte
		instructionsJSON []byte

		proofName, proofType, proofData sql.NullString
		proofSize                       sql.NullInt64
		proofAt                         sql.NullTime
	)

	err := rows.Scan(
		&a.ID,
		&a.UserID,
		&a.Date,
		&a.Time,
		&a.Field,
		&a.Price,
		&a.PaymentMethod,
		&a.Status,
		&venueJSON,
		&instructionsJSON,
		&proofName,
		&proofSize,
		&proofType,
		&proofAt,
		&proofData,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.CustomerName,
		&a.CustomerEmail,
	)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(venueJSON, &a.Venue); err != nil {
		return fmt.Errorf("decode venue snapshot: %w", err)
	}
	if len(instructionsJSON) > 0 {
		a.PaymentInstructions = &models.PaymentInstructions{}
		if err := json.Unmarshal(instructionsJSON, a.PaymentInstructions); err != nil {
			return fmt.Errorf("decode payment instructions: %w", err)
		}
	}
	if proofName.Valid {
		a.PaymentProof = &models.PaymentProof{
			FileName:   proofName.String,
			FileSize:   proofSize.Int64,
			FileType:   proofType.String,
			UploadedAt: proofAt.Time,
			FileData:   proofData.String,
		}
	}

	return nil
}

// escapeLike escapes LIKE/ILIKE metacharacters so a search term matches
// as a literal substring rather than a pattern.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func prefixedTransactionColumns(alias string) string {
	return alias + `.id, ` + alias + `.user_id, ` + alias + `.booking_date, ` +
		alias + `.booking_time, ` + alias + `.field, ` + alias + `.price, ` +
		alias + `.payment_method, ` + alias + `.status, ` + alias + `.venue, ` +
		alias + `.payment_instructions, ` + alias + `.proof_file_name, ` +
		alias + `.proof_file_size, ` + alias + `.proof_file_type, ` +
		alias + `.proof_uploaded_at, ` + alias + `.proof_file_data, ` +
		alias + `.created_at, ` + alias + `.updated_at`
}
