package repository

import (
	"context"
	"database/sql"

	"futsalbook/internal/database"
	apperrors "futsalbook/internal/errors"
	"futsalbook/internal/models"

	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts the user and fills in the generated id and timestamp.
// A duplicate email surfaces as ErrDuplicateEmail; the unique column is
// case-sensitive, matching the original's exact-match check.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, email, phone, password_hash, profile_image)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, registered_at`

	err := r.db.QueryRowContext(ctx, query,
		user.Name,
		user.Email,
		user.Phone,
		user.PasswordHash,
		user.ProfileImage,
	).Scan(&user.ID, &user.RegisteredAt)

	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqUniqueViolation {
		return apperrors.ErrDuplicateEmail
	}

	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, name, email, phone, password_hash, profile_image, registered_at
		FROM users
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.PasswordHash,
		&user.ProfileImage,
		&user.RegisteredAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return user, err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, name, email, phone, password_hash, profile_image, registered_at
		FROM users
		WHERE email = $1`

	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.PasswordHash,
		&user.ProfileImage,
		&user.RegisteredAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return user, err
}

// UpdateProfile updates the mutable profile fields. Email stays fixed.
func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET name = $1, phone = $2, profile_image = $3
		WHERE id = $4`

	_, err := r.db.ExecContext(ctx, query,
		user.Name,
		user.Phone,
		user.ProfileImage,
		user.ID,
	)

	return err
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}
