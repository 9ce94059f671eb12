package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"

	"futsalbook/internal/cache"
	"futsalbook/internal/config"
	apperrors "futsalbook/internal/errors"
	"futsalbook/internal/metrics"
	"futsalbook/internal/models"
	"futsalbook/internal/repository"
)

type AuthService struct {
	admin    config.AdminConfig
	users    *repository.UserRepository
	sessions *cache.SessionStore
}

func NewAuthService(admin config.AdminConfig, users *repository.UserRepository, sessions *cache.SessionStore) *AuthService {
	return &AuthService{
		admin:    admin,
		users:    users,
		sessions: sessions,
	}
}

// HashPassword returns the SHA-256 hex digest used for credential storage.
func HashPassword(password string) string {
	hash := sha256.Sum256([]byte(password))
	return fmt.Sprintf("%x", hash)
}

// Register creates a new user. The email must not match an existing one;
// the comparison is case-sensitive.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: HashPassword(req.Password),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if err == apperrors.ErrDuplicateEmail {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	metrics.IncRegistrations()
	return user, nil
}

// Login verifies the credentials and opens a session holding the user
// snapshot. The returned token is the only thing the client keeps.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.Session, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	supplied := HashPassword(req.Password)
	if subtle.ConstantTimeCompare([]byte(supplied), []byte(user.PasswordHash)) != 1 {
		return nil, apperrors.ErrInvalidCredentials
	}

	sess := &models.Session{
		UserID: user.ID,
		Role:   models.RoleUser,
		User:   user,
	}
	if _, err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return sess, nil
}

// AdminLogin checks the single configured credential pair and opens a
// sentinel admin session. There is no admin user record.
func (s *AuthService) AdminLogin(ctx context.Context, req *models.AdminLoginRequest) (*models.Session, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(s.admin.Email)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.admin.Password)) == 1
	if !emailOK || !passOK {
		return nil, apperrors.ErrInvalidCredentials
	}

	sess := &models.Session{
		UserID: models.AdminSentinelID,
		Role:   models.RoleAdmin,
	}
	if _, err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return sess, nil
}

// Logout clears the session.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// UpdateProfile applies profile edits and refreshes the session snapshot.
func (s *AuthService) UpdateProfile(ctx context.Context, sess *models.Session, req *models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.users.GetByID(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrNotFound
	}

	user.Name = req.Name
	user.Phone = req.Phone
	if req.ProfileImage != nil {
		user.ProfileImage = req.ProfileImage
	}

	if err := s.users.UpdateProfile(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	sess.User = user
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to refresh session: %w", err)
	}

	return user, nil
}
