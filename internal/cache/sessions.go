// Package cache implements the Redis-backed session store. Each session
// lives under a single key as a JSON blob, mirroring the key-value layout
// the original kept in browser storage (currentUser, selectedVenue,
// currentBooking collapse into one record per token).
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"futsalbook/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

type Config struct {
	Addr       string
	Password   string
	DB         int
	SessionTTL time.Duration
}

type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(cfg Config) (*SessionStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		DialTimeout:  5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}

	return &SessionStore{client: rdb, ttl: ttl}, nil
}

// Create stores a new session under a fresh opaque token and returns it.
func (s *SessionStore) Create(ctx context.Context, sess *models.Session) (string, error) {
	sess.Token = uuid.New().String()
	if err := s.Save(ctx, sess); err != nil {
		return "", err
	}
	return sess.Token, nil
}

// Get returns the session for token, or nil when the token is unknown or
// expired.
func (s *SessionStore) Get(ctx context.Context, token string) (*models.Session, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+token).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session lookup: %w", err)
	}

	var sess models.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

// Save writes the session back and refreshes its TTL.
func (s *SessionStore) Save(ctx context.Context, sess *models.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+sess.Token, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

// Delete removes the session; deleting an unknown token is not an error.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SessionStore) Close() error {
	return s.client.Close()
}
