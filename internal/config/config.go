package config

import (
	"os"
	"strconv"
	"time"

	"futsalbook/internal/cache"
	"futsalbook/internal/database"
	"futsalbook/internal/messaging"

	"github.com/joho/godotenv"
)

// AdminConfig is the single configured admin credential pair. There is no
// admin user record; a matching login produces a sentinel session.
type AdminConfig struct {
	Email    string
	Password string
}

// UploadConfig bounds payment-proof uploads.
type UploadConfig struct {
	MaxProofBytes int64
}

// Config contains the application configuration
type Config struct {
	Port      string
	GinMode   string
	LogLevel  string
	LogFormat string

	Database database.Config
	Sessions cache.Config
	NATS     messaging.Config
	Admin    AdminConfig
	Upload   UploadConfig
}

// Load reads configuration from environment variables, with a best-effort
// .env file load first.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:      getEnv("PORT", "8080"),
		GinMode:   getEnv("GIN_MODE", "debug"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		Database: database.Config{
			Host:               getEnv("DB_HOST", "localhost"),
			Port:               getEnvInt("DB_PORT", 5432),
			User:               getEnv("DB_USER", "futsalbook"),
			Password:           getEnv("DB_PASSWORD", "futsalbook123"),
			DBName:             getEnv("DB_NAME", "futsalbook"),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeMin: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 5),
			ConnMaxIdleTimeMin: getEnvInt("DB_CONN_MAX_IDLE_TIME_MIN", 1),
		},

		Sessions: cache.Config{
			Addr:       getEnv("REDIS_ADDR", "localhost:6379"),
			Password:   getEnv("REDIS_PASSWORD", ""),
			DB:         getEnvInt("REDIS_DB", 0),
			SessionTTL: time.Duration(getEnvInt("SESSION_TTL_MIN", 720)) * time.Minute,
		},

		NATS: messaging.Config{
			Enabled:   getEnv("NATS_ENABLED", "false") == "true",
			URL:       getEnv("NATS_URL", "nats://localhost:4222"),
			ClusterID: getEnv("NATS_CLUSTER_ID", "futsalbook"),
			ClientID:  getEnv("NATS_CLIENT_ID", "futsalbook-api"),
		},

		Admin: AdminConfig{
			Email:    getEnv("ADMIN_EMAIL", "admin@futsalbook.com"),
			Password: getEnv("ADMIN_PASSWORD", "admin123"),
		},

		Upload: UploadConfig{
			MaxProofBytes: int64(getEnvInt("MAX_PROOF_BYTES", 5*1024*1024)),
		},
	}
}

// getEnv returns an environment variable or the default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns an integer environment variable or the default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
