package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App     AppConfig
	Redis   RedisConfig
	MinIO   MinIOConfig
	Storage StorageConfig
	Auth    AuthConfig
	Jobs    JobConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type MinIOConfig struct {
	Endpoint  string // localhost:9000
	AccessKey string // minioadmin
	SecretKey string // minioadmin
	UseSSL    bool   // false for local
}

// StorageConfig describes the logical buckets and their upload ceilings.
// ArtworksBucket and ArchiveBucket are public; LegacyBucket holds old archive
// scrapbook files and is private (signed URLs only).
type StorageConfig struct {
	ArtworksBucket string
	ArchiveBucket  string
	LegacyBucket   string
	ArtworkMaxKB   int // ceiling for the artworks bucket
	DefaultMaxKB   int // ceiling for every other bucket
	SignedURLTTL   time.Duration
}

type AuthConfig struct {
	JWTSecret         string
	AdminPasswordHash string // bcrypt hash; login is disabled when empty
	Enforce           bool   // when false, mutation endpoints stay open
	SessionExpiry     time.Duration
}

type JobConfig struct {
	ReconcileCron  string        // cron spec for the orphan-blob sweep
	OrphanGrace    time.Duration // objects younger than this are never swept
	ReconcileLimit int           // max deletions per sweep run
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Gallery API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Storage: StorageConfig{
			ArtworksBucket: getEnv("STORAGE_ARTWORKS_BUCKET", "artworks"),
			ArchiveBucket:  getEnv("STORAGE_ARCHIVE_BUCKET", "archive"),
			LegacyBucket:   getEnv("STORAGE_LEGACY_BUCKET", "gallery-archive-legacy"),
			ArtworkMaxKB:   getEnvInt("UPLOAD_ARTWORK_MAX_KB", 500),
			DefaultMaxKB:   getEnvInt("UPLOAD_DEFAULT_MAX_KB", 300),
			// S3-style presign caps at 7 days; this is the longest-lived URL
			// the store will issue for private buckets.
			SignedURLTTL: getEnvDuration("STORAGE_SIGNED_URL_TTL", 7*24*time.Hour),
		},
		Auth: AuthConfig{
			JWTSecret:         getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			Enforce:           getEnvBool("AUTH_ENFORCE", false),
			SessionExpiry:     getEnvDuration("SESSION_EXPIRY", 24*time.Hour),
		},
		Jobs: JobConfig{
			ReconcileCron:  getEnv("JOB_RECONCILE_CRON", "0 3 * * *"),
			OrphanGrace:    getEnvDuration("JOB_ORPHAN_GRACE", 24*time.Hour),
			ReconcileLimit: getEnvInt("JOB_RECONCILE_LIMIT", 500),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.Auth.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Auth.Enforce && c.Auth.AdminPasswordHash == "" {
			return fmt.Errorf("ADMIN_PASSWORD_HASH must be set when AUTH_ENFORCE is on")
		}
	}

	if c.Storage.ArtworkMaxKB <= 0 || c.Storage.DefaultMaxKB <= 0 {
		return fmt.Errorf("upload ceilings must be positive")
	}

	return nil
}

// PublicBuckets lists the buckets served via stable public URLs.
func (c *Config) PublicBuckets() []string {
	return []string{c.Storage.ArtworksBucket, c.Storage.ArchiveBucket}
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
