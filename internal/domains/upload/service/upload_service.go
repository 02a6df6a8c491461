package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"gallery-backend/internal/config"
	"gallery-backend/internal/domains/upload"
)

// uploadService implements upload.Service
type uploadService struct {
	store upload.BlobStore
	cfg   config.StorageConfig
}

// NewUploadService creates a new upload service instance
// Dependency injection pattern - receives blob store from container
func NewUploadService(store upload.BlobStore, cfg config.StorageConfig) upload.Service {
	return &uploadService{
		store: store,
		cfg:   cfg,
	}
}

// Upload validates, size-checks, decodes and persists the image, then issues
// the retrieval URL: stable public URL for public buckets, long-lived signed
// URL otherwise.
func (s *uploadService) Upload(ctx context.Context, req *upload.Request) (string, error) {
	if req.Base64Image == "" || req.Filename == "" {
		return "", upload.ErrMissingField
	}

	bucket := req.BucketName
	if bucket == "" {
		bucket = s.cfg.ArtworksBucket
	}

	// Strip data:image/...;base64, header when present.
	data := req.Base64Image
	if idx := strings.IndexByte(data, ','); idx >= 0 {
		data = data[idx+1:]
	}

	// The ceiling is computed from the base64 length via the 4:3 expansion
	// ratio, not from the true decoded length. This approximation is the
	// documented contract; do not replace it with len(raw).
	maxKB := s.cfg.DefaultMaxKB
	if bucket == s.cfg.ArtworksBucket {
		maxKB = s.cfg.ArtworkMaxKB
	}
	sizeKB := float64(len(data)) * 3 / 4 / 1024
	if sizeKB > float64(maxKB) {
		return "", &upload.TooLargeError{MaxKB: maxKB}
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", upload.ErrInvalidBase64
	}

	if err := s.store.Upload(ctx, bucket, req.Filename, raw, "image/jpeg"); err != nil {
		return "", fmt.Errorf("storage upload failed: %w", err)
	}

	if s.store.IsPublic(bucket) {
		return s.store.PublicURL(bucket, req.Filename), nil
	}

	url, err := s.store.PresignedURL(ctx, bucket, req.Filename, s.cfg.SignedURLTTL)
	if err != nil {
		return "", fmt.Errorf("url generation failed: %w", err)
	}
	return url, nil
}
