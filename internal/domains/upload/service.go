package upload

import (
	"context"
	"time"
)

// Service accepts a base64-encoded image and returns a durable retrieval URL.
type Service interface {
	Upload(ctx context.Context, req *Request) (string, error)
}

// BlobStore is the slice of the object-storage facade the gateway needs.
type BlobStore interface {
	Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error
	IsPublic(bucket string) bool
	PublicURL(bucket, key string) string
	PresignedURL(ctx context.Context, bucket, key string, expiry time.Duration) (string, error)
}
