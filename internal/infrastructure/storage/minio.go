package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"

	"gallery-backend/internal/config"
)

// readOnlyPolicy grants anonymous GetObject on a bucket, which is what makes
// its public URLs resolvable.
const readOnlyPolicy = `{
  "Version": "2012-10-17",
  "Statement": [
    {
      "Effect": "Allow",
      "Principal": {"AWS": ["*"]},
      "Action": ["s3:GetObject"],
      "Resource": ["arn:aws:s3:::%s/*"]
    }
  ]
}`

// ObjectInfo is the subset of object metadata the reconciliation sweep needs.
type ObjectInfo struct {
	Key          string
	LastModified time.Time
}

// ObjectStorage is the facade over the backing object store. It has no
// knowledge of which record an image belongs to; orphan cleanup lives in the
// maintenance sweep, not here.
type ObjectStorage struct {
	client  *minio.Client
	public  map[string]bool
	baseURL string
}

// NewObjectStorage khởi tạo MinIO client
func NewObjectStorage(cfg config.MinIOConfig, publicBuckets []string) (*ObjectStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL, // false cho local, true cho production
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	public := make(map[string]bool, len(publicBuckets))
	for _, b := range publicBuckets {
		public[b] = true
	}

	return &ObjectStorage{
		client:  client,
		public:  public,
		baseURL: client.EndpointURL().String(),
	}, nil
}

// EnsureBuckets creates any missing bucket and applies the public read policy
// to public ones. Safe to race: create-or-exists is idempotent, so concurrent
// cold starts may both call it.
func (s *ObjectStorage) EnsureBuckets(ctx context.Context, buckets []string) error {
	for _, bucket := range buckets {
		exists, err := s.client.BucketExists(ctx, bucket)
		if err != nil {
			return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
		}

		if !exists {
			if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
			log.Info().Str("bucket", bucket).Bool("public", s.public[bucket]).Msg("Created bucket")
		} else {
			log.Info().Str("bucket", bucket).Msg("Bucket already exists")
		}

		if s.public[bucket] {
			policy := fmt.Sprintf(readOnlyPolicy, bucket)
			if err := s.client.SetBucketPolicy(ctx, bucket, policy); err != nil {
				return fmt.Errorf("failed to set policy on %s: %w", bucket, err)
			}
		}
	}

	return nil
}

// Upload upserts (create-or-replace) the object at key inside bucket.
func (s *ObjectStorage) Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	reader := bytes.NewReader(data)

	_, err := s.client.PutObject(
		ctx,
		bucket,
		key,
		reader,
		int64(len(data)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to upload to %s/%s: %w", bucket, key, err)
	}

	return nil
}

// IsPublic reports whether bucket is served via stable public URLs.
func (s *ObjectStorage) IsPublic(bucket string) bool {
	return s.public[bucket]
}

// PublicURL builds the stable URL of an object in a public bucket.
// Format: http://localhost:9000/artworks/artwork-1700000000000.jpg
func (s *ObjectStorage) PublicURL(bucket, key string) string {
	return fmt.Sprintf("%s/%s/%s", s.baseURL, bucket, key)
}

// PresignedURL issues a signed GET URL for objects in private buckets.
func (s *ObjectStorage) PresignedURL(ctx context.Context, bucket, key string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, bucket, key, expiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("failed to presign %s/%s: %w", bucket, key, err)
	}
	return u.String(), nil
}

// Download fetches an object into memory.
func (s *ObjectStorage) Download(ctx context.Context, bucket, key string) ([]byte, error) {
	object, err := s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("failed to read object: %w", err)
	}

	return data, nil
}

// Remove deletes a single object.
func (s *ObjectStorage) Remove(ctx context.Context, bucket, key string) error {
	if err := s.client.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", bucket, key, err)
	}
	return nil
}

// ListObjects returns key + modification time for every object in bucket.
func (s *ObjectStorage) ListObjects(ctx context.Context, bucket string) ([]ObjectInfo, error) {
	objectsCh := s.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{
		Recursive: true,
	})

	var infos []ObjectInfo
	for object := range objectsCh {
		if object.Err != nil {
			return nil, fmt.Errorf("error listing %s: %w", bucket, object.Err)
		}
		infos = append(infos, ObjectInfo{
			Key:          object.Key,
			LastModified: object.LastModified,
		})
	}

	return infos, nil
}

// RemoveAll deletes every object in bucket and returns how many were removed.
// Used by the archive bulk reset to clear the legacy bucket.
func (s *ObjectStorage) RemoveAll(ctx context.Context, bucket string) (int, error) {
	infos, err := s.ListObjects(ctx, bucket)
	if err != nil {
		return 0, err
	}
	if len(infos) == 0 {
		return 0, nil
	}

	objectsCh := make(chan minio.ObjectInfo, len(infos))
	go func() {
		defer close(objectsCh)
		for _, info := range infos {
			objectsCh <- minio.ObjectInfo{Key: info.Key}
		}
	}()

	removed := len(infos)
	errorCh := s.client.RemoveObjects(ctx, bucket, objectsCh, minio.RemoveObjectsOptions{})
	for rmErr := range errorCh {
		if rmErr.Err != nil {
			return 0, fmt.Errorf("failed to remove %s: %w", rmErr.ObjectName, rmErr.Err)
		}
	}

	return removed, nil
}
