package service

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery-backend/internal/config"
	"gallery-backend/internal/domains/upload"
)

type fakeBlobStore struct {
	uploads     []uploadCall
	publicSet   map[string]bool
	presignTTLs []time.Duration
}

type uploadCall struct {
	bucket      string
	key         string
	data        []byte
	contentType string
}

func newFakeBlobStore(public ...string) *fakeBlobStore {
	set := make(map[string]bool, len(public))
	for _, b := range public {
		set[b] = true
	}
	return &fakeBlobStore{publicSet: set}
}

func (f *fakeBlobStore) Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	f.uploads = append(f.uploads, uploadCall{bucket: bucket, key: key, data: data, contentType: contentType})
	return nil
}

func (f *fakeBlobStore) IsPublic(bucket string) bool {
	return f.publicSet[bucket]
}

func (f *fakeBlobStore) PublicURL(bucket, key string) string {
	return "http://cdn/" + bucket + "/" + key
}

func (f *fakeBlobStore) PresignedURL(ctx context.Context, bucket, key string, expiry time.Duration) (string, error) {
	f.presignTTLs = append(f.presignTTLs, expiry)
	return "http://cdn/" + bucket + "/" + key + "?signed=1", nil
}

func testConfig() config.StorageConfig {
	return config.StorageConfig{
		ArtworksBucket: "artworks",
		ArchiveBucket:  "archive",
		ArtworkMaxKB:   500,
		DefaultMaxKB:   300,
		SignedURLTTL:   7 * 24 * time.Hour,
	}
}

func TestUploadToPublicBucket(t *testing.T) {
	store := newFakeBlobStore("artworks", "archive")
	svc := NewUploadService(store, testConfig())

	raw := []byte("jpeg bytes here")
	url, err := svc.Upload(context.Background(), &upload.Request{
		Base64Image: base64.StdEncoding.EncodeToString(raw),
		Filename:    "artwork-1700000000000.jpg",
		BucketName:  "artworks",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://cdn/artworks/artwork-1700000000000.jpg", url)
	require.Len(t, store.uploads, 1)
	assert.Equal(t, "artworks", store.uploads[0].bucket)
	assert.Equal(t, raw, store.uploads[0].data)
	assert.Equal(t, "image/jpeg", store.uploads[0].contentType)
	assert.Empty(t, store.presignTTLs)
}

func TestUploadDefaultsToArtworksBucket(t *testing.T) {
	store := newFakeBlobStore("artworks")
	svc := NewUploadService(store, testConfig())

	_, err := svc.Upload(context.Background(), &upload.Request{
		Base64Image: base64.StdEncoding.EncodeToString([]byte("x")),
		Filename:    "a.jpg",
	})
	require.NoError(t, err)

	require.Len(t, store.uploads, 1)
	assert.Equal(t, "artworks", store.uploads[0].bucket)
}

func TestUploadPrivateBucketGetsSignedURL(t *testing.T) {
	store := newFakeBlobStore("artworks")
	svc := NewUploadService(store, testConfig())

	url, err := svc.Upload(context.Background(), &upload.Request{
		Base64Image: base64.StdEncoding.EncodeToString([]byte("x")),
		Filename:    "scan.jpg",
		BucketName:  "private-bucket",
	})
	require.NoError(t, err)

	assert.Contains(t, url, "?signed=1")
	require.Len(t, store.presignTTLs, 1)
	assert.Equal(t, 7*24*time.Hour, store.presignTTLs[0])
}

func TestUploadStripsDataURLHeader(t *testing.T) {
	store := newFakeBlobStore("artworks")
	svc := NewUploadService(store, testConfig())

	raw := []byte("payload")
	_, err := svc.Upload(context.Background(), &upload.Request{
		Base64Image: "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(raw),
		Filename:    "a.jpg",
	})
	require.NoError(t, err)

	require.Len(t, store.uploads, 1)
	assert.Equal(t, raw, store.uploads[0].data)
}

func TestUploadRejectsMissingFields(t *testing.T) {
	store := newFakeBlobStore("artworks")
	svc := NewUploadService(store, testConfig())

	_, err := svc.Upload(context.Background(), &upload.Request{Filename: "a.jpg"})
	assert.ErrorIs(t, err, upload.ErrMissingField)

	_, err = svc.Upload(context.Background(), &upload.Request{Base64Image: "aGVsbG8="})
	assert.ErrorIs(t, err, upload.ErrMissingField)

	assert.Empty(t, store.uploads)
}

func TestUploadRejectsInvalidBase64(t *testing.T) {
	store := newFakeBlobStore("artworks")
	svc := NewUploadService(store, testConfig())

	_, err := svc.Upload(context.Background(), &upload.Request{
		Base64Image: "!!! not base64 !!!",
		Filename:    "a.jpg",
	})
	assert.ErrorIs(t, err, upload.ErrInvalidBase64)
	assert.Empty(t, store.uploads)
}

func TestUploadEnforcesArtworkCeiling(t *testing.T) {
	store := newFakeBlobStore("artworks")
	svc := NewUploadService(store, testConfig())

	// ~600KB decoded equivalent: over the 500KB artworks ceiling. The size
	// check fires on base64 length, before any decoding happens.
	payload := strings.Repeat("A", 600*1024*4/3)
	_, err := svc.Upload(context.Background(), &upload.Request{
		Base64Image: payload,
		Filename:    "huge.jpg",
		BucketName:  "artworks",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "Image too large. Maximum 500KB.")
	assert.Empty(t, store.uploads)
}

func TestUploadEnforcesDefaultCeilingForOtherBuckets(t *testing.T) {
	store := newFakeBlobStore("artworks", "archive")
	svc := NewUploadService(store, testConfig())

	// 400KB: fine for artworks, over the 300KB default ceiling.
	payload := strings.Repeat("A", 400*1024*4/3)
	_, err := svc.Upload(context.Background(), &upload.Request{
		Base64Image: payload,
		Filename:    "big.jpg",
		BucketName:  "archive",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "Image too large. Maximum 300KB.")
}
