package service

import (
	"context"
	"net/url"
	"path"
	"time"

	"github.com/rs/zerolog/log"

	"gallery-backend/internal/domains/archive"
	"gallery-backend/internal/domains/artwork"
	"gallery-backend/internal/domains/maintenance"
	"gallery-backend/internal/infrastructure/storage"
)

// BlobLister is the slice of the object-storage facade the sweep needs.
type BlobLister interface {
	ListObjects(ctx context.Context, bucket string) ([]storage.ObjectInfo, error)
	Remove(ctx context.Context, bucket, key string) error
}

// reconcileService implements maintenance.Service
type reconcileService struct {
	artworks artwork.Repository
	items    archive.Repository
	store    BlobLister
	buckets  []string
	now      func() time.Time
}

// NewReconcileService creates a new reconcile service instance
// Dependency injection pattern - receives repositories and storage from container
func NewReconcileService(artworks artwork.Repository, items archive.Repository, store BlobLister, buckets []string) maintenance.Service {
	return &reconcileService{
		artworks: artworks,
		items:    items,
		store:    store,
		buckets:  buckets,
		now:      time.Now,
	}
}

// Sweep lists every object in the public buckets, subtracts the object keys
// referenced by artwork and archive records, and removes what is left —
// provided the object is older than the grace period. The grace period keeps
// the sweep from racing an in-flight multi-image submit whose record has not
// been written yet.
func (s *reconcileService) Sweep(ctx context.Context, grace time.Duration, limit int) (*maintenance.Result, error) {
	referenced, err := s.referencedKeys(ctx)
	if err != nil {
		return nil, err
	}

	cutoff := s.now().Add(-grace)
	result := &maintenance.Result{}

	for _, bucket := range s.buckets {
		objects, err := s.store.ListObjects(ctx, bucket)
		if err != nil {
			return nil, err
		}

		for _, obj := range objects {
			result.Scanned++

			if referenced[obj.Key] || obj.LastModified.After(cutoff) {
				continue
			}
			if limit > 0 && result.Removed >= limit {
				log.Warn().Int("limit", limit).Msg("Sweep deletion limit reached")
				return result, nil
			}

			if err := s.store.Remove(ctx, bucket, obj.Key); err != nil {
				// Advisory cleanup: one stuck object should not abort
				// the rest of the sweep.
				log.Error().Err(err).Str("bucket", bucket).Str("key", obj.Key).Msg("Failed to remove orphan")
				continue
			}

			result.Removed++
			log.Info().Str("bucket", bucket).Str("key", obj.Key).Msg("Removed orphaned object")
		}
	}

	return result, nil
}

// referencedKeys collects the object key of every blob URL stored in any
// record. Keys are compared by final path segment, which is how objects are
// named (<kind>-<epoch-ms>.jpg, no folders).
func (s *reconcileService) referencedKeys(ctx context.Context) (map[string]bool, error) {
	keys := make(map[string]bool)

	artworks, err := s.artworks.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range artworks {
		for _, u := range artworks[i].ImageURLs() {
			if key := objectKey(u); key != "" {
				keys[key] = true
			}
		}
	}

	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if key := objectKey(items[i].ImageURL); key != "" {
			keys[key] = true
		}
	}

	return keys, nil
}

func objectKey(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return path.Base(u.Path)
}
