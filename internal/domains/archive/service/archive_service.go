package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"gallery-backend/internal/domains/archive"
)

// LegacyCleaner clears the old archive storage bucket during a bulk reset.
type LegacyCleaner interface {
	RemoveAll(ctx context.Context, bucket string) (int, error)
}

// archiveService implements archive.Service
type archiveService struct {
	repo         archive.Repository
	cleaner      LegacyCleaner
	legacyBucket string
	now          func() time.Time
}

// NewArchiveService creates a new archive service instance
// Dependency injection pattern - receives repository and storage from container
func NewArchiveService(repo archive.Repository, cleaner LegacyCleaner, legacyBucket string) archive.Service {
	return &archiveService{
		repo:         repo,
		cleaner:      cleaner,
		legacyBucket: legacyBucket,
		now:          time.Now,
	}
}

func (s *archiveService) List(ctx context.Context) ([]archive.Item, error) {
	return s.repo.List(ctx)
}

func (s *archiveService) Create(ctx context.Context, in *archive.Input) (*archive.Item, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	item := archive.NewItem(in, s.now())
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *archiveService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Reset deletes every archive record, then clears the legacy bucket. KV
// deletion is authoritative; a storage failure is logged and swallowed so the
// reset still reports the record count.
func (s *archiveService) Reset(ctx context.Context) (int, error) {
	count, err := s.repo.PurgeAll(ctx)
	if err != nil {
		return 0, err
	}

	if s.cleaner != nil && s.legacyBucket != "" {
		removed, err := s.cleaner.RemoveAll(ctx, s.legacyBucket)
		if err != nil {
			log.Error().Err(err).Str("bucket", s.legacyBucket).Msg("Legacy storage cleanup failed")
		} else if removed > 0 {
			log.Info().Int("removed", removed).Str("bucket", s.legacyBucket).Msg("Cleared legacy storage")
		}
	}

	return count, nil
}
