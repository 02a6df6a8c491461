package service

import (
	"context"
	"time"

	"gallery-backend/internal/domains/artwork"
)

// artworkService implements artwork.Service
type artworkService struct {
	repo artwork.Repository
	now  func() time.Time
}

// NewArtworkService creates a new artwork service instance
// Dependency injection pattern - receives repository from container
func NewArtworkService(repo artwork.Repository) artwork.Service {
	return &artworkService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *artworkService) List(ctx context.Context) ([]artwork.Artwork, error) {
	return s.repo.List(ctx)
}

// Create fills defaults for absent optional fields, then persists.
func (s *artworkService) Create(ctx context.Context, in *artwork.Input) (*artwork.Artwork, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	item := artwork.NewFromCreate(in, s.now())
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update overwrites the record with exactly the supplied fields. No defaults
// are applied here; the create/update asymmetry is part of the contract.
func (s *artworkService) Update(ctx context.Context, id string, in *artwork.Input) (*artwork.Artwork, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	item := artwork.NewFromUpdate(id, in, s.now())
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *artworkService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
