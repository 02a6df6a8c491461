package service

import (
	"context"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery-backend/internal/domains/artwork"
)

// fakeRepo keeps records in a map, mirroring the overwrite semantics of the
// real KV-backed repository.
type fakeRepo struct {
	records map[string]artwork.Artwork
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[string]artwork.Artwork)}
}

func (f *fakeRepo) Save(ctx context.Context, a *artwork.Artwork) error {
	f.records[a.ID] = *a
	return nil
}

func (f *fakeRepo) List(ctx context.Context) ([]artwork.Artwork, error) {
	var out []artwork.Artwork
	for _, a := range f.records {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	delete(f.records, id)
	return nil
}

func newTestService(repo artwork.Repository, now time.Time) *artworkService {
	return &artworkService{repo: repo, now: func() time.Time { return now }}
}

func TestCreateFillsDefaultsAndPersists(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, time.UnixMilli(1700000000000))

	created, err := svc.Create(context.Background(), &artwork.Input{
		ImageURL: "http://cdn/artworks/a.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, "1700000000000", created.ID)
	assert.Equal(t, "Untitled", created.Title)
	assert.Equal(t, artwork.DefaultPeriod, created.Period)
	assert.Equal(t, artwork.DefaultYear, created.Year)

	stored, ok := repo.records[created.ID]
	require.True(t, ok)
	assert.Equal(t, *created, stored)
}

func TestCreateRejectsMissingImageURL(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, time.Now())

	_, err := svc.Create(context.Background(), &artwork.Input{Title: "no image"})
	require.Error(t, err)

	var verr validation.Errors
	assert.ErrorAs(t, err, &verr)
	assert.Empty(t, repo.records)
}

func TestUpdateOverwritesWholeRecord(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, time.UnixMilli(1700000000000))

	created, err := svc.Create(context.Background(), &artwork.Input{
		Title:     "Original",
		ImageURL:  "http://cdn/artworks/a.jpg",
		Image2URL: "http://cdn/artworks/b.jpg",
	})
	require.NoError(t, err)

	// Update resends only the primary image; the second slot must be gone
	// afterwards because update is a full overwrite, not a merge.
	updated, err := svc.Update(context.Background(), created.ID, &artwork.Input{
		Title:    "Revised",
		ImageURL: "http://cdn/artworks/a.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, "Revised", updated.Title)
	assert.Empty(t, updated.Image2URL)
	assert.Empty(t, updated.Period)

	stored := repo.records[created.ID]
	assert.Empty(t, stored.Image2URL)
}

func TestUpdateRequiresImageURL(t *testing.T) {
	svc := newTestService(newFakeRepo(), time.Now())

	_, err := svc.Update(context.Background(), "42", &artwork.Input{Title: "x"})
	assert.Error(t, err)
}

func TestDeleteIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, time.Now())

	require.NoError(t, svc.Delete(context.Background(), "absent-id"))
	require.NoError(t, svc.Delete(context.Background(), "absent-id"))
}
