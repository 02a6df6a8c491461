package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery-backend/internal/domains/archive"
)

type fakeRepo struct {
	records map[string]archive.Item
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[string]archive.Item)}
}

func (f *fakeRepo) Save(ctx context.Context, item *archive.Item) error {
	f.records[item.ID] = *item
	return nil
}

func (f *fakeRepo) List(ctx context.Context) ([]archive.Item, error) {
	var out []archive.Item
	for _, item := range f.records {
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	delete(f.records, id)
	return nil
}

func (f *fakeRepo) PurgeAll(ctx context.Context) (int, error) {
	n := len(f.records)
	f.records = make(map[string]archive.Item)
	return n, nil
}

type fakeCleaner struct {
	calledWith string
	removed    int
	err        error
}

func (f *fakeCleaner) RemoveAll(ctx context.Context, bucket string) (int, error) {
	f.calledWith = bucket
	return f.removed, f.err
}

func seed(t *testing.T, svc archive.Service, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := svc.Create(context.Background(), &archive.Input{
			Type:     archive.TypeImage,
			ImageURL: "http://cdn/archive/a.jpg",
			// Distinct ids; the default id is millisecond-resolution.
			ID: string(rune('a' + i)),
		})
		require.NoError(t, err)
	}
}

func TestResetReportsDeletedCount(t *testing.T) {
	repo := newFakeRepo()
	cleaner := &fakeCleaner{removed: 2}
	svc := NewArchiveService(repo, cleaner, "gallery-archive-legacy")

	seed(t, svc, 3)

	count, err := svc.Reset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, "gallery-archive-legacy", cleaner.calledWith)

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestResetSwallowsLegacyCleanupFailure(t *testing.T) {
	repo := newFakeRepo()
	cleaner := &fakeCleaner{err: errors.New("bucket unreachable")}
	svc := NewArchiveService(repo, cleaner, "gallery-archive-legacy")

	seed(t, svc, 2)

	// KV deletion is authoritative: the storage failure must not surface.
	count, err := svc.Reset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestResetOnEmptyArchive(t *testing.T) {
	svc := NewArchiveService(newFakeRepo(), nil, "")

	count, err := svc.Reset(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	repo := newFakeRepo()
	svc := NewArchiveService(repo, nil, "")

	_, err := svc.Create(context.Background(), &archive.Input{Type: "video"})
	require.Error(t, err)
	assert.Empty(t, repo.records)
}

func TestCreateAssignsDefaults(t *testing.T) {
	repo := newFakeRepo()
	svc := NewArchiveService(repo, nil, "")

	before := time.Now().UnixMilli()
	item, err := svc.Create(context.Background(), &archive.Input{
		Type:    archive.TypeLink,
		LinkURL: "https://example.com",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.GreaterOrEqual(t, item.CreatedAt, before)
}
