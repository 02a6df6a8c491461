package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gallery-backend/internal/domains/archive"
	"gallery-backend/internal/infrastructure/kv"
)

const keyPrefix = "archive:"

// kvRepository implements archive.Repository over the generic prefix-scanning
// key-value store.
type kvRepository struct {
	store kv.Store
}

// NewKVRepository creates a new archive repository instance
// Dependency injection pattern - receives store from container
func NewKVRepository(store kv.Store) archive.Repository {
	return &kvRepository{store: store}
}

func (r *kvRepository) Save(ctx context.Context, item *archive.Item) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("marshal archive item %s: %w", item.ID, err)
	}
	return r.store.Set(ctx, keyPrefix+item.ID, data)
}

func (r *kvRepository) List(ctx context.Context) ([]archive.Item, error) {
	values, err := r.store.GetByPrefix(ctx, keyPrefix)
	if err != nil {
		return nil, err
	}

	items := make([]archive.Item, 0, len(values))
	for _, v := range values {
		var item archive.Item
		if err := json.Unmarshal(v, &item); err != nil {
			return nil, fmt.Errorf("unmarshal archive record: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *kvRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, keyPrefix+id)
}

func (r *kvRepository) PurgeAll(ctx context.Context) (int, error) {
	return r.store.DeleteByPrefix(ctx, keyPrefix)
}
