package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gallery-backend/internal/domains/artwork"
	"gallery-backend/internal/infrastructure/kv"
)

// keyPrefix is the namespace this collection occupies inside the flat KV
// store. It is confined to this package; call sites never build keys.
const keyPrefix = "artwork:"

// kvRepository implements artwork.Repository over the generic prefix-scanning
// key-value store.
type kvRepository struct {
	store kv.Store
}

// NewKVRepository creates a new artwork repository instance
// Dependency injection pattern - receives store from container
func NewKVRepository(store kv.Store) artwork.Repository {
	return &kvRepository{store: store}
}

func (r *kvRepository) Save(ctx context.Context, a *artwork.Artwork) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal artwork %s: %w", a.ID, err)
	}
	return r.store.Set(ctx, keyPrefix+a.ID, data)
}

func (r *kvRepository) List(ctx context.Context) ([]artwork.Artwork, error) {
	values, err := r.store.GetByPrefix(ctx, keyPrefix)
	if err != nil {
		return nil, err
	}

	items := make([]artwork.Artwork, 0, len(values))
	for _, v := range values {
		var a artwork.Artwork
		if err := json.Unmarshal(v, &a); err != nil {
			return nil, fmt.Errorf("unmarshal artwork record: %w", err)
		}
		items = append(items, a)
	}
	return items, nil
}

func (r *kvRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, keyPrefix+id)
}
