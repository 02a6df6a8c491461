package archive

import "context"

// Repository persists archive items in the shared KV namespace.
type Repository interface {
	Save(ctx context.Context, item *Item) error
	List(ctx context.Context) ([]Item, error)
	// Delete is idempotent; deleting a missing id succeeds.
	Delete(ctx context.Context, id string) error
	// PurgeAll removes every archive record and returns how many existed.
	PurgeAll(ctx context.Context) (int, error)
}
