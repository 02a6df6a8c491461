package artwork

import "context"

// Repository persists artwork records. Save covers both create and update:
// it is a full-value overwrite with no existence check and no merge.
type Repository interface {
	Save(ctx context.Context, a *Artwork) error
	List(ctx context.Context) ([]Artwork, error)
	// Delete is idempotent; deleting a missing id succeeds.
	Delete(ctx context.Context, id string) error
}
