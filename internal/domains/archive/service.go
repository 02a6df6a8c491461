package archive

import "context"

// Service is the archive business logic consumed by the HTTP handler.
type Service interface {
	List(ctx context.Context) ([]Item, error)
	Create(ctx context.Context, in *Input) (*Item, error)
	Delete(ctx context.Context, id string) error
	// Reset deletes every archive record (authoritative) and then makes a
	// best-effort sweep of the legacy storage bucket (advisory). It returns
	// the number of records deleted.
	Reset(ctx context.Context) (int, error)
}
