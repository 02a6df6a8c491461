package artwork

import "context"

// Service is the artwork business logic consumed by the HTTP handler.
type Service interface {
	List(ctx context.Context) ([]Artwork, error)
	Create(ctx context.Context, in *Input) (*Artwork, error)
	Update(ctx context.Context, id string, in *Input) (*Artwork, error)
	Delete(ctx context.Context, id string) error
}
