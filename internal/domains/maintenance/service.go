package maintenance

import (
	"context"
	"time"
)

// Result summarizes one reconciliation sweep run.
type Result struct {
	Scanned int
	Removed int
}

// Service runs the out-of-band orphan-blob reconciliation: objects in the
// public buckets that no record references and that are older than the grace
// period get deleted. This never runs on the synchronous request path.
type Service interface {
	Sweep(ctx context.Context, grace time.Duration, limit int) (*Result, error)
}
