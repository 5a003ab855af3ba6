package stats

import "context"

// Service computes aggregate counts over all collections.
type Service interface {
	Get(ctx context.Context) (*Stats, error)
}
