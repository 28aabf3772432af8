package estimate

import (
	"context"

	pkgLog "digaxy-assistant/pkg/log"
)

// Service produces cost estimates for a move. Implementations must always
// return a usable Result for well-formed programs: oracle problems are
// absorbed by the fallback, and the error return is reserved for genuinely
// unexpected failures, which callers are expected to absorb as well.
type Service interface {
	Estimate(ctx context.Context, pickup, dropoff, vehicleType, itemDescription string) (Result, error)
}

// New creates the estimator. oracle may be nil (no credentials configured),
// in which case every estimate comes from the deterministic fallback.
func New(l pkgLog.Logger, oracle Oracle) Service {
	return &estimator{l: l, oracle: oracle}
}
