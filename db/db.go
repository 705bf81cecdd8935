package db

import (
	"context"

	"github.com/TFMV/codegauge/types"
)

// DB stores analysis runs for history tracking. Storage is optional and
// caller-level: the scoring engine itself never touches it.
type DB interface {
	Initialize(ctx context.Context) error
	StoreMetrics(ctx context.Context, dir string, metrics types.ComplexityMetrics) error
}
