package ingest

import (
	"context"

	"sales-insights/internal/analysis"
)

// Source supplies the raw rows for one analysis run.
type Source interface {
	ReadAll(ctx context.Context) ([]analysis.RawRecord, error)
}
