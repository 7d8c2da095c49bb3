package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"sales-insights/internal/analysis"
	"sales-insights/internal/ingest"
)

// Summary bundles the aggregate result with the rejections observed while
// producing it.
type Summary struct {
	analysis.Result
	Rejections []analysis.Rejection
}

// Options parameterise the analysis pipeline.
type Options struct {
	Policy analysis.Policy
	TopN   int
}

// Service orchestrates reading, validation, and aggregation for one input.
type Service struct {
	source ingest.Source
	opts   Options
	logger zerolog.Logger
}

// New constructs the analysis service.
func New(source ingest.Source, opts Options, logger zerolog.Logger) *Service {
	return &Service{
		source: source,
		opts:   opts,
		logger: logger.With().Str("component", "service").Logger(),
	}
}

// Analyze runs the single-pass pipeline: read every row, validate, fold the
// aggregates, rank. Source failures are fatal; rejected rows are logged and
// collected but never abort the run. Zero data rows yield a zero-valued
// summary.
func (s *Service) Analyze(ctx context.Context) (Summary, error) {
	if s.source == nil {
		return Summary{}, fmt.Errorf("input source not configured")
	}

	records, err := s.source.ReadAll(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("read sales records: %w", err)
	}
	if len(records) == 0 {
		s.logger.Warn().Msg("no sales records found in input")
	} else {
		s.logger.Info().Int("rows", len(records)).Msg("sales records loaded")
	}

	sink := &warnSink{logger: s.logger}
	result := analysis.Run(records, analysis.Options{
		Policy: s.opts.Policy,
		TopN:   s.opts.TopN,
		Sink:   sink,
	})

	s.logger.Info().
		Int("rows", result.RowsRead).
		Int64("valid", result.ValidOrderCount).
		Int("rejected", result.RejectedCount).
		Int("products", result.DistinctProducts).
		Msg("analysis complete")

	if result.RowsRead > 0 && result.ValidOrderCount == 0 {
		s.logger.Warn().Msg("no rows survived validation")
	}

	return Summary{Result: result, Rejections: sink.collected.Rejections}, nil
}

// warnSink logs each rejection as it is found and retains it for the
// summary.
type warnSink struct {
	logger    zerolog.Logger
	collected analysis.CollectingSink
}

func (s *warnSink) Reject(rej analysis.Rejection) {
	s.collected.Reject(rej)
	s.logger.Warn().
		Int("row", rej.Line).
		Str("reason", string(rej.Reason)).
		Str("field", rej.Field).
		Str("value", rej.Value).
		Msg("skipping invalid row")
}

var _ analysis.RejectionSink = (*warnSink)(nil)
