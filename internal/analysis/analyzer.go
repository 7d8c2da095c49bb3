package analysis

import "github.com/shopspring/decimal"

// RejectionSink receives rejected rows as they are found.
type RejectionSink interface {
	Reject(rej Rejection)
}

// CollectingSink retains every rejection in input order.
type CollectingSink struct {
	Rejections []Rejection
}

// Reject implements RejectionSink.
func (s *CollectingSink) Reject(rej Rejection) {
	s.Rejections = append(s.Rejections, rej)
}

// Options parameterise one analysis run.
type Options struct {
	Policy Policy
	TopN   int
	Sink   RejectionSink
}

// Result is the aggregate outcome of one single-pass run.
type Result struct {
	TotalRevenue      decimal.Decimal
	AverageOrderValue decimal.Decimal
	ValidOrderCount   int64
	RowsRead          int
	RejectedCount     int
	DistinctProducts  int
	TopProducts       []RankedProduct
}

// Run validates and aggregates records in a single pass. Rejected rows are
// reported to the sink, when one is set, and never stop the run. Zero
// records produce a zero-valued result, not an error.
func Run(records []RawRecord, opts Options) Result {
	validator := NewValidator(opts.Policy)
	totals := NewTotals()

	rejected := 0
	for _, rec := range records {
		valid, rej := validator.Validate(rec)
		if rej != nil {
			rejected++
			if opts.Sink != nil {
				opts.Sink.Reject(*rej)
			}
			continue
		}
		totals.Fold(valid)
	}

	return Result{
		TotalRevenue:      totals.TotalRevenue,
		AverageOrderValue: totals.AverageOrderValue(),
		ValidOrderCount:   totals.ValidOrderCount,
		RowsRead:          len(records),
		RejectedCount:     rejected,
		DistinctProducts:  len(totals.ProductRevenue),
		TopProducts:       RankProducts(totals.ProductRevenue, opts.TopN),
	}
}

var _ RejectionSink = (*CollectingSink)(nil)
