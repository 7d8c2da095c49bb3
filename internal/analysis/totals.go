package analysis

import "github.com/shopspring/decimal"

// Totals accumulates revenue aggregates over one run. Construct with
// NewTotals so the per-product map exists.
type Totals struct {
	TotalRevenue    decimal.Decimal
	ValidOrderCount int64
	ProductRevenue  map[string]decimal.Decimal
}

// NewTotals returns an empty accumulator.
func NewTotals() *Totals {
	return &Totals{ProductRevenue: make(map[string]decimal.Decimal)}
}

// Fold adds one validated record to the running aggregates. Folding is
// commutative: any permutation of the same records yields the same totals.
func (t *Totals) Fold(rec ValidRecord) {
	t.TotalRevenue = t.TotalRevenue.Add(rec.Revenue)
	t.ValidOrderCount++
	t.ProductRevenue[rec.Product] = t.ProductRevenue[rec.Product].Add(rec.Revenue)
}

// AverageOrderValue returns TotalRevenue divided by ValidOrderCount, or
// zero when nothing was folded.
func (t *Totals) AverageOrderValue() decimal.Decimal {
	if t.ValidOrderCount == 0 {
		return decimal.Zero
	}
	return t.TotalRevenue.Div(decimal.NewFromInt(t.ValidOrderCount))
}
