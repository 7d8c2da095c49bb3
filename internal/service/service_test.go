package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"sales-insights/internal/analysis"
	"sales-insights/internal/ingest"
)

func TestServiceAnalyze(t *testing.T) {
	src := &staticSource{records: []analysis.RawRecord{
		{Line: 1, Product: "Widget", Quantity: "3", UnitPrice: "10.00"},
		{Line: 2, Product: "", Quantity: "1", UnitPrice: "5.00"},
		{Line: 3, Product: "Gadget", Quantity: "1", UnitPrice: "50.00"},
	}}

	svc := New(src, Options{Policy: analysis.PolicyStrict, TopN: 5}, testLogger())
	summary, err := svc.Analyze(context.Background())
	if err != nil {
		t.Fatalf("analyze should succeed: %v", err)
	}

	if summary.TotalRevenue.Cmp(decimal.NewFromInt(80)) != 0 {
		t.Fatalf("期望总营收 80, 实际 %s", summary.TotalRevenue)
	}
	if summary.ValidOrderCount != 2 || summary.RejectedCount != 1 {
		t.Fatalf("unexpected counts: %+v", summary.Result)
	}
	if len(summary.Rejections) != 1 {
		t.Fatalf("expected 1 collected rejection, got %d", len(summary.Rejections))
	}
	rej := summary.Rejections[0]
	if rej.Line != 2 || rej.Reason != analysis.ReasonMissingIdentity {
		t.Fatalf("rejection should carry row and reason: %+v", rej)
	}
}

func TestServiceAnalyzeEmptyInput(t *testing.T) {
	svc := New(&staticSource{}, Options{Policy: analysis.PolicyStrict, TopN: 5}, testLogger())

	summary, err := svc.Analyze(context.Background())
	if err != nil {
		t.Fatalf("zero rows should not fail the run: %v", err)
	}
	if !summary.TotalRevenue.IsZero() || summary.ValidOrderCount != 0 || len(summary.TopProducts) != 0 {
		t.Fatalf("expected zero-valued summary: %+v", summary.Result)
	}
}

func TestServiceAnalyzeSourceError(t *testing.T) {
	svc := New(&staticSource{err: errors.New("boom")}, Options{Policy: analysis.PolicyStrict, TopN: 5}, testLogger())
	if _, err := svc.Analyze(context.Background()); err == nil {
		t.Fatal("source failures must propagate")
	}
}

func TestServiceAnalyzeNilSource(t *testing.T) {
	svc := New(nil, Options{Policy: analysis.PolicyStrict, TopN: 5}, testLogger())
	if _, err := svc.Analyze(context.Background()); err == nil {
		t.Fatal("缺少输入源应报错")
	}
}

type staticSource struct {
	records []analysis.RawRecord
	err     error
}

func (s *staticSource) ReadAll(ctx context.Context) ([]analysis.RawRecord, error) {
	return s.records, s.err
}

var _ ingest.Source = (*staticSource)(nil)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}
