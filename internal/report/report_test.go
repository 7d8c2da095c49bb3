package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"sales-insights/internal/analysis"
	"sales-insights/internal/ingest"
)

func TestCurrency(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"80", "$80.00"},
		{"26.666666", "$26.67"},
		{"999.995", "$1,000.00"},
		{"1234567.891", "$1,234,567.89"},
		{"123456789012345678.90", "$123,456,789,012,345,678.90"},
		{"-5", "$-5.00"},
	}

	for _, tc := range cases {
		got := Currency(decimal.RequireFromString(tc.in))
		if got != tc.want {
			t.Fatalf("Currency(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRenderStandard(t *testing.T) {
	res := scenarioResult()

	var buf bytes.Buffer
	if err := Render(&buf, res, Options{Profile: ingest.ProfileStandard}); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "SALES ANALYSIS REPORT") {
		t.Fatalf("missing banner title:\n%s", out)
	}
	if !strings.Contains(out, "Total Revenue: $100.00\n") {
		t.Fatalf("missing total line:\n%s", out)
	}
	if !strings.Contains(out, "Average Order Value: $33.33\n") {
		t.Fatalf("missing average line:\n%s", out)
	}
	if !strings.Contains(out, "Top 2 Products by Revenue:") {
		t.Fatalf("missing ranking header:\n%s", out)
	}

	gadget := strings.Index(out, "1. Gadget")
	widget := strings.Index(out, "2. Widget")
	if gadget == -1 || widget == -1 || gadget > widget {
		t.Fatalf("ranking lines missing or out of order:\n%s", out)
	}
}

func TestRenderStandardNoData(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, analysis.Result{}, Options{Profile: ingest.ProfileStandard}); err != nil {
		t.Fatalf("render: %v", err)
	}

	heavy := strings.Repeat("=", 60)
	light := strings.Repeat("-", 60)
	want := "\n" + heavy + "\n" +
		"SALES ANALYSIS REPORT\n" +
		heavy + "\n" +
		"\nTotal Revenue: $0.00\n" +
		"Average Order Value: $0.00\n" +
		"\nTop 0 Products by Revenue:\n" +
		light + "\n" +
		"No valid product data found.\n" +
		heavy + "\n\n"

	if buf.String() != want {
		t.Fatalf("unexpected no-data report:\n%q", buf.String())
	}
}

func TestRenderLegacy(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, scenarioResult(), Options{Profile: ingest.ProfileLegacy}); err != nil {
		t.Fatalf("render: %v", err)
	}

	want := "Total Revenue: $100.00\n" +
		"Average Order Value: $33.33\n" +
		"\nTop 2 Products by Sales:\n" +
		"- Gadget: $50.00\n" +
		"- Widget: $50.00\n"

	if buf.String() != want {
		t.Fatalf("unexpected legacy report:\n%q", buf.String())
	}
}

func TestRenderLegacyNoData(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, analysis.Result{}, Options{Profile: ingest.ProfileLegacy}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "No valid product data found.\n") {
		t.Fatalf("missing no-data line:\n%q", buf.String())
	}
}

func TestRenderIdempotent(t *testing.T) {
	res := scenarioResult()

	var first, second bytes.Buffer
	if err := Render(&first, res, Options{Profile: ingest.ProfileStandard}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if err := Render(&second, res, Options{Profile: ingest.ProfileStandard}); err != nil {
		t.Fatalf("render: %v", err)
	}

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Fatal("repeated renders should be byte-identical")
	}
}

func scenarioResult() analysis.Result {
	return analysis.Result{
		TotalRevenue:      decimal.RequireFromString("100.00"),
		AverageOrderValue: decimal.RequireFromString("33.3333333333333333"),
		ValidOrderCount:   3,
		RowsRead:          3,
		DistinctProducts:  2,
		TopProducts: []analysis.RankedProduct{
			{Product: "Gadget", Revenue: decimal.RequireFromString("50.00")},
			{Product: "Widget", Revenue: decimal.RequireFromString("50.00")},
		},
	}
}
