package report

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"sales-insights/internal/analysis"
	"sales-insights/internal/ingest"
)

// Options select the rendering layout.
type Options struct {
	Profile ingest.Profile
}

// Currency renders an exact decimal as a dollar amount with thousands
// grouping and two fraction digits, e.g. $1,234,567.89. Grouping works on
// the decimal digits directly, so large totals never pass through a float.
func Currency(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}
	intPart, fracPart, _ := strings.Cut(fixed, ".")
	if n, ok := new(big.Int).SetString(intPart, 10); ok {
		intPart = humanize.BigComma(n)
	}
	return "$" + sign + intPart + "." + fracPart
}

// Render writes the analysis report in the layout of the given profile.
// Rendering is pure formatting: identical results produce identical bytes.
func Render(w io.Writer, res analysis.Result, opts Options) error {
	if opts.Profile == ingest.ProfileLegacy {
		return renderLegacy(w, res)
	}
	return renderStandard(w, res)
}

func renderStandard(w io.Writer, res analysis.Result) error {
	rule := strings.Repeat("=", 60)
	builder := strings.Builder{}

	builder.WriteString("\n" + rule + "\n")
	builder.WriteString("SALES ANALYSIS REPORT\n")
	builder.WriteString(rule + "\n")
	builder.WriteString("\nTotal Revenue: " + Currency(res.TotalRevenue) + "\n")
	builder.WriteString("Average Order Value: " + Currency(res.AverageOrderValue) + "\n")
	builder.WriteString(fmt.Sprintf("\nTop %d Products by Revenue:\n", len(res.TopProducts)))
	builder.WriteString(strings.Repeat("-", 60) + "\n")
	if len(res.TopProducts) == 0 {
		builder.WriteString("No valid product data found.\n")
	} else {
		for i, p := range res.TopProducts {
			builder.WriteString(fmt.Sprintf("%d. %-40s %15s\n", i+1, p.Product, Currency(p.Revenue)))
		}
	}
	builder.WriteString(rule + "\n\n")

	_, err := io.WriteString(w, builder.String())
	return err
}

func renderLegacy(w io.Writer, res analysis.Result) error {
	builder := strings.Builder{}

	builder.WriteString("Total Revenue: " + Currency(res.TotalRevenue) + "\n")
	builder.WriteString("Average Order Value: " + Currency(res.AverageOrderValue) + "\n")
	builder.WriteString(fmt.Sprintf("\nTop %d Products by Sales:\n", len(res.TopProducts)))
	if len(res.TopProducts) == 0 {
		builder.WriteString("No valid product data found.\n")
	} else {
		for _, p := range res.TopProducts {
			builder.WriteString("- " + p.Product + ": " + Currency(p.Revenue) + "\n")
		}
	}

	_, err := io.WriteString(w, builder.String())
	return err
}
