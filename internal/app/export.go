package app

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"

	"sales-insights/internal/analysis"
)

// Export runs the pipeline and writes the product ranking as CSV and/or a
// PNG bar chart.
func (a *App) Export(ctx context.Context, opts ExportOptions) error {
	if opts.CSVPath == "" && opts.PNGPath == "" {
		return errors.New("at least one of --csv or --png must be provided")
	}

	svc, _, err := a.newService(opts.InputPath, "", "", opts.TopN)
	if err != nil {
		return err
	}

	summary, err := svc.Analyze(ctx)
	if err != nil {
		return err
	}

	if len(summary.TopProducts) == 0 {
		a.Logger.Warn().Msg("no ranked products to export")
		return nil
	}

	a.Logger.Info().Int("products", len(summary.TopProducts)).Msg("exporting ranking")

	if opts.CSVPath != "" {
		if err := writeRankingCSV(opts.CSVPath, summary.TopProducts); err != nil {
			return err
		}
	}

	if opts.PNGPath != "" {
		if err := writeRankingPNG(opts.PNGPath, summary.TopProducts); err != nil {
			return err
		}
	}

	return nil
}

func writeRankingCSV(path string, ranked []analysis.RankedProduct) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"rank", "product", "revenue"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for i, entry := range ranked {
		record := []string{
			strconv.Itoa(i + 1),
			entry.Product,
			entry.Revenue.String(),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return writer.Error()
}

func writeRankingPNG(path string, ranked []analysis.RankedProduct) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	bars := make([]chart.Value, len(ranked))
	for i, entry := range ranked {
		bars[i] = chart.Value{
			Label: entry.Product,
			Value: entry.Revenue.InexactFloat64(),
		}
	}

	revenueFormatter := func(v interface{}) string {
		return chart.FloatValueFormatterWithFormat(v, "%.2f")
	}
	// Bars measure from zero. ranked is sorted, so the first entry holds
	// the largest revenue.
	top := ranked[0].Revenue.InexactFloat64()
	graph := chart.BarChart{
		Title:    "Top Products by Revenue",
		Width:    1280,
		Height:   720,
		BarWidth: 60,
		YAxis: chart.YAxis{
			Name:           "Revenue (USD)",
			ValueFormatter: revenueFormatter,
			Range:          &chart.ContinuousRange{Min: 0, Max: top * 1.1},
		},
		Bars: bars,
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
