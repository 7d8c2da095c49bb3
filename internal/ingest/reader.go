package ingest

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"sales-insights/internal/analysis"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Options parameterise the CSV reader.
type Options struct {
	Path    string
	Profile Profile
}

// Reader loads sales rows from a local CSV file.
type Reader struct {
	opts   Options
	logger zerolog.Logger
}

// NewReader constructs a CSV reader.
func NewReader(opts Options, logger zerolog.Logger) *Reader {
	return &Reader{
		opts:   opts,
		logger: logger.With().Str("component", "ingest").Logger(),
	}
}

// ReadAll loads every data row of the input file. A missing or structurally
// broken file, an empty file, or a standard-profile header lacking required
// columns is a fatal error. A header with zero data rows is not: it yields
// an empty slice so the caller can still report on it.
func (r *Reader) ReadAll(ctx context.Context) ([]analysis.RawRecord, error) {
	data, err := os.ReadFile(r.opts.Path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("input file %s is empty", r.opts.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("read header row: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}

	productCol, quantityCol, priceCol := r.opts.Profile.columns()

	if r.opts.Profile == ProfileStandard {
		var missing []string
		for _, col := range []string{productCol, quantityCol, priceCol} {
			if _, ok := index[col]; !ok {
				missing = append(missing, col)
			}
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("input file missing required columns: %s", strings.Join(missing, ", "))
		}
	}

	var records []analysis.RawRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read input rows: %w", err)
		}
		records = append(records, analysis.RawRecord{
			Line:      len(records) + 1,
			Product:   cell(row, index, productCol, ""),
			Quantity:  cell(row, index, quantityCol, "0"),
			UnitPrice: cell(row, index, priceCol, "0"),
		})
	}

	r.logger.Debug().Str("path", r.opts.Path).Int("rows", len(records)).Msg("input rows loaded")
	return records, nil
}

// cell returns the named column of the row, or fallback when the column is
// absent from the header or the row is too short to carry it.
func cell(row []string, index map[string]int, column, fallback string) string {
	i, ok := index[column]
	if !ok || i >= len(row) {
		return fallback
	}
	return row[i]
}

var _ Source = (*Reader)(nil)
