package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/anusua-sen/smart-budget-app/internal/core"
)

var exportHeader = []string{"Category", "Total Spent", "Percentage"}

// CategoryShare is one parsed row of an exported insights report.
type CategoryShare struct {
	Total      float64
	Percentage float64
}

// WriteInsightsCSV exports the per-category totals and shares as
// delimited text: header "Category,Total Spent,Percentage", one row per
// category (sorted by name for reproducible output), percentage
// suffixed with "%". Returns ErrNoData for an empty transaction set.
func WriteInsightsCSV(w io.Writer, txns []core.Transaction) error {
	insights, err := Insights(txns)
	if err != nil {
		return err
	}

	categories := make([]string, 0, len(insights.CategoryBreakdown))
	for category := range insights.CategoryBreakdown {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}
	for _, category := range categories {
		row := []string{
			category,
			strconv.FormatFloat(insights.CategoryBreakdown[category], 'f', -1, 64),
			strconv.FormatFloat(insights.CategoryPercentages[category], 'f', -1, 64) + "%",
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write report row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadInsightsCSV parses a report produced by WriteInsightsCSV back
// into its category mapping.
func ReadInsightsCSV(r io.Reader) (map[string]CategoryShare, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read report header: %w", err)
	}
	if len(header) != len(exportHeader) {
		return nil, fmt.Errorf("unexpected report header: %v", header)
	}
	for i, want := range exportHeader {
		if header[i] != want {
			return nil, fmt.Errorf("unexpected report header: %v", header)
		}
	}

	shares := make(map[string]CategoryShare)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read report row: %w", err)
		}
		total, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("parse total for %q: %w", row[0], err)
		}
		percent, err := strconv.ParseFloat(strings.TrimSuffix(row[2], "%"), 64)
		if err != nil {
			return nil, fmt.Errorf("parse percentage for %q: %w", row[0], err)
		}
		shares[row[0]] = CategoryShare{Total: total, Percentage: percent}
	}
	return shares, nil
}
