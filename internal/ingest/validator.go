// Package ingest turns raw tabular batches into validated transaction
// candidates. A batch either validates completely or fails as a whole;
// there are no partially accepted batches.
package ingest

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/anusua-sen/smart-budget-app/internal/core"
)

// Candidate is a validated row, ready for classification and persistence.
type Candidate struct {
	Description string
	Amount      float64
	Date        time.Time
}

// dateFormats are tried in order; the first successful parse wins.
var dateFormats = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
}

// Validate checks the batch against the ingestion contract and returns
// candidates in input order.
//
// The batch must carry "description" and "amount" columns (ErrSchema
// otherwise). Every amount must parse as a number and every description
// must be non-blank; a bad row rejects the whole batch with
// ErrValidation naming the offending description. An optional "date"
// (or "Date") column is parsed with a format fallback; missing, blank,
// or unparseable dates become now's calendar date rather than an error.
func Validate(t Table, now time.Time) ([]Candidate, error) {
	descIdx := t.column("description")
	amountIdx := t.column("amount")

	var missing []string
	if descIdx < 0 {
		missing = append(missing, "description")
	}
	if amountIdx < 0 {
		missing = append(missing, "amount")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: batch must have columns %s", core.ErrSchema, strings.Join(missing, ", "))
	}

	dateIdx := t.column("date")
	if dateIdx < 0 {
		dateIdx = t.column("Date")
	}

	today := truncateToDate(now)
	candidates := make([]Candidate, 0, len(t.Rows))
	for _, row := range t.Rows {
		desc := cell(row, descIdx)
		if strings.TrimSpace(desc) == "" {
			return nil, fmt.Errorf("%w: empty description", core.ErrValidation)
		}

		amount, err := strconv.ParseFloat(strings.TrimSpace(cell(row, amountIdx)), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid amount for description %q", core.ErrValidation, desc)
		}

		candidates = append(candidates, Candidate{
			Description: desc,
			Amount:      amount,
			Date:        ParseDate(cell(row, dateIdx), today),
		})
	}

	return candidates, nil
}

// ParseDate tries the accepted formats in order and returns the
// fallback when the value is blank or matches none of them.
func ParseDate(raw string, fallback time.Time) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	for _, layout := range dateFormats {
		if d, err := time.Parse(layout, raw); err == nil {
			return d
		}
	}
	return fallback
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
