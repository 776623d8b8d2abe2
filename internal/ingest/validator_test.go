package ingest

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/anusua-sen/smart-budget-app/internal/core"
)

var testNow = time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)

func TestValidateMissingColumns(t *testing.T) {
	cases := []struct {
		name    string
		columns []string
	}{
		{"no description", []string{"amount", "date"}},
		{"no amount", []string{"description", "date"}},
		{"neither", []string{"date"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Validate(Table{Columns: tc.columns}, testNow)
			if !errors.Is(err, core.ErrSchema) {
				t.Fatalf("expected schema error, got %v", err)
			}
		})
	}
}

func TestValidateBadAmountRejectsBatch(t *testing.T) {
	tbl := Table{
		Columns: []string{"description", "amount"},
		Rows: [][]string{
			{"STARBUCKS COFFEE", "4.50"},
			{"AMAZON MARKETPLACE", "not-a-number"},
		},
	}
	got, err := Validate(tbl, testNow)
	if !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "AMAZON MARKETPLACE") {
		t.Fatalf("error should name the offending description, got %q", err.Error())
	}
	if got != nil {
		t.Fatalf("no candidates should be returned on failure, got %d", len(got))
	}
}

func TestValidateEmptyDescriptionRejectsBatch(t *testing.T) {
	tbl := Table{
		Columns: []string{"description", "amount"},
		Rows:    [][]string{{"   ", "12.00"}},
	}
	if _, err := Validate(tbl, testNow); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestValidatePreservesOrderAndCount(t *testing.T) {
	tbl := Table{
		Columns: []string{"description", "amount"},
		Rows: [][]string{
			{"first", "1"},
			{"second", "2"},
			{"third", "3.5"},
		},
	}
	got, err := Validate(tbl, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(got))
	}
	for i, want := range []string{"first", "second", "third"} {
		if got[i].Description != want {
			t.Fatalf("candidate %d: got %q, want %q", i, got[i].Description, want)
		}
	}
	if got[2].Amount != 3.5 {
		t.Fatalf("expected amount 3.5, got %v", got[2].Amount)
	}
}

func TestValidateDateParsing(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		raw  string
		want time.Time
	}{
		{"2024-03-15", want},
		{"15-03-2024", want},
		{"15/03/2024", want},
		{"2024/03/15", want},
		{"", today},
		{"   ", today},
		{"March 15, 2024", today}, // unrecognized format falls back
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			tbl := Table{
				Columns: []string{"description", "amount", "date"},
				Rows:    [][]string{{"x", "1", tc.raw}},
			}
			got, err := Validate(tbl, testNow)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got[0].Date.Equal(tc.want) {
				t.Fatalf("date %q: got %v, want %v", tc.raw, got[0].Date, tc.want)
			}
		})
	}
}

func TestValidateCapitalDateColumn(t *testing.T) {
	tbl := Table{
		Columns: []string{"description", "amount", "Date"},
		Rows:    [][]string{{"x", "1", "2023-12-31"}},
	}
	got, err := Validate(tbl, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	if !got[0].Date.Equal(want) {
		t.Fatalf("got %v, want %v", got[0].Date, want)
	}
}

func TestValidateMissingDateColumnUsesToday(t *testing.T) {
	tbl := Table{
		Columns: []string{"description", "amount"},
		Rows:    [][]string{{"x", "1"}},
	}
	got, err := Validate(tbl, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	if !got[0].Date.Equal(today) {
		t.Fatalf("got %v, want today %v", got[0].Date, today)
	}
}
