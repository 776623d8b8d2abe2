package core

import (
	"errors"
	"strings"
	"time"
)

// Uncategorized is the sentinel category assigned when neither the
// classifier nor the stored record provides a usable category.
const Uncategorized = "Uncategorized"

// Spend statuses, evaluated in priority order by the spend aggregator.
const (
	StatusNoBudget     = "no budget set"
	StatusOverspent    = "overspent"
	StatusCloseToLimit = "close to limit"
	StatusWithinBudget = "within budget"
)

type (
	// Transaction is a persisted financial transaction. Immutable once
	// stored; the only mutation the store supports is bulk deletion.
	Transaction struct {
		ID          int64     `json:"id,omitempty"`
		Description string    `json:"description"`
		Amount      float64   `json:"amount"`
		Category    string    `json:"category"`
		Date        time.Time `json:"date"` // zero value means unknown
	}

	// Budget is a user-defined spending limit for one category.
	// Category is the unique key; re-adding a category overwrites Limit.
	Budget struct {
		ID       int64   `json:"id,omitempty"`
		Category string  `json:"category"`
		Limit    float64 `json:"budget_limit"`
	}

	// SpendSummaryEntry is one row of the spend-vs-budget report.
	// Derived, never persisted; recomputed on every query.
	SpendSummaryEntry struct {
		Category     string   `json:"category"`
		Spent        float64  `json:"spent"`
		Limit        float64  `json:"budget_limit"`
		Remaining    float64  `json:"remaining"`
		SpentPercent *float64 `json:"spent_percent"`
		Status       string   `json:"status"`
	}
)

var (
	ErrEmptyDescription = errors.New("empty description")
	ErrNegativeLimit    = errors.New("budget limit must not be negative")
	ErrEmptyCategory    = errors.New("empty budget category")
)

func (t Transaction) Validate() error {
	if strings.TrimSpace(t.Description) == "" {
		return ErrEmptyDescription
	}
	return nil
}

func (b Budget) Validate() error {
	if strings.TrimSpace(b.Category) == "" {
		return ErrEmptyCategory
	}
	if b.Limit < 0 {
		return ErrNegativeLimit
	}
	return nil
}

// HasDate reports whether the transaction carries a known calendar date.
func (t Transaction) HasDate() bool {
	return !t.Date.IsZero()
}
