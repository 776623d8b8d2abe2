package report

import (
	"math"
	"sort"

	"github.com/anusua-sen/smart-budget-app/internal/core"
)

// SpendSummary groups transactions by reconciled category and compares
// the accumulated spend to the budget limits. Accumulation is
// unrounded; values are rounded only when the entries are built, so
// rounding error never compounds. Entries are sorted by spent
// descending with category ascending as the tie-break.
func SpendSummary(txns []core.Transaction, budgets []core.Budget) []core.SpendSummaryEntry {
	limits := make(map[string]float64, len(budgets))
	names := make([]string, 0, len(budgets))
	for _, b := range budgets {
		limits[b.Category] = b.Limit
		names = append(names, b.Category)
	}
	sort.Strings(names)

	spent := make(map[string]float64)
	for _, txn := range txns {
		key := resolveCategory(txn.Category, names)
		spent[key] += txn.Amount
	}

	entries := make([]core.SpendSummaryEntry, 0, len(spent))
	for category, total := range spent {
		limit := limits[category]
		remaining := limit - total

		var percent *float64
		if limit > 0 {
			p := total / limit * 100
			percent = &p
		}

		entry := core.SpendSummaryEntry{
			Category:  category,
			Spent:     round2(total),
			Limit:     limit,
			Remaining: round2(remaining),
			Status:    spendStatus(limit, remaining, percent),
		}
		if percent != nil {
			rounded := round1(*percent)
			entry.SpentPercent = &rounded
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Spent != entries[j].Spent {
			return entries[i].Spent > entries[j].Spent
		}
		return entries[i].Category < entries[j].Category
	})

	return entries
}

// spendStatus judges the spend against the limit. Overspent is checked
// before the close-to-limit threshold; the order matters.
func spendStatus(limit, remaining float64, percent *float64) string {
	switch {
	case limit == 0:
		return core.StatusNoBudget
	case remaining < 0:
		return core.StatusOverspent
	case percent != nil && *percent >= 80:
		return core.StatusCloseToLimit
	default:
		return core.StatusWithinBudget
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
