// Package report computes the spend-vs-budget summary, analytics
// insights, and the delimited report export. All functions are pure
// over snapshots of the transaction and budget sets; source records are
// never mutated.
package report

import (
	"sort"

	"github.com/anusua-sen/smart-budget-app/internal/core"
	"github.com/anusua-sen/smart-budget-app/internal/match"
)

// MatchThreshold is the minimum partial-ratio score for a transaction
// category to be reconciled onto a budget category.
const MatchThreshold = 80

// bestBudgetMatch scores the category against every budget name and
// returns the highest scorer, if it clears the threshold. Names must be
// sorted ascending: only a strictly higher score replaces the current
// best, so equal scores resolve to the lexically first budget category.
func bestBudgetMatch(category string, sortedNames []string) (string, bool) {
	if category == "" || len(sortedNames) == 0 {
		return "", false
	}
	best := ""
	bestScore := 0.0
	for _, name := range sortedNames {
		if score := match.PartialRatio(category, name); score > bestScore {
			best, bestScore = name, score
		}
	}
	if bestScore >= MatchThreshold {
		return best, true
	}
	return "", false
}

// ResolveCategory reconciles a transaction's stored category onto the
// closest budget category. Below the threshold (or with no budgets) it
// falls back to the raw category, then to the Uncategorized sentinel.
func ResolveCategory(category string, budgetNames []string) string {
	sorted := append([]string(nil), budgetNames...)
	sort.Strings(sorted)
	return resolveCategory(category, sorted)
}

func resolveCategory(category string, sortedNames []string) string {
	if matched, ok := bestBudgetMatch(category, sortedNames); ok {
		return matched
	}
	if category != "" {
		return category
	}
	return core.Uncategorized
}
