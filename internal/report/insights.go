package report

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/anusua-sen/smart-budget-app/internal/core"
)

const (
	topCategoryCount = 5
	topMerchantCount = 5
	minTokenLength   = 3 // tokens must be strictly longer
	unknownMonth     = "Unknown"
)

// Insights aggregates the full transaction set by raw stored category.
// Unlike the spend summary it does not reconcile against budgets: it
// reports what the classifier actually produced. Returns ErrNoData for
// an empty transaction set.
func Insights(txns []core.Transaction) (core.InsightsReport, error) {
	if len(txns) == 0 {
		return core.InsightsReport{}, core.ErrNoData
	}

	breakdown := make(map[string]float64)
	monthly := make(map[string]float64)
	for _, txn := range txns {
		breakdown[rawCategory(txn)] += txn.Amount
		if txn.HasDate() {
			key := fmt.Sprintf("%04d-%02d", txn.Date.Year(), int(txn.Date.Month()))
			monthly[key] += txn.Amount
		}
	}

	total := 0.0
	for _, v := range breakdown {
		total += v
	}

	percentages := make(map[string]float64, len(breakdown))
	rounded := make(map[string]float64, len(breakdown))
	for category, amount := range breakdown {
		rounded[category] = round2(amount)
		if total > 0 {
			percentages[category] = round2(amount / total * 100)
		} else {
			percentages[category] = 0
		}
	}

	// Zero-padded YYYY-MM keys sort chronologically as strings.
	monthKeys := make([]string, 0, len(monthly))
	for k := range monthly {
		monthKeys = append(monthKeys, k)
	}
	sort.Strings(monthKeys)
	summary := make([]core.MonthTotal, len(monthKeys))
	for i, k := range monthKeys {
		summary[i] = core.MonthTotal{Month: k, Total: round2(monthly[k])}
	}

	return core.InsightsReport{
		TotalSpent:          round2(total),
		CategoryBreakdown:   rounded,
		CategoryPercentages: percentages,
		MonthlySummary:      summary,
		TopCategories:       topCategories(breakdown),
	}, nil
}

func topCategories(breakdown map[string]float64) []core.CategoryAmount {
	all := make([]core.CategoryAmount, 0, len(breakdown))
	for category, amount := range breakdown {
		all = append(all, core.CategoryAmount{Category: category, Amount: round2(amount)})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Amount != all[j].Amount {
			return all[i].Amount > all[j].Amount
		}
		return all[i].Category < all[j].Category
	})
	if len(all) > topCategoryCount {
		all = all[:topCategoryCount]
	}
	return all
}

// Analytics computes the visualization-oriented aggregates: monthly
// spend under human-readable labels, the category-by-month matrix, and
// the keyword-based merchant frequencies. Returns ErrNoData for an
// empty transaction set.
//
// Monthly entries are ordered by the underlying calendar month, not by
// the "Mon YYYY" label, which does not sort chronologically across
// years. Undated transactions group under "Unknown" and sort last.
func Analytics(txns []core.Transaction) (core.AnalyticsReport, error) {
	if len(txns) == 0 {
		return core.AnalyticsReport{}, core.ErrNoData
	}

	type monthBucket struct {
		label string
		sort  string // zero-padded YYYY-MM; empty for unknown
		total float64
	}

	buckets := make(map[string]*monthBucket)
	categoryMonthly := make(map[string]map[string]float64)
	merchantCounts := make(map[string]int)
	merchantOrder := make(map[string]int)

	for _, txn := range txns {
		label := unknownMonth
		sortKey := ""
		if txn.HasDate() {
			label = txn.Date.Format("Jan 2006")
			sortKey = fmt.Sprintf("%04d-%02d", txn.Date.Year(), int(txn.Date.Month()))
		}

		b, ok := buckets[label]
		if !ok {
			b = &monthBucket{label: label, sort: sortKey}
			buckets[label] = b
		}
		b.total += txn.Amount

		category := rawCategory(txn)
		if categoryMonthly[category] == nil {
			categoryMonthly[category] = make(map[string]float64)
		}
		categoryMonthly[category][label] += txn.Amount

		for _, word := range strings.Fields(strings.ToLower(txn.Description)) {
			if utf8.RuneCountInString(word) <= minTokenLength {
				continue
			}
			if _, seen := merchantCounts[word]; !seen {
				merchantOrder[word] = len(merchantOrder)
			}
			merchantCounts[word]++
		}
	}

	ordered := make([]*monthBucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(i, j int) bool {
		// Unknown (empty sort key) goes last.
		if (ordered[i].sort == "") != (ordered[j].sort == "") {
			return ordered[i].sort != ""
		}
		return ordered[i].sort < ordered[j].sort
	})

	monthlySpend := make([]core.MonthTotal, len(ordered))
	for i, b := range ordered {
		monthlySpend[i] = core.MonthTotal{Month: b.label, Total: round2(b.total)}
	}

	roundedMatrix := make(map[string]map[string]float64, len(categoryMonthly))
	for category, months := range categoryMonthly {
		roundedMatrix[category] = make(map[string]float64, len(months))
		for label, amount := range months {
			roundedMatrix[category][label] = round2(amount)
		}
	}

	return core.AnalyticsReport{
		MonthlySpend:    monthlySpend,
		CategoryMonthly: roundedMatrix,
		TopMerchants:    topMerchants(merchantCounts, merchantOrder),
	}, nil
}

// topMerchants ranks tokens by count descending; ties resolve to the
// first-encountered token.
func topMerchants(counts map[string]int, order map[string]int) []core.MerchantCount {
	all := make([]core.MerchantCount, 0, len(counts))
	for word, count := range counts {
		all = append(all, core.MerchantCount{Merchant: word, Count: count})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count > all[j].Count
		}
		return order[all[i].Merchant] < order[all[j].Merchant]
	})
	if len(all) > topMerchantCount {
		all = all[:topMerchantCount]
	}
	return all
}

// rawCategory reads the stored category without reconciliation. The
// ingestion path always assigns a label, so an empty value only occurs
// for rows persisted by other means; those group under the sentinel.
func rawCategory(txn core.Transaction) string {
	if txn.Category == "" {
		return core.Uncategorized
	}
	return txn.Category
}
