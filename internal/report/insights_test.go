package report

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/anusua-sen/smart-budget-app/internal/core"
)

func datedTxn(desc string, amount float64, category string, year int, month time.Month, day int) core.Transaction {
	return core.Transaction{
		Description: desc,
		Amount:      amount,
		Category:    category,
		Date:        time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
	}
}

func TestInsightsEmpty(t *testing.T) {
	if _, err := Insights(nil); !errors.Is(err, core.ErrNoData) {
		t.Fatalf("expected no-data error, got %v", err)
	}
}

func TestInsightsBreakdownAndPercentages(t *testing.T) {
	txns := []core.Transaction{
		datedTxn("zomato", 300, "Food", 2024, time.March, 1),
		datedTxn("uber", 100, "Transport", 2024, time.March, 2),
		datedTxn("swiggy", 100, "Food", 2024, time.April, 3),
	}

	got, err := Insights(txns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.TotalSpent != 500 {
		t.Fatalf("expected total 500, got %v", got.TotalSpent)
	}
	if got.CategoryBreakdown["Food"] != 400 || got.CategoryBreakdown["Transport"] != 100 {
		t.Fatalf("unexpected breakdown: %v", got.CategoryBreakdown)
	}
	if got.CategoryPercentages["Food"] != 80 || got.CategoryPercentages["Transport"] != 20 {
		t.Fatalf("unexpected percentages: %v", got.CategoryPercentages)
	}

	sum := 0.0
	for _, p := range got.CategoryPercentages {
		sum += p
	}
	if math.Abs(sum-100) > 0.05 {
		t.Fatalf("percentages should sum to ~100, got %v", sum)
	}
}

func TestInsightsMonthlySummaryOrdered(t *testing.T) {
	txns := []core.Transaction{
		datedTxn("c", 30, "Food", 2025, time.January, 1),
		datedTxn("a", 10, "Food", 2024, time.December, 1),
		datedTxn("b", 20, "Food", 2024, time.April, 1),
		{Description: "undated", Amount: 99, Category: "Food"}, // excluded
	}

	got, err := Insights(txns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []core.MonthTotal{
		{Month: "2024-04", Total: 20},
		{Month: "2024-12", Total: 10},
		{Month: "2025-01", Total: 30},
	}
	if len(got.MonthlySummary) != len(want) {
		t.Fatalf("expected %d months, got %v", len(want), got.MonthlySummary)
	}
	for i := range want {
		if got.MonthlySummary[i] != want[i] {
			t.Fatalf("month %d: got %v, want %v", i, got.MonthlySummary[i], want[i])
		}
	}
}

func TestInsightsTopCategoriesCapped(t *testing.T) {
	categories := []string{"A", "B", "C", "D", "E", "F", "G"}
	var txns []core.Transaction
	for i, c := range categories {
		txns = append(txns, datedTxn("x", float64((i+1)*10), c, 2024, time.May, 1))
	}

	got, err := Insights(txns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.TopCategories) != 5 {
		t.Fatalf("expected 5 top categories, got %d", len(got.TopCategories))
	}
	if got.TopCategories[0].Category != "G" || got.TopCategories[0].Amount != 70 {
		t.Fatalf("unexpected top category: %v", got.TopCategories[0])
	}
}

func TestAnalyticsEmpty(t *testing.T) {
	if _, err := Analytics(nil); !errors.Is(err, core.ErrNoData) {
		t.Fatalf("expected no-data error, got %v", err)
	}
}

func TestAnalyticsMonthlySpendChronological(t *testing.T) {
	// "Dec 2024" sorts after "Jan 2025" lexically; ordering must follow
	// the calendar instead.
	txns := []core.Transaction{
		datedTxn("a", 10, "Food", 2025, time.January, 5),
		datedTxn("b", 20, "Food", 2024, time.December, 5),
		datedTxn("c", 30, "Food", 2024, time.April, 5),
		{Description: "undated", Amount: 5, Category: "Food"},
	}

	got, err := Analytics(txns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Apr 2024", "Dec 2024", "Jan 2025", "Unknown"}
	if len(got.MonthlySpend) != len(want) {
		t.Fatalf("expected %d months, got %v", len(want), got.MonthlySpend)
	}
	for i, label := range want {
		if got.MonthlySpend[i].Month != label {
			t.Fatalf("position %d: got %q, want %q", i, got.MonthlySpend[i].Month, label)
		}
	}
}

func TestAnalyticsCategoryMonthlyMatrix(t *testing.T) {
	txns := []core.Transaction{
		datedTxn("a", 10, "Food", 2024, time.March, 1),
		datedTxn("b", 15, "Food", 2024, time.March, 20),
		datedTxn("c", 5, "Transport", 2024, time.April, 1),
		{Description: "stray", Amount: 7}, // no category, no date
	}

	got, err := Analytics(txns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.CategoryMonthly["Food"]["Mar 2024"] != 25 {
		t.Fatalf("unexpected Food/Mar 2024: %v", got.CategoryMonthly)
	}
	if got.CategoryMonthly["Transport"]["Apr 2024"] != 5 {
		t.Fatalf("unexpected Transport/Apr 2024: %v", got.CategoryMonthly)
	}
	if got.CategoryMonthly[core.Uncategorized]["Unknown"] != 7 {
		t.Fatalf("unexpected Uncategorized/Unknown: %v", got.CategoryMonthly)
	}
}

func TestAnalyticsTopMerchants(t *testing.T) {
	txns := []core.Transaction{
		datedTxn("STARBUCKS coffee downtown", 5, "Food", 2024, time.May, 1),
		datedTxn("starbucks coffee airport", 6, "Food", 2024, time.May, 2),
		datedTxn("uber cab", 7, "Transport", 2024, time.May, 3),
	}

	got, err := Analytics(txns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got.TopMerchants) == 0 {
		t.Fatalf("expected merchant tokens")
	}
	top := got.TopMerchants[0]
	if top.Merchant != "starbucks" && top.Merchant != "coffee" {
		t.Fatalf("unexpected top merchant: %v", top)
	}
	if top.Count != 2 {
		t.Fatalf("expected count 2, got %d", top.Count)
	}
	// starbucks was seen before coffee, so it wins the tie.
	if got.TopMerchants[0].Merchant != "starbucks" || got.TopMerchants[1].Merchant != "coffee" {
		t.Fatalf("tie should resolve to first-encountered token: %v", got.TopMerchants)
	}
	for _, m := range got.TopMerchants {
		if m.Merchant == "cab" {
			t.Fatalf("tokens of 3 characters or fewer must be excluded: %v", got.TopMerchants)
		}
	}
}
