package core

type (
	// CategoryAmount is an amount aggregated by raw category name.
	CategoryAmount struct {
		Category string  `json:"category"`
		Amount   float64 `json:"amount"`
	}

	// MonthTotal is total spend for one month. Month is either a
	// "YYYY-MM" key or a "Mon YYYY" label depending on the report;
	// entries are always emitted in chronological order.
	MonthTotal struct {
		Month string  `json:"month"`
		Total float64 `json:"total"`
	}

	// MerchantCount is the frequency of one description token.
	MerchantCount struct {
		Merchant string `json:"merchant"`
		Count    int    `json:"count"`
	}

	// InsightsReport aggregates spend over the full transaction set,
	// grouped by the raw stored category.
	InsightsReport struct {
		TotalSpent          float64            `json:"total_spent"`
		CategoryBreakdown   map[string]float64 `json:"category_breakdown"`
		CategoryPercentages map[string]float64 `json:"category_percentages"`
		MonthlySummary      []MonthTotal       `json:"monthly_summary"`
		TopCategories       []CategoryAmount   `json:"top_categories"`
	}

	// AnalyticsReport carries the visualization-oriented aggregates.
	AnalyticsReport struct {
		MonthlySpend    []MonthTotal                  `json:"monthly_spend"`
		CategoryMonthly map[string]map[string]float64 `json:"category_monthly"`
		TopMerchants    []MerchantCount               `json:"top_merchants"`
	}
)
