package view

import (
	"github.com/shopspring/decimal"

	"kharcha/internal/models"
)

// Summary holds the headline statistics for a filtered expense set.
type Summary struct {
	Count int `json:"count"`
	// Total is the exact decimal sum of all amounts.
	Total decimal.Decimal `json:"total"`
	// Average is Total/Count rounded to the nearest whole currency unit,
	// and zero when the set is empty.
	Average decimal.Decimal `json:"average"`
}

// CategoryTotal is one aggregation bucket. Buckets are emitted for every
// category in the fixed set, in enumeration order, including zero buckets.
type CategoryTotal struct {
	Category models.Category `json:"category"`
	Color    string          `json:"color"`
	Total    decimal.Decimal `json:"total"`
}

// Aggregate computes the summary and per-category subtotals over a filtered
// expense set. Results are a fresh snapshot on every call; nothing is
// cached. Expenses whose category is no longer a member of the fixed set
// still count toward Count and Total but land in no bucket.
func Aggregate(expenses []models.Expense) (Summary, []CategoryTotal) {
	total := decimal.Zero
	byCategory := make(map[models.Category]decimal.Decimal, len(models.Categories))
	for _, e := range expenses {
		total = total.Add(e.Amount)
		byCategory[e.Category] = byCategory[e.Category].Add(e.Amount)
	}

	summary := Summary{
		Count:   len(expenses),
		Total:   total,
		Average: decimal.Zero,
	}
	if summary.Count > 0 {
		summary.Average = total.Div(decimal.NewFromInt(int64(summary.Count))).Round(0)
	}

	totals := make([]CategoryTotal, 0, len(models.Categories))
	for _, c := range models.Categories {
		bucket := decimal.Zero
		if sum, ok := byCategory[c]; ok {
			bucket = sum
		}
		totals = append(totals, CategoryTotal{
			Category: c,
			Color:    models.CategoryColors[c],
			Total:    bucket,
		})
	}
	return summary, totals
}
