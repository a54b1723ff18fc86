package view

import (
	"time"

	"kharcha/internal/models"
)

// Result is the complete output of one view query. It is the only shape a
// rendering layer consumes.
type Result struct {
	Results        []models.Expense `json:"results"`
	Summary        Summary          `json:"summary"`
	CategoryTotals []CategoryTotal  `json:"category_totals"`
}

// Query runs the full pipeline over a freshly fetched expense collection:
// resolve the date window, filter, aggregate, and order. Aggregation runs
// over the filtered-but-unsorted set, so the chosen sort key never changes
// the summary numbers. Query holds no state; callers re-run it against a
// fresh fetch after any mutation.
func Query(expenses []models.Expense, params Params, today time.Time) Result {
	window := ResolveWindow(params.Mode, params.Month, today)
	filtered := Filter(expenses, window, params.Category, params.Search)
	summary, totals := Aggregate(filtered)

	return Result{
		Results:        SortExpenses(filtered, params.Sort),
		Summary:        summary,
		CategoryTotals: totals,
	}
}
