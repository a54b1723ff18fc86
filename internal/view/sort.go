package view

import (
	"sort"

	"kharcha/internal/models"
)

// SortExpenses returns a new slice ordered by the given sort key. The sort
// is stable: records comparing equal keep their relative input order, so an
// amount sort over a date-descending fetch keeps equal-amount records in
// date order.
func SortExpenses(expenses []models.Expense, key SortKey) []models.Expense {
	out := make([]models.Expense, len(expenses))
	copy(out, expenses)

	switch key {
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Date.Before(out[j].Date)
		})
	case SortAmountDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Amount.GreaterThan(out[j].Amount)
		})
	case SortAmountAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Amount.LessThan(out[j].Amount)
		})
	default: // SortNewest
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Date.After(out[j].Date)
		})
	}
	return out
}
