package view

import (
	"strings"

	"kharcha/internal/models"
)

// Filter applies the date-window, category, and title-search predicates to
// the expense collection. All three must pass. The input slice is not
// mutated and relative order is preserved, so a later stable sort sees the
// records in their fetched order.
func Filter(expenses []models.Expense, w Window, category, search string) []models.Expense {
	query := strings.ToLower(strings.TrimSpace(search))

	out := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if !w.Contains(e.Date) {
			continue
		}
		if category != CategoryAll && string(e.Category) != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(e.Title), query) {
			continue
		}
		out = append(out, e)
	}
	return out
}
