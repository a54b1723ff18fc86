// Package view implements the expense view pipeline: resolving a date
// window from the selected view mode, filtering a fetched expense
// collection, ordering it, and computing summary aggregates. Every function
// in this package is pure; the current date is always passed in by the
// caller so results are deterministic.
package view

// ViewMode selects how the date window is derived.
type ViewMode string

const (
	ModeMonth ViewMode = "month"
	ModeWeek  ViewMode = "week"
)

// SortKey selects the ordering of the filtered results.
type SortKey string

const (
	SortNewest     SortKey = "newest"
	SortOldest     SortKey = "oldest"
	SortAmountDesc SortKey = "amount-desc"
	SortAmountAsc  SortKey = "amount-asc"
)

// CategoryAll is the category filter sentinel meaning "no category filter".
const CategoryAll = "All"

// Params holds the transient filter/sort/mode selections driving a single
// view query. None of this is persisted.
type Params struct {
	// Mode is the view mode, month or week.
	Mode ViewMode
	// Month anchors month mode to a specific YYYY-MM month. Empty means
	// all time. Ignored in week mode.
	Month string
	// Category restricts results to a single category; CategoryAll disables
	// the restriction.
	Category string
	// Search is matched case-insensitively against expense titles.
	Search string
	// Sort selects the result ordering.
	Sort SortKey
}

// DefaultParams returns the view parameters a fresh session starts with:
// month mode over all time, no category filter, newest first.
func DefaultParams() Params {
	return Params{
		Mode:     ModeMonth,
		Category: CategoryAll,
		Sort:     SortNewest,
	}
}
