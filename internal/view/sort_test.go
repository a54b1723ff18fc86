package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kharcha/internal/models"
)

func titles(expenses []models.Expense) []string {
	out := make([]string, len(expenses))
	for i, e := range expenses {
		out[i] = e.Title
	}
	return out
}

func TestSortExpenses_ByDate(t *testing.T) {
	expenses := []models.Expense{
		expense("mid", 10, models.CategoryFood, date(2025, time.June, 2)),
		expense("old", 10, models.CategoryFood, date(2025, time.June, 1)),
		expense("new", 10, models.CategoryFood, date(2025, time.June, 3)),
	}

	assert.Equal(t, []string{"new", "mid", "old"}, titles(SortExpenses(expenses, SortNewest)))
	assert.Equal(t, []string{"old", "mid", "new"}, titles(SortExpenses(expenses, SortOldest)))
}

func TestSortExpenses_ByAmount(t *testing.T) {
	expenses := []models.Expense{
		expense("small", 5, models.CategoryFood, date(2025, time.June, 1)),
		expense("big", 500, models.CategoryFood, date(2025, time.June, 2)),
		expense("medium", 50, models.CategoryFood, date(2025, time.June, 3)),
	}

	assert.Equal(t, []string{"big", "medium", "small"}, titles(SortExpenses(expenses, SortAmountDesc)))
	assert.Equal(t, []string{"small", "medium", "big"}, titles(SortExpenses(expenses, SortAmountAsc)))
}

func TestSortExpenses_StableOnEqualKeys(t *testing.T) {
	// Fetched date-descending; equal amounts must keep that order.
	expenses := []models.Expense{
		expense("third", 100, models.CategoryFood, date(2025, time.June, 3)),
		expense("second", 100, models.CategoryFood, date(2025, time.June, 2)),
		expense("first", 100, models.CategoryFood, date(2025, time.June, 1)),
		expense("cheap", 10, models.CategoryFood, date(2025, time.June, 4)),
	}

	got := SortExpenses(expenses, SortAmountDesc)
	assert.Equal(t, []string{"third", "second", "first", "cheap"}, titles(got))

	// Sorting twice by the same key yields the identical order.
	again := SortExpenses(got, SortAmountDesc)
	assert.Equal(t, titles(got), titles(again))
}

func TestSortExpenses_DoesNotMutateInput(t *testing.T) {
	expenses := []models.Expense{
		expense("b", 2, models.CategoryFood, date(2025, time.June, 1)),
		expense("a", 1, models.CategoryFood, date(2025, time.June, 2)),
	}

	got := SortExpenses(expenses, SortAmountAsc)

	require.Equal(t, []string{"a", "b"}, titles(got))
	assert.Equal(t, []string{"b", "a"}, titles(expenses))
}
