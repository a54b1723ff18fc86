package view

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kharcha/internal/models"
)

func TestAggregate_Empty(t *testing.T) {
	summary, totals := Aggregate(nil)

	assert.Equal(t, 0, summary.Count)
	assert.True(t, summary.Total.IsZero())
	assert.True(t, summary.Average.IsZero())

	require.Len(t, totals, len(models.Categories))
	for i, ct := range totals {
		assert.Equal(t, models.Categories[i], ct.Category)
		assert.True(t, ct.Total.IsZero())
	}
}

func TestAggregate_Summary(t *testing.T) {
	expenses := []models.Expense{
		expense("a", 100, models.CategoryFood, date(2025, time.June, 1)),
		expense("b", 50, models.CategoryFood, date(2025, time.June, 2)),
		expense("c", 30, models.CategoryTransport, date(2025, time.June, 3)),
	}

	summary, _ := Aggregate(expenses)

	assert.Equal(t, 3, summary.Count)
	assert.True(t, summary.Total.Equal(decimal.NewFromInt(180)), "total = %s", summary.Total)
	assert.True(t, summary.Average.Equal(decimal.NewFromInt(60)), "average = %s", summary.Average)
}

func TestAggregate_AverageRoundsToWholeUnits(t *testing.T) {
	expenses := []models.Expense{
		expense("a", 10, models.CategoryFood, date(2025, time.June, 1)),
		expense("b", 10, models.CategoryFood, date(2025, time.June, 2)),
		expense("c", 11, models.CategoryFood, date(2025, time.June, 3)),
	}

	summary, _ := Aggregate(expenses)

	// 31/3 = 10.33..., rounds to 10
	assert.True(t, summary.Average.Equal(decimal.NewFromInt(10)), "average = %s", summary.Average)
}

func TestAggregate_ExactDecimalTotal(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3, not a float approximation.
	expenses := []models.Expense{
		{Title: "a", Amount: decimal.RequireFromString("0.1"), Category: models.CategoryFood, Date: date(2025, time.June, 1)},
		{Title: "b", Amount: decimal.RequireFromString("0.2"), Category: models.CategoryFood, Date: date(2025, time.June, 2)},
	}

	summary, _ := Aggregate(expenses)

	assert.True(t, summary.Total.Equal(decimal.RequireFromString("0.3")), "total = %s", summary.Total)
}

func TestAggregate_CategoryBuckets(t *testing.T) {
	expenses := []models.Expense{
		expense("a", 100, models.CategoryFood, date(2025, time.June, 1)),
		expense("b", 50, models.CategoryFood, date(2025, time.June, 2)),
		expense("c", 30, models.CategoryTransport, date(2025, time.June, 3)),
	}

	summary, totals := Aggregate(expenses)

	require.Len(t, totals, len(models.Categories))
	byCategory := make(map[models.Category]decimal.Decimal, len(totals))
	sum := decimal.Zero
	for _, ct := range totals {
		byCategory[ct.Category] = ct.Total
		sum = sum.Add(ct.Total)
	}

	assert.True(t, byCategory[models.CategoryFood].Equal(decimal.NewFromInt(150)))
	assert.True(t, byCategory[models.CategoryTransport].Equal(decimal.NewFromInt(30)))
	assert.True(t, byCategory[models.CategoryShopping].IsZero())
	assert.True(t, byCategory[models.CategoryBills].IsZero())
	assert.True(t, byCategory[models.CategoryEntertainment].IsZero())
	assert.True(t, byCategory[models.CategoryOther].IsZero())

	// Sum of buckets equals the summary total.
	assert.True(t, sum.Equal(summary.Total))
}

func TestAggregate_UnknownCategoryCountsButHasNoBucket(t *testing.T) {
	expenses := []models.Expense{
		expense("a", 100, models.CategoryFood, date(2025, time.June, 1)),
		expense("b", 40, models.Category("Retired"), date(2025, time.June, 2)),
	}

	summary, totals := Aggregate(expenses)

	assert.Equal(t, 2, summary.Count)
	assert.True(t, summary.Total.Equal(decimal.NewFromInt(140)))

	sum := decimal.Zero
	for _, ct := range totals {
		sum = sum.Add(ct.Total)
	}
	assert.True(t, sum.Equal(decimal.NewFromInt(100)))
}
