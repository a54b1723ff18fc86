package models

// Category is one of the fixed spending categories. Expenses are always
// tagged with exactly one category from this set; the set doubles as the
// bucket list for aggregation.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryShopping      Category = "Shopping"
	CategoryBills         Category = "Bills"
	CategoryEntertainment Category = "Entertainment"
	CategoryOther         Category = "Other"
)

// Categories lists all categories in display and aggregation order.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryBills,
	CategoryEntertainment,
	CategoryOther,
}

// CategoryColors maps each category to its chart color.
var CategoryColors = map[Category]string{
	CategoryFood:          "#2563eb",
	CategoryTransport:     "#10b981",
	CategoryShopping:      "#f59e0b",
	CategoryBills:         "#a855f7",
	CategoryEntertainment: "#ef4444",
	CategoryOther:         "#6b7280",
}

// IsValid reports whether c is a member of the fixed category set.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
