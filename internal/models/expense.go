package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a single dated, categorized expense record. Expenses
// are hard-deleted; there is no soft-delete column.
type Expense struct {
	Base
	UserID   string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Title    string          `gorm:"not null" json:"title"`
	Amount   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Category Category        `gorm:"not null" json:"category"`
	Date     time.Time       `gorm:"type:date;not null;index" json:"date"`
	Notes    string          `json:"notes"`
}
