package services

import (
	"time"

	"github.com/shopspring/decimal"

	"kharcha/internal/models"
	"kharcha/internal/pagination"
	"kharcha/internal/view"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// ExpenseServicer defines the contract for expense-related business logic.
// It is the sole gateway to the persistent record store; every operation is
// scoped to the owning user.
type ExpenseServicer interface {
	CreateExpense(userID, title string, amount decimal.Decimal, category models.Category, date time.Time, notes string) (*models.Expense, error)
	GetExpenseByID(userID, expenseID string) (*models.Expense, error)
	ListExpenses(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	UpdateExpense(userID, expenseID, title string, amount decimal.Decimal, category models.Category, date time.Time, notes string) (*models.Expense, error)
	DeleteExpense(userID, expenseID string) error
	DeleteExpensesByMonth(userID, month string, today time.Time) (int64, error)
	DeleteAllExpenses(userID string) (int64, error)
	GetExpenseView(userID string, params view.Params, today time.Time) (*view.Result, error)
}
