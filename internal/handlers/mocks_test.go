package handlers

import (
	"time"

	"github.com/shopspring/decimal"

	"kharcha/internal/models"
	"kharcha/internal/pagination"
	"kharcha/internal/services"
	"kharcha/internal/view"
)

// mockUserService implements services.UserServicer with pluggable functions.
type mockUserService struct {
	createUserFn            func(email, password, firstName, lastName string) (*models.User, error)
	getUserByEmailFn        func(email string) (*models.User, error)
	getUserByIDFn           func(id string) (*models.User, error)
	verifyPasswordFn        func(user *models.User, password string) bool
	attemptLoginFn          func(email, password string) (*models.User, error)
	storeRefreshTokenHashFn func(userID, tokenHash string) error
	getRefreshTokenHashFn   func(userID string) (string, error)
}

var _ services.UserServicer = (*mockUserService)(nil)

func (m *mockUserService) CreateUser(email, password, firstName, lastName string) (*models.User, error) {
	return m.createUserFn(email, password, firstName, lastName)
}

func (m *mockUserService) GetUserByEmail(email string) (*models.User, error) {
	return m.getUserByEmailFn(email)
}

func (m *mockUserService) GetUserByID(id string) (*models.User, error) {
	return m.getUserByIDFn(id)
}

func (m *mockUserService) VerifyPassword(user *models.User, password string) bool {
	return m.verifyPasswordFn(user, password)
}

func (m *mockUserService) AttemptLogin(email, password string) (*models.User, error) {
	return m.attemptLoginFn(email, password)
}

func (m *mockUserService) StoreRefreshTokenHash(userID, tokenHash string) error {
	if m.storeRefreshTokenHashFn == nil {
		return nil
	}
	return m.storeRefreshTokenHashFn(userID, tokenHash)
}

func (m *mockUserService) GetRefreshTokenHash(userID string) (string, error) {
	return m.getRefreshTokenHashFn(userID)
}

// mockExpenseService implements services.ExpenseServicer with pluggable functions.
type mockExpenseService struct {
	createExpenseFn         func(userID, title string, amount decimal.Decimal, category models.Category, date time.Time, notes string) (*models.Expense, error)
	getExpenseByIDFn        func(userID, expenseID string) (*models.Expense, error)
	listExpensesFn          func(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	updateExpenseFn         func(userID, expenseID, title string, amount decimal.Decimal, category models.Category, date time.Time, notes string) (*models.Expense, error)
	deleteExpenseFn         func(userID, expenseID string) error
	deleteExpensesByMonthFn func(userID, month string, today time.Time) (int64, error)
	deleteAllExpensesFn     func(userID string) (int64, error)
	getExpenseViewFn        func(userID string, params view.Params, today time.Time) (*view.Result, error)
}

var _ services.ExpenseServicer = (*mockExpenseService)(nil)

func (m *mockExpenseService) CreateExpense(userID, title string, amount decimal.Decimal, category models.Category, date time.Time, notes string) (*models.Expense, error) {
	return m.createExpenseFn(userID, title, amount, category, date, notes)
}

func (m *mockExpenseService) GetExpenseByID(userID, expenseID string) (*models.Expense, error) {
	return m.getExpenseByIDFn(userID, expenseID)
}

func (m *mockExpenseService) ListExpenses(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	return m.listExpensesFn(userID, page)
}

func (m *mockExpenseService) UpdateExpense(userID, expenseID, title string, amount decimal.Decimal, category models.Category, date time.Time, notes string) (*models.Expense, error) {
	return m.updateExpenseFn(userID, expenseID, title, amount, category, date, notes)
}

func (m *mockExpenseService) DeleteExpense(userID, expenseID string) error {
	return m.deleteExpenseFn(userID, expenseID)
}

func (m *mockExpenseService) DeleteExpensesByMonth(userID, month string, today time.Time) (int64, error) {
	return m.deleteExpensesByMonthFn(userID, month, today)
}

func (m *mockExpenseService) DeleteAllExpenses(userID string) (int64, error) {
	return m.deleteAllExpensesFn(userID)
}

func (m *mockExpenseService) GetExpenseView(userID string, params view.Params, today time.Time) (*view.Result, error) {
	return m.getExpenseViewFn(userID, params, today)
}
