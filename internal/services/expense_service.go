package services

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "kharcha/internal/errors"
	"kharcha/internal/models"
	"kharcha/internal/pagination"
	"kharcha/internal/view"
)

// expenseService handles expense-related business logic. It is the only
// code that touches the expenses table; every query is scoped by user_id so
// one owner can never see another's records.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// validateExpenseFields checks the fields shared by create and update.
func validateExpenseFields(title string, amount decimal.Decimal, category models.Category) error {
	if strings.TrimSpace(title) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "title is required")
	}
	if amount.IsNegative() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}
	if !category.IsValid() {
		return apperrors.ErrInvalidCategory
	}
	return nil
}

// CreateExpense creates a new expense for a user. The category must be one
// of the fixed set; there is no default. A zero date defaults to today.
func (s *expenseService) CreateExpense(userID, title string, amount decimal.Decimal, category models.Category, date time.Time, notes string) (*models.Expense, error) {
	if err := validateExpenseFields(title, amount, category); err != nil {
		return nil, err
	}

	if date.IsZero() {
		date = time.Now()
	}

	expense := &models.Expense{
		UserID:   userID,
		Title:    strings.TrimSpace(title),
		Amount:   amount,
		Category: category,
		Date:     view.DateOnly(date),
		Notes:    notes,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// GetExpenseByID retrieves an expense by ID for a specific user.
func (s *expenseService) GetExpenseByID(userID, expenseID string) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Where("id = ? AND user_id = ?", expenseID, userID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// ListExpenses retrieves a paginated list of a user's expenses, newest date
// first.
func (s *expenseService) ListExpenses(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Expense{}).Where("user_id = ?", userID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Order("date DESC, created_at DESC").
		Scopes(pagination.Paginate(page)).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// UpdateExpense replaces all user-editable fields of an expense. Partial
// updates are not supported; callers send the full record.
func (s *expenseService) UpdateExpense(userID, expenseID, title string, amount decimal.Decimal, category models.Category, date time.Time, notes string) (*models.Expense, error) {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return nil, err
	}

	if err := validateExpenseFields(title, amount, category); err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}

	updates := map[string]interface{}{
		"title":    strings.TrimSpace(title),
		"amount":   amount,
		"category": category,
		"date":     view.DateOnly(date),
		"notes":    notes,
	}

	if err := s.db.Model(expense).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// DeleteExpense permanently deletes a single expense.
func (s *expenseService) DeleteExpense(userID, expenseID string) error {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// DeleteExpensesByMonth permanently deletes all of a user's expenses whose
// date falls inside the given YYYY-MM month. Returns the number of deleted
// records.
func (s *expenseService) DeleteExpensesByMonth(userID, month string, today time.Time) (int64, error) {
	if month == "" {
		return 0, apperrors.ErrInvalidMonth
	}
	window := view.ResolveWindow(view.ModeMonth, month, today)
	if window.Unbounded {
		// A non-empty anchor only resolves unbounded when it failed to parse.
		return 0, apperrors.ErrInvalidMonth
	}

	res := s.db.Where("user_id = ? AND date >= ? AND date <= ?", userID, window.Start, window.End).
		Delete(&models.Expense{})
	if res.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	return res.RowsAffected, nil
}

// DeleteAllExpenses permanently deletes every expense owned by the user.
// Returns the number of deleted records.
func (s *expenseService) DeleteAllExpenses(userID string) (int64, error) {
	res := s.db.Where("user_id = ?", userID).Delete(&models.Expense{})
	if res.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	return res.RowsAffected, nil
}

// GetExpenseView fetches the user's expenses for the resolved date window
// and runs the view pipeline over them. The fetch happens fresh on every
// call; nothing is cached between queries, so the view always reflects the
// store after the latest completed mutation.
func (s *expenseService) GetExpenseView(userID string, params view.Params, today time.Time) (*view.Result, error) {
	window := view.ResolveWindow(params.Mode, params.Month, today)

	q := s.db.Where("user_id = ?", userID)
	if !window.Unbounded {
		q = q.Where("date >= ? AND date <= ?", window.Start, window.End)
	}

	var expenses []models.Expense
	if err := q.Order("date DESC, created_at DESC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := view.Query(expenses, params, today)
	return &result, nil
}
