package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "kharcha/internal/errors"
	"kharcha/internal/models"
	"kharcha/internal/pagination"
	"kharcha/internal/services"
	"kharcha/internal/view"
)

// ExpenseHandler handles expense-related requests
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ExpenseRequest represents the payload for creating or updating an expense.
// Updates replace every field; there are no partial updates.
type ExpenseRequest struct {
	Title    string          `json:"title" binding:"required,max=200"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category" binding:"required,expense_category"`
	Date     string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Notes    string          `json:"notes" binding:"max=1000"`
}

// ExpenseViewRequest represents the query parameters of the expense view.
type ExpenseViewRequest struct {
	Mode     string `form:"mode" binding:"omitempty,view_mode"`
	Month    string `form:"month" binding:"omitempty,year_month"`
	Category string `form:"category" binding:"omitempty,category_filter"`
	Search   string `form:"search"`
	Sort     string `form:"sort" binding:"omitempty,sort_key"`
}

// ExpenseResponse represents an expense in the response
type ExpenseResponse struct {
	ID       string          `json:"id"`
	UserID   string          `json:"user_id"`
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Category models.Category `json:"category"`
	Date     time.Time       `json:"date"`
	Notes    string          `json:"notes"`
}

// parseDate converts an optional YYYY-MM-DD string; format is already
// checked by the binding.
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	d, _ := time.Parse("2006-01-02", s)
	return d
}

// viewParams merges the bound query values over the defaults.
func (req *ExpenseViewRequest) viewParams() view.Params {
	params := view.DefaultParams()
	if req.Mode != "" {
		params.Mode = view.ViewMode(req.Mode)
	}
	if req.Category != "" {
		params.Category = req.Category
	}
	if req.Sort != "" {
		params.Sort = view.SortKey(req.Sort)
	}
	params.Month = req.Month
	params.Search = req.Search
	return params
}

// CreateExpense handles the creation of a new expense
// @Summary     Create an expense
// @Description Record a new expense; the category must be one of the fixed set
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ExpenseRequest true "Expense details"
// @Success     201 {object} ExpenseResponse "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.expenseService.CreateExpense(
		userID, req.Title, req.Amount, models.Category(req.Category), parseDate(req.Date), req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// GetExpenseView runs the filter/sort/aggregation pipeline
// @Summary     Get the expense view
// @Description Filtered, sorted expense list with summary statistics and per-category totals
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       mode query string false "View mode (month/week)" default(month)
// @Param       month query string false "Anchor month (YYYY-MM); empty means all time"
// @Param       category query string false "Category filter, or All" default(All)
// @Param       search query string false "Title search text"
// @Param       sort query string false "Sort key (newest/oldest/amount-desc/amount-asc)" default(newest)
// @Success     200 {object} view.Result "View results"
// @Failure     400 {object} ErrorResponse "Invalid view parameters"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/view [get]
func (h *ExpenseHandler) GetExpenseView(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseViewRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	// The current date enters the pipeline here; everything below is pure.
	result, err := h.expenseService.GetExpenseView(userID, req.viewParams(), time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListExpenses handles the paginated raw listing of a user's expenses
// @Summary     List expenses
// @Description Get a paginated list of the authenticated user's expenses, newest first
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number" default(1)
// @Param       page_size query int false "Page size" default(20)
// @Success     200 {object} pagination.PageResponse[ExpenseResponse] "Paginated expenses"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.expenseService.ListExpenses(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetExpenseByID handles the retrieval of a specific expense
// @Summary     Get expense by ID
// @Description Get a specific expense by ID
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     200 {object} ExpenseResponse "Expense details"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [get]
func (h *ExpenseHandler) GetExpenseByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.GetExpenseByID(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// UpdateExpense handles updating an expense
// @Summary     Update expense
// @Description Replace all fields of an existing expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Param       request body ExpenseRequest true "Updated expense details"
// @Success     200 {object} ExpenseResponse "Updated expense"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if req.Date == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required"))
		return
	}

	expense, err := h.expenseService.UpdateExpense(
		userID, c.Param("id"), req.Title, req.Amount, models.Category(req.Category), parseDate(req.Date), req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// DeleteExpense handles deleting a single expense
// @Summary     Delete expense
// @Description Permanently delete an expense by ID
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     200 {object} map[string]string "Expense deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(userID, c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}

// DeleteExpensesByMonth handles bulk deletion for one month
// @Summary     Delete a month of expenses
// @Description Permanently delete all expenses dated within the given month
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month query string true "Month to delete (YYYY-MM)"
// @Success     200 {object} map[string]int64 "Number of deleted expenses"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [delete]
func (h *ExpenseHandler) DeleteExpensesByMonth(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req struct {
		Month string `form:"month" binding:"required,year_month"`
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidMonth, "month must be provided in YYYY-MM format"))
		return
	}

	deleted, err := h.expenseService.DeleteExpensesByMonth(userID, req.Month, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// DeleteAllExpenses handles deleting every expense of the user
// @Summary     Delete all expenses
// @Description Permanently delete every expense owned by the authenticated user
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]int64 "Number of deleted expenses"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/all [delete]
func (h *ExpenseHandler) DeleteAllExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	deleted, err := h.expenseService.DeleteAllExpenses(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
