// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"kharcha/internal/models"
	"kharcha/internal/view"
)

var yearMonthRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("expense_category", validateExpenseCategory)
		_ = v.RegisterValidation("category_filter", validateCategoryFilter)
		_ = v.RegisterValidation("view_mode", validateViewMode)
		_ = v.RegisterValidation("sort_key", validateSortKey)
		_ = v.RegisterValidation("year_month", validateYearMonth)
	}
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	return models.Category(fl.Field().String()).IsValid()
}

func validateCategoryFilter(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == view.CategoryAll || models.Category(value).IsValid()
}

func validateViewMode(fl validator.FieldLevel) bool {
	switch view.ViewMode(fl.Field().String()) {
	case view.ModeMonth, view.ModeWeek:
		return true
	}
	return false
}

func validateSortKey(fl validator.FieldLevel) bool {
	switch view.SortKey(fl.Field().String()) {
	case view.SortNewest, view.SortOldest, view.SortAmountDesc, view.SortAmountAsc:
		return true
	}
	return false
}

func validateYearMonth(fl validator.FieldLevel) bool {
	return yearMonthRegex.MatchString(fl.Field().String())
}
