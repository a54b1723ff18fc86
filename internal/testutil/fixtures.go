package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"kharcha/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestExpense creates an expense with the given category, whole-unit
// amount, and date.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID string, category models.Category, amount int64, date time.Time) *models.Expense {
	t.Helper()
	title := fmt.Sprintf("Test Expense %d", nextID())
	return CreateTestExpenseWithTitle(t, db, userID, title, category, amount, date)
}

// CreateTestExpenseWithTitle creates an expense with the given title.
func CreateTestExpenseWithTitle(t *testing.T, db *gorm.DB, userID, title string, category models.Category, amount int64, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:   userID,
		Title:    title,
		Amount:   decimal.NewFromInt(amount),
		Category: category,
		Date:     date,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}
