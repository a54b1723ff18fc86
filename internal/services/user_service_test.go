package services

import (
	"testing"
	"time"

	"kharcha/internal/models"
	"kharcha/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := NewUserService(db)

	t.Run("creates user with hashed password", func(t *testing.T) {
		user, err := service.CreateUser("alice@example.com", "secret123", "Alice", "Kumar")
		testutil.AssertNoError(t, err)

		if user.ID == "" {
			t.Error("expected user ID to be set")
		}
		if user.Email != "alice@example.com" {
			t.Errorf("expected email alice@example.com, got %s", user.Email)
		}
		if user.Password == "secret123" {
			t.Error("password should be hashed, not stored in plaintext")
		}
		if !user.IsActive {
			t.Error("new users should be active")
		}
	})

	t.Run("lowercases email", func(t *testing.T) {
		user, err := service.CreateUser("Bob@Example.COM", "secret123", "Bob", "")
		testutil.AssertNoError(t, err)
		if user.Email != "bob@example.com" {
			t.Errorf("expected lowercased email, got %s", user.Email)
		}
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		_, err := service.CreateUser("dup@example.com", "secret123", "", "")
		testutil.AssertNoError(t, err)

		_, err = service.CreateUser("dup@example.com", "another", "", "")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("rejects empty email or password", func(t *testing.T) {
		_, err := service.CreateUser("", "secret123", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = service.CreateUser("nobody@example.com", "", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := NewUserService(db)
	user := testutil.CreateTestUser(t, db)

	t.Run("by email", func(t *testing.T) {
		found, err := service.GetUserByEmail(user.Email)
		testutil.AssertNoError(t, err)
		if found.ID != user.ID {
			t.Errorf("expected user %s, got %s", user.ID, found.ID)
		}
	})

	t.Run("by ID", func(t *testing.T) {
		found, err := service.GetUserByID(user.ID)
		testutil.AssertNoError(t, err)
		if found.Email != user.Email {
			t.Errorf("expected email %s, got %s", user.Email, found.Email)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := service.GetUserByEmail("ghost@example.com")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})

	t.Run("unknown ID", func(t *testing.T) {
		_, err := service.GetUserByID("00000000-0000-0000-0000-000000000000")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})

	t.Run("inactive user not found by email", func(t *testing.T) {
		inactive := testutil.CreateTestUser(t, db)
		db.Model(&models.User{}).Where("id = ?", inactive.ID).Update("is_active", false)

		_, err := service.GetUserByEmail(inactive.Email)
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestAttemptLogin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := NewUserService(db)

	t.Run("success resets failure counter", func(t *testing.T) {
		user := testutil.CreateTestUser(t, db)
		db.Model(user).Update("failed_login_attempts", 3)

		logged, err := service.AttemptLogin(user.Email, "password123")
		testutil.AssertNoError(t, err)
		if logged.ID != user.ID {
			t.Errorf("expected user %s, got %s", user.ID, logged.ID)
		}

		var fresh models.User
		db.First(&fresh, "id = ?", user.ID)
		if fresh.FailedLoginAttempts != 0 {
			t.Errorf("expected failure counter reset, got %d", fresh.FailedLoginAttempts)
		}
		if fresh.LastLoginAt == nil {
			t.Error("expected last_login_at to be set")
		}
	})

	t.Run("wrong password increments counter", func(t *testing.T) {
		user := testutil.CreateTestUser(t, db)

		_, err := service.AttemptLogin(user.Email, "wrong")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")

		var fresh models.User
		db.First(&fresh, "id = ?", user.ID)
		if fresh.FailedLoginAttempts != 1 {
			t.Errorf("expected 1 failed attempt, got %d", fresh.FailedLoginAttempts)
		}
	})

	t.Run("locks account after repeated failures", func(t *testing.T) {
		user := testutil.CreateTestUser(t, db)

		for i := 0; i < maxFailedLoginAttempts; i++ {
			_, err := service.AttemptLogin(user.Email, "wrong")
			testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
		}

		var fresh models.User
		db.First(&fresh, "id = ?", user.ID)
		if fresh.LockedUntil == nil || !fresh.LockedUntil.After(time.Now()) {
			t.Fatal("expected account to be locked")
		}

		// Even the correct password is rejected while locked.
		_, err := service.AttemptLogin(user.Email, "password123")
		testutil.AssertAppError(t, err, "ACCOUNT_LOCKED")
	})

	t.Run("expired lock allows login again", func(t *testing.T) {
		user := testutil.CreateTestUser(t, db)
		past := time.Now().Add(-time.Minute)
		db.Model(user).Update("locked_until", &past)

		_, err := service.AttemptLogin(user.Email, "password123")
		testutil.AssertNoError(t, err)
	})

	t.Run("unknown email looks like bad credentials", func(t *testing.T) {
		_, err := service.AttemptLogin("ghost@example.com", "password123")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})
}

func TestRefreshTokenHash(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := NewUserService(db)
	user := testutil.CreateTestUser(t, db)

	t.Run("store and retrieve", func(t *testing.T) {
		err := service.StoreRefreshTokenHash(user.ID, "abc123hash")
		testutil.AssertNoError(t, err)

		hash, err := service.GetRefreshTokenHash(user.ID)
		testutil.AssertNoError(t, err)
		if hash != "abc123hash" {
			t.Errorf("expected stored hash, got %q", hash)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := service.GetRefreshTokenHash("00000000-0000-0000-0000-000000000000")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}
