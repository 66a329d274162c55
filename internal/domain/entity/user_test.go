package entity

import (
	"errors"
	"strings"
	"testing"
	"time"

	errs "github.com/tudorvana/expense-tracker-api/internal/domain/error"
	coremocks "github.com/tudorvana/expense-tracker-api/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid user", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		user, err := NewUser("Alice", "alice@example.com", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(0), user.ID)
		assert.Equal(t, "Alice", user.Name)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Invalid fields", func(t *testing.T) {
		testCases := []struct {
			name  string
			uname string
			email string
			field string
		}{
			{"Empty name", "", "alice@example.com", "name"},
			{"Whitespace name", "   ", "alice@example.com", "name"},
			{"Name too long", strings.Repeat("a", 101), "alice@example.com", "name"},
			{"Empty email", "Alice", "", "email"},
			{"Email too long", "Alice", strings.Repeat("a", 95) + "@ex.com", "email"},
			{"Email without at", "Alice", "alice.example.com", "email"},
			{"Email without domain dot", "Alice", "alice@example", "email"},
			{"Email with two ats", "Alice", "a@b@example.com", "email"},
			{"Email with empty local part", "Alice", "@example.com", "email"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				mockTime := coremocks.NewMockTimeProvider(t)

				user, err := NewUser(tc.uname, tc.email, mockTime)

				assert.Nil(t, user)
				require.Error(t, err)
				assert.True(t, errs.IsValidationError(err))

				var validationErr *errs.ValidationError
				require.True(t, errors.As(err, &validationErr))
				assert.Equal(t, "user", validationErr.Entity)
				assert.Equal(t, tc.field, validationErr.Violations[0].Field)
			})
		}
	})

	t.Run("All violations reported at once", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		_, err := NewUser("", "not-an-email", mockTime)

		var validationErr *errs.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Len(t, validationErr.Violations, 2)
	})

	t.Run("Boundary lengths accepted", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		name := strings.Repeat("n", MaxNameLength)
		email := strings.Repeat("e", MaxEmailLength-7) + "@ex.com"
		require.Len(t, email, MaxEmailLength)

		user, err := NewUser(name, email, mockTime)

		require.NoError(t, err)
		assert.Equal(t, name, user.Name)
	})
}

func TestUserRename(t *testing.T) {
	createdAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2024, 6, 2, 9, 30, 0, 0, time.UTC)

	t.Run("Valid rename", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(updatedAt).Once()

		user := &User{ID: 7, Name: "Alice", Email: "alice@example.com", CreatedAt: createdAt, UpdatedAt: createdAt}

		err := user.Rename("Alicia", "alicia@example.com", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(7), user.ID)
		assert.Equal(t, "Alicia", user.Name)
		assert.Equal(t, "alicia@example.com", user.Email)
		assert.Equal(t, createdAt, user.CreatedAt)
		assert.Equal(t, updatedAt, user.UpdatedAt)
	})

	t.Run("Invalid rename leaves user unchanged", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		user := &User{ID: 7, Name: "Alice", Email: "alice@example.com", CreatedAt: createdAt, UpdatedAt: createdAt}

		err := user.Rename("", "broken", mockTime)

		require.Error(t, err)
		assert.True(t, errs.IsValidationError(err))
		assert.Equal(t, "Alice", user.Name)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, createdAt, user.UpdatedAt)
	})
}
