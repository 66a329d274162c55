package user

import (
	"context"
	"testing"
	"time"

	"github.com/tudorvana/expense-tracker-api/internal/domain/entity"
	errs "github.com/tudorvana/expense-tracker-api/internal/domain/error"
	coremocks "github.com/tudorvana/expense-tracker-api/mocks/port/core"
	persistencemocks "github.com/tudorvana/expense-tracker-api/mocks/port/persistence"
	usecasemocks "github.com/tudorvana/expense-tracker-api/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListUserExpenses(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Returns the user's expenses", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockExpenses := persistencemocks.NewMockExpenseRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		owned := []*entity.Expense{
			entity.RestoreExpense(1, "Rent", 120000, "Housing", 5, now, now),
			entity.RestoreExpense(2, "Groceries", 4599, "Food", 5, now, now),
		}

		mockUow.EXPECT().GetExpenseRepository(mock.Anything).Return(mockExpenses).Once()
		mockExpenses.EXPECT().ListByUser(mock.Anything, uint64(5)).Return(owned, nil).Once()

		userUseCase := NewUserUseCase(mockUow, usecasemocks.NewMockExpenseUseCase(t), mockTime, mockLogger)

		expenses, err := userUseCase.ListUserExpenses(ctx, 5)

		require.NoError(t, err)
		assert.Len(t, expenses, 2)
	})

	t.Run("Unknown user yields an empty slice", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockExpenses := persistencemocks.NewMockExpenseRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUow.EXPECT().GetExpenseRepository(mock.Anything).Return(mockExpenses).Once()
		mockExpenses.EXPECT().ListByUser(mock.Anything, uint64(99)).Return([]*entity.Expense{}, nil).Once()

		userUseCase := NewUserUseCase(mockUow, usecasemocks.NewMockExpenseUseCase(t), mockTime, mockLogger)

		expenses, err := userUseCase.ListUserExpenses(ctx, 99)

		require.NoError(t, err)
		assert.Empty(t, expenses)
	})
}

func TestCreateUserExpense(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Mismatched path and payload user IDs", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		userUseCase := NewUserUseCase(mockUow, usecasemocks.NewMockExpenseUseCase(t), mockTime, mockLogger)

		expense, err := userUseCase.CreateUserExpense(ctx, 5, "Groceries", "45.99", "Food", 9)

		assert.Nil(t, expense)
		assert.True(t, errs.IsIDMismatchError(err))
	})

	t.Run("Delegates to the expense use case", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)
		mockExpenseUC := usecasemocks.NewMockExpenseUseCase(t)

		created := entity.RestoreExpense(3, "Groceries", 4599, "Food", 5, now, now)
		mockExpenseUC.EXPECT().CreateExpense(mock.Anything, "Groceries", "45.99", "Food", uint64(5)).Return(created, nil).Once()

		userUseCase := NewUserUseCase(mockUow, mockExpenseUC, mockTime, mockLogger)

		expense, err := userUseCase.CreateUserExpense(ctx, 5, "Groceries", "45.99", "Food", 5)

		require.NoError(t, err)
		assert.Equal(t, uint64(3), expense.ID)
		assert.Equal(t, uint64(5), expense.UserID)
	})
}
