package expense

import (
	"context"
	"testing"
	"time"

	"github.com/tudorvana/expense-tracker-api/internal/domain/entity"
	errs "github.com/tudorvana/expense-tracker-api/internal/domain/error"
	"github.com/tudorvana/expense-tracker-api/internal/domain/port/persistence"
	coremocks "github.com/tudorvana/expense-tracker-api/mocks/port/core"
	persistencemocks "github.com/tudorvana/expense-tracker-api/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListExpenses(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	mockUow := persistencemocks.NewMockUnitOfWork(t)
	mockExpenses := persistencemocks.NewMockExpenseRepository(t)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockLogger := coremocks.NewMockLogger(t)

	joined := []*persistence.ExpenseWithOwner{
		{
			Expense: entity.RestoreExpense(1, "Rent", 120000, "Housing", 5, now, now),
			Owner:   &entity.User{ID: 5, Name: "Alice", Email: "alice@example.com"},
		},
	}

	mockUow.EXPECT().GetExpenseRepository(mock.Anything).Return(mockExpenses).Once()
	mockExpenses.EXPECT().List(mock.Anything).Return(joined, nil).Once()

	expenseUseCase := NewExpenseUseCase(mockUow, mockTime, mockLogger)

	expenses, err := expenseUseCase.ListExpenses(ctx)

	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Alice", expenses[0].Owner.Name)
}

func TestGetExpense(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown expense", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockExpenses := persistencemocks.NewMockExpenseRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUow.EXPECT().GetExpenseRepository(mock.Anything).Return(mockExpenses).Once()
		mockExpenses.EXPECT().GetByID(mock.Anything, uint64(99)).Return(nil, errs.ErrExpenseNotFound).Once()

		expenseUseCase := NewExpenseUseCase(mockUow, mockTime, mockLogger)

		expense, err := expenseUseCase.GetExpense(ctx, 99)

		assert.Nil(t, expense)
		assert.ErrorIs(t, err, errs.ErrExpenseNotFound)
	})
}

func TestDeleteExpense(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful delete", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockExpenses := persistencemocks.NewMockExpenseRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUow.EXPECT().GetExpenseRepository(mock.Anything).Return(mockExpenses).Once()
		mockExpenses.EXPECT().Delete(mock.Anything, uint64(3)).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		expenseUseCase := NewExpenseUseCase(mockUow, mockTime, mockLogger)

		err := expenseUseCase.DeleteExpense(ctx, 3)

		require.NoError(t, err)
	})

	t.Run("Unknown expense", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockExpenses := persistencemocks.NewMockExpenseRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUow.EXPECT().GetExpenseRepository(mock.Anything).Return(mockExpenses).Once()
		mockExpenses.EXPECT().Delete(mock.Anything, uint64(99)).Return(errs.ErrExpenseNotFound).Once()

		expenseUseCase := NewExpenseUseCase(mockUow, mockTime, mockLogger)

		err := expenseUseCase.DeleteExpense(ctx, 99)

		assert.ErrorIs(t, err, errs.ErrExpenseNotFound)
	})
}
