package expense

import (
	"context"
	"testing"
	"time"

	"github.com/tudorvana/expense-tracker-api/internal/domain/entity"
	errs "github.com/tudorvana/expense-tracker-api/internal/domain/error"
	coremocks "github.com/tudorvana/expense-tracker-api/mocks/port/core"
	persistencemocks "github.com/tudorvana/expense-tracker-api/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateExpense(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful expense creation", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockExpenses := persistencemocks.NewMockExpenseRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUsers).Once()
		mockUsers.EXPECT().GetByID(mock.Anything, uint64(5)).Return(&entity.User{ID: 5}, nil).Once()
		mockUow.EXPECT().GetExpenseRepository(mock.Anything).Return(mockExpenses).Once()
		mockExpenses.EXPECT().Create(mock.Anything, mock.MatchedBy(func(e *entity.Expense) bool {
			return e.Title == "Groceries" && e.AmountCents() == 4599 && e.UserID == 5
		})).Run(func(ctx context.Context, e *entity.Expense) {
			e.ID = 17
		}).Return(nil).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		expenseUseCase := NewExpenseUseCase(mockUow, mockTime, mockLogger)

		expense, err := expenseUseCase.CreateExpense(ctx, "Groceries", "45.99", "Food", 5)

		require.NoError(t, err)
		require.NotNil(t, expense)
		assert.Equal(t, uint64(17), expense.ID)
		assert.Equal(t, "45.99", expense.Amount())
	})

	t.Run("Invalid fields stop before storage", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		expenseUseCase := NewExpenseUseCase(mockUow, mockTime, mockLogger)

		expense, err := expenseUseCase.CreateExpense(ctx, "", "0.00", "", 0)

		assert.Nil(t, expense)
		require.Error(t, err)
		assert.True(t, errs.IsValidationError(err))
	})

	t.Run("Dangling user id is a validation error", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUsers).Once()
		mockUsers.EXPECT().GetByID(mock.Anything, uint64(99)).Return(nil, errs.ErrUserNotFound).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		expenseUseCase := NewExpenseUseCase(mockUow, mockTime, mockLogger)

		expense, err := expenseUseCase.CreateExpense(ctx, "Groceries", "45.99", "Food", 99)

		assert.Nil(t, expense)
		require.Error(t, err)
		assert.True(t, errs.IsValidationError(err))

		var validationErr *errs.ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.Len(t, validationErr.Violations, 1)
		assert.Equal(t, "userId", validationErr.Violations[0].Field)
	})

	t.Run("Constraint failure on insert is a validation error", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockExpenses := persistencemocks.NewMockExpenseRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUsers).Once()
		mockUsers.EXPECT().GetByID(mock.Anything, uint64(5)).Return(&entity.User{ID: 5}, nil).Once()
		mockUow.EXPECT().GetExpenseRepository(mock.Anything).Return(mockExpenses).Once()
		mockExpenses.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrConstraintViolation).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		expenseUseCase := NewExpenseUseCase(mockUow, mockTime, mockLogger)

		expense, err := expenseUseCase.CreateExpense(ctx, "Groceries", "45.99", "Food", 5)

		assert.Nil(t, expense)
		assert.True(t, errs.IsValidationError(err))
	})

	t.Run("Unexpected insert failure propagates", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockExpenses := persistencemocks.NewMockExpenseRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUsers).Once()
		mockUsers.EXPECT().GetByID(mock.Anything, uint64(5)).Return(&entity.User{ID: 5}, nil).Once()
		mockUow.EXPECT().GetExpenseRepository(mock.Anything).Return(mockExpenses).Once()
		mockExpenses.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrInternalServer).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()
		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		expenseUseCase := NewExpenseUseCase(mockUow, mockTime, mockLogger)

		expense, err := expenseUseCase.CreateExpense(ctx, "Groceries", "45.99", "Food", 5)

		assert.Nil(t, expense)
		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})
}
