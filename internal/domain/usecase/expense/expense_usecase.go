package expense

import (
	"context"

	coreport "github.com/tudorvana/expense-tracker-api/internal/domain/port/core"
	"github.com/tudorvana/expense-tracker-api/internal/domain/port/persistence"
	"github.com/tudorvana/expense-tracker-api/internal/domain/port/usecase"
)

// ExpenseUseCase implements the expense business logic
type ExpenseUseCase struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewExpenseUseCase creates a new expense use case instance
func NewExpenseUseCase(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.ExpenseUseCase {
	return &ExpenseUseCase{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ListExpenses returns all expenses, each joined with its owning user
func (u *ExpenseUseCase) ListExpenses(ctx context.Context) ([]*persistence.ExpenseWithOwner, error) {
	expenses, err := u.uow.GetExpenseRepository(ctx).List(ctx)
	if err != nil {
		u.logger.Error("Failed to list expenses", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}
	return expenses, nil
}

// GetExpense returns the expense with the given ID joined with its owning user
func (u *ExpenseUseCase) GetExpense(ctx context.Context, id uint64) (*persistence.ExpenseWithOwner, error) {
	expense, err := u.uow.GetExpenseRepository(ctx).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return expense, nil
}

// DeleteExpense removes the expense with the given ID
func (u *ExpenseUseCase) DeleteExpense(ctx context.Context, id uint64) error {
	if err := u.uow.GetExpenseRepository(ctx).Delete(ctx, id); err != nil {
		return err
	}

	u.logger.Info("Expense deleted", map[string]any{
		"expense_id": id,
	})
	return nil
}
