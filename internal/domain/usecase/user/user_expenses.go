package user

import (
	"context"

	"github.com/tudorvana/expense-tracker-api/internal/domain/entity"
	errs "github.com/tudorvana/expense-tracker-api/internal/domain/error"
)

// ListUserExpenses returns the expenses owned by the given user. A user with
// no expenses, or an unknown user, yields an empty slice rather than an error.
func (u *UserUseCase) ListUserExpenses(ctx context.Context, userID uint64) ([]*entity.Expense, error) {
	expenses, err := u.uow.GetExpenseRepository(ctx).ListByUser(ctx, userID)
	if err != nil {
		u.logger.Error("Failed to list user expenses", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}
	return expenses, nil
}

// CreateUserExpense creates an expense for the given user. The path user ID
// and the payload user ID must agree; everything else is delegated to the
// expense use case.
func (u *UserUseCase) CreateUserExpense(ctx context.Context, pathUserID uint64, title, amount, category string, payloadUserID uint64) (*entity.Expense, error) {
	if pathUserID != payloadUserID {
		return nil, errs.NewIDMismatchError("user", pathUserID, payloadUserID)
	}
	return u.expenses.CreateExpense(ctx, title, amount, category, payloadUserID)
}
