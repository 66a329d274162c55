package expense

import (
	"context"
	"errors"

	"github.com/tudorvana/expense-tracker-api/internal/domain/entity"
	errs "github.com/tudorvana/expense-tracker-api/internal/domain/error"
)

// CreateExpense validates the fields, checks the owning user exists and
// persists a new expense. The existence probe and the insert share one
// transaction; a userId that resolves to no user surfaces as a validation
// error, not as an opaque constraint failure.
func (u *ExpenseUseCase) CreateExpense(ctx context.Context, title, amount, category string, userID uint64) (*entity.Expense, error) {
	// Validation happens before any storage access
	expense, err := entity.NewExpense(title, amount, category, userID, u.timeProvider)
	if err != nil {
		return nil, err
	}

	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	// Foreign-key probe: the owning user must exist at write time
	if _, err := u.uow.GetUserRepository(txCtx).GetByID(txCtx, userID); err != nil {
		_ = u.uow.Rollback(txCtx)
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, danglingUserError()
		}
		return nil, err
	}

	if err := u.uow.GetExpenseRepository(txCtx).Create(txCtx, expense); err != nil {
		_ = u.uow.Rollback(txCtx)
		// A concurrent user delete can still trip the database constraint
		// between the probe and the insert
		if errors.Is(err, errs.ErrConstraintViolation) {
			return nil, danglingUserError()
		}
		u.logger.Error("Failed to create expense", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	if err := u.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	u.logger.Info("Expense created", map[string]any{
		"expense_id": expense.ID,
		"user_id":    expense.UserID,
		"amount":     expense.Amount(),
		"category":   expense.Category,
	})
	return expense, nil
}

// danglingUserError reports a userId that does not reference an existing user
func danglingUserError() error {
	return errs.NewValidationError("expense", []errs.FieldViolation{
		{Field: "userId", Reason: "does not reference an existing user"},
	})
}
