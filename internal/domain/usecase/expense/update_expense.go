package expense

import (
	"context"

	errs "github.com/tudorvana/expense-tracker-api/internal/domain/error"
)

// UpdateExpense replaces amount, category and userId on an existing expense.
// The title stays as stored; the observed system never replaced it on update
// and this keeps that contract. The read-modify-write runs in one
// transaction; a userId that no longer resolves fails at the database
// constraint and surfaces as an unexpected storage failure.
func (u *ExpenseUseCase) UpdateExpense(ctx context.Context, pathID, payloadID uint64, amount, category string, userID uint64) error {
	if pathID != payloadID {
		return errs.NewIDMismatchError("expense", pathID, payloadID)
	}

	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return err
	}
	repo := u.uow.GetExpenseRepository(txCtx)

	existing, err := repo.GetByID(txCtx, pathID)
	if err != nil {
		_ = u.uow.Rollback(txCtx)
		return err
	}

	expense := existing.Expense
	if err := expense.Revise(amount, category, userID, u.timeProvider); err != nil {
		_ = u.uow.Rollback(txCtx)
		return err
	}

	if err := repo.Update(txCtx, expense); err != nil {
		_ = u.uow.Rollback(txCtx)
		u.logger.Error("Failed to update expense", map[string]any{
			"expense_id": pathID,
			"error":      err.Error(),
		})
		return err
	}

	if err := u.uow.Commit(txCtx); err != nil {
		return err
	}

	u.logger.Info("Expense updated", map[string]any{
		"expense_id": expense.ID,
		"user_id":    expense.UserID,
		"amount":     expense.Amount(),
		"category":   expense.Category,
	})
	return nil
}
