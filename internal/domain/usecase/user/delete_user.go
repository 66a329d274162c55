package user

import (
	"context"
)

// DeleteUser removes the user and every expense they own as one atomic unit
// of work. Either the user and all owned expenses disappear together or
// nothing does; a partial cascade never survives.
func (u *UserUseCase) DeleteUser(ctx context.Context, id uint64) error {
	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return err
	}
	users := u.uow.GetUserRepository(txCtx)
	expenses := u.uow.GetExpenseRepository(txCtx)

	if _, err := users.GetByID(txCtx, id); err != nil {
		_ = u.uow.Rollback(txCtx)
		return err
	}

	removed, err := expenses.DeleteByUser(txCtx, id)
	if err != nil {
		_ = u.uow.Rollback(txCtx)
		u.logger.Error("Failed to cascade delete expenses", map[string]any{
			"user_id": id,
			"error":   err.Error(),
		})
		return err
	}

	if err := users.Delete(txCtx, id); err != nil {
		_ = u.uow.Rollback(txCtx)
		u.logger.Error("Failed to delete user", map[string]any{
			"user_id": id,
			"error":   err.Error(),
		})
		return err
	}

	if err := u.uow.Commit(txCtx); err != nil {
		return err
	}

	u.logger.Info("User deleted", map[string]any{
		"user_id":          id,
		"expenses_removed": removed,
	})
	return nil
}
