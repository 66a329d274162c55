package user

import (
	"context"
	"errors"

	"github.com/tudorvana/expense-tracker-api/internal/domain/entity"
	errs "github.com/tudorvana/expense-tracker-api/internal/domain/error"
)

// UpdateUser replaces name and email on an existing user. The ID is
// immutable and owned expenses are untouched. Identifier mismatch and field
// validation are checked before any storage access; the existence and
// uniqueness probes plus the write share one transaction.
func (u *UserUseCase) UpdateUser(ctx context.Context, pathID, payloadID uint64, name, email string) (*entity.User, error) {
	if pathID != payloadID {
		return nil, errs.NewIDMismatchError("user", pathID, payloadID)
	}

	candidate := entity.User{ID: pathID, Name: name, Email: email}
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	repo := u.uow.GetUserRepository(txCtx)

	user, err := repo.GetByID(txCtx, pathID)
	if err != nil {
		_ = u.uow.Rollback(txCtx)
		return nil, err
	}

	// The new email may not collide with a different user; keeping the
	// current email is always allowed
	owner, err := repo.GetByEmail(txCtx, email)
	if err != nil && !errors.Is(err, errs.ErrUserNotFound) {
		_ = u.uow.Rollback(txCtx)
		return nil, err
	}
	if owner != nil && owner.ID != user.ID {
		_ = u.uow.Rollback(txCtx)
		u.logger.Warn("User update rejected, email already exists", map[string]any{
			"user_id":          user.ID,
			"email":            email,
			"existing_user_id": owner.ID,
		})
		return nil, errs.NewDuplicateEmailError(email, owner.ID)
	}

	if err := user.Rename(name, email, u.timeProvider); err != nil {
		_ = u.uow.Rollback(txCtx)
		return nil, err
	}

	if err := repo.Update(txCtx, user); err != nil {
		_ = u.uow.Rollback(txCtx)
		u.logger.Error("Failed to update user", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, err
	}

	if err := u.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	u.logger.Info("User updated", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return user, nil
}
