package user

import (
	"context"
	"errors"

	"github.com/tudorvana/expense-tracker-api/internal/domain/entity"
	errs "github.com/tudorvana/expense-tracker-api/internal/domain/error"
)

// CreateUser validates the fields, enforces email uniqueness and persists a
// new user. The uniqueness probe and the insert run in one transaction so a
// concurrent create with the same email cannot slip between them.
func (u *UserUseCase) CreateUser(ctx context.Context, name, email string) (*entity.User, error) {
	// Validation happens before any storage access
	user, err := entity.NewUser(name, email, u.timeProvider)
	if err != nil {
		return nil, err
	}

	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	repo := u.uow.GetUserRepository(txCtx)

	// Uniqueness probe: exact, case-sensitive email match
	existing, err := repo.GetByEmail(txCtx, email)
	if err != nil && !errors.Is(err, errs.ErrUserNotFound) {
		_ = u.uow.Rollback(txCtx)
		return nil, err
	}
	if existing != nil {
		_ = u.uow.Rollback(txCtx)
		u.logger.Warn("User creation rejected, email already exists", map[string]any{
			"email":            email,
			"existing_user_id": existing.ID,
		})
		return nil, errs.NewDuplicateEmailError(email, existing.ID)
	}

	if err := repo.Create(txCtx, user); err != nil {
		_ = u.uow.Rollback(txCtx)
		u.logger.Error("Failed to create user", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		return nil, err
	}

	if err := u.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	u.logger.Info("User created", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return user, nil
}
