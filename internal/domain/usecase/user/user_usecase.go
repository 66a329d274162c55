package user

import (
	"context"

	"github.com/tudorvana/expense-tracker-api/internal/domain/entity"
	coreport "github.com/tudorvana/expense-tracker-api/internal/domain/port/core"
	"github.com/tudorvana/expense-tracker-api/internal/domain/port/persistence"
	"github.com/tudorvana/expense-tracker-api/internal/domain/port/usecase"
)

// UserUseCase implements the user business logic. All storage access goes
// through the unit of work; operations with a single storage access use a
// repository bound to the plain request context.
type UserUseCase struct {
	uow          persistence.UnitOfWork
	expenses     usecase.ExpenseUseCase
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserUseCase creates a new user use case instance
func NewUserUseCase(
	uow persistence.UnitOfWork,
	expenses usecase.ExpenseUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.UserUseCase {
	return &UserUseCase{
		uow:          uow,
		expenses:     expenses,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ListUsers returns all users in storage-natural order
func (u *UserUseCase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := u.uow.GetUserRepository(ctx).List(ctx)
	if err != nil {
		u.logger.Error("Failed to list users", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}
	return users, nil
}

// GetUser returns the user with the given ID
func (u *UserUseCase) GetUser(ctx context.Context, id uint64) (*entity.User, error) {
	user, err := u.uow.GetUserRepository(ctx).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}
