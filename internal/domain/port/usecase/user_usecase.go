package usecase

import (
	"context"

	"github.com/tudorvana/expense-tracker-api/internal/domain/entity"
)

// UserUseCase defines methods for user-related business operations
type UserUseCase interface {
	// ListUsers returns all users
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// GetUser returns the user with the given ID or ErrUserNotFound
	GetUser(ctx context.Context, id uint64) (*entity.User, error)

	// CreateUser validates the fields, enforces email uniqueness and
	// persists a new user with a storage-assigned ID
	CreateUser(ctx context.Context, name, email string) (*entity.User, error)

	// UpdateUser replaces name and email on an existing user. Fails with
	// ErrIDMismatch when the path and payload IDs disagree and with
	// ErrDuplicateEmail when the new email belongs to a different user.
	UpdateUser(ctx context.Context, pathID, payloadID uint64, name, email string) (*entity.User, error)

	// DeleteUser removes the user and all of their expenses as one atomic
	// unit of work
	DeleteUser(ctx context.Context, id uint64) error

	// ListUserExpenses returns the expenses owned by the given user; an
	// empty slice when there are none or the user does not exist
	ListUserExpenses(ctx context.Context, userID uint64) ([]*entity.Expense, error)

	// CreateUserExpense creates an expense for the given user after checking
	// that the path user ID and the payload user ID agree
	CreateUserExpense(ctx context.Context, pathUserID uint64, title, amount, category string, payloadUserID uint64) (*entity.Expense, error)
}
