package persistence

import (
	"context"

	"github.com/tudorvana/expense-tracker-api/internal/domain/entity"
)

// ExpenseWithOwner pairs an expense with its owning user's summary data,
// produced by a query-time join
type ExpenseWithOwner struct {
	Expense *entity.Expense
	Owner   *entity.User
}

// ExpenseRepository defines the storage operations for expense records
type ExpenseRepository interface {
	// List returns all expenses joined with their owning user
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the database cannot be reached
	List(ctx context.Context) ([]*ExpenseWithOwner, error)

	// GetByID retrieves an expense by ID joined with its owning user
	//
	// Possible errors:
	// - ErrExpenseNotFound: If no expense with that ID exists
	// - ErrDatabaseConnection: If the database cannot be reached
	GetByID(ctx context.Context, id uint64) (*ExpenseWithOwner, error)

	// ListByUser returns all expenses owned by the given user; an empty
	// slice when the user has none or does not exist
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the database cannot be reached
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Expense, error)

	// Create inserts a new expense and assigns its ID on the passed entity
	//
	// Possible errors:
	// - ErrConstraintViolation: If the user foreign key rejects the insert
	// - ErrDatabaseConnection: If the database cannot be reached
	Create(ctx context.Context, expense *entity.Expense) error

	// Update replaces the replaceable fields of an existing expense
	//
	// Possible errors:
	// - ErrExpenseNotFound: If the expense doesn't exist
	// - ErrConstraintViolation: If the user foreign key rejects the update
	// - ErrDatabaseConnection: If the database cannot be reached
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense record
	//
	// Possible errors:
	// - ErrExpenseNotFound: If the expense doesn't exist
	// - ErrDatabaseConnection: If the database cannot be reached
	Delete(ctx context.Context, id uint64) error

	// DeleteByUser removes all expenses owned by the given user and returns
	// how many were removed. Used by the cascading user delete.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the database cannot be reached
	DeleteByUser(ctx context.Context, userID uint64) (int64, error)
}
