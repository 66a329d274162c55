package usecase

import (
	"context"

	"github.com/tudorvana/expense-tracker-api/internal/domain/entity"
	"github.com/tudorvana/expense-tracker-api/internal/domain/port/persistence"
)

// ExpenseUseCase defines methods for expense-related business operations
type ExpenseUseCase interface {
	// ListExpenses returns all expenses, each joined with its owning user
	ListExpenses(ctx context.Context) ([]*persistence.ExpenseWithOwner, error)

	// GetExpense returns the expense with the given ID joined with its
	// owning user, or ErrExpenseNotFound
	GetExpense(ctx context.Context, id uint64) (*persistence.ExpenseWithOwner, error)

	// CreateExpense validates the fields, checks that the owning user
	// exists and persists a new expense with a storage-assigned ID.
	// A dangling userId surfaces as a validation error.
	CreateExpense(ctx context.Context, title, amount, category string, userID uint64) (*entity.Expense, error)

	// UpdateExpense replaces amount, category and userId on an existing
	// expense. Fails with ErrIDMismatch when the path and payload IDs
	// disagree. The title is left untouched.
	UpdateExpense(ctx context.Context, pathID, payloadID uint64, amount, category string, userID uint64) error

	// DeleteExpense removes the expense with the given ID
	DeleteExpense(ctx context.Context, id uint64) error
}
