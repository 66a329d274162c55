package persistence

import (
	"context"
)

// UnitOfWork coordinates multi-step storage operations so they commit or
// roll back as one atomic unit. The cascading user delete and every
// probe-then-write sequence run through it.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetExpenseRepository returns an expense repository bound to the current transaction
	GetExpenseRepository(ctx context.Context) ExpenseRepository
}
