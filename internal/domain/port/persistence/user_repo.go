package persistence

import (
	"context"

	"github.com/tudorvana/expense-tracker-api/internal/domain/entity"
)

// UserRepository defines the storage operations for user records
type UserRepository interface {
	// List returns all users in storage-natural order
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the database cannot be reached
	List(ctx context.Context) ([]*entity.User, error)

	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If no user with that ID exists
	// - ErrDatabaseConnection: If the database cannot be reached
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByEmail retrieves a user by exact (case-sensitive) email match.
	// Used as the uniqueness probe before create and update.
	//
	// Possible errors:
	// - ErrUserNotFound: If no user with that email exists
	// - ErrDatabaseConnection: If the database cannot be reached
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create inserts a new user and assigns its ID on the passed entity
	//
	// Possible errors:
	// - ErrDuplicateEmail: If the unique email index rejects the insert
	// - ErrDatabaseConnection: If the database cannot be reached
	Create(ctx context.Context, user *entity.User) error

	// Update replaces the editable fields of an existing user
	//
	// Possible errors:
	// - ErrUserNotFound: If the user doesn't exist
	// - ErrDuplicateEmail: If the unique email index rejects the update
	// - ErrDatabaseConnection: If the database cannot be reached
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user record. Owned expenses are not touched here;
	// the cascade is coordinated by the use case inside a unit of work.
	//
	// Possible errors:
	// - ErrUserNotFound: If the user doesn't exist
	// - ErrDatabaseConnection: If the database cannot be reached
	Delete(ctx context.Context, id uint64) error
}
