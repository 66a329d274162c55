package entity

import (
	"strings"
	"time"

	errs "github.com/tudorvana/expense-tracker-api/internal/domain/error"
	coreport "github.com/tudorvana/expense-tracker-api/internal/domain/port/core"
)

// Field constraints for User
const (
	MaxNameLength  = 100
	MaxEmailLength = 100
)

// User represents a registered user owning a set of expenses.
// The expense side of the relationship lives in Expense.UserID; joins are
// performed at query time rather than through a live object graph.
type User struct {
	ID        uint64    // Unique identifier, assigned by storage on creation
	Name      string    // Display name
	Email     string    // Unique across all users, matched case-sensitively
	CreatedAt time.Time // When the user was created
	UpdatedAt time.Time // When the user was last updated
}

// NewUser creates a user from the given fields, validating them first.
// The ID is left zero; storage assigns it on insert.
func NewUser(name, email string, timeProvider coreport.TimeProvider) (*User, error) {
	user := &User{
		Name:  name,
		Email: email,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	return user, nil
}

// Validate checks the user's field constraints and reports every
// violation at once
func (u *User) Validate() error {
	var violations []errs.FieldViolation

	if strings.TrimSpace(u.Name) == "" {
		violations = append(violations, errs.FieldViolation{Field: "name", Reason: "is required"})
	} else if len(u.Name) > MaxNameLength {
		violations = append(violations, errs.FieldViolation{Field: "name", Reason: "cannot exceed 100 characters"})
	}

	if strings.TrimSpace(u.Email) == "" {
		violations = append(violations, errs.FieldViolation{Field: "email", Reason: "is required"})
	} else if len(u.Email) > MaxEmailLength {
		violations = append(violations, errs.FieldViolation{Field: "email", Reason: "cannot exceed 100 characters"})
	} else if !isValidEmail(u.Email) {
		violations = append(violations, errs.FieldViolation{Field: "email", Reason: "is not a valid email address"})
	}

	if len(violations) > 0 {
		return errs.NewValidationError("user", violations)
	}
	return nil
}

// Rename replaces the editable fields of the user. The ID is immutable and
// owned expenses are untouched.
func (u *User) Rename(name, email string, timeProvider coreport.TimeProvider) error {
	updated := *u
	updated.Name = name
	updated.Email = email
	if err := updated.Validate(); err != nil {
		return err
	}

	u.Name = name
	u.Email = email
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// isValidEmail checks email-address syntax: exactly one @ separating a
// non-empty local part from a domain containing at least one dot
func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return false
	}
	domain := email[at+1:]
	if domain == "" || strings.ContainsAny(email, " \t") {
		return false
	}
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
