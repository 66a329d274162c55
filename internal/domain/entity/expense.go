package entity

import (
	"strings"
	"time"

	errs "github.com/tudorvana/expense-tracker-api/internal/domain/error"
	coreport "github.com/tudorvana/expense-tracker-api/internal/domain/port/core"
)

// Field constraints for Expense
const (
	MaxTitleLength    = 100
	MaxCategoryLength = 50
	// MinAmountCents is the smallest accepted amount, 0.01
	MinAmountCents = 1
)

// Expense represents a single expense record owned by a user.
// The amount is stored in cents (private) to keep precision fixed at two
// fractional digits.
type Expense struct {
	ID          uint64 // Unique identifier, assigned by storage on creation
	Title       string
	amountCents int64
	Category    string
	UserID      uint64 // Owning user; must reference an existing user at all times
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates an expense from the given fields, validating them first.
// The amount is a decimal string such as "12.34". The ID is left zero;
// storage assigns it on insert.
func NewExpense(title, amount, category string, userID uint64, timeProvider coreport.TimeProvider) (*Expense, error) {
	expense := &Expense{
		Title:    title,
		Category: category,
		UserID:   userID,
	}

	violations := expense.fieldViolations()
	violations = append(violations, expense.setAmount(amount)...)
	if len(violations) > 0 {
		return nil, errs.NewValidationError("expense", violations)
	}

	now := timeProvider.Now()
	expense.CreatedAt = now
	expense.UpdatedAt = now
	return expense, nil
}

// RestoreExpense rebuilds an expense from stored values without re-running
// creation-time validation. For repository use.
func RestoreExpense(id uint64, title string, amountCents int64, category string, userID uint64, createdAt, updatedAt time.Time) *Expense {
	return &Expense{
		ID:          id,
		Title:       title,
		amountCents: amountCents,
		Category:    category,
		UserID:      userID,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// AmountCents returns the amount in cents (for internal use)
func (e *Expense) AmountCents() int64 {
	return e.amountCents
}

// Amount returns the amount as a decimal string with 2 fractional digits
func (e *Expense) Amount() string {
	return AmountCentsToString(e.amountCents)
}

// Revise replaces the replaceable fields of the expense: amount, category and
// owning user. The title is intentionally left untouched, matching the
// observed update behavior of the system this replaces.
func (e *Expense) Revise(amount, category string, userID uint64, timeProvider coreport.TimeProvider) error {
	updated := *e
	updated.Category = category
	updated.UserID = userID

	violations := updated.fieldViolations()
	violations = append(violations, updated.setAmount(amount)...)
	if len(violations) > 0 {
		return errs.NewValidationError("expense", violations)
	}

	e.amountCents = updated.amountCents
	e.Category = category
	e.UserID = userID
	e.UpdatedAt = timeProvider.Now()
	return nil
}

// setAmount parses and applies the amount, returning any violations
func (e *Expense) setAmount(amount string) []errs.FieldViolation {
	if strings.TrimSpace(amount) == "" {
		return []errs.FieldViolation{{Field: "amount", Reason: "is required"}}
	}

	cents, err := ParseAmount(amount)
	if err != nil {
		return []errs.FieldViolation{{Field: "amount", Reason: err.Error()}}
	}
	if cents < MinAmountCents {
		return []errs.FieldViolation{{Field: "amount", Reason: "must be at least 0.01"}}
	}

	e.amountCents = cents
	return nil
}

// fieldViolations checks the non-amount field constraints
func (e *Expense) fieldViolations() []errs.FieldViolation {
	var violations []errs.FieldViolation

	if strings.TrimSpace(e.Title) == "" {
		violations = append(violations, errs.FieldViolation{Field: "title", Reason: "is required"})
	} else if len(e.Title) > MaxTitleLength {
		violations = append(violations, errs.FieldViolation{Field: "title", Reason: "cannot exceed 100 characters"})
	}

	if strings.TrimSpace(e.Category) == "" {
		violations = append(violations, errs.FieldViolation{Field: "category", Reason: "is required"})
	} else if len(e.Category) > MaxCategoryLength {
		violations = append(violations, errs.FieldViolation{Field: "category", Reason: "cannot exceed 50 characters"})
	}

	if e.UserID == 0 {
		violations = append(violations, errs.FieldViolation{Field: "userId", Reason: "is required"})
	}

	return violations
}
