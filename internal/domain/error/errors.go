package error

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation      = 4001
	CodeIDMismatch      = 4002
	CodeInvalidID       = 4003
	CodeDuplicateEmail  = 4009
	CodeUserNotFound    = 4040
	CodeExpenseNotFound = 4041
	CodeNotFound        = 4042

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrValidation is returned when an entity violates its field constraints
	ErrValidation = errors.New("validation failed")

	// ErrIDMismatch is returned when the path id and the payload id disagree
	ErrIDMismatch = errors.New("id in path does not match id in payload")

	// ErrInvalidID is returned when an id path parameter is not a positive integer
	ErrInvalidID = errors.New("id must be a positive integer")

	// ErrDuplicateEmail is returned when a user's email collides with another user
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrExpenseNotFound is returned when the requested expense doesn't exist
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidRequest is returned when the request body cannot be bound
	ErrInvalidRequest = errors.New("invalid request")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrIDMismatch):
		return CodeIDMismatch
	case errors.Is(err, ErrInvalidID):
		return CodeInvalidID
	case errors.Is(err, ErrDuplicateEmail):
		return CodeDuplicateEmail
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrExpenseNotFound):
		return CodeExpenseNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	default:
		return CodeInternalServer
	}
}

// FieldViolation names a single violated field constraint
type FieldViolation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError carries the full list of violated field constraints
// detected before any storage access
type ValidationError struct {
	Entity     string
	Violations []FieldViolation
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	reasons := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		reasons = append(reasons, fmt.Sprintf("%s: %s", v.Field, v.Reason))
	}
	return fmt.Sprintf("%s validation failed: %s", e.Entity, strings.Join(reasons, "; "))
}

// Is checks if the target error is an ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "validation_error",
		"entity":     e.Entity,
		"error_code": CodeValidation,
	}
	for _, v := range e.Violations {
		fields["field_"+v.Field] = v.Reason
	}
	return fields
}

// NewValidationError creates a validation error for an entity with its violations
func NewValidationError(entity string, violations []FieldViolation) error {
	return &ValidationError{Entity: entity, Violations: violations}
}

// DuplicateEmailError provides detailed information about an email collision
type DuplicateEmailError struct {
	Email          string
	ExistingUserID uint64
}

// Error implements the error interface
func (e *DuplicateEmailError) Error() string {
	return fmt.Sprintf("email %q is already used by user %d", e.Email, e.ExistingUserID)
}

// Is checks if the target error is an ErrDuplicateEmail
func (e *DuplicateEmailError) Is(target error) bool {
	return target == ErrDuplicateEmail
}

// LogFields returns a map of fields for structured logging
func (e *DuplicateEmailError) LogFields() map[string]any {
	return map[string]any{
		"error_type":       "duplicate_email",
		"email":            e.Email,
		"existing_user_id": e.ExistingUserID,
		"error_code":       CodeDuplicateEmail,
	}
}

// NewDuplicateEmailError creates a new detailed duplicate email error
func NewDuplicateEmailError(email string, existingUserID uint64) error {
	return &DuplicateEmailError{Email: email, ExistingUserID: existingUserID}
}

// IDMismatchError reports a disagreement between the path id and the payload id
type IDMismatchError struct {
	Entity    string
	PathID    uint64
	PayloadID uint64
}

// Error implements the error interface
func (e *IDMismatchError) Error() string {
	return fmt.Sprintf("%s id mismatch: path has %d, payload has %d", e.Entity, e.PathID, e.PayloadID)
}

// Is checks if the target error is an ErrIDMismatch
func (e *IDMismatchError) Is(target error) bool {
	return target == ErrIDMismatch
}

// LogFields returns a map of fields for structured logging
func (e *IDMismatchError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "id_mismatch",
		"entity":     e.Entity,
		"path_id":    e.PathID,
		"payload_id": e.PayloadID,
		"error_code": CodeIDMismatch,
	}
}

// NewIDMismatchError creates a new detailed id mismatch error
func NewIDMismatchError(entity string, pathID, payloadID uint64) error {
	return &IDMismatchError{Entity: entity, PathID: pathID, PayloadID: payloadID}
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsDuplicateEmailError checks if the error is an email uniqueness conflict
func IsDuplicateEmailError(err error) bool {
	return errors.Is(err, ErrDuplicateEmail)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrExpenseNotFound)
}

// IsIDMismatchError checks if the error is a path/payload id disagreement
func IsIDMismatchError(err error) bool {
	return errors.Is(err, ErrIDMismatch)
}
