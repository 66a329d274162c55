package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Validation", ErrValidation, 4001},
		{"IDMismatch", ErrIDMismatch, 4002},
		{"InvalidID", ErrInvalidID, 4003},
		{"DuplicateEmail", ErrDuplicateEmail, 4009},
		{"UserNotFound", ErrUserNotFound, 4040},
		{"ExpenseNotFound", ErrExpenseNotFound, 4041},
		{"NotFound", ErrNotFound, 4042},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrUserNotFound), 4040},
		{"RichValidationError", NewValidationError("user", []FieldViolation{{Field: "name", Reason: "is required"}}), 4001},
		{"RichDuplicateEmailError", NewDuplicateEmailError("a@b.com", 7), 4009},
		{"RichIDMismatchError", NewIDMismatchError("user", 1, 2), 4002},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("expense", []FieldViolation{
		{Field: "title", Reason: "is required"},
		{Field: "amount", Reason: "must be at least 0.01"},
	})

	expectedMsg := "expense validation failed: title: is required; amount: must be at least 0.01"
	if err.Error() != expectedMsg {
		t.Errorf("ValidationError.Error() = %q, want %q", err.Error(), expectedMsg)
	}

	if !errors.Is(err, ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, want true")
	}
	if !IsValidationError(err) {
		t.Errorf("IsValidationError(err) = false, want true")
	}
	if IsValidationError(ErrUserNotFound) {
		t.Errorf("IsValidationError(ErrUserNotFound) = true, want false")
	}

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("errors.As failed to extract *ValidationError")
	}
	if len(validationErr.Violations) != 2 {
		t.Errorf("got %d violations, want 2", len(validationErr.Violations))
	}

	fields := validationErr.LogFields()
	if fields["entity"] != "expense" {
		t.Errorf("LogFields entity = %v, want expense", fields["entity"])
	}
	if fields["field_title"] != "is required" {
		t.Errorf("LogFields field_title = %v, want 'is required'", fields["field_title"])
	}
}

func TestDuplicateEmailError(t *testing.T) {
	err := NewDuplicateEmailError("taken@example.com", 42)

	expectedMsg := `email "taken@example.com" is already used by user 42`
	if err.Error() != expectedMsg {
		t.Errorf("DuplicateEmailError.Error() = %q, want %q", err.Error(), expectedMsg)
	}

	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("errors.Is(err, ErrDuplicateEmail) = false, want true")
	}
	if !IsDuplicateEmailError(err) {
		t.Errorf("IsDuplicateEmailError(err) = false, want true")
	}

	var dupErr *DuplicateEmailError
	if !errors.As(err, &dupErr) {
		t.Fatalf("errors.As failed to extract *DuplicateEmailError")
	}
	if dupErr.ExistingUserID != 42 {
		t.Errorf("ExistingUserID = %d, want 42", dupErr.ExistingUserID)
	}
}

func TestIDMismatchError(t *testing.T) {
	err := NewIDMismatchError("user", 5, 9)

	expectedMsg := "user id mismatch: path has 5, payload has 9"
	if err.Error() != expectedMsg {
		t.Errorf("IDMismatchError.Error() = %q, want %q", err.Error(), expectedMsg)
	}

	if !errors.Is(err, ErrIDMismatch) {
		t.Errorf("errors.Is(err, ErrIDMismatch) = false, want true")
	}
	if !IsIDMismatchError(err) {
		t.Errorf("IsIDMismatchError(err) = false, want true")
	}
}

func TestIsNotFoundError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{"UserNotFound", ErrUserNotFound, true},
		{"ExpenseNotFound", ErrExpenseNotFound, true},
		{"GenericNotFound", ErrNotFound, true},
		{"WrappedUserNotFound", fmt.Errorf("lookup: %w", ErrUserNotFound), true},
		{"Validation", ErrValidation, false},
		{"Unknown", errors.New("boom"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsNotFoundError(tc.err); got != tc.expected {
				t.Errorf("IsNotFoundError(%v) = %v, want %v", tc.err, got, tc.expected)
			}
		})
	}
}
