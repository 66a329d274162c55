package handler

import (
	"errors"
	"net/http"
	"strconv"

	domainerr "github.com/tudorvana/expense-tracker-api/internal/domain/error"
	coreport "github.com/tudorvana/expense-tracker-api/internal/domain/port/core"
	"github.com/tudorvana/expense-tracker-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// parseIDParam extracts a numeric path parameter. On failure it writes a
// 400 response and returns false.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidID,
			Message: "Invalid " + name + " format",
		})
		return 0, false
	}
	return id, true
}

// writeError maps a domain error to the appropriate HTTP response
func writeError(c *gin.Context, logger coreport.Logger, err error) {
	var validationErr *domainerr.ValidationError
	var mismatchErr *domainerr.IDMismatchError
	var duplicateErr *domainerr.DuplicateEmailError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Validation failed",
			Details: violationsToDetails(validationErr.Violations),
		})
	case errors.As(err, &mismatchErr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "ID in the path does not match the ID in the payload",
		})
	case errors.As(err, &duplicateErr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "A user with this email already exists",
		})
	case errors.Is(err, domainerr.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "User not found",
		})
	case errors.Is(err, domainerr.ErrExpenseNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Expense not found",
		})
	case errors.Is(err, domainerr.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Resource not found",
		})
	default:
		logger.Error("Unexpected error handling API request", map[string]any{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"error":  err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.CodeInternalServer,
			Message: "Internal server error",
		})
	}
}

func violationsToDetails(violations []domainerr.FieldViolation) []dto.FieldError {
	details := make([]dto.FieldError, 0, len(violations))
	for _, v := range violations {
		details = append(details, dto.FieldError{Field: v.Field, Reason: v.Reason})
	}
	return details
}
