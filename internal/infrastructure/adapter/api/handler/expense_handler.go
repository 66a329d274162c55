package handler

import (
	"net/http"

	domainerr "github.com/tudorvana/expense-tracker-api/internal/domain/error"
	coreport "github.com/tudorvana/expense-tracker-api/internal/domain/port/core"
	usecaseport "github.com/tudorvana/expense-tracker-api/internal/domain/port/usecase"
	"github.com/tudorvana/expense-tracker-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ExpenseHandler handles expense-related HTTP requests
type ExpenseHandler struct {
	expenses usecaseport.ExpenseUseCase
	logger   coreport.Logger
}

// NewExpenseHandler creates a new expense handler instance
func NewExpenseHandler(expenses usecaseport.ExpenseUseCase, logger coreport.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		expenses: expenses,
		logger:   logger,
	}
}

// ListExpenses handles the GET /expenses endpoint. Each expense is joined
// with its owning user.
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.expenses.ListExpenses(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.JoinedExpensesToResponse(expenses))
}

// GetExpense handles the GET /expenses/:id endpoint
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	expense, err := h.expenses.GetExpense(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.JoinedExpenseToResponse(expense))
}

// CreateExpense handles the POST /expenses endpoint
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	expense, err := h.expenses.CreateExpense(c.Request.Context(), req.Title, req.Amount, req.Category, req.UserID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ExpenseToResponse(expense))
}

// UpdateExpense handles the PUT /expenses/:id endpoint. The title of an
// expense is fixed at creation and is not changed here.
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	if err := h.expenses.UpdateExpense(c.Request.Context(), id, req.ID, req.Amount, req.Category, req.UserID); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteExpense handles the DELETE /expenses/:id endpoint
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.expenses.DeleteExpense(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
