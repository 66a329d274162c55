package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tudorvana/expense-tracker-api/internal/domain/entity"
	errs "github.com/tudorvana/expense-tracker-api/internal/domain/error"
	"github.com/tudorvana/expense-tracker-api/internal/domain/port/persistence"
	"github.com/tudorvana/expense-tracker-api/internal/infrastructure/adapter/api/dto"
	"github.com/tudorvana/expense-tracker-api/internal/infrastructure/adapter/logger"
	usecasemocks "github.com/tudorvana/expense-tracker-api/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupExpenseRouter(t *testing.T) (*gin.Engine, *usecasemocks.MockExpenseUseCase) {
	gin.SetMode(gin.TestMode)

	mockUseCase := usecasemocks.NewMockExpenseUseCase(t)
	h := NewExpenseHandler(mockUseCase, logger.NewNoopLogger())

	router := gin.New()
	router.GET("/expenses", h.ListExpenses)
	router.GET("/expenses/:id", h.GetExpense)
	router.POST("/expenses", h.CreateExpense)
	router.PUT("/expenses/:id", h.UpdateExpense)
	router.DELETE("/expenses/:id", h.DeleteExpense)
	return router, mockUseCase
}

func TestExpenseHandlerListExpenses(t *testing.T) {
	router, mockUseCase := setupExpenseRouter(t)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	mockUseCase.EXPECT().ListExpenses(mock.Anything).Return([]*persistence.ExpenseWithOwner{
		{
			Expense: entity.RestoreExpense(1, "Rent", 120000, "Housing", 5, now, now),
			Owner:   &entity.User{ID: 5, Name: "Alice", Email: "alice@example.com"},
		},
	}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/expenses", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []dto.ExpenseWithOwnerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "1200.00", got[0].Amount)
	require.NotNil(t, got[0].User)
	assert.Equal(t, "Alice", got[0].User.Name)
}

func TestExpenseHandlerGetExpense(t *testing.T) {
	t.Run("Existing expense", func(t *testing.T) {
		router, mockUseCase := setupExpenseRouter(t)

		now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		mockUseCase.EXPECT().GetExpense(mock.Anything, uint64(1)).Return(&persistence.ExpenseWithOwner{
			Expense: entity.RestoreExpense(1, "Rent", 120000, "Housing", 5, now, now),
			Owner:   &entity.User{ID: 5, Name: "Alice", Email: "alice@example.com"},
		}, nil).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/expenses/1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got dto.ExpenseWithOwnerResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, uint64(1), got.ID)
		assert.Equal(t, uint64(5), got.UserID)
	})

	t.Run("Unknown expense", func(t *testing.T) {
		router, mockUseCase := setupExpenseRouter(t)

		mockUseCase.EXPECT().GetExpense(mock.Anything, uint64(99)).Return(nil, errs.ErrExpenseNotFound).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/expenses/99", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var got dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, errs.CodeExpenseNotFound, got.Code)
	})
}

func TestExpenseHandlerCreateExpense(t *testing.T) {
	t.Run("Successful creation", func(t *testing.T) {
		router, mockUseCase := setupExpenseRouter(t)

		now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		created := entity.RestoreExpense(3, "Groceries", 4599, "Food", 5, now, now)
		mockUseCase.EXPECT().CreateExpense(mock.Anything, "Groceries", "45.99", "Food", uint64(5)).Return(created, nil).Once()

		body, _ := json.Marshal(dto.CreateExpenseRequest{Title: "Groceries", Amount: "45.99", Category: "Food", UserID: 5})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/expenses", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var got dto.ExpenseResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, uint64(3), got.ID)
	})

	t.Run("Dangling user id", func(t *testing.T) {
		router, mockUseCase := setupExpenseRouter(t)

		mockUseCase.EXPECT().CreateExpense(mock.Anything, "Groceries", "45.99", "Food", uint64(99)).Return(nil, errs.NewValidationError("expense", []errs.FieldViolation{
			{Field: "userId", Reason: "does not reference an existing user"},
		})).Once()

		body, _ := json.Marshal(dto.CreateExpenseRequest{Title: "Groceries", Amount: "45.99", Category: "Food", UserID: 99})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/expenses", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var got dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, errs.CodeValidation, got.Code)
		require.Len(t, got.Details, 1)
		assert.Equal(t, "userId", got.Details[0].Field)
	})

	t.Run("Unexpected failure is opaque", func(t *testing.T) {
		router, mockUseCase := setupExpenseRouter(t)

		mockUseCase.EXPECT().CreateExpense(mock.Anything, "Groceries", "45.99", "Food", uint64(5)).Return(nil, errors.New("connection reset")).Once()

		body, _ := json.Marshal(dto.CreateExpenseRequest{Title: "Groceries", Amount: "45.99", Category: "Food", UserID: 5})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/expenses", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var got dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, errs.CodeInternalServer, got.Code)
		assert.NotContains(t, got.Message, "connection reset")
	})
}

func TestExpenseHandlerUpdateExpense(t *testing.T) {
	t.Run("Successful update", func(t *testing.T) {
		router, mockUseCase := setupExpenseRouter(t)

		mockUseCase.EXPECT().UpdateExpense(mock.Anything, uint64(3), uint64(3), "10.00", "Food", uint64(5)).Return(nil).Once()

		body, _ := json.Marshal(dto.UpdateExpenseRequest{ID: 3, Title: "ignored", Amount: "10.00", Category: "Food", UserID: 5})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/expenses/3", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.Bytes())
	})

	t.Run("Mismatched IDs", func(t *testing.T) {
		router, mockUseCase := setupExpenseRouter(t)

		mockUseCase.EXPECT().UpdateExpense(mock.Anything, uint64(3), uint64(7), "10.00", "Food", uint64(5)).Return(errs.NewIDMismatchError("expense", 3, 7)).Once()

		body, _ := json.Marshal(dto.UpdateExpenseRequest{ID: 7, Amount: "10.00", Category: "Food", UserID: 5})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/expenses/3", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown expense", func(t *testing.T) {
		router, mockUseCase := setupExpenseRouter(t)

		mockUseCase.EXPECT().UpdateExpense(mock.Anything, uint64(99), uint64(99), "10.00", "Food", uint64(5)).Return(errs.ErrExpenseNotFound).Once()

		body, _ := json.Marshal(dto.UpdateExpenseRequest{ID: 99, Amount: "10.00", Category: "Food", UserID: 5})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/expenses/99", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestExpenseHandlerDeleteExpense(t *testing.T) {
	t.Run("Successful delete", func(t *testing.T) {
		router, mockUseCase := setupExpenseRouter(t)

		mockUseCase.EXPECT().DeleteExpense(mock.Anything, uint64(3)).Return(nil).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/expenses/3", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Unknown expense", func(t *testing.T) {
		router, mockUseCase := setupExpenseRouter(t)

		mockUseCase.EXPECT().DeleteExpense(mock.Anything, uint64(99)).Return(errs.ErrExpenseNotFound).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/expenses/99", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
