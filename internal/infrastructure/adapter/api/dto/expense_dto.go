package dto

import (
	"time"

	"github.com/tudorvana/expense-tracker-api/internal/domain/entity"
	"github.com/tudorvana/expense-tracker-api/internal/domain/port/persistence"
)

// CreateExpenseRequest is the payload for creating a new expense.
// Amount is a decimal string with up to two fractional digits.
type CreateExpenseRequest struct {
	Title    string `json:"title"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
	UserID   uint64 `json:"userId"`
}

// UpdateExpenseRequest is the payload for updating an existing expense.
// The ID must match the one in the request path.
type UpdateExpenseRequest struct {
	ID       uint64 `json:"id"`
	Title    string `json:"title"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
	UserID   uint64 `json:"userId"`
}

// ExpenseResponse is the API representation of an expense
type ExpenseResponse struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	Amount    string    `json:"amount"`
	Category  string    `json:"category"`
	UserID    uint64    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OwnerSummary is the embedded owner in joined expense responses
type OwnerSummary struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ExpenseWithOwnerResponse is an expense joined with its owning user
type ExpenseWithOwnerResponse struct {
	ExpenseResponse
	User *OwnerSummary `json:"user,omitempty"`
}

// ExpenseToResponse converts an expense entity to its API representation
func ExpenseToResponse(expense *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:        expense.ID,
		Title:     expense.Title,
		Amount:    expense.Amount(),
		Category:  expense.Category,
		UserID:    expense.UserID,
		CreatedAt: expense.CreatedAt,
		UpdatedAt: expense.UpdatedAt,
	}
}

// ExpensesToResponse converts a slice of expense entities to API representations
func ExpensesToResponse(expenses []*entity.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, 0, len(expenses))
	for _, expense := range expenses {
		responses = append(responses, ExpenseToResponse(expense))
	}
	return responses
}

// JoinedExpenseToResponse converts an expense with its owner to an API representation
func JoinedExpenseToResponse(joined *persistence.ExpenseWithOwner) ExpenseWithOwnerResponse {
	response := ExpenseWithOwnerResponse{
		ExpenseResponse: ExpenseToResponse(joined.Expense),
	}
	if joined.Owner != nil {
		response.User = &OwnerSummary{
			ID:    joined.Owner.ID,
			Name:  joined.Owner.Name,
			Email: joined.Owner.Email,
		}
	}
	return response
}

// JoinedExpensesToResponse converts a slice of expenses with owners to API representations
func JoinedExpensesToResponse(joined []*persistence.ExpenseWithOwner) []ExpenseWithOwnerResponse {
	responses := make([]ExpenseWithOwnerResponse, 0, len(joined))
	for _, item := range joined {
		responses = append(responses, JoinedExpenseToResponse(item))
	}
	return responses
}
