package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/tudorvana/expense-tracker-api/internal/domain/entity"
	errs "github.com/tudorvana/expense-tracker-api/internal/domain/error"
	coreport "github.com/tudorvana/expense-tracker-api/internal/domain/port/core"
	"github.com/tudorvana/expense-tracker-api/internal/domain/port/persistence"
	"github.com/tudorvana/expense-tracker-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ExpenseRepository implements persistence.ExpenseRepository using GORM
type ExpenseRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewExpenseRepository creates a new ExpenseRepository instance
func NewExpenseRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *ExpenseRepository {
	return &ExpenseRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// expenseModelToEntity converts an expense model to a domain entity
func expenseModelToEntity(expenseModel *model.Expense) *entity.Expense {
	return entity.RestoreExpense(
		expenseModel.ID,
		expenseModel.Title,
		expenseModel.AmountCents,
		expenseModel.Category,
		expenseModel.UserID,
		expenseModel.CreatedAt,
		expenseModel.UpdatedAt,
	)
}

// expenseModelToJoined converts a joined expense row to an entity pair
func expenseModelToJoined(expenseModel *model.Expense) *persistence.ExpenseWithOwner {
	joined := &persistence.ExpenseWithOwner{
		Expense: expenseModelToEntity(expenseModel),
	}
	if expenseModel.User != nil {
		joined.Owner = userModelToEntity(expenseModel.User)
	}
	return joined
}

// handleDatabaseError standardizes database error handling for expense operations
func (r *ExpenseRepository) handleDatabaseError(operation string, err error, expenseID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Expense not found", map[string]any{
			"expense_id": expenseID,
		})
		return errs.ErrExpenseNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"expense_id": expenseID,
		"error":      err.Error(),
	})

	if r.errorClassifier.IsForeignKeyError(err) {
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	}
	if r.errorClassifier.IsConnectionError(err) {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}

// List returns all expenses joined with their owning user
func (r *ExpenseRepository) List(ctx context.Context) ([]*persistence.ExpenseWithOwner, error) {
	var expenseModels []model.Expense
	result := r.db.WithContext(ctx).Joins("User").Find(&expenseModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing expenses", result.Error, 0)
	}

	expenses := make([]*persistence.ExpenseWithOwner, 0, len(expenseModels))
	for i := range expenseModels {
		expenses = append(expenses, expenseModelToJoined(&expenseModels[i]))
	}
	return expenses, nil
}

// GetByID retrieves an expense by ID joined with its owning user
func (r *ExpenseRepository) GetByID(ctx context.Context, id uint64) (*persistence.ExpenseWithOwner, error) {
	var expenseModel model.Expense
	result := r.db.WithContext(ctx).Joins("User").First(&expenseModel, "expenses.id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting expense", result.Error, id)
	}
	return expenseModelToJoined(&expenseModel), nil
}

// ListByUser returns all expenses owned by the given user
func (r *ExpenseRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Expense, error) {
	var expenseModels []model.Expense
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&expenseModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing user expenses", result.Error, 0)
	}

	expenses := make([]*entity.Expense, 0, len(expenseModels))
	for i := range expenseModels {
		expenses = append(expenses, expenseModelToEntity(&expenseModels[i]))
	}
	return expenses, nil
}

// Create inserts a new expense, assigning its ID on the passed entity
func (r *ExpenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.Expense{
		Title:       expense.Title,
		AmountCents: expense.AmountCents(),
		Category:    expense.Category,
		UserID:      expense.UserID,
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&expenseModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating expense", result.Error, 0)
	}

	expense.ID = expenseModel.ID

	r.logger.Debug("Expense row inserted", map[string]any{
		"expense_id": expense.ID,
		"user_id":    expense.UserID,
	})
	return nil
}

// Update replaces the replaceable fields of an existing expense.
// The title column is deliberately not in the update set.
func (r *ExpenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	result := r.db.WithContext(ctx).Model(&model.Expense{}).
		Where("id = ?", expense.ID).
		Updates(map[string]interface{}{
			"amount_cents": expense.AmountCents(),
			"category":     expense.Category,
			"user_id":      expense.UserID,
			"updated_at":   expense.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating expense", result.Error, expense.ID)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Expense not found during update", map[string]any{
			"expense_id": expense.ID,
		})
		return errs.ErrExpenseNotFound
	}

	r.logger.Debug("Expense row updated", map[string]any{
		"expense_id": expense.ID,
	})
	return nil
}

// Delete removes an expense record
func (r *ExpenseRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Expense{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting expense", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrExpenseNotFound
	}

	r.logger.Debug("Expense row deleted", map[string]any{
		"expense_id": id,
	})
	return nil
}

// DeleteByUser removes all expenses owned by the given user
func (r *ExpenseRepository) DeleteByUser(ctx context.Context, userID uint64) (int64, error) {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Expense{})
	if result.Error != nil {
		return 0, r.handleDatabaseError("cascade deleting expenses", result.Error, 0)
	}

	r.logger.Debug("Expense rows deleted for user", map[string]any{
		"user_id": userID,
		"removed": result.RowsAffected,
	})
	return result.RowsAffected, nil
}
