// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Upsert creates a budget or replaces the amount of an existing one for the
// same user, category and month. Runs inside a transaction so concurrent
// upserts for the same key do not produce duplicates.
func (r *budgetRepository) Upsert(ctx context.Context, budget *entity.Budget) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.BudgetModel
		err := tx.
			Where("user_id = ? AND category_id = ? AND month = ?", budget.UserID, budget.CategoryID, budget.Month).
			First(&existing).Error

		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.Create(model.BudgetFromEntity(budget)).Error
			}
			return err
		}

		// Surface the stored identity to the caller.
		budget.ID = existing.ID
		budget.CreatedAt = existing.CreatedAt

		result := tx.Model(&model.BudgetModel{}).
			Where("id = ?", existing.ID).
			Updates(map[string]any{
				"amount":     budget.Amount,
				"updated_at": time.Now().UTC(),
			})
		return result.Error
	})
}

// FindByID retrieves a budget by its ID.
func (r *budgetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}

// FindByUserAndMonth retrieves all budgets for a user in a given month, with category info.
func (r *budgetRepository) FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month time.Time) ([]*entity.BudgetWithCategory, error) {
	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())

	var budgetModels []model.BudgetModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ? AND month = ?", userID, monthStart).
		Order("created_at ASC").
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	budgets := make([]*entity.BudgetWithCategory, len(budgetModels))
	for i, bm := range budgetModels {
		budgets[i] = bm.ToEntityWithCategory()
	}
	return budgets, nil
}

// Delete soft-deletes a budget from the database.
func (r *budgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.BudgetModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
