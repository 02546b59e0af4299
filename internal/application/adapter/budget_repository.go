// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Upsert creates a budget or replaces the amount of an existing one for the
	// same user, category and month.
	Upsert(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindByUserAndMonth retrieves all budgets for a user in a given month,
	// with category info.
	FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month time.Time) ([]*entity.BudgetWithCategory, error)

	// Delete soft-deletes a budget from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
