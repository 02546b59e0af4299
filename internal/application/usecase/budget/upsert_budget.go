// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// UpsertBudgetInput represents the input for creating or replacing a budget.
type UpsertBudgetInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Month      time.Time
}

// UpsertBudgetOutput represents the output of creating or replacing a budget.
type UpsertBudgetOutput struct {
	Budget *entity.Budget
}

// UpsertBudgetUseCase handles budget creation and replacement. One budget
// exists per user, category and month; setting it again replaces the amount.
type UpsertBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpsertBudgetUseCase creates a new UpsertBudgetUseCase instance.
func NewUpsertBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
) *UpsertBudgetUseCase {
	return &UpsertBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the budget upsert.
func (uc *UpsertBudgetUseCase) Execute(ctx context.Context, input UpsertBudgetInput) (*UpsertBudgetOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"budget amount must be positive",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	if input.Month.IsZero() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"budget month is required",
			domainerror.ErrInvalidBudgetMonth,
		)
	}

	// The budgeted category must exist and belong to the user
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil || category.UserID != input.UserID {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetCategoryNotFound,
			"category not found",
			domainerror.ErrBudgetCategoryNotFound,
		)
	}

	budget := entity.NewBudget(input.UserID, input.CategoryID, input.Amount, input.Month)

	if err := uc.budgetRepo.Upsert(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to upsert budget: %w", err)
	}

	return &UpsertBudgetOutput{
		Budget: budget,
	}, nil
}
