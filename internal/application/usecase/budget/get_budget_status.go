// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// GetBudgetStatusInput represents the input for getting budget status.
type GetBudgetStatusInput struct {
	UserID uuid.UUID
	Month  time.Time
}

// BudgetStatusItem is the per-budget progress for the month.
type BudgetStatusItem struct {
	BudgetID     uuid.UUID
	Category     *entity.Category
	BudgetAmount decimal.Decimal
	Spent        decimal.Decimal
	Remaining    decimal.Decimal
	Percentage   int
	AlertLevel   entity.BudgetAlertLevel
}

// GetBudgetStatusOutput represents the output of getting budget status.
type GetBudgetStatusOutput struct {
	BudgetStatus []*BudgetStatusItem
}

// GetBudgetStatusUseCase computes spending progress against each of the
// user's budgets for a month.
type GetBudgetStatusUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetBudgetStatusUseCase creates a new GetBudgetStatusUseCase instance.
func NewGetBudgetStatusUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
) *GetBudgetStatusUseCase {
	return &GetBudgetStatusUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute computes the status of every budget in the month.
func (uc *GetBudgetStatusUseCase) Execute(ctx context.Context, input GetBudgetStatusInput) (*GetBudgetStatusOutput, error) {
	monthStart := time.Date(input.Month.Year(), input.Month.Month(), 1, 0, 0, 0, 0, input.Month.Location())
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	budgets, err := uc.budgetRepo.FindByUserAndMonth(ctx, input.UserID, monthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	status := make([]*BudgetStatusItem, 0, len(budgets))
	for _, b := range budgets {
		spent, err := uc.transactionRepo.SumExpensesByCategoryAndRange(
			ctx,
			input.UserID,
			b.Budget.CategoryID,
			monthStart,
			monthEnd,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to sum category spending: %w", err)
		}

		status = append(status, newBudgetStatusItem(b, spent))
	}

	return &GetBudgetStatusOutput{
		BudgetStatus: status,
	}, nil
}

func newBudgetStatusItem(b *entity.BudgetWithCategory, spent decimal.Decimal) *BudgetStatusItem {
	rawPercentage, _ := spent.Mul(hundred).Div(b.Budget.Amount).Float64()
	percentage := int(math.Round(rawPercentage))

	return &BudgetStatusItem{
		BudgetID:     b.Budget.ID,
		Category:     b.Category,
		BudgetAmount: b.Budget.Amount,
		Spent:        spent,
		Remaining:    b.Budget.Amount.Sub(spent),
		Percentage:   percentage,
		AlertLevel:   alertLevelFor(rawPercentage),
	}
}

// alertLevelFor maps the raw spent percentage onto the alert ladder.
func alertLevelFor(percentage float64) entity.BudgetAlertLevel {
	switch {
	case percentage >= 110:
		return entity.BudgetAlertExceeded
	case percentage >= 100:
		return entity.BudgetAlertDanger
	case percentage >= 80:
		return entity.BudgetAlertWarning
	default:
		return entity.BudgetAlertSafe
	}
}
