// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/application/usecase/insights"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// TrendMonths is the number of trailing months in the trends series.
const TrendMonths = 6

// GetMonthlyTrendsInput represents the input for getting monthly trends.
type GetMonthlyTrendsInput struct {
	UserID uuid.UUID
}

// MonthlyTrendPoint is one month of the income/expense series.
type MonthlyTrendPoint struct {
	Month    string          `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

// GetMonthlyTrendsOutput represents the output of getting monthly trends.
type GetMonthlyTrendsOutput struct {
	Trends []MonthlyTrendPoint `json:"trends"`
}

// GetMonthlyTrendsUseCase builds the trailing income/expense series for the
// dashboard chart, oldest month first.
type GetMonthlyTrendsUseCase struct {
	transactionRepo adapter.TransactionRepository
	now             func() time.Time
}

// NewGetMonthlyTrendsUseCase creates a new GetMonthlyTrendsUseCase instance.
func NewGetMonthlyTrendsUseCase(transactionRepo adapter.TransactionRepository) *GetMonthlyTrendsUseCase {
	return &GetMonthlyTrendsUseCase{
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
}

// Execute computes the trailing monthly series with a single fetch covering
// the whole window. Months without transactions appear with zero values.
func (uc *GetMonthlyTrendsUseCase) Execute(ctx context.Context, input GetMonthlyTrendsInput) (*GetMonthlyTrendsOutput, error) {
	currentStart, _ := insights.MonthBounds(uc.now())
	windowStart := currentStart.AddDate(0, -(TrendMonths - 1), 0)

	transactions, err := uc.transactionRepo.FindByUserSince(ctx, input.UserID, windowStart)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for trends: %w", err)
	}

	trends := make([]MonthlyTrendPoint, 0, TrendMonths)
	for i := 0; i < TrendMonths; i++ {
		start := windowStart.AddDate(0, i, 0)
		_, end := insights.MonthBounds(start)

		income := decimal.Zero
		expenses := decimal.Zero
		for _, t := range transactions {
			if t.Transaction.Date.Before(start) || t.Transaction.Date.After(end) {
				continue
			}
			switch t.Transaction.Type {
			case entity.TransactionTypeIncome:
				income = income.Add(t.Transaction.Amount)
			case entity.TransactionTypeExpense:
				expenses = expenses.Add(t.Transaction.Amount)
			}
		}

		trends = append(trends, MonthlyTrendPoint{
			Month:    start.Format("Jan 2006"),
			Income:   income,
			Expenses: expenses,
			Balance:  income.Sub(expenses),
		})
	}

	return &GetMonthlyTrendsOutput{
		Trends: trends,
	}, nil
}
