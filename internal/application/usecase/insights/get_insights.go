package insights

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// analysisWindowMonths is how far back transactions are fetched. The engine
// only folds two months, but the wider window keeps the fetch reusable for
// past target months.
const analysisWindowMonths = 6

// GetInsightsInput represents the input for getting budget insights.
type GetInsightsInput struct {
	UserID uuid.UUID

	// TargetMonth is any instant inside the month to analyze. Nil means the
	// current month by the server clock; the engine itself stays clock-free.
	TargetMonth *time.Time
}

// GetInsightsOutput represents the output of getting budget insights.
type GetInsightsOutput struct {
	Analysis *entity.BudgetAnalysis `json:"analysis"`
}

// GetInsightsUseCase computes (or serves from cache) the budget analysis for
// a user's target month.
type GetInsightsUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.AnalysisCache
	now             func() time.Time
}

// NewGetInsightsUseCase creates a new GetInsightsUseCase instance.
func NewGetInsightsUseCase(transactionRepo adapter.TransactionRepository, cache adapter.AnalysisCache) *GetInsightsUseCase {
	return &GetInsightsUseCase{
		transactionRepo: transactionRepo,
		cache:           cache,
		now:             time.Now,
	}
}

// Execute analyzes the user's transactions for the target month. Cache
// failures degrade to recomputation, never to a request failure.
func (uc *GetInsightsUseCase) Execute(
	ctx context.Context,
	input GetInsightsInput,
) (*GetInsightsOutput, error) {
	// 1. Resolve the target month to its first instant
	target := uc.now()
	if input.TargetMonth != nil {
		target = *input.TargetMonth
	}
	monthStart, _ := MonthBounds(target)

	// 2. Serve from cache when possible
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, input.UserID, monthStart)
		if err != nil {
			slog.Warn("Analysis cache read failed, recomputing", "user_id", input.UserID, "error", err)
		} else if cached != nil {
			return &GetInsightsOutput{Analysis: cached}, nil
		}
	}

	// 3. Fetch the transaction window
	since := monthStart.AddDate(0, -analysisWindowMonths, 0)
	transactions, err := uc.transactionRepo.FindByUserSince(ctx, input.UserID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for analysis: %w", err)
	}

	// 4. Run the engine
	analysis := Analyze(transactions, monthStart)

	// 5. Cache best-effort
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, input.UserID, monthStart, analysis); err != nil {
			slog.Warn("Analysis cache write failed", "user_id", input.UserID, "error", err)
		}
	}

	return &GetInsightsOutput{Analysis: analysis}, nil
}
