package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// fakeTransactionRepo serves a fixed transaction list for trend tests.
type fakeTransactionRepo struct {
	adapter.TransactionRepository
	transactions []*entity.TransactionWithCategory
	gotSince     time.Time
}

func (f *fakeTransactionRepo) FindByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*entity.TransactionWithCategory, error) {
	f.gotSince = since
	return f.transactions, nil
}

func trendTx(txType entity.TransactionType, amount float64, date time.Time) *entity.TransactionWithCategory {
	return &entity.TransactionWithCategory{
		Transaction: &entity.Transaction{
			Date:   date,
			Amount: decimal.NewFromFloat(amount),
			Type:   txType,
		},
	}
}

func TestGetMonthlyTrends(t *testing.T) {
	now := time.Date(2026, time.June, 20, 10, 0, 0, 0, time.UTC)

	t.Run("produces six months oldest first", func(t *testing.T) {
		repo := &fakeTransactionRepo{}
		uc := NewGetMonthlyTrendsUseCase(repo)
		uc.now = func() time.Time { return now }

		output, err := uc.Execute(context.Background(), GetMonthlyTrendsInput{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Trends) != TrendMonths {
			t.Fatalf("trend points = %d, want %d", len(output.Trends), TrendMonths)
		}
		if output.Trends[0].Month != "Jan 2026" {
			t.Errorf("first month = %q, want Jan 2026", output.Trends[0].Month)
		}
		if output.Trends[TrendMonths-1].Month != "Jun 2026" {
			t.Errorf("last month = %q, want Jun 2026", output.Trends[TrendMonths-1].Month)
		}

		wantSince := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
		if !repo.gotSince.Equal(wantSince) {
			t.Errorf("fetch window start = %s, want %s", repo.gotSince, wantSince)
		}
	})

	t.Run("folds transactions into their months", func(t *testing.T) {
		repo := &fakeTransactionRepo{
			transactions: []*entity.TransactionWithCategory{
				trendTx(entity.TransactionTypeIncome, 5000, time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)),
				trendTx(entity.TransactionTypeExpense, 1500, time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)),
				trendTx(entity.TransactionTypeExpense, 200, time.Date(2026, time.March, 31, 23, 59, 59, 0, time.UTC)),
			},
		}
		uc := NewGetMonthlyTrendsUseCase(repo)
		uc.now = func() time.Time { return now }

		output, err := uc.Execute(context.Background(), GetMonthlyTrendsInput{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		june := output.Trends[5]
		if !june.Income.Equal(decimal.NewFromInt(5000)) || !june.Expenses.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("june = %+v, want income 5000 expenses 1500", june)
		}
		if !june.Balance.Equal(decimal.NewFromInt(3500)) {
			t.Errorf("june balance = %s, want 3500", june.Balance)
		}

		march := output.Trends[2]
		if !march.Expenses.Equal(decimal.NewFromInt(200)) {
			t.Errorf("march expenses = %s, want 200", march.Expenses)
		}

		// Empty months stay zeroed
		february := output.Trends[1]
		if !february.Income.IsZero() || !february.Expenses.IsZero() {
			t.Errorf("february = %+v, want zeroes", february)
		}
	})
}
