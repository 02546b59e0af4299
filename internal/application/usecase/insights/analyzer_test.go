package insights

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

func newTx(txType entity.TransactionType, amount float64, category string, date time.Time) *entity.TransactionWithCategory {
	t := &entity.TransactionWithCategory{
		Transaction: &entity.Transaction{
			Date:   date,
			Amount: decimal.NewFromFloat(amount),
			Type:   txType,
		},
	}
	if category != "" {
		t.Category = &entity.Category{Name: category}
	}
	return t
}

func TestAnalyze_MonthlyData(t *testing.T) {
	target := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	t.Run("balance equals income minus expenses", func(t *testing.T) {
		transactions := []*entity.TransactionWithCategory{
			newTx(entity.TransactionTypeIncome, 5000, "", target),
			newTx(entity.TransactionTypeExpense, 1200.50, "Food & Dining", target),
			newTx(entity.TransactionTypeExpense, 799.50, "Transportation", target),
			newTx(entity.TransactionTypeIncome, 300, "", target.AddDate(0, -1, 0)),
			newTx(entity.TransactionTypeExpense, 100, "Food & Dining", target.AddDate(0, -1, 0)),
		}

		analysis := Analyze(transactions, target)

		for _, month := range []entity.MonthlyData{analysis.CurrentMonth, analysis.PreviousMonth} {
			want := month.Income.Sub(month.Expenses)
			if !month.Balance.Equal(want) {
				t.Errorf("month %s: balance %s, want %s", month.Month, month.Balance, want)
			}
		}

		if !analysis.CurrentMonth.Income.Equal(decimal.NewFromInt(5000)) {
			t.Errorf("current income = %s, want 5000", analysis.CurrentMonth.Income)
		}
		if !analysis.CurrentMonth.Expenses.Equal(decimal.NewFromInt(2000)) {
			t.Errorf("current expenses = %s, want 2000", analysis.CurrentMonth.Expenses)
		}
		if analysis.CurrentMonth.TransactionCount != 3 {
			t.Errorf("current count = %d, want 3", analysis.CurrentMonth.TransactionCount)
		}
		if analysis.PreviousMonth.TransactionCount != 2 {
			t.Errorf("previous count = %d, want 2", analysis.PreviousMonth.TransactionCount)
		}
	})

	t.Run("month labels", func(t *testing.T) {
		analysis := Analyze(nil, target)

		if analysis.CurrentMonth.Month != "March 2026" {
			t.Errorf("current label = %q, want %q", analysis.CurrentMonth.Month, "March 2026")
		}
		if analysis.PreviousMonth.Month != "February 2026" {
			t.Errorf("previous label = %q, want %q", analysis.PreviousMonth.Month, "February 2026")
		}
	})

	t.Run("empty input yields zero sums and fallback insight", func(t *testing.T) {
		analysis := Analyze(nil, target)

		if !analysis.CurrentMonth.Income.IsZero() || !analysis.CurrentMonth.Expenses.IsZero() {
			t.Errorf("expected zero sums, got income %s expenses %s", analysis.CurrentMonth.Income, analysis.CurrentMonth.Expenses)
		}
		if analysis.SavingsRate != 0 {
			t.Errorf("savings rate = %v, want 0", analysis.SavingsRate)
		}
		if len(analysis.Insights) != 1 {
			t.Fatalf("insights = %d, want exactly 1 fallback", len(analysis.Insights))
		}
		if analysis.Insights[0].Title != "Keep Tracking" {
			t.Errorf("fallback title = %q", analysis.Insights[0].Title)
		}
		if analysis.Insights[0].Kind != entity.InsightInfo {
			t.Errorf("fallback kind = %q, want info", analysis.Insights[0].Kind)
		}
	})

	t.Run("idempotent for identical input", func(t *testing.T) {
		transactions := []*entity.TransactionWithCategory{
			newTx(entity.TransactionTypeIncome, 4200, "", target),
			newTx(entity.TransactionTypeExpense, 1337.42, "Shopping", target),
			newTx(entity.TransactionTypeExpense, 58.99, "Entertainment", target.AddDate(0, -1, 2)),
		}

		first := Analyze(transactions, target)
		second := Analyze(transactions, target)

		if !reflect.DeepEqual(first, second) {
			t.Error("expected identical analyses for identical input")
		}
	})
}

func TestAnalyze_MonthBoundaries(t *testing.T) {
	t.Run("December to January rollover", func(t *testing.T) {
		target := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
		lastInstantOfDecember := time.Date(2025, time.December, 31, 23, 59, 59, 999999999, time.UTC)
		firstInstantOfJanuary := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

		analysis := Analyze([]*entity.TransactionWithCategory{
			newTx(entity.TransactionTypeExpense, 10, "Food & Dining", lastInstantOfDecember),
			newTx(entity.TransactionTypeExpense, 20, "Food & Dining", firstInstantOfJanuary),
		}, target)

		if analysis.PreviousMonth.TransactionCount != 1 {
			t.Errorf("previous count = %d, want 1", analysis.PreviousMonth.TransactionCount)
		}
		if analysis.CurrentMonth.TransactionCount != 1 {
			t.Errorf("current count = %d, want 1", analysis.CurrentMonth.TransactionCount)
		}
		if !analysis.PreviousMonth.Expenses.Equal(decimal.NewFromInt(10)) {
			t.Errorf("previous expenses = %s, want 10", analysis.PreviousMonth.Expenses)
		}
		if analysis.PreviousMonth.Month != "December 2025" {
			t.Errorf("previous label = %q, want December 2025", analysis.PreviousMonth.Month)
		}
	})

	t.Run("leap February boundary", func(t *testing.T) {
		target := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
		leapDay := time.Date(2024, time.February, 29, 18, 30, 0, 0, time.UTC)

		analysis := Analyze([]*entity.TransactionWithCategory{
			newTx(entity.TransactionTypeExpense, 75, "Groceries", leapDay),
		}, target)

		if analysis.PreviousMonth.Month != "February 2024" {
			t.Errorf("previous label = %q, want February 2024", analysis.PreviousMonth.Month)
		}
		if analysis.PreviousMonth.TransactionCount != 1 {
			t.Errorf("leap day transaction not classified into February, count = %d", analysis.PreviousMonth.TransactionCount)
		}
	})

	t.Run("transaction outside both months is excluded", func(t *testing.T) {
		target := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

		analysis := Analyze([]*entity.TransactionWithCategory{
			newTx(entity.TransactionTypeExpense, 999, "Travel", target.AddDate(0, -3, 0)),
		}, target)

		if analysis.CurrentMonth.TransactionCount != 0 || analysis.PreviousMonth.TransactionCount != 0 {
			t.Error("expected stale transaction to be excluded from both months")
		}
	})
}

func TestAnalyze_CategorySpending(t *testing.T) {
	target := time.Date(2026, time.May, 15, 0, 0, 0, 0, time.UTC)

	t.Run("groups expenses and sorts by amount descending", func(t *testing.T) {
		analysis := Analyze([]*entity.TransactionWithCategory{
			newTx(entity.TransactionTypeExpense, 100, "Transportation", target),
			newTx(entity.TransactionTypeExpense, 300, "Food & Dining", target),
			newTx(entity.TransactionTypeExpense, 200, "Food & Dining", target),
			newTx(entity.TransactionTypeExpense, 100, "", target),
			newTx(entity.TransactionTypeIncome, 9000, "", target),
		}, target)

		got := analysis.CategorySpending
		if len(got) != 3 {
			t.Fatalf("categories = %d, want 3", len(got))
		}
		if got[0].Category != "Food & Dining" || !got[0].Amount.Equal(decimal.NewFromInt(500)) {
			t.Errorf("top category = %s %s, want Food & Dining 500", got[0].Category, got[0].Amount)
		}
		if got[0].TransactionCount != 2 {
			t.Errorf("top category count = %d, want 2", got[0].TransactionCount)
		}
		// Transportation and Uncategorized tie at 100; first appearance wins.
		if got[1].Category != "Transportation" || got[2].Category != entity.UncategorizedName {
			t.Errorf("tie order = [%s, %s], want [Transportation, Uncategorized]", got[1].Category, got[2].Category)
		}
	})

	t.Run("percentages sum to 100 when expenses exist", func(t *testing.T) {
		analysis := Analyze([]*entity.TransactionWithCategory{
			newTx(entity.TransactionTypeExpense, 33.33, "A", target),
			newTx(entity.TransactionTypeExpense, 33.33, "B", target),
			newTx(entity.TransactionTypeExpense, 33.34, "C", target),
		}, target)

		var sum float64
		for _, c := range analysis.CategorySpending {
			sum += c.Percentage
		}
		if sum < 99.9 || sum > 100.1 {
			t.Errorf("percentages sum = %v, want ~100", sum)
		}
	})

	t.Run("no expense transactions yields no breakdown", func(t *testing.T) {
		analysis := Analyze([]*entity.TransactionWithCategory{
			newTx(entity.TransactionTypeIncome, 100, "", target),
		}, target)

		if len(analysis.CategorySpending) != 0 {
			t.Errorf("categories = %d, want 0", len(analysis.CategorySpending))
		}
	})
}

func TestAnalyze_SpendingTrends(t *testing.T) {
	target := time.Date(2026, time.May, 15, 0, 0, 0, 0, time.UTC)
	previous := target.AddDate(0, -1, 0)

	t.Run("new category yields 100 percent change", func(t *testing.T) {
		analysis := Analyze([]*entity.TransactionWithCategory{
			newTx(entity.TransactionTypeExpense, 100, "Gadgets", target),
		}, target)

		if len(analysis.SpendingTrends) != 1 {
			t.Fatalf("trends = %d, want 1", len(analysis.SpendingTrends))
		}
		trend := analysis.SpendingTrends[0]
		if trend.ChangePercentage != 100 {
			t.Errorf("change percentage = %v, want 100", trend.ChangePercentage)
		}
		if !trend.Change.Equal(decimal.NewFromInt(100)) {
			t.Errorf("change = %s, want 100", trend.Change)
		}
	})

	t.Run("union covers categories from either month", func(t *testing.T) {
		analysis := Analyze([]*entity.TransactionWithCategory{
			newTx(entity.TransactionTypeExpense, 100, "Food & Dining", target),
			newTx(entity.TransactionTypeExpense, 40, "Travel", previous),
		}, target)

		if len(analysis.SpendingTrends) != 2 {
			t.Fatalf("trends = %d, want 2", len(analysis.SpendingTrends))
		}

		byName := map[string]entity.SpendingTrend{}
		for _, tr := range analysis.SpendingTrends {
			byName[tr.Category] = tr
		}

		travel, ok := byName["Travel"]
		if !ok {
			t.Fatal("expected Travel trend from previous month only")
		}
		if travel.ChangePercentage != -100 {
			t.Errorf("Travel change percentage = %v, want -100", travel.ChangePercentage)
		}
		if !travel.Change.Equal(decimal.NewFromInt(-40)) {
			t.Errorf("Travel change = %s, want -40", travel.Change)
		}
	})

	t.Run("sorted by absolute change percentage descending", func(t *testing.T) {
		analysis := Analyze([]*entity.TransactionWithCategory{
			// +50% change
			newTx(entity.TransactionTypeExpense, 150, "Food & Dining", target),
			newTx(entity.TransactionTypeExpense, 100, "Food & Dining", previous),
			// -80% change
			newTx(entity.TransactionTypeExpense, 20, "Shopping", target),
			newTx(entity.TransactionTypeExpense, 100, "Shopping", previous),
		}, target)

		if analysis.SpendingTrends[0].Category != "Shopping" {
			t.Errorf("steepest trend = %s, want Shopping", analysis.SpendingTrends[0].Category)
		}
	})

	t.Run("both months zero for a category is impossible but bounded", func(t *testing.T) {
		analysis := Analyze(nil, target)
		if len(analysis.SpendingTrends) != 0 {
			t.Errorf("trends = %d, want 0", len(analysis.SpendingTrends))
		}
	})
}

func TestAnalyze_SavingsRate(t *testing.T) {
	target := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)

	t.Run("eighty percent scenario", func(t *testing.T) {
		analysis := Analyze([]*entity.TransactionWithCategory{
			newTx(entity.TransactionTypeExpense, 1000, "Food", target),
			newTx(entity.TransactionTypeIncome, 5000, "", target),
		}, target)

		if analysis.SavingsRate != 80 {
			t.Errorf("savings rate = %v, want 80", analysis.SavingsRate)
		}

		var savingsInsights []entity.Insight
		for _, in := range analysis.Insights {
			if in.Title == "Great Savings!" {
				savingsInsights = append(savingsInsights, in)
			}
		}
		if len(savingsInsights) != 1 {
			t.Fatalf("success savings insights = %d, want 1", len(savingsInsights))
		}
		if savingsInsights[0].Kind != entity.InsightSuccess {
			t.Errorf("savings insight kind = %q, want success", savingsInsights[0].Kind)
		}

		cs := analysis.CategorySpending
		if len(cs) != 1 || cs[0].Category != "Food" || cs[0].Percentage != 100 || cs[0].TransactionCount != 1 {
			t.Errorf("category spending = %+v, want single Food at 100%%", cs)
		}
	})

	t.Run("zero income yields zero rate", func(t *testing.T) {
		analysis := Analyze([]*entity.TransactionWithCategory{
			newTx(entity.TransactionTypeExpense, 1000, "Food", target),
		}, target)

		if analysis.SavingsRate != 0 {
			t.Errorf("savings rate = %v, want 0", analysis.SavingsRate)
		}
	})
}
