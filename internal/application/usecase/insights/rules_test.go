package insights

import (
	"testing"
	"time"

	"github.com/budgetwise/backend/internal/domain/entity"
)

func findInsight(insights []entity.Insight, title string) *entity.Insight {
	for i := range insights {
		if insights[i].Title == title {
			return &insights[i]
		}
	}
	return nil
}

func TestGenerateInsights_SavingsRateRule(t *testing.T) {
	target := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)

	t.Run("negative savings rate warns", func(t *testing.T) {
		analysis := Analyze([]*entity.TransactionWithCategory{
			newTx(entity.TransactionTypeIncome, 1000, "", target),
			newTx(entity.TransactionTypeExpense, 1500, "Rent", target),
		}, target)

		in := findInsight(analysis.Insights, "Spending Alert")
		if in == nil {
			t.Fatal("expected Spending Alert insight")
		}
		if in.Kind != entity.InsightWarning {
			t.Errorf("kind = %q, want warning", in.Kind)
		}
		if in.Value != "50.0% over budget" {
			t.Errorf("value = %q, want %q", in.Value, "50.0% over budget")
		}
	})

	t.Run("low savings rate informs", func(t *testing.T) {
		analysis := Analyze([]*entity.TransactionWithCategory{
			newTx(entity.TransactionTypeIncome, 1000, "", target),
			newTx(entity.TransactionTypeExpense, 950, "Rent", target),
		}, target)

		in := findInsight(analysis.Insights, "Low Savings")
		if in == nil {
			t.Fatal("expected Low Savings insight")
		}
		if in.Kind != entity.InsightInfo {
			t.Errorf("kind = %q, want info", in.Kind)
		}
		if in.Value != "5.0%" {
			t.Errorf("value = %q, want 5.0%%", in.Value)
		}
	})

	t.Run("no income means no savings insight", func(t *testing.T) {
		analysis := Analyze([]*entity.TransactionWithCategory{
			newTx(entity.TransactionTypeExpense, 500, "Rent", target),
		}, target)

		for _, title := range []string{"Great Savings!", "Spending Alert", "Low Savings"} {
			if findInsight(analysis.Insights, title) != nil {
				t.Errorf("unexpected %q insight without income", title)
			}
		}
	})

	t.Run("middling savings rate stays silent", func(t *testing.T) {
		// 15% sits between the low (<10) and great (>=20) thresholds.
		analysis := Analyze([]*entity.TransactionWithCategory{
			newTx(entity.TransactionTypeIncome, 1000, "", target),
			newTx(entity.TransactionTypeExpense, 850, "Rent", target),
		}, target)

		for _, title := range []string{"Great Savings!", "Spending Alert", "Low Savings"} {
			if findInsight(analysis.Insights, title) != nil {
				t.Errorf("unexpected %q insight at 15%% savings", title)
			}
		}
	})
}

func TestGenerateInsights_ExpenseComparisonRule(t *testing.T) {
	target := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	previous := target.AddDate(0, -1, 0)

	t.Run("increase over ten percent warns", func(t *testing.T) {
		analysis := Analyze([]*entity.TransactionWithCategory{
			newTx(entity.TransactionTypeExpense, 1200, "Rent", target),
			newTx(entity.TransactionTypeExpense, 1000, "Rent", previous),
		}, target)

		in := findInsight(analysis.Insights, "Increased Spending")
		if in == nil {
			t.Fatal("expected Increased Spending insight")
		}
		if in.Kind != entity.InsightWarning {
			t.Errorf("kind = %q, want warning", in.Kind)
		}
		if in.Value != "+₹200.00" {
			t.Errorf("value = %q, want +₹200.00", in.Value)
		}
	})

	t.Run("decrease over ten percent celebrates", func(t *testing.T) {
		analysis := Analyze([]*entity.TransactionWithCategory{
			newTx(entity.TransactionTypeExpense, 800, "Rent", target),
			newTx(entity.TransactionTypeExpense, 1000, "Rent", previous),
		}, target)

		in := findInsight(analysis.Insights, "Reduced Spending")
		if in == nil {
			t.Fatal("expected Reduced Spending insight")
		}
		if in.Kind != entity.InsightSuccess {
			t.Errorf("kind = %q, want success", in.Kind)
		}
		if in.Value != "-₹200.00" {
			t.Errorf("value = %q, want -₹200.00", in.Value)
		}
	})

	t.Run("small change stays silent", func(t *testing.T) {
		analysis := Analyze([]*entity.TransactionWithCategory{
			newTx(entity.TransactionTypeExpense, 1050, "Rent", target),
			newTx(entity.TransactionTypeExpense, 1000, "Rent", previous),
		}, target)

		if findInsight(analysis.Insights, "Increased Spending") != nil {
			t.Error("unexpected insight for a 5% change")
		}
	})

	t.Run("no previous expenses stays silent", func(t *testing.T) {
		analysis := Analyze([]*entity.TransactionWithCategory{
			newTx(entity.TransactionTypeExpense, 1000, "Rent", target),
		}, target)

		if findInsight(analysis.Insights, "Increased Spending") != nil {
			t.Error("unexpected comparison insight without a previous month")
		}
	})
}

func TestGenerateInsights_DominantCategoryRule(t *testing.T) {
	target := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)

	t.Run("top category over forty percent informs", func(t *testing.T) {
		analysis := Analyze([]*entity.TransactionWithCategory{
			newTx(entity.TransactionTypeExpense, 600, "Food & Dining", target),
			newTx(entity.TransactionTypeExpense, 400, "Transportation", target),
		}, target)

		in := findInsight(analysis.Insights, "High Category Spending")
		if in == nil {
			t.Fatal("expected High Category Spending insight")
		}
		if in.Value != "₹600.00" {
			t.Errorf("value = %q, want ₹600.00", in.Value)
		}
	})

	t.Run("even split stays silent", func(t *testing.T) {
		analysis := Analyze([]*entity.TransactionWithCategory{
			newTx(entity.TransactionTypeExpense, 250, "A", target),
			newTx(entity.TransactionTypeExpense, 250, "B", target),
			newTx(entity.TransactionTypeExpense, 250, "C", target),
			newTx(entity.TransactionTypeExpense, 250, "D", target),
		}, target)

		if findInsight(analysis.Insights, "High Category Spending") != nil {
			t.Error("unexpected dominant category insight at 25% shares")
		}
	})
}

func TestGenerateInsights_SpendingSpikeRule(t *testing.T) {
	target := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	previous := target.AddDate(0, -1, 0)

	t.Run("sharp increase above floor warns", func(t *testing.T) {
		analysis := Analyze([]*entity.TransactionWithCategory{
			newTx(entity.TransactionTypeExpense, 200, "Entertainment", target),
			newTx(entity.TransactionTypeExpense, 100, "Entertainment", previous),
		}, target)

		in := findInsight(analysis.Insights, "Entertainment Spike")
		if in == nil {
			t.Fatal("expected Entertainment Spike insight")
		}
		if in.Kind != entity.InsightWarning {
			t.Errorf("kind = %q, want warning", in.Kind)
		}
		if in.Value != "+₹100.00" {
			t.Errorf("value = %q, want +₹100.00", in.Value)
		}
	})

	t.Run("sharp decrease is deliberately silent", func(t *testing.T) {
		analysis := Analyze([]*entity.TransactionWithCategory{
			newTx(entity.TransactionTypeExpense, 60, "Entertainment", target),
			newTx(entity.TransactionTypeExpense, 200, "Entertainment", previous),
		}, target)

		for _, in := range analysis.Insights {
			if in.Title == "Entertainment Spike" {
				t.Error("unexpected spike insight for a decrease")
			}
		}
	})

	t.Run("small current amount is ignored", func(t *testing.T) {
		// +400% but only ₹50 spent; below the amount floor.
		analysis := Analyze([]*entity.TransactionWithCategory{
			newTx(entity.TransactionTypeExpense, 50, "Snacks", target),
			newTx(entity.TransactionTypeExpense, 10, "Snacks", previous),
		}, target)

		if findInsight(analysis.Insights, "Snacks Spike") != nil {
			t.Error("unexpected spike insight below the amount floor")
		}
	})

	t.Run("only the steepest significant trend is considered", func(t *testing.T) {
		analysis := Analyze([]*entity.TransactionWithCategory{
			// -90%: steepest, but a decrease, so nothing fires.
			newTx(entity.TransactionTypeExpense, 100, "Shopping", target),
			newTx(entity.TransactionTypeExpense, 1000, "Shopping", previous),
			// +50%: significant increase, but not the steepest.
			newTx(entity.TransactionTypeExpense, 300, "Food & Dining", target),
			newTx(entity.TransactionTypeExpense, 200, "Food & Dining", previous),
		}, target)

		if findInsight(analysis.Insights, "Food & Dining Spike") != nil {
			t.Error("spike rule must stop at the steepest significant trend")
		}
		if findInsight(analysis.Insights, "Shopping Spike") != nil {
			t.Error("decrease must not produce a spike insight")
		}
	})
}

func TestGenerateInsights_IncomeComparisonRule(t *testing.T) {
	target := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	previous := target.AddDate(0, -1, 0)

	t.Run("income increase celebrates", func(t *testing.T) {
		analysis := Analyze([]*entity.TransactionWithCategory{
			newTx(entity.TransactionTypeIncome, 6000, "", target),
			newTx(entity.TransactionTypeIncome, 5000, "", previous),
		}, target)

		in := findInsight(analysis.Insights, "Income Increase")
		if in == nil {
			t.Fatal("expected Income Increase insight")
		}
		if in.Kind != entity.InsightSuccess {
			t.Errorf("kind = %q, want success", in.Kind)
		}
		if in.Value != "+₹1000.00" {
			t.Errorf("value = %q, want +₹1000.00", in.Value)
		}
	})

	t.Run("income decrease informs rather than warns", func(t *testing.T) {
		analysis := Analyze([]*entity.TransactionWithCategory{
			newTx(entity.TransactionTypeIncome, 4000, "", target),
			newTx(entity.TransactionTypeIncome, 5000, "", previous),
		}, target)

		in := findInsight(analysis.Insights, "Income Decrease")
		if in == nil {
			t.Fatal("expected Income Decrease insight")
		}
		if in.Kind != entity.InsightInfo {
			t.Errorf("kind = %q, want info", in.Kind)
		}
		if in.Value != "-₹1000.00" {
			t.Errorf("value = %q, want -₹1000.00", in.Value)
		}
	})
}
