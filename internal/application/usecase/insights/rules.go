package insights

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

var (
	ten                = decimal.NewFromInt(10)
	twenty             = decimal.NewFromInt(20)
	spikeAmountFloor   = decimal.NewFromInt(50)
	spikePercentFloor  = 30.0
	dominantShareFloor = 40.0
)

// generateInsights runs the insight rules in display order. Rules are
// independent and append-only; only the fallback depends on whether any
// earlier rule fired, so it must run last.
func generateInsights(
	currentMonth entity.MonthlyData,
	previousMonth entity.MonthlyData,
	categorySpending []entity.CategorySpending,
	spendingTrends []entity.SpendingTrend,
) []entity.Insight {
	insights := make([]entity.Insight, 0, 4)

	insights = appendSavingsRateInsight(insights, currentMonth)
	insights = appendExpenseComparisonInsight(insights, currentMonth, previousMonth)
	insights = appendDominantCategoryInsight(insights, categorySpending)
	insights = appendSpendingSpikeInsight(insights, spendingTrends)
	insights = appendIncomeComparisonInsight(insights, currentMonth, previousMonth)

	if len(insights) == 0 {
		insights = append(insights, entity.Insight{
			Kind:    entity.InsightInfo,
			Title:   "Keep Tracking",
			Message: "Your spending is stable. Continue monitoring your expenses to maintain good financial health.",
		})
	}

	return insights
}

// appendSavingsRateInsight fires exactly one of its three branches, and only
// when the month had income.
func appendSavingsRateInsight(insights []entity.Insight, currentMonth entity.MonthlyData) []entity.Insight {
	if !currentMonth.Income.IsPositive() {
		return insights
	}

	savingsRate := currentMonth.Balance.Mul(hundred).Div(currentMonth.Income)

	switch {
	case savingsRate.GreaterThanOrEqual(twenty):
		return append(insights, entity.Insight{
			Kind:    entity.InsightSuccess,
			Title:   "Great Savings!",
			Message: fmt.Sprintf("You're saving %s%% of your income this month. Keep it up!", savingsRate.StringFixed(1)),
			Value:   fmt.Sprintf("%s%%", savingsRate.StringFixed(1)),
		})
	case savingsRate.IsNegative():
		return append(insights, entity.Insight{
			Kind:    entity.InsightWarning,
			Title:   "Spending Alert",
			Message: "You're spending more than you earn this month. Consider reducing expenses.",
			Value:   fmt.Sprintf("%s%% over budget", savingsRate.Abs().StringFixed(1)),
		})
	case savingsRate.LessThan(ten):
		return append(insights, entity.Insight{
			Kind:    entity.InsightInfo,
			Title:   "Low Savings",
			Message: fmt.Sprintf("You're only saving %s%% this month. Try to save at least 20%% of your income.", savingsRate.StringFixed(1)),
			Value:   fmt.Sprintf("%s%%", savingsRate.StringFixed(1)),
		})
	}

	return insights
}

// appendExpenseComparisonInsight flags a >10% swing in total expenses.
// An increase warns, a decrease celebrates.
func appendExpenseComparisonInsight(insights []entity.Insight, currentMonth, previousMonth entity.MonthlyData) []entity.Insight {
	if !previousMonth.Expenses.IsPositive() {
		return insights
	}

	change := currentMonth.Expenses.Sub(previousMonth.Expenses)
	changePercentage := change.Mul(hundred).Div(previousMonth.Expenses)

	if !changePercentage.Abs().GreaterThan(ten) {
		return insights
	}

	if change.IsPositive() {
		return append(insights, entity.Insight{
			Kind:    entity.InsightWarning,
			Title:   "Increased Spending",
			Message: fmt.Sprintf("You spent %s%% more this month compared to last month.", changePercentage.Abs().StringFixed(1)),
			Value:   fmt.Sprintf("+₹%s", change.StringFixed(2)),
		})
	}

	return append(insights, entity.Insight{
		Kind:    entity.InsightSuccess,
		Title:   "Reduced Spending",
		Message: fmt.Sprintf("You spent %s%% less this month. Great job!", changePercentage.Abs().StringFixed(1)),
		Value:   fmt.Sprintf("-₹%s", change.Abs().StringFixed(2)),
	})
}

func appendDominantCategoryInsight(insights []entity.Insight, categorySpending []entity.CategorySpending) []entity.Insight {
	if len(categorySpending) == 0 {
		return insights
	}

	top := categorySpending[0]
	if top.Percentage <= dominantShareFloor {
		return insights
	}

	return append(insights, entity.Insight{
		Kind:    entity.InsightInfo,
		Title:   "High Category Spending",
		Message: fmt.Sprintf("%s accounts for %.1f%% of your expenses. Consider if this aligns with your priorities.", top.Category, top.Percentage),
		Value:   fmt.Sprintf("₹%s", top.Amount.StringFixed(2)),
	})
}

// appendSpendingSpikeInsight looks at the steepest significant trend delta
// and warns on increases only. A sharp decrease is deliberately silent.
func appendSpendingSpikeInsight(insights []entity.Insight, spendingTrends []entity.SpendingTrend) []entity.Insight {
	for _, trend := range spendingTrends {
		if absFloat(trend.ChangePercentage) <= spikePercentFloor || !trend.CurrentMonth.GreaterThan(spikeAmountFloor) {
			continue
		}

		// Trends are sorted by |change percentage|, so the first significant
		// one is the steepest. Nothing else gets reported.
		if trend.ChangePercentage > 0 {
			insights = append(insights, entity.Insight{
				Kind:    entity.InsightWarning,
				Title:   fmt.Sprintf("%s Spike", trend.Category),
				Message: fmt.Sprintf("Your %s spending increased by %.1f%% this month.", trend.Category, trend.ChangePercentage),
				Value:   fmt.Sprintf("+₹%s", trend.Change.StringFixed(2)),
			})
		}
		break
	}

	return insights
}

// appendIncomeComparisonInsight mirrors the expense comparison with opposite
// polarity: more income is good news.
func appendIncomeComparisonInsight(insights []entity.Insight, currentMonth, previousMonth entity.MonthlyData) []entity.Insight {
	if !previousMonth.Income.IsPositive() {
		return insights
	}

	change := currentMonth.Income.Sub(previousMonth.Income)
	changePercentage := change.Mul(hundred).Div(previousMonth.Income)

	if !changePercentage.Abs().GreaterThan(ten) {
		return insights
	}

	if change.IsPositive() {
		return append(insights, entity.Insight{
			Kind:    entity.InsightSuccess,
			Title:   "Income Increase",
			Message: fmt.Sprintf("Your income increased by %s%% this month.", changePercentage.StringFixed(1)),
			Value:   fmt.Sprintf("+₹%s", change.StringFixed(2)),
		})
	}

	return append(insights, entity.Insight{
		Kind:    entity.InsightInfo,
		Title:   "Income Decrease",
		Message: fmt.Sprintf("Your income decreased by %s%% this month.", changePercentage.Abs().StringFixed(1)),
		Value:   fmt.Sprintf("-₹%s", change.Abs().StringFixed(2)),
	})
}
