// Package insights implements the budget analytics engine: a pure fold of a
// user's transactions into monthly summaries, a category breakdown, trend
// deltas and generated insight messages.
package insights

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Analyze folds transactions into a BudgetAnalysis of the target month
// against the month immediately before it. Transactions outside both months
// are ignored. Pure function: no I/O, no clock, safe for concurrent calls.
func Analyze(transactions []*entity.TransactionWithCategory, targetMonth time.Time) *entity.BudgetAnalysis {
	currentStart, currentEnd := MonthBounds(targetMonth)
	previousStart, previousEnd := MonthBounds(currentStart.AddDate(0, -1, 0))

	currentSet := filterByRange(transactions, currentStart, currentEnd)
	previousSet := filterByRange(transactions, previousStart, previousEnd)

	currentMonth := calculateMonthlyData(currentSet, currentStart.Format("January 2006"))
	previousMonth := calculateMonthlyData(previousSet, previousStart.Format("January 2006"))

	categorySpending := calculateCategorySpending(currentSet)
	spendingTrends := calculateSpendingTrends(currentSet, previousSet)
	insights := generateInsights(currentMonth, previousMonth, categorySpending, spendingTrends)

	var savingsRate float64
	if currentMonth.Income.IsPositive() {
		savingsRate, _ = currentMonth.Balance.Mul(hundred).Div(currentMonth.Income).Round(2).Float64()
	}

	return &entity.BudgetAnalysis{
		CurrentMonth:     currentMonth,
		PreviousMonth:    previousMonth,
		CategorySpending: categorySpending,
		SpendingTrends:   spendingTrends,
		Insights:         insights,
		SavingsRate:      savingsRate,
	}
}

// MonthBounds returns the first and last instant of t's calendar month.
// Subtracting a month from the returned start is always safe because the
// start sits on day 1, so AddDate never spills into a neighbouring month.
func MonthBounds(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// filterByRange keeps transactions dated within [start, end], inclusive on
// both sides so the last instant of a month still belongs to it.
func filterByRange(transactions []*entity.TransactionWithCategory, start, end time.Time) []*entity.TransactionWithCategory {
	filtered := make([]*entity.TransactionWithCategory, 0, len(transactions))
	for _, t := range transactions {
		if t.Transaction.Date.Before(start) || t.Transaction.Date.After(end) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

func calculateMonthlyData(transactions []*entity.TransactionWithCategory, monthLabel string) entity.MonthlyData {
	income := decimal.Zero
	expenses := decimal.Zero

	for _, t := range transactions {
		switch t.Transaction.Type {
		case entity.TransactionTypeIncome:
			income = income.Add(t.Transaction.Amount)
		case entity.TransactionTypeExpense:
			expenses = expenses.Add(t.Transaction.Amount)
		}
	}

	return entity.MonthlyData{
		Month:            monthLabel,
		Income:           income,
		Expenses:         expenses,
		Balance:          income.Sub(expenses),
		TransactionCount: len(transactions),
	}
}

// categoryName resolves the grouping key for a transaction.
func categoryName(t *entity.TransactionWithCategory) string {
	if name := t.CategoryName(); name != "" {
		return name
	}
	return entity.UncategorizedName
}

type categoryTotal struct {
	amount decimal.Decimal
	count  int
}

func calculateCategorySpending(transactions []*entity.TransactionWithCategory) []entity.CategorySpending {
	totals := make(map[string]categoryTotal)
	// Map iteration order is random; keep first-appearance order so that
	// equal-amount categories sort deterministically.
	order := make([]string, 0)
	totalExpenses := decimal.Zero

	for _, t := range transactions {
		if t.Transaction.Type != entity.TransactionTypeExpense {
			continue
		}
		name := categoryName(t)
		current, seen := totals[name]
		if !seen {
			order = append(order, name)
		}
		totals[name] = categoryTotal{
			amount: current.amount.Add(t.Transaction.Amount),
			count:  current.count + 1,
		}
		totalExpenses = totalExpenses.Add(t.Transaction.Amount)
	}

	spending := make([]entity.CategorySpending, 0, len(order))
	for _, name := range order {
		total := totals[name]

		var percentage float64
		if totalExpenses.IsPositive() {
			percentage, _ = total.amount.Mul(hundred).Div(totalExpenses).Round(2).Float64()
		}

		spending = append(spending, entity.CategorySpending{
			Category:         name,
			Amount:           total.amount,
			Percentage:       percentage,
			TransactionCount: total.count,
		})
	}

	sort.SliceStable(spending, func(i, j int) bool {
		return spending[i].Amount.GreaterThan(spending[j].Amount)
	})

	return spending
}

func calculateSpendingTrends(currentSet, previousSet []*entity.TransactionWithCategory) []entity.SpendingTrend {
	currentTotals, currentOrder := expenseTotalsByCategory(currentSet)
	previousTotals, previousOrder := expenseTotalsByCategory(previousSet)

	// Union of both months' categories, current month's first.
	union := make([]string, 0, len(currentOrder)+len(previousOrder))
	union = append(union, currentOrder...)
	for _, name := range previousOrder {
		if _, ok := currentTotals[name]; !ok {
			union = append(union, name)
		}
	}

	trends := make([]entity.SpendingTrend, 0, len(union))
	for _, name := range union {
		current := currentTotals[name]
		previous := previousTotals[name]
		change := current.Sub(previous)

		var changePercentage float64
		switch {
		case previous.IsPositive():
			changePercentage, _ = change.Mul(hundred).Div(previous).Round(2).Float64()
		case current.IsPositive():
			changePercentage = 100
		}

		trends = append(trends, entity.SpendingTrend{
			Category:         name,
			CurrentMonth:     current,
			PreviousMonth:    previous,
			Change:           change,
			ChangePercentage: changePercentage,
		})
	}

	sort.SliceStable(trends, func(i, j int) bool {
		return absFloat(trends[i].ChangePercentage) > absFloat(trends[j].ChangePercentage)
	})

	return trends
}

func expenseTotalsByCategory(transactions []*entity.TransactionWithCategory) (map[string]decimal.Decimal, []string) {
	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)

	for _, t := range transactions {
		if t.Transaction.Type != entity.TransactionTypeExpense {
			continue
		}
		name := categoryName(t)
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] = totals[name].Add(t.Transaction.Amount)
	}

	return totals, order
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
