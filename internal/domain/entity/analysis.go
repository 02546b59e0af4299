package entity

import (
	"github.com/shopspring/decimal"
)

// InsightKind classifies the tone of a generated insight.
type InsightKind string

const (
	InsightSuccess InsightKind = "success"
	InsightWarning InsightKind = "warning"
	InsightInfo    InsightKind = "info"
)

// MonthlyData summarizes the money movements of a single calendar month.
type MonthlyData struct {
	Month            string          `json:"month"`
	Income           decimal.Decimal `json:"income"`
	Expenses         decimal.Decimal `json:"expenses"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int             `json:"transaction_count"`
}

// CategorySpending is one category's share of a month's expenses.
type CategorySpending struct {
	Category         string          `json:"category"`
	Amount           decimal.Decimal `json:"amount"`
	Percentage       float64         `json:"percentage"`
	TransactionCount int             `json:"transaction_count"`
}

// SpendingTrend is the month-over-month expense delta for one category.
type SpendingTrend struct {
	Category         string          `json:"category"`
	CurrentMonth     decimal.Decimal `json:"current_month"`
	PreviousMonth    decimal.Decimal `json:"previous_month"`
	Change           decimal.Decimal `json:"change"`
	ChangePercentage float64         `json:"change_percentage"`
}

// Insight is a generated natural-language observation about a user's spending.
type Insight struct {
	Kind    InsightKind `json:"type"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
	Value   string      `json:"value,omitempty"`
}

// BudgetAnalysis is the full analysis of a target month against the month
// before it. It is a transient value object: computed, returned and discarded
// (or cached as a whole) per call.
type BudgetAnalysis struct {
	CurrentMonth     MonthlyData        `json:"current_month"`
	PreviousMonth    MonthlyData        `json:"previous_month"`
	CategorySpending []CategorySpending `json:"category_spending"`
	SpendingTrends   []SpendingTrend    `json:"spending_trends"`
	Insights         []Insight          `json:"insights"`
	SavingsRate      float64            `json:"savings_rate"`
}
