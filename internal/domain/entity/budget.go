// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget represents a monthly spending limit for a category.
// Month is normalized to the first day of the month.
type Budget struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Month      time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time // Soft-delete support
}

// NewBudget creates a new Budget entity with Month normalized to its first day.
func NewBudget(userID, categoryID uuid.UUID, amount decimal.Decimal, month time.Time) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:         uuid.New(),
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
		Month:      time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location()),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// BudgetWithCategory represents a budget with its associated category.
type BudgetWithCategory struct {
	Budget   *Budget
	Category *Category
}

// BudgetAlertLevel classifies how close spending is to the budgeted amount.
type BudgetAlertLevel string

const (
	BudgetAlertSafe     BudgetAlertLevel = "safe"
	BudgetAlertWarning  BudgetAlertLevel = "warning"
	BudgetAlertDanger   BudgetAlertLevel = "danger"
	BudgetAlertExceeded BudgetAlertLevel = "exceeded"
)
