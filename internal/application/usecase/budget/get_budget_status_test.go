package budget

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

func statusFor(t *testing.T, budgetAmount, spent float64) *BudgetStatusItem {
	t.Helper()
	b := &entity.BudgetWithCategory{
		Budget: &entity.Budget{
			ID:     uuid.New(),
			Amount: decimal.NewFromFloat(budgetAmount),
		},
	}
	return newBudgetStatusItem(b, decimal.NewFromFloat(spent))
}

func TestBudgetStatus_AlertLevels(t *testing.T) {
	tests := []struct {
		name       string
		budget     float64
		spent      float64
		percentage int
		level      entity.BudgetAlertLevel
	}{
		{"well under budget", 1000, 200, 20, entity.BudgetAlertSafe},
		{"just below warning", 1000, 799, 80, entity.BudgetAlertSafe},
		{"warning at eighty percent", 1000, 800, 80, entity.BudgetAlertWarning},
		{"danger at full budget", 1000, 1000, 100, entity.BudgetAlertDanger},
		{"danger just below exceeded", 1000, 1099, 110, entity.BudgetAlertDanger},
		{"exceeded at one ten", 1000, 1100, 110, entity.BudgetAlertExceeded},
		{"far exceeded", 1000, 2500, 250, entity.BudgetAlertExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := statusFor(t, tt.budget, tt.spent)
			if item.AlertLevel != tt.level {
				t.Errorf("alert level = %q, want %q", item.AlertLevel, tt.level)
			}
			if item.Percentage != tt.percentage {
				t.Errorf("percentage = %d, want %d", item.Percentage, tt.percentage)
			}
		})
	}
}

func TestBudgetStatus_Remaining(t *testing.T) {
	t.Run("remaining goes negative when overspent", func(t *testing.T) {
		item := statusFor(t, 500, 650)
		if !item.Remaining.Equal(decimal.NewFromInt(-150)) {
			t.Errorf("remaining = %s, want -150", item.Remaining)
		}
	})

	t.Run("zero spend leaves the full budget", func(t *testing.T) {
		item := statusFor(t, 500, 0)
		if !item.Remaining.Equal(decimal.NewFromInt(500)) {
			t.Errorf("remaining = %s, want 500", item.Remaining)
		}
		if item.AlertLevel != entity.BudgetAlertSafe {
			t.Errorf("alert level = %q, want safe", item.AlertLevel)
		}
	})
}
