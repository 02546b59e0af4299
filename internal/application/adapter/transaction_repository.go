// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	UserID     uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uuid.UUID
	Type       *entity.TransactionType
	Search     string // Case-insensitive description match
}

// TransactionPagination defines pagination options.
type TransactionPagination struct {
	Page  int
	Limit int
}

// TransactionTotals represents aggregated totals for transactions.
type TransactionTotals struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetTotal     decimal.Decimal
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByIDWithCategory retrieves a transaction with its category by ID.
	FindByIDWithCategory(ctx context.Context, id uuid.UUID) (*entity.TransactionWithCategory, error)

	// FindByFilter retrieves transactions based on filter criteria with pagination.
	FindByFilter(ctx context.Context, filter TransactionFilter, pagination TransactionPagination) (*entity.TransactionListResult, error)

	// FindByUserSince retrieves all transactions for a user dated on or after the
	// given instant, with category info, ordered by date descending. The analytics
	// engine feeds on this window.
	FindByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*entity.TransactionWithCategory, error)

	// GetTotals calculates totals for transactions based on filter criteria.
	GetTotals(ctx context.Context, filter TransactionFilter) (*TransactionTotals, error)

	// SumExpensesByCategoryAndRange sums expense amounts for one category within
	// a date range. Used for budget status.
	SumExpensesByCategoryAndRange(ctx context.Context, userID, categoryID uuid.UUID, start, end time.Time) (decimal.Decimal, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete soft-deletes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByIDAndUser checks if a transaction exists for a given ID and user.
	ExistsByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (bool, error)

	// CountByCategory counts transactions referencing the given category.
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}
