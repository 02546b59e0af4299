// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	UserID     uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uuid.UUID
	Type       *entity.TransactionType
	Search     string
	Page       int
	Limit      int
}

// TransactionOutput represents a single transaction in the output.
type TransactionOutput struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        entity.TransactionType
	CategoryID  *uuid.UUID
	Category    *CategoryOutput
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoryOutput represents category information in transaction output.
type CategoryOutput struct {
	ID    uuid.UUID
	Name  string
	Color string
	Icon  string
	Type  entity.CategoryType
}

// PaginationOutput represents pagination information in the output.
type PaginationOutput struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

// TotalsOutput represents aggregated totals in the output.
type TotalsOutput struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetTotal     decimal.Decimal
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
	Pagination   PaginationOutput
	Totals       TotalsOutput
}

// ListTransactionsUseCase handles listing transactions logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	// Set default pagination values
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	filter := adapter.TransactionFilter{
		UserID:     input.UserID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		CategoryID: input.CategoryID,
		Type:       input.Type,
		Search:     input.Search,
	}

	result, err := uc.transactionRepo.FindByFilter(ctx, filter, adapter.TransactionPagination{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}

	// Get totals; continue without them on failure
	totals, err := uc.transactionRepo.GetTotals(ctx, filter)
	if err != nil {
		totals = &adapter.TransactionTotals{}
	}

	output := &ListTransactionsOutput{
		Transactions: make([]*TransactionOutput, len(result.Transactions)),
		Pagination: PaginationOutput{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
		Totals: TotalsOutput{
			IncomeTotal:  totals.IncomeTotal,
			ExpenseTotal: totals.ExpenseTotal,
			NetTotal:     totals.NetTotal,
		},
	}

	for i, txnWithCat := range result.Transactions {
		output.Transactions[i] = newTransactionOutput(txnWithCat.Transaction, txnWithCat.Category)
	}

	return output, nil
}

// newTransactionOutput maps a transaction entity (and optional category) to
// the shared output shape.
func newTransactionOutput(txn *entity.Transaction, category *entity.Category) *TransactionOutput {
	out := &TransactionOutput{
		ID:          txn.ID,
		UserID:      txn.UserID,
		Date:        txn.Date,
		Description: txn.Description,
		Amount:      txn.Amount,
		Type:        txn.Type,
		CategoryID:  txn.CategoryID,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}

	if category != nil {
		out.Category = &CategoryOutput{
			ID:    category.ID,
			Name:  category.Name,
			Color: category.Color,
			Icon:  category.Icon,
			Type:  category.Type,
		}
	}

	return out
}
