// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budgetwise/backend/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	CategoryID  *string `json:"category_id"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// Omitted fields are left unchanged; an explicit empty category_id clears it.
type UpdateTransactionRequest struct {
	Date        *string  `json:"date"`
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
	Type        *string  `json:"type"`
	CategoryID  *string  `json:"category_id"`
}

// TransactionCategoryResponse represents the embedded category in a transaction response.
type TransactionCategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
	Type  string `json:"type"`
}

// TransactionResponse represents transaction data in API responses.
type TransactionResponse struct {
	ID          string                       `json:"id"`
	Date        string                       `json:"date"`
	Description string                       `json:"description"`
	Amount      float64                      `json:"amount"`
	Type        string                       `json:"type"`
	CategoryID  *string                      `json:"category_id"`
	Category    *TransactionCategoryResponse `json:"category,omitempty"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

// PaginationResponse represents pagination info in list responses.
type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// TotalsResponse represents aggregated totals in list responses.
type TotalsResponse struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationResponse    `json:"pagination"`
	Totals       TotalsResponse        `json:"totals"`
}

// ToTransactionResponse converts a use case transaction output to a response DTO.
func ToTransactionResponse(t *transaction.TransactionOutput) TransactionResponse {
	amount, _ := t.Amount.Float64()

	resp := TransactionResponse{
		ID:          t.ID.String(),
		Date:        t.Date.Format("2006-01-02"),
		Description: t.Description,
		Amount:      amount,
		Type:        string(t.Type),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}

	if t.CategoryID != nil {
		id := t.CategoryID.String()
		resp.CategoryID = &id
	}
	if t.Category != nil {
		resp.Category = &TransactionCategoryResponse{
			ID:    t.Category.ID.String(),
			Name:  t.Category.Name,
			Color: t.Category.Color,
			Icon:  t.Category.Icon,
			Type:  string(t.Category.Type),
		}
	}
	return resp
}

// ToTransactionListResponse converts a list output to a response DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	items := make([]TransactionResponse, len(output.Transactions))
	for i, t := range output.Transactions {
		items[i] = ToTransactionResponse(t)
	}

	income, _ := output.Totals.IncomeTotal.Float64()
	expenses, _ := output.Totals.ExpenseTotal.Float64()
	net, _ := output.Totals.NetTotal.Float64()

	return TransactionListResponse{
		Transactions: items,
		Pagination: PaginationResponse{
			Page:       output.Pagination.Page,
			Limit:      output.Pagination.Limit,
			Total:      output.Pagination.Total,
			TotalPages: output.Pagination.TotalPages,
		},
		Totals: TotalsResponse{
			Income:   income,
			Expenses: expenses,
			Net:      net,
		},
	}
}
