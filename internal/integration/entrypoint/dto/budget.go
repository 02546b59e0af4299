// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	budgetusecase "github.com/budgetwise/backend/internal/application/usecase/budget"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// UpsertBudgetRequest represents the request body for setting a budget.
// Month uses the YYYY-MM format.
type UpsertBudgetRequest struct {
	CategoryID string  `json:"category_id" binding:"required"`
	Amount     float64 `json:"amount" binding:"required"`
	Month      string  `json:"month" binding:"required"`
}

// BudgetResponse represents budget data in API responses.
type BudgetResponse struct {
	ID         string            `json:"id"`
	CategoryID string            `json:"category_id"`
	Category   *CategoryResponse `json:"category,omitempty"`
	Amount     float64           `json:"amount"`
	Month      string            `json:"month"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// BudgetStatusItemResponse is the per-budget progress for a month.
type BudgetStatusItemResponse struct {
	BudgetID     string            `json:"budget_id"`
	Category     *CategoryResponse `json:"category,omitempty"`
	BudgetAmount float64           `json:"budget_amount"`
	Spent        float64           `json:"spent"`
	Remaining    float64           `json:"remaining"`
	Percentage   int               `json:"percentage"`
	AlertLevel   string            `json:"alert_level"`
}

// BudgetStatusResponse represents the response for the budget status endpoint.
type BudgetStatusResponse struct {
	BudgetStatus []BudgetStatusItemResponse `json:"budget_status"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(budget *entity.Budget, category *entity.Category) BudgetResponse {
	amount, _ := budget.Amount.Float64()

	resp := BudgetResponse{
		ID:         budget.ID.String(),
		CategoryID: budget.CategoryID.String(),
		Amount:     amount,
		Month:      budget.Month.Format("2006-01"),
	}
	if category != nil {
		c := ToCategoryResponse(category)
		resp.Category = &c
	}
	return resp
}

// ToBudgetListResponse converts budget entities to a list response.
func ToBudgetListResponse(budgets []*entity.BudgetWithCategory) BudgetListResponse {
	items := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		items[i] = ToBudgetResponse(b.Budget, b.Category)
	}
	return BudgetListResponse{Budgets: items}
}

// ToBudgetStatusResponse converts budget status items to a response DTO.
func ToBudgetStatusResponse(items []*budgetusecase.BudgetStatusItem) BudgetStatusResponse {
	status := make([]BudgetStatusItemResponse, len(items))
	for i, item := range items {
		budgetAmount, _ := item.BudgetAmount.Float64()
		spent, _ := item.Spent.Float64()
		remaining, _ := item.Remaining.Float64()

		status[i] = BudgetStatusItemResponse{
			BudgetID:     item.BudgetID.String(),
			BudgetAmount: budgetAmount,
			Spent:        spent,
			Remaining:    remaining,
			Percentage:   item.Percentage,
			AlertLevel:   string(item.AlertLevel),
		}
		if item.Category != nil {
			c := ToCategoryResponse(item.Category)
			status[i].Category = &c
		}
	}
	return BudgetStatusResponse{BudgetStatus: status}
}
