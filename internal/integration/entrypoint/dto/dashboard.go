// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budgetwise/backend/internal/application/usecase/dashboard"
)

// MonthlyTrendPointResponse is one month of the dashboard trends series.
type MonthlyTrendPointResponse struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Balance  float64 `json:"balance"`
}

// MonthlyTrendsResponse represents the response for the dashboard trends endpoint.
type MonthlyTrendsResponse struct {
	Trends []MonthlyTrendPointResponse `json:"trends"`
}

// ToMonthlyTrendsResponse converts the trends output to a response DTO.
func ToMonthlyTrendsResponse(output *dashboard.GetMonthlyTrendsOutput) MonthlyTrendsResponse {
	trends := make([]MonthlyTrendPointResponse, len(output.Trends))
	for i, point := range output.Trends {
		income, _ := point.Income.Float64()
		expenses, _ := point.Expenses.Float64()
		balance, _ := point.Balance.Float64()

		trends[i] = MonthlyTrendPointResponse{
			Month:    point.Month,
			Income:   income,
			Expenses: expenses,
			Balance:  balance,
		}
	}
	return MonthlyTrendsResponse{Trends: trends}
}
