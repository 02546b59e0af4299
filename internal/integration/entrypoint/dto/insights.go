// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budgetwise/backend/internal/domain/entity"
)

// InsightsResponse represents the response for the insights endpoint.
// The analysis payload is the domain value object serialized as-is.
type InsightsResponse struct {
	Success  bool                   `json:"success"`
	Analysis *entity.BudgetAnalysis `json:"analysis"`
}
