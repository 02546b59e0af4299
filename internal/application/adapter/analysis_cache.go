// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// AnalysisCache defines the interface for caching computed budget analyses.
// Implementations must treat the cache as best-effort: a miss or a backend
// failure means the analysis gets recomputed, never that the request fails.
type AnalysisCache interface {
	// Get retrieves a cached analysis for the user and target month.
	// Returns (nil, nil) on a miss.
	Get(ctx context.Context, userID uuid.UUID, month time.Time) (*entity.BudgetAnalysis, error)

	// Set stores an analysis for the user and target month.
	Set(ctx context.Context, userID uuid.UUID, month time.Time, analysis *entity.BudgetAnalysis) error

	// InvalidateUser drops every cached analysis for the user. Called after
	// transaction writes.
	InvalidateUser(ctx context.Context, userID uuid.UUID) error
}
