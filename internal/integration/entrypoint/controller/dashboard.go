// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgetwise/backend/internal/application/usecase/dashboard"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	trendsUseCase *dashboard.GetMonthlyTrendsUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(trendsUseCase *dashboard.GetMonthlyTrendsUseCase) *DashboardController {
	return &DashboardController{
		trendsUseCase: trendsUseCase,
	}
}

// Trends handles GET /dashboard/trends requests.
func (c *DashboardController) Trends(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.trendsUseCase.Execute(ctx.Request.Context(), dashboard.GetMonthlyTrendsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute monthly trends",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyTrendsResponse(output))
}
