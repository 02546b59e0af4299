// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/budgetwise/backend/internal/application/usecase/insights"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
)

// InsightsController handles the spending insights endpoint.
type InsightsController struct {
	getUseCase *insights.GetInsightsUseCase
}

// NewInsightsController creates a new insights controller instance.
func NewInsightsController(getUseCase *insights.GetInsightsUseCase) *InsightsController {
	return &InsightsController{
		getUseCase: getUseCase,
	}
}

// Get handles GET /insights requests. The optional month query parameter
// (YYYY-MM) selects a past month; it defaults to the current one.
func (c *InsightsController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := insights.GetInsightsInput{
		UserID: userID,
	}

	if monthStr := ctx.Query("month"); monthStr != "" {
		month, err := time.Parse("2006-01", monthStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid month format. Use YYYY-MM",
				Code:  string(domainerror.ErrCodeInvalidTargetMonth),
			})
			return
		}
		input.TargetMonth = &month
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.InsightsResponse{
		Success:  true,
		Analysis: output.Analysis,
	})
}

// handleInsightError handles insight errors and returns appropriate HTTP responses.
func (c *InsightsController) handleInsightError(ctx *gin.Context, err error) {
	var insightErr *domainerror.InsightError
	if errors.As(err, &insightErr) {
		statusCode := http.StatusInternalServerError
		if insightErr.Code == domainerror.ErrCodeInvalidTargetMonth {
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: insightErr.Message,
			Code:  string(insightErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to generate insights",
	})
}
