// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/usecase/budget"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	upsertUseCase *budget.UpsertBudgetUseCase
	listUseCase   *budget.ListBudgetsUseCase
	deleteUseCase *budget.DeleteBudgetUseCase
	statusUseCase *budget.GetBudgetStatusUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	upsertUseCase *budget.UpsertBudgetUseCase,
	listUseCase *budget.ListBudgetsUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
	statusUseCase *budget.GetBudgetStatusUseCase,
) *BudgetController {
	return &BudgetController{
		upsertUseCase: upsertUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
		statusUseCase: statusUseCase,
	}
}

// Upsert handles POST /budgets requests. Setting a budget for an existing
// user, category and month combination replaces its amount.
func (c *BudgetController) Upsert(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.UpsertBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidBudgetAmount),
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	month, err := time.Parse("2006-01", req.Month)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid month format. Use YYYY-MM",
			Code:  string(domainerror.ErrCodeInvalidBudgetMonth),
		})
		return
	}

	input := budget.UpsertBudgetInput{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     decimal.NewFromFloat(req.Amount),
		Month:      month,
	}

	output, err := c.upsertUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output.Budget, nil))
}

// List handles GET /budgets requests. The month query parameter defaults to
// the current month.
func (c *BudgetController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	month, ok := c.parseMonthParam(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{
		UserID: userID,
		Month:  month,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve budgets",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Budgets))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget ID format",
		})
		return
	}

	input := budget.DeleteBudgetInput{
		BudgetID: budgetID,
		UserID:   userID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Budget deleted successfully",
	})
}

// Status handles GET /budgets/status requests.
func (c *BudgetController) Status(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	month, ok := c.parseMonthParam(ctx)
	if !ok {
		return
	}

	output, err := c.statusUseCase.Execute(ctx.Request.Context(), budget.GetBudgetStatusInput{
		UserID: userID,
		Month:  month,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute budget status",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetStatusResponse(output.BudgetStatus))
}

// parseMonthParam reads the optional month query parameter (YYYY-MM). It
// writes the error response itself and reports success via the bool.
func (c *BudgetController) parseMonthParam(ctx *gin.Context) (time.Time, bool) {
	monthStr := ctx.Query("month")
	if monthStr == "" {
		return time.Now().UTC(), true
	}

	month, err := time.Parse("2006-01", monthStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid month format. Use YYYY-MM",
			Code:  string(domainerror.ErrCodeInvalidBudgetMonth),
		})
		return time.Time{}, false
	}
	return month, true
}

// handleBudgetError handles budget errors and returns appropriate HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		statusCode := c.getStatusCodeForBudgetError(budgetErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func (c *BudgetController) getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidBudgetAmount,
		domainerror.ErrCodeInvalidBudgetMonth,
		domainerror.ErrCodeBudgetCategoryNotFound:
		return http.StatusBadRequest
	case domainerror.ErrCodeBudgetNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
