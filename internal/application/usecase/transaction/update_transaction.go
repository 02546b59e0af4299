// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
// Nil pointer fields are left unchanged.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	Date          *time.Time
	Description   *string
	Amount        *decimal.Decimal
	Type          *entity.TransactionType
	CategoryID    *uuid.UUID
	ClearCategory bool
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	analysisCache   adapter.AnalysisCache
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	analysisCache adapter.AnalysisCache,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		analysisCache:   analysisCache,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if transaction.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to modify this transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	if input.Date != nil {
		if input.Date.IsZero() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionDate,
				"transaction date is required",
				domainerror.ErrInvalidTransactionDate,
			)
		}
		transaction.Date = *input.Date
	}

	if input.Description != nil {
		if len(*input.Description) > MaxDescriptionLength {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeDescriptionTooLong,
				fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
				domainerror.ErrDescriptionTooLong,
			)
		}
		transaction.Description = *input.Description
	}

	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionAmount,
				"transaction amount must not be negative",
				domainerror.ErrInvalidTransactionAmount,
			)
		}
		transaction.Amount = *input.Amount
	}

	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionType,
				"transaction type must be 'EXPENSE' or 'INCOME'",
				domainerror.ErrInvalidTransactionType,
			)
		}
		transaction.Type = *input.Type
	}

	// Category: clear wins over reassign
	var category *entity.Category
	switch {
	case input.ClearCategory:
		transaction.CategoryID = nil
	case input.CategoryID != nil:
		cat, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil || cat.UserID != input.UserID {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		}
		transaction.CategoryID = input.CategoryID
		category = cat
	case transaction.CategoryID != nil:
		// Unchanged category, still resolve it for the output
		if cat, err := uc.categoryRepo.FindByID(ctx, *transaction.CategoryID); err == nil {
			category = cat
		}
	}

	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	invalidateAnalysisCache(ctx, uc.analysisCache, input.UserID)

	return &UpdateTransactionOutput{
		Transaction: newTransactionOutput(transaction, category),
	}, nil
}
