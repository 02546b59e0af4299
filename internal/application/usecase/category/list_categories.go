// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	UserID uuid.UUID
	Type   *entity.CategoryType // Optional filter
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.Category
}

// ListCategoriesUseCase handles category listing logic.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute retrieves the user's categories, optionally filtered by type.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeInvalidCategoryType,
				"category type must be 'EXPENSE' or 'INCOME'",
				domainerror.ErrInvalidCategoryType,
			)
		}

		categories, err := uc.categoryRepo.FindByUserAndType(ctx, input.UserID, *input.Type)
		if err != nil {
			return nil, fmt.Errorf("failed to list categories: %w", err)
		}
		return &ListCategoriesOutput{Categories: categories}, nil
	}

	categories, err := uc.categoryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return &ListCategoriesOutput{Categories: categories}, nil
}
