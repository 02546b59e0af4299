// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// SeedDefaultCategoriesInput represents the input for seeding default categories.
type SeedDefaultCategoriesInput struct {
	UserID uuid.UUID
}

// SeedDefaultCategoriesOutput represents the output of seeding default categories.
type SeedDefaultCategoriesOutput struct {
	Created    int
	Categories []*entity.Category
}

// SeedDefaultCategoriesUseCase inserts the default category set for a user.
// Names the user already has are skipped, so the operation is idempotent.
type SeedDefaultCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewSeedDefaultCategoriesUseCase creates a new SeedDefaultCategoriesUseCase instance.
func NewSeedDefaultCategoriesUseCase(categoryRepo adapter.CategoryRepository) *SeedDefaultCategoriesUseCase {
	return &SeedDefaultCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute seeds the default categories the user does not have yet.
func (uc *SeedDefaultCategoriesUseCase) Execute(ctx context.Context, input SeedDefaultCategoriesInput) (*SeedDefaultCategoriesOutput, error) {
	existing, err := uc.categoryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list existing categories: %w", err)
	}

	existingNames := make(map[string]bool, len(existing))
	for _, c := range existing {
		existingNames[c.Name] = true
	}

	missing := make([]*entity.Category, 0, len(entity.DefaultCategories))
	for _, def := range entity.DefaultCategories {
		if existingNames[def.Name] {
			continue
		}
		missing = append(missing, entity.NewCategory(input.UserID, def.Name, def.Type, def.Icon, def.Color))
	}

	if len(missing) > 0 {
		if err := uc.categoryRepo.CreateBatch(ctx, missing); err != nil {
			return nil, fmt.Errorf("failed to seed default categories: %w", err)
		}
	}

	return &SeedDefaultCategoriesOutput{
		Created:    len(missing),
		Categories: missing,
	}, nil
}
