// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "EXPENSE"
	CategoryTypeIncome  CategoryType = "INCOME"
)

// IsValid reports whether the category type is one of the known values.
func (c CategoryType) IsValid() bool {
	return c == CategoryTypeExpense || c == CategoryTypeIncome
}

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#6366F1"

// DefaultCategoryIcon is the default icon for categories.
const DefaultCategoryIcon = "🏷️"

// UncategorizedName is the label used for transactions with no category.
const UncategorizedName = "Uncategorized"

// Category represents a user-defined transaction grouping in the BudgetWise system.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Type      CategoryType
	Icon      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewCategory creates a new Category entity.
// Note: Defaulting logic for color and icon should be applied in the Application layer (UseCase)
// before calling this constructor.
func NewCategory(userID uuid.UUID, name string, categoryType CategoryType, icon, color string) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Type:      categoryType,
		Icon:      icon,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DefaultCategory describes one entry of the seed catalog applied to new accounts.
type DefaultCategory struct {
	Name  string
	Type  CategoryType
	Icon  string
	Color string
}

// DefaultCategories is the static seed catalog of categories.
var DefaultCategories = []DefaultCategory{
	// Expense categories
	{Name: "Food & Dining", Type: CategoryTypeExpense, Icon: "🍔", Color: "#FF6B6B"},
	{Name: "Transportation", Type: CategoryTypeExpense, Icon: "🚗", Color: "#4ECDC4"},
	{Name: "Shopping", Type: CategoryTypeExpense, Icon: "🛍️", Color: "#95E1D3"},
	{Name: "Entertainment", Type: CategoryTypeExpense, Icon: "🎮", Color: "#F38181"},
	{Name: "Bills & Utilities", Type: CategoryTypeExpense, Icon: "💡", Color: "#AA96DA"},
	{Name: "Healthcare", Type: CategoryTypeExpense, Icon: "⚕️", Color: "#FCBAD3"},
	{Name: "Education", Type: CategoryTypeExpense, Icon: "📚", Color: "#FFD93D"},
	{Name: "Housing", Type: CategoryTypeExpense, Icon: "🏠", Color: "#6BCB77"},
	{Name: "Personal Care", Type: CategoryTypeExpense, Icon: "💅", Color: "#FF8CC6"},
	{Name: "Travel", Type: CategoryTypeExpense, Icon: "✈️", Color: "#89CFF0"},
	{Name: "Other Expenses", Type: CategoryTypeExpense, Icon: "📦", Color: "#B0B0B0"},

	// Income categories
	{Name: "Salary", Type: CategoryTypeIncome, Icon: "💰", Color: "#4CAF50"},
	{Name: "Freelance", Type: CategoryTypeIncome, Icon: "💼", Color: "#2196F3"},
	{Name: "Investment", Type: CategoryTypeIncome, Icon: "📈", Color: "#9C27B0"},
	{Name: "Gift", Type: CategoryTypeIncome, Icon: "🎁", Color: "#FF9800"},
	{Name: "Other Income", Type: CategoryTypeIncome, Icon: "💵", Color: "#607D8B"},
}
