// Package error defines domain-specific errors for the BudgetWise application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameExists is returned when a category with the same name already exists for the user.
	ErrCategoryNameExists = errors.New("category name already exists")

	// ErrInvalidCategoryType is returned when the category type is invalid.
	ErrInvalidCategoryType = errors.New("invalid category type")

	// ErrCategoryNameRequired is returned when the category name is empty.
	ErrCategoryNameRequired = errors.New("category name is required")

	// ErrCategoryInUse is returned when deleting a category that still has transactions.
	ErrCategoryInUse = errors.New("category has associated transactions")

	// ErrCategoryNameTooLong is returned when the category name exceeds the maximum length.
	ErrCategoryNameTooLong = errors.New("category name too long")

	// ErrInvalidColorFormat is returned when the category color is not a valid hex value.
	ErrInvalidColorFormat = errors.New("invalid color format")

	// ErrNotAuthorizedToModifyCategory is returned when user is not authorized to modify a category.
	ErrNotAuthorizedToModifyCategory = errors.New("not authorized to modify category")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNameRequired CategoryErrorCode = "CAT-010001"
	ErrCodeInvalidCategoryType  CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryNameExists   CategoryErrorCode = "CAT-010003"
	ErrCodeCategoryNameTooLong  CategoryErrorCode = "CAT-010004"
	ErrCodeInvalidColorFormat   CategoryErrorCode = "CAT-010005"

	// Lookup errors (02XXXX)
	ErrCodeCategoryNotFound      CategoryErrorCode = "CAT-020001"
	ErrCodeCategoryInUse         CategoryErrorCode = "CAT-020002"
	ErrCodeNotAuthorizedCategory CategoryErrorCode = "CAT-020003"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
