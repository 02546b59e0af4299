// Package error defines domain-specific errors for the BudgetWise application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidBudgetAmount is returned when the budget amount is not positive.
	ErrInvalidBudgetAmount = errors.New("budget amount must be positive")

	// ErrInvalidBudgetMonth is returned when the budget month is invalid.
	ErrInvalidBudgetMonth = errors.New("invalid budget month")

	// ErrBudgetCategoryNotFound is returned when the budget references an unknown category.
	ErrBudgetCategoryNotFound = errors.New("category not found")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetAmount    BudgetErrorCode = "BDG-010001"
	ErrCodeInvalidBudgetMonth     BudgetErrorCode = "BDG-010002"
	ErrCodeBudgetCategoryNotFound BudgetErrorCode = "BDG-010003"

	// Lookup errors (02XXXX)
	ErrCodeBudgetNotFound BudgetErrorCode = "BDG-020001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
