// Package error defines domain-specific errors for the BudgetWise application.
package error

import "errors"

// Insight domain errors.
var (
	// ErrInvalidTargetMonth is returned when the target month parameter cannot be parsed.
	ErrInvalidTargetMonth = errors.New("invalid target month, expected YYYY-MM")
)

// InsightErrorCode defines error codes for insight errors.
// Format: INS-XXYYYY where XX is category and YYYY is specific error.
type InsightErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTargetMonth InsightErrorCode = "INS-010001"

	// Internal errors (99XXXX)
	ErrCodeInsightInternalError InsightErrorCode = "INS-990001"
)

// InsightError represents an insight error with code and message.
type InsightError struct {
	Code    InsightErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InsightError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InsightError) Unwrap() error {
	return e.Err
}

// NewInsightError creates a new InsightError with the given code and message.
func NewInsightError(code InsightErrorCode, message string, err error) *InsightError {
	return &InsightError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
