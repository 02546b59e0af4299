// Package error defines domain-specific errors for the BudgetWise application.
package error

import "errors"

// Receipt scanning domain errors. The text parser itself never fails; these
// errors cover the surrounding image upload and recognition step.
var (
	// ErrMissingReceiptImage is returned when no image is provided for scanning.
	ErrMissingReceiptImage = errors.New("no image provided")

	// ErrRecognitionUnavailable is returned when the text recognition service is not configured.
	ErrRecognitionUnavailable = errors.New("text recognition service unavailable")

	// ErrRecognitionFailed is returned when the text recognition service fails.
	ErrRecognitionFailed = errors.New("failed to recognize text from image")
)

// ReceiptErrorCode defines error codes for receipt scanning errors.
// Format: RCP-XXYYYY where XX is category and YYYY is specific error.
type ReceiptErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingReceiptImage ReceiptErrorCode = "RCP-010001"

	// Recognition errors (02XXXX)
	ErrCodeRecognitionUnavailable ReceiptErrorCode = "RCP-020001"
	ErrCodeRecognitionFailed      ReceiptErrorCode = "RCP-020002"
)

// ReceiptError represents a receipt scanning error with code and message.
type ReceiptError struct {
	Code    ReceiptErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReceiptError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReceiptError) Unwrap() error {
	return e.Err
}

// NewReceiptError creates a new ReceiptError with the given code and message.
func NewReceiptError(code ReceiptErrorCode, message string, err error) *ReceiptError {
	return &ReceiptError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
