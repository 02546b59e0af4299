// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budgetwise/backend/internal/domain/entity"
)

// ReceiptScanResponse represents the response for the receipt OCR endpoint.
type ReceiptScanResponse struct {
	Success bool                  `json:"success"`
	RawText string                `json:"raw_text"`
	Parsed  *entity.ParsedReceipt `json:"parsed"`
}
