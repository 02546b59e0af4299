package entity

import (
	"github.com/shopspring/decimal"
)

// ReceiptConfidence is a coarse reliability tier for a heuristic parse result.
// Low confidence is an invitation for manual correction, not an error.
type ReceiptConfidence string

const (
	ConfidenceHigh   ReceiptConfidence = "high"
	ConfidenceMedium ReceiptConfidence = "medium"
	ConfidenceLow    ReceiptConfidence = "low"
)

// ParsedReceipt is the best-effort structured guess extracted from raw
// receipt text. Absent fields mean no signal was found, never a failure.
type ParsedReceipt struct {
	Amount      *decimal.Decimal  `json:"amount"`
	Type        *TransactionType  `json:"type"`
	Description *string           `json:"description"`
	Confidence  ReceiptConfidence `json:"confidence"`
}
