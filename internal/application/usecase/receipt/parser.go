// Package receipt implements the heuristic receipt text parser: a best-effort
// extraction of amount, transaction type and description from noisy OCR text.
package receipt

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// keywordWeight values feed the confidence tiers: a keyword-backed type
// classification is trusted, the soft expense default is not.
const (
	keywordWeight     = 1.0
	softDefaultWeight = 0.3
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// amountPatterns are tried in order against the normalized text; the first
// pattern yielding a positive value wins. Order is the tie-break and must
// stay auditable, so keep this a flat list.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`),
	regexp.MustCompile(`(?:rs|inr|₹)\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`),
	regexp.MustCompile(`(?:amount|total|amt|paid|price|sum)[\s:]*\$?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`),
	regexp.MustCompile(`(\d+(?:,\d{3})*\.\d{2})`),
	regexp.MustCompile(`(\d+\.\d{2})`),
}

// descriptionPatterns run against the original, non-lowercased text so that
// capitalization still carries signal.
var descriptionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:description|desc|merchant|store|vendor|at)[\s:]+([^\n]{3,50})`),
	regexp.MustCompile(`(?:to|from)[\s:]+([A-Z][A-Za-z\s&]{2,50})`),
	// A leading capitalized phrase directly followed by a currency marker or
	// digit. The marker is consumed rather than looked ahead at; only the
	// captured group matters.
	regexp.MustCompile(`^([A-Z][A-Za-z\s&]{2,50})\s+(?:\$|rs|inr|₹|\d)`),
}

var creditKeywords = []string{
	"credit", "deposit", "salary", "income", "received", "refund", "payment received", "credited",
}

var debitKeywords = []string{
	"debit", "withdraw", "purchase", "expense", "paid", "bill", "payment", "spent", "debited",
}

// ParseText converts raw OCR text into a structured transaction guess.
// It never fails: a missing signal is an absent field, not an error.
func ParseText(raw string) entity.ParsedReceipt {
	normalized := normalize(raw)

	amount := extractAmount(normalized)
	txType, typeWeight := classifyType(normalized, amount != nil)
	description := extractDescription(raw)

	return entity.ParsedReceipt{
		Amount:      amount,
		Type:        txType,
		Description: description,
		Confidence:  assignConfidence(amount, txType, description, typeWeight),
	}
}

func normalize(raw string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(strings.ToLower(raw), " "))
}

// extractAmount returns the first positive amount any pattern yields.
// A matched zero is skipped, not accepted.
func extractAmount(normalized string) *decimal.Decimal {
	for _, pattern := range amountPatterns {
		match := pattern.FindStringSubmatch(normalized)
		if match == nil {
			continue
		}

		value, err := decimal.NewFromString(strings.ReplaceAll(match[1], ",", ""))
		if err != nil || !value.IsPositive() {
			continue
		}

		return &value
	}
	return nil
}

// classifyType scans credit keywords strictly before debit keywords, so text
// containing both resolves to income. With no keyword hit but a found amount,
// expense is the soft default.
func classifyType(normalized string, hasAmount bool) (*entity.TransactionType, float64) {
	for _, keyword := range creditKeywords {
		if strings.Contains(normalized, keyword) {
			income := entity.TransactionTypeIncome
			return &income, keywordWeight
		}
	}

	for _, keyword := range debitKeywords {
		if strings.Contains(normalized, keyword) {
			expense := entity.TransactionTypeExpense
			return &expense, keywordWeight
		}
	}

	if hasAmount {
		expense := entity.TransactionTypeExpense
		return &expense, softDefaultWeight
	}

	return nil, 0
}

func extractDescription(raw string) *string {
	for _, pattern := range descriptionPatterns {
		match := pattern.FindStringSubmatch(raw)
		if match == nil {
			continue
		}

		description := strings.TrimSpace(match[1])
		if runes := []rune(description); len(runes) > 100 {
			description = string(runes[:100])
		}
		if len([]rune(description)) > 2 {
			return &description
		}
	}
	return nil
}

func assignConfidence(amount *decimal.Decimal, txType *entity.TransactionType, description *string, typeWeight float64) entity.ReceiptConfidence {
	switch {
	case amount != nil && txType != nil && description != nil:
		if typeWeight > 0.7 {
			return entity.ConfidenceHigh
		}
		return entity.ConfidenceMedium
	case amount != nil && txType != nil:
		return entity.ConfidenceMedium
	default:
		return entity.ConfidenceLow
	}
}
