package receipt

import (
	"context"
	"log/slog"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// ScanReceiptInput represents an uploaded receipt image.
type ScanReceiptInput struct {
	Image    []byte
	MimeType string
}

// ScanReceiptOutput carries the recognized text and the parsed guess.
type ScanReceiptOutput struct {
	RawText string               `json:"raw_text"`
	Parsed  entity.ParsedReceipt `json:"parsed"`
}

// ScanReceiptUseCase runs an uploaded image through text recognition and the
// receipt parser.
type ScanReceiptUseCase struct {
	recognizer adapter.TextRecognitionService
}

// NewScanReceiptUseCase creates a new ScanReceiptUseCase instance.
func NewScanReceiptUseCase(recognizer adapter.TextRecognitionService) *ScanReceiptUseCase {
	return &ScanReceiptUseCase{
		recognizer: recognizer,
	}
}

// Execute recognizes text from the image and parses it. Recognition failures
// are reported as domain errors; the parse step itself cannot fail.
func (uc *ScanReceiptUseCase) Execute(
	ctx context.Context,
	input ScanReceiptInput,
) (*ScanReceiptOutput, error) {
	if len(input.Image) == 0 {
		return nil, domainerror.NewReceiptError(
			domainerror.ErrCodeMissingReceiptImage,
			"no image provided",
			domainerror.ErrMissingReceiptImage,
		)
	}

	if uc.recognizer == nil || !uc.recognizer.IsAvailable() {
		return nil, domainerror.NewReceiptError(
			domainerror.ErrCodeRecognitionUnavailable,
			"text recognition service unavailable",
			domainerror.ErrRecognitionUnavailable,
		)
	}

	rawText, err := uc.recognizer.RecognizeText(ctx, adapter.RecognizeTextInput{
		Data:     input.Image,
		MimeType: input.MimeType,
	})
	if err != nil {
		return nil, domainerror.NewReceiptError(
			domainerror.ErrCodeRecognitionFailed,
			"failed to recognize text from image",
			err,
		)
	}

	slog.Debug("Receipt text recognized", "length", len(rawText))

	return &ScanReceiptOutput{
		RawText: rawText,
		Parsed:  ParseText(rawText),
	}, nil
}
