// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// RecognizeTextInput represents an image submitted for text recognition.
type RecognizeTextInput struct {
	Data     []byte
	MimeType string
}

// TextRecognitionService defines the interface for extracting text from
// receipt images. Image-to-text is delegated to an external provider; the
// receipt parser only ever sees the returned text.
type TextRecognitionService interface {
	// RecognizeText extracts the raw text content of an image.
	RecognizeText(ctx context.Context, input RecognizeTextInput) (string, error)

	// IsAvailable checks if the recognition service is available and properly configured.
	IsAvailable() bool
}
