// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/budgetwise/backend/internal/application/adapter"
)

const ocrPrompt = `Extract all text from this receipt or bank statement image.
Return the raw text exactly as it appears, line by line.
Do not summarize, translate, or add commentary. Output text only.`

// GeminiOCRService implements adapter.TextRecognitionService using Google Gemini vision.
type GeminiOCRService struct {
	apiKey    string
	modelName string
}

// defaultOCRModel is used when no model is configured.
const defaultOCRModel = "gemini-2.5-flash-lite"

// NewGeminiOCRService creates a new Gemini OCR service instance.
func NewGeminiOCRService(apiKey, modelName string) *GeminiOCRService {
	if modelName == "" {
		modelName = defaultOCRModel
	}
	return &GeminiOCRService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiOCRService) IsAvailable() bool {
	return s.apiKey != ""
}

// RecognizeText extracts the raw text content of an image.
func (s *GeminiOCRService) RecognizeText(ctx context.Context, input adapter.RecognizeTextInput) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0)

	format := imageFormat(input.MimeType)
	resp, err := model.GenerateContent(ctx,
		genai.ImageData(format, input.Data),
		genai.Text(ocrPrompt),
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractText(resp), nil
}

// imageFormat maps a MIME type to the genai image format suffix.
func imageFormat(mimeType string) string {
	format := strings.TrimPrefix(strings.ToLower(mimeType), "image/")
	if format == "" || format == mimeType {
		return "jpeg"
	}
	if format == "jpg" {
		return "jpeg"
	}
	return format
}

// extractText concatenates the text parts of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return strings.TrimSpace(sb.String())
}

// Ensure implementation satisfies the interface.
var _ adapter.TextRecognitionService = (*GeminiOCRService)(nil)
