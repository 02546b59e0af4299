// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgetwise/backend/internal/application/usecase/receipt"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
)

// maxReceiptImageSize caps uploads at 10 MB.
const maxReceiptImageSize = 10 << 20

// ReceiptController handles the receipt OCR endpoint.
type ReceiptController struct {
	scanUseCase *receipt.ScanReceiptUseCase
}

// NewReceiptController creates a new receipt controller instance.
func NewReceiptController(scanUseCase *receipt.ScanReceiptUseCase) *ReceiptController {
	return &ReceiptController{
		scanUseCase: scanUseCase,
	}
}

// Scan handles POST /upload/ocr requests. The image is expected as a
// multipart form file under the "image" field.
func (c *ReceiptController) Scan(ctx *gin.Context) {
	if _, ok := middleware.GetUserIDFromContext(ctx); !ok {
		respondUnauthenticated(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "No image file provided",
			Code:  string(domainerror.ErrCodeMissingReceiptImage),
		})
		return
	}

	if fileHeader.Size > maxReceiptImageSize {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Image file too large",
			Code:  string(domainerror.ErrCodeMissingReceiptImage),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Failed to read image file",
			Code:  string(domainerror.ErrCodeMissingReceiptImage),
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Failed to read image file",
			Code:  string(domainerror.ErrCodeMissingReceiptImage),
		})
		return
	}

	input := receipt.ScanReceiptInput{
		Image:    data,
		MimeType: fileHeader.Header.Get("Content-Type"),
	}

	output, err := c.scanUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReceiptError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ReceiptScanResponse{
		Success: true,
		RawText: output.RawText,
		Parsed:  &output.Parsed,
	})
}

// handleReceiptError handles receipt errors and returns appropriate HTTP responses.
func (c *ReceiptController) handleReceiptError(ctx *gin.Context, err error) {
	var receiptErr *domainerror.ReceiptError
	if errors.As(err, &receiptErr) {
		statusCode := c.getStatusCodeForReceiptError(receiptErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: receiptErr.Message,
			Code:  string(receiptErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to process receipt",
	})
}

// getStatusCodeForReceiptError maps receipt error codes to HTTP status codes.
func (c *ReceiptController) getStatusCodeForReceiptError(code domainerror.ReceiptErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingReceiptImage:
		return http.StatusBadRequest
	case domainerror.ErrCodeRecognitionUnavailable:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeRecognitionFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
