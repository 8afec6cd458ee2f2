package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "vehicle-finance.backend/internal/domain/errors"
	"vehicle-finance.backend/internal/infrastructure/ocr"
	"vehicle-finance.backend/internal/interfaces/http/response"
)

type ExtractionService interface {
	Extract(ctx context.Context, image, mimeType, category string) (*ocr.Extraction, error)
}

// ExtractionHandler handles document extraction endpoints
type ExtractionHandler struct {
	extractionUsecase ExtractionService
}

func NewExtractionHandler(extractionUsecase ExtractionService) *ExtractionHandler {
	return &ExtractionHandler{extractionUsecase: extractionUsecase}
}

type extractionRequest struct {
	Image    string `json:"image"`
	MimeType string `json:"mimeType"`
	Category string `json:"category"`
}

// Extract runs structured extraction on an uploaded document image
// POST /api/v1/extractions
func (h *ExtractionHandler) Extract(c *gin.Context) {
	var req extractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.extractionUsecase.Extract(c.Request.Context(), req.Image, req.MimeType, req.Category)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"extraction": result})
}
