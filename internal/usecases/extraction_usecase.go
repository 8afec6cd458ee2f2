package usecases

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	domainerrors "vehicle-finance.backend/internal/domain/errors"
	"vehicle-finance.backend/internal/infrastructure/ocr"
	"vehicle-finance.backend/pkg/logger"
)

// Extractor runs one structured extraction against the vision model
type Extractor interface {
	Extract(ctx context.Context, image, mimeType string, category ocr.Category) (*ocr.Extraction, error)
}

// ExtractionUsecase wraps the OCR collaborator. A failure here is
// always recoverable: the caller keeps the manual-entry path and no
// lead record is touched.
type ExtractionUsecase struct {
	extractor Extractor
}

func NewExtractionUsecase(extractor Extractor) *ExtractionUsecase {
	return &ExtractionUsecase{extractor: extractor}
}

func (u *ExtractionUsecase) Extract(ctx context.Context, image, mimeType, category string) (*ocr.Extraction, error) {
	if strings.TrimSpace(image) == "" {
		return nil, domainerrors.BadRequest("image is required")
	}

	result, err := u.extractor.Extract(ctx, image, mimeType, ocr.Category(category))
	if err != nil {
		if errors.Is(err, domainerrors.ErrUnknownCategory) {
			return nil, domainerrors.BadRequest("unknown document category: " + category)
		}
		logger.Warn(ctx, "document extraction failed",
			zap.String("category", category), zap.Error(err))
		return nil, domainerrors.ExtractionError("document could not be read, enter details manually", err)
	}
	return result, nil
}
