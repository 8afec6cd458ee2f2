package handlers

import (
	"context"
	"testing"

	"github.com/gin-gonic/gin"

	"vehicle-finance.backend/internal/domain/entities"
	domainerrors "vehicle-finance.backend/internal/domain/errors"
	"vehicle-finance.backend/internal/infrastructure/ocr"
	"vehicle-finance.backend/internal/infrastructure/sheetsync"
	"vehicle-finance.backend/internal/usecases"
	"vehicle-finance.backend/pkg/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init("development")
	m.Run()
}

// leadServiceStub implements LeadService with overridable funcs
type leadServiceStub struct {
	createFn    func(ctx context.Context, draft *entities.Lead) (*entities.Lead, error)
	processFn   func(ctx context.Context, id string, input usecases.ProcessLeadInput) (*entities.Lead, error)
	getFn       func(ctx context.Context, id string) (*entities.Lead, error)
	listFn      func(ctx context.Context, search string) ([]*entities.Lead, error)
	agreementFn func(ctx context.Context, id string) (*usecases.AgreementSheet, error)
}

func (s *leadServiceStub) CreateLead(ctx context.Context, draft *entities.Lead) (*entities.Lead, error) {
	if s.createFn != nil {
		return s.createFn(ctx, draft)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *leadServiceStub) ProcessLead(ctx context.Context, id string, input usecases.ProcessLeadInput) (*entities.Lead, error) {
	if s.processFn != nil {
		return s.processFn(ctx, id, input)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *leadServiceStub) GetLead(ctx context.Context, id string) (*entities.Lead, error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *leadServiceStub) ListLeads(ctx context.Context, search string) ([]*entities.Lead, error) {
	if s.listFn != nil {
		return s.listFn(ctx, search)
	}
	return nil, nil
}

func (s *leadServiceStub) AgreementSheet(ctx context.Context, id string) (*usecases.AgreementSheet, error) {
	if s.agreementFn != nil {
		return s.agreementFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

// extractionServiceStub implements ExtractionService
type extractionServiceStub struct {
	extractFn func(ctx context.Context, image, mimeType, category string) (*ocr.Extraction, error)
}

func (s *extractionServiceStub) Extract(ctx context.Context, image, mimeType, category string) (*ocr.Extraction, error) {
	return s.extractFn(ctx, image, mimeType, category)
}

// trackerStub reports a fixed sync state
type trackerStub struct {
	state sheetsync.State
}

func (s *trackerStub) State() sheetsync.State {
	return s.state
}
