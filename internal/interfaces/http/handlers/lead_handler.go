package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"vehicle-finance.backend/internal/domain/entities"
	domainerrors "vehicle-finance.backend/internal/domain/errors"
	"vehicle-finance.backend/internal/interfaces/http/response"
	"vehicle-finance.backend/internal/usecases"
)

type LeadService interface {
	CreateLead(ctx context.Context, draft *entities.Lead) (*entities.Lead, error)
	ProcessLead(ctx context.Context, id string, input usecases.ProcessLeadInput) (*entities.Lead, error)
	GetLead(ctx context.Context, id string) (*entities.Lead, error)
	ListLeads(ctx context.Context, search string) ([]*entities.Lead, error)
	AgreementSheet(ctx context.Context, id string) (*usecases.AgreementSheet, error)
}

// LeadHandler handles lead endpoints
type LeadHandler struct {
	leadUsecase LeadService
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadUsecase LeadService) *LeadHandler {
	return &LeadHandler{leadUsecase: leadUsecase}
}

// CreateLead creates a new lead
// POST /api/v1/leads
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var draft entities.Lead

	if err := c.ShouldBindJSON(&draft); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	lead, err := h.leadUsecase.CreateLead(c.Request.Context(), &draft)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"lead": lead})
}

// ListLeads lists leads, optionally narrowed by a search term
// GET /api/v1/leads?search=
func (h *LeadHandler) ListLeads(c *gin.Context) {
	leads, err := h.leadUsecase.ListLeads(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"leads": leads,
		"total": len(leads),
	})
}

// GetLead gets a lead by case id
// GET /api/v1/leads/:id
func (h *LeadHandler) GetLead(c *gin.Context) {
	lead, err := h.leadUsecase.GetLead(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Lead not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"lead": lead})
}

type processLeadRequest struct {
	Verification entities.VerificationData `json:"verification"`
	Approval     entities.ApprovalData     `json:"approval"`
}

// ProcessLead records verification and approval values for a lead
// PUT /api/v1/leads/:id/process
func (h *LeadHandler) ProcessLead(c *gin.Context) {
	var req processLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	lead, err := h.leadUsecase.ProcessLead(c.Request.Context(), c.Param("id"), usecases.ProcessLeadInput{
		Verification: req.Verification,
		Approval:     req.Approval,
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Lead not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"lead": lead})
}

// GetAgreement builds the printable agreement sheet for a lead
// GET /api/v1/leads/:id/agreement
func (h *LeadHandler) GetAgreement(c *gin.Context) {
	sheet, err := h.leadUsecase.AgreementSheet(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Lead not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"agreement": sheet})
}
