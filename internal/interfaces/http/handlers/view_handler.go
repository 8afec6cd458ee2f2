package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "vehicle-finance.backend/internal/domain/errors"
	"vehicle-finance.backend/internal/interfaces/http/response"
	"vehicle-finance.backend/internal/usecases"
)

// ViewHandler exposes the navigation state
type ViewHandler struct {
	router *usecases.ViewRouter
}

func NewViewHandler(router *usecases.ViewRouter) *ViewHandler {
	return &ViewHandler{router: router}
}

// GetView returns the current navigation state
// GET /api/v1/view
func (h *ViewHandler) GetView(c *gin.Context) {
	response.Success(c, http.StatusOK, h.router.Current(c.Request.Context()))
}

type openViewRequest struct {
	View   string `json:"view"`
	LeadID string `json:"leadId"`
	Back   bool   `json:"back"`
}

// SetView switches the active view. {"back": true} returns to the list
// regardless of the current view.
// PUT /api/v1/view
func (h *ViewHandler) SetView(c *gin.Context) {
	var req openViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if req.Back {
		response.Success(c, http.StatusOK, h.router.Back(c.Request.Context()))
		return
	}

	state, err := h.router.Open(c.Request.Context(), usecases.View(req.View), req.LeadID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, state)
}
