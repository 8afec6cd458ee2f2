package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"vehicle-finance.backend/internal/infrastructure/sheetsync"
	"vehicle-finance.backend/internal/interfaces/http/response"
)

type SyncStatusReporter interface {
	State() sheetsync.State
}

// SyncHandler exposes the remote replication indicator
type SyncHandler struct {
	tracker SyncStatusReporter
}

func NewSyncHandler(tracker SyncStatusReporter) *SyncHandler {
	return &SyncHandler{tracker: tracker}
}

// GetStatus returns the current sync indicator state
// GET /api/v1/sync/status
func (h *SyncHandler) GetStatus(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"status": h.tracker.State()})
}
