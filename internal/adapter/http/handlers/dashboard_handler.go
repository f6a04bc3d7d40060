package handlers

import (
	"net/http"

	"assistec/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IStatusMonitorUseCase
}

func NewDashboardHandler(uc usecase.IStatusMonitorUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// Get serves the last snapshot; ?refresh=true refreshes it first.
func (h *DashboardHandler) Get(c *gin.Context) {
	if c.Query("refresh") == "true" {
		h.usecase.Refresh(c.Request.Context())
	}
	c.JSON(http.StatusOK, h.usecase.Snapshot())
}
