package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lpgflow/backend-go/internal/service"
)

type DashboardHandler struct {
	service *service.DashboardService
}

func NewDashboardHandler(service *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) GetOverview(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build overview", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, overview)
}

func (h *DashboardHandler) GetIdleAssets(c *gin.Context) {
	idle, err := h.service.IdleAssets(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to find idle assets", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customers": idle,
		"total":     len(idle),
	})
}

func (h *DashboardHandler) GetReconciliation(c *gin.Context) {
	mismatches, err := h.service.Reconciliation(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reconcile assets", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mismatches": mismatches,
		"total":      len(mismatches),
	})
}

func (h *DashboardHandler) GetVehicles(c *gin.Context) {
	vehicles, err := h.service.Vehicles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch vehicles", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}
