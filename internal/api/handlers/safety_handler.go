package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lpgflow/backend-go/internal/service"
)

type SafetyHandler struct {
	service *service.SafetyService
}

func NewSafetyHandler(service *service.SafetyService) *SafetyHandler {
	return &SafetyHandler{service: service}
}

func (h *SafetyHandler) GetDocuments(c *gin.Context) {
	docs, err := h.service.Documents(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch documents", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

func (h *SafetyHandler) GetIncidents(c *gin.Context) {
	incidents, err := h.service.Incidents(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch incidents", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"incidents": incidents})
}
