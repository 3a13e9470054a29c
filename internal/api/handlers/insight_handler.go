package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lpgflow/backend-go/internal/service"
)

type InsightHandler struct {
	service *service.InsightService
}

func NewInsightHandler(service *service.InsightService) *InsightHandler {
	return &InsightHandler{service: service}
}

// PostForecast triggers a demand forecast. ?force=true bypasses the advice
// cache for a manual recalculate.
func (h *InsightHandler) PostForecast(c *gin.Context) {
	force := c.Query("force") == "true"

	advice, err := h.service.Forecast(c.Request.Context(), force)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build forecast", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"advice": advice})
}

func (h *InsightHandler) PostIdleAnalysis(c *gin.Context) {
	force := c.Query("force") == "true"

	advice, err := h.service.IdleAnalysis(c.Request.Context(), force)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to analyze idle assets", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"advice": advice})
}

type safetyAdviceRequest struct {
	Question string `json:"question" binding:"required"`
}

func (h *InsightHandler) PostSafetyAdvice(c *gin.Context) {
	var req safetyAdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Question) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		return
	}

	advice := h.service.SafetyAdvice(c.Request.Context(), strings.TrimSpace(req.Question))

	c.JSON(http.StatusOK, gin.H{"advice": advice})
}
