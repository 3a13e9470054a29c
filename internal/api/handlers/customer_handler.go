package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lpgflow/backend-go/internal/repository"
	"github.com/lpgflow/backend-go/internal/service"
)

type CustomerHandler struct {
	service *service.CustomerService
}

func NewCustomerHandler(service *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

func (h *CustomerHandler) GetCylinderStatus(c *gin.Context) {
	view, err := h.service.CylinderStatus(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to assess cylinder", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *CustomerHandler) GetTransactions(c *gin.Context) {
	txs, err := h.service.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch transactions", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": txs})
}
