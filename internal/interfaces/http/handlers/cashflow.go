// internal/interfaces/http/handlers/cashflow.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alcho-id/alcho-backend/internal/config"
	"github.com/alcho-id/alcho-backend/internal/domain/cashflow"
)

// CashflowHandler handles revenue summary endpoints
type CashflowHandler struct {
	cashflowService *cashflow.Service
	config          *config.Config
}

// NewCashflowHandler creates a new cashflow handler
func NewCashflowHandler(db *gorm.DB, cfg *config.Config) *CashflowHandler {
	return &CashflowHandler{
		cashflowService: cashflow.NewService(db, cfg),
		config:          cfg,
	}
}

// GetSummary handles GET /admin/cashflow/summary
func (h *CashflowHandler) GetSummary(c *gin.Context) {
	var req cashflow.SummaryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	summary, err := h.cashflowService.GetSummary(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, cashflow.ErrInvalidPeriod) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute revenue summary",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Revenue summary retrieved successfully",
		"data":    summary,
	})
}
