// internal/interfaces/http/handlers/analytics.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alcho-id/alcho-backend/internal/config"
	"github.com/alcho-id/alcho-backend/internal/domain/analytics"
)

// AnalyticsHandler handles storefront event capture and back-office
// insight endpoints
type AnalyticsHandler struct {
	analyticsService *analytics.Service
	config           *config.Config
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(db *gorm.DB, cfg *config.Config) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analytics.NewService(db, cfg),
		config:           cfg,
	}
}

// TrackPageView handles POST /analytics/page-views
func (h *AnalyticsHandler) TrackPageView(c *gin.Context) {
	var req analytics.PageViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if req.UserAgent == "" {
		req.UserAgent = c.Request.UserAgent()
	}

	if err := h.analyticsService.TrackPageView(c.Request.Context(), &req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to track page view",
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message": "Page view tracked",
	})
}

// TrackInterest handles POST /analytics/interests
func (h *AnalyticsHandler) TrackInterest(c *gin.Context) {
	var req analytics.InterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.analyticsService.TrackInterest(c.Request.Context(), &req); err != nil {
		switch {
		case errors.Is(err, analytics.ErrInvalidAction), errors.Is(err, analytics.ErrUnknownProduct):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to track interest"})
		}
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message": "Interest tracked",
	})
}

// TrackSearch handles POST /analytics/searches
func (h *AnalyticsHandler) TrackSearch(c *gin.Context) {
	var req analytics.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.analyticsService.TrackSearch(c.Request.Context(), &req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to track search",
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message": "Search tracked",
	})
}

// GetInsights handles GET /admin/analytics/insights
func (h *AnalyticsHandler) GetInsights(c *gin.Context) {
	days := 30
	if daysParam := c.Query("days"); daysParam != "" {
		parsed, err := strconv.Atoi(daysParam)
		if err != nil || parsed < 1 || parsed > 365 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "days must be between 1 and 365",
			})
			return
		}
		days = parsed
	}

	insights, err := h.analyticsService.GetInsights(c.Request.Context(), days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve insights",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Insights retrieved successfully",
		"data":    insights,
	})
}
