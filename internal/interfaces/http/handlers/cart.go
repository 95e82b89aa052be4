// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/alcho-id/alcho-backend/internal/config"
	"github.com/alcho-id/alcho-backend/internal/domain/cart"
	"github.com/alcho-id/alcho-backend/internal/pkg/whatsapp"
)

// CartHandler handles session cart endpoints
type CartHandler struct {
	cartService *cart.Service
	whatsapp    *whatsapp.Builder
	config      *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(redisClient *redis.Client, cfg *config.Config) *CartHandler {
	return &CartHandler{
		cartService: cart.NewService(redisClient, cfg),
		whatsapp:    whatsapp.NewBuilder(cfg.Store.WhatsAppPhone),
		config:      cfg,
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	cartResponse, err := h.cartService.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    cartResponse,
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	var req cart.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	cartResponse, err := h.cartService.AddToCart(c.Request.Context(), sessionID, &req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, cart.ErrProductNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    cartResponse,
	})
}

// UpdateCartItem handles PUT /cart/items/:code
// The pack label arrives as a query parameter since labels contain spaces.
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	productCode := strings.ToUpper(c.Param("code"))
	packLabel := c.Query("pack_label")
	if packLabel == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "pack_label query parameter required",
		})
		return
	}

	var req cart.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	cartResponse, err := h.cartService.UpdateCartItem(c.Request.Context(), sessionID, productCode, packLabel, *req.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update cart item",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    cartResponse,
	})
}

// RemoveFromCart handles DELETE /cart/items/:code
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	productCode := strings.ToUpper(c.Param("code"))
	packLabel := c.Query("pack_label")
	if packLabel == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "pack_label query parameter required",
		})
		return
	}

	cartResponse, err := h.cartService.RemoveFromCart(c.Request.Context(), sessionID, productCode, packLabel)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to remove cart item",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    cartResponse,
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	if err := h.cartService.ClearCart(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}

// GetCheckoutLink handles GET /cart/checkout-link. Checkout is a WhatsApp
// handoff: the response carries a wa.me link with the order message
// prefilled.
func (h *CartHandler) GetCheckoutLink(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	cartResponse, err := h.cartService.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	if len(cartResponse.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cart is empty",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout link generated successfully",
		"data": gin.H{
			"link":       h.whatsapp.OrderLink(cartResponse.Items),
			"item_count": cartResponse.ItemCount,
			"total":      cartResponse.Total,
		},
	})
}

// getOrCreateSessionID reads the session from the X-Session-ID header or
// cookie, minting a new one when the browser has neither.
func (h *CartHandler) getOrCreateSessionID(c *gin.Context) string {
	if sessionID := c.GetHeader("X-Session-ID"); sessionID != "" {
		return sessionID
	}

	sessionID, err := c.Cookie("session_id")
	if err != nil || sessionID == "" {
		sessionID = uuid.New().String()
		maxAge := int(h.config.Cart.SessionTTL.Seconds())
		c.SetCookie("session_id", sessionID, maxAge, "/", "", false, true)
	}

	return sessionID
}
