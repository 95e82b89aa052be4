// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/alcho-id/alcho-backend/internal/config"
	"github.com/alcho-id/alcho-backend/internal/domain/catalog"
	"github.com/alcho-id/alcho-backend/internal/pkg/export"
	"github.com/alcho-id/alcho-backend/internal/pkg/whatsapp"
)

// CatalogHandler serves the storefront catalog: products, filtering,
// pricelist export and WhatsApp contact links.
type CatalogHandler struct {
	config   *config.Config
	whatsapp *whatsapp.Builder
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cfg *config.Config) *CatalogHandler {
	return &CatalogHandler{
		config:   cfg,
		whatsapp: whatsapp.NewBuilder(cfg.Store.WhatsAppPhone),
	}
}

// catalogQueryRequest carries the storefront filter parameters.
type catalogQueryRequest struct {
	Category string   `form:"category"`
	Search   string   `form:"search"`
	Sort     string   `form:"sort"`
	MinPrice int64    `form:"min_price"`
	MaxPrice int64    `form:"max_price"`
	Statuses []string `form:"statuses"`
}

// GetProducts handles GET /products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	var req catalogQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	filter := catalog.FilterState{
		Category: req.Category,
		Search:   req.Search,
		Sort:     catalog.SortMode(req.Sort),
		Price:    catalog.PriceRange{Min: req.MinPrice, Max: req.MaxPrice},
		Statuses: req.Statuses,
	}

	result, err := catalog.Query(catalog.Products(), filter)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidPriceRange) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to query catalog",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    result,
	})
}

// GetProduct handles GET /products/:code
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	code := strings.ToUpper(c.Param("code"))

	product, ok := catalog.FindProduct(code)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data": gin.H{
			"product":       product,
			"whatsapp_link": h.whatsapp.ProductLink(product),
		},
	})
}

// GetCategories handles GET /categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    catalog.Categories(),
	})
}

// DownloadPricelist handles GET /products/pricelist
func (h *CatalogHandler) DownloadPricelist(c *gin.Context) {
	csv, err := export.PricelistCSV(catalog.Products())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate pricelist",
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="pricelist-alcho.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}

// GetInquiryLink handles GET /whatsapp
func (h *CatalogHandler) GetInquiryLink(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "WhatsApp link generated successfully",
		"data": gin.H{
			"link": h.whatsapp.InquiryLink(),
		},
	})
}
