// internal/domain/product/service.go
package product

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/alcho-id/alcho-backend/internal/config"
)

// ErrProductNotFound is returned when a product lookup misses.
var ErrProductNotFound = errors.New("product not found")

// Service handles back-office product business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new product service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// ProductListRequest represents product list query parameters
type ProductListRequest struct {
	Page        int    `form:"page,default=1"`
	Limit       int    `form:"limit,default=20"`
	Category    string `form:"category"`
	Search      string `form:"search"`
	StockStatus string `form:"stock_status"`
	IsActive    *bool  `form:"is_active"`
	SortBy      string `form:"sort_by,default=created_at"`
	SortOrder   string `form:"sort_order,default=desc"`
}

// ProductCreateRequest represents product creation data
type ProductCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Variant     string `json:"variant"`
	Price       int64  `json:"price" binding:"required,min=1"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	StockStatus string `json:"stock_status"`
	IsActive    *bool  `json:"is_active"`
}

// ProductUpdateRequest represents product update data
type ProductUpdateRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Variant     *string `json:"variant"`
	Price       *int64  `json:"price"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	StockStatus *string `json:"stock_status"`
	IsActive    *bool   `json:"is_active"`
}

// ProductResponse represents a product list response with pagination
type ProductResponse struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

// Pagination represents pagination information
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// GetProducts retrieves products with filtering and pagination
func (s *Service) GetProducts(req *ProductListRequest) (*ProductResponse, error) {
	var products []Product
	var total int64

	query := s.db.Model(&Product{})

	if req.Category != "" {
		query = query.Where("category = ?", req.Category)
	}

	if req.Search != "" {
		search := "%" + strings.ToLower(req.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", search, search)
	}

	if req.StockStatus != "" {
		query = query.Where("stock_status = ?", req.StockStatus)
	}

	if req.IsActive != nil {
		query = query.Where("is_active = ?", *req.IsActive)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	query = query.Order(s.buildOrderClause(req.SortBy, req.SortOrder))

	offset := (req.Page - 1) * req.Limit
	if err := query.Offset(offset).Limit(req.Limit).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}

	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))
	pagination := Pagination{
		Page:       req.Page,
		Limit:      req.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    req.Page < totalPages,
		HasPrev:    req.Page > 1,
	}

	return &ProductResponse{
		Products:   products,
		Pagination: pagination,
	}, nil
}

// GetProduct retrieves a single product by ID
func (s *Service) GetProduct(id uint) (*Product, error) {
	var product Product
	result := s.db.Where("id = ?", id).First(&product)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", result.Error)
	}
	return &product, nil
}

// CreateProduct creates a new product
func (s *Service) CreateProduct(createdBy uint, req *ProductCreateRequest) (*Product, error) {
	stockStatus := req.StockStatus
	if stockStatus == "" {
		stockStatus = StockStatusInStock
	}
	if !validStockStatus(stockStatus) {
		return nil, fmt.Errorf("invalid stock status: %s", stockStatus)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	product := Product{
		Name:        req.Name,
		Category:    req.Category,
		Variant:     req.Variant,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		StockStatus: stockStatus,
		IsActive:    isActive,
		CreatedBy:   &createdBy,
	}

	if err := s.db.Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &product, nil
}

// UpdateProduct updates an existing product
func (s *Service) UpdateProduct(id uint, req *ProductUpdateRequest) (*Product, error) {
	var product Product
	result := s.db.Where("id = ?", id).First(&product)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", result.Error)
	}

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Variant != nil {
		updates["variant"] = *req.Variant
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, fmt.Errorf("price must be positive")
		}
		updates["price"] = *req.Price
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.StockStatus != nil {
		if !validStockStatus(*req.StockStatus) {
			return nil, fmt.Errorf("invalid stock status: %s", *req.StockStatus)
		}
		updates["stock_status"] = *req.StockStatus
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := s.db.Model(&product).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &product, nil
}

// DeleteProduct soft deletes a product
func (s *Service) DeleteProduct(id uint) error {
	result := s.db.Where("id = ?", id).Delete(&Product{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// buildOrderClause builds ORDER BY clause for sorting
func (s *Service) buildOrderClause(sortBy, sortOrder string) string {
	validSortFields := map[string]bool{
		"name":       true,
		"category":   true,
		"price":      true,
		"created_at": true,
		"updated_at": true,
	}

	if !validSortFields[sortBy] {
		sortBy = "created_at"
	}

	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	return fmt.Sprintf("%s %s", sortBy, sortOrder)
}

func validStockStatus(status string) bool {
	switch status {
	case StockStatusInStock, StockStatusLowStock, StockStatusOutOfStock:
		return true
	}
	return false
}
