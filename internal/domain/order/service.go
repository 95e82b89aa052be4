// internal/domain/order/service.go
package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/alcho-id/alcho-backend/internal/config"
	"github.com/alcho-id/alcho-backend/internal/domain/product"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrEmptyOrder        = errors.New("order must contain at least one item")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrInvalidStatus     = errors.New("invalid status value")
)

// Service handles back-office order operations
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new order service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// CreateOrderItemRequest is one line of a new order.
type CreateOrderItemRequest struct {
	ProductID *uint  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	UnitPrice int64  `json:"unit_price" binding:"min=0"`
}

// CreateOrderRequest represents an order creation request
type CreateOrderRequest struct {
	CustomerID *uint                    `json:"customer_id"`
	Notes      string                   `json:"notes"`
	Items      []CreateOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderStatusRequest represents a status update request
type UpdateOrderStatusRequest struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

// OrderListRequest represents order listing parameters
type OrderListRequest struct {
	Page          int    `form:"page,default=1"`
	Limit         int    `form:"limit,default=20"`
	Status        string `form:"status"`
	PaymentStatus string `form:"payment_status"`
	CustomerID    uint   `form:"customer_id"`
	DateFrom      string `form:"date_from"` // YYYY-MM-DD
	DateTo        string `form:"date_to"`   // YYYY-MM-DD
	SortOrder     string `form:"sort_order,default=desc"`
}

// OrderListResponse represents a paginated order list
type OrderListResponse struct {
	Orders     []Order             `json:"orders"`
	Pagination *product.Pagination `json:"pagination"`
}

// CreateOrder creates an order with its items in a single transaction.
// Item prices are resolved from the catalog when a product reference is
// given, otherwise taken from the request as entered by the admin.
func (s *Service) CreateOrder(ctx context.Context, req *CreateOrderRequest, createdBy *uint) (*Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	if req.CustomerID != nil {
		var customer Customer
		if err := s.db.WithContext(ctx).First(&customer, *req.CustomerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCustomerNotFound
			}
			return nil, fmt.Errorf("failed to load customer: %w", err)
		}
	}

	order := &Order{
		CustomerID:    req.CustomerID,
		Status:        OrderStatusPending,
		PaymentStatus: PaymentStatusUnpaid,
		Notes:         req.Notes,
		CreatedBy:     createdBy,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		number, err := s.nextOrderNumber(tx)
		if err != nil {
			return err
		}
		order.OrderNumber = number

		for _, item := range req.Items {
			line := OrderItem{
				ProductID:   item.ProductID,
				ProductName: item.Name,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
			}

			if item.ProductID != nil {
				var p product.Product
				if err := tx.First(&p, *item.ProductID).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return product.ErrProductNotFound
					}
					return fmt.Errorf("failed to load product: %w", err)
				}
				line.ProductName = fmt.Sprintf("%s (%s)", p.Name, p.Variant)
				line.UnitPrice = p.Price
			}

			line.TotalPrice = int64(line.Quantity) * line.UnitPrice
			order.TotalAmount += line.TotalPrice
			order.Items = append(order.Items, line)
		}

		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetOrder(ctx, order.ID)
}

// GetOrder retrieves an order with items and customer preloaded
func (s *Service) GetOrder(ctx context.Context, id uint) (*Order, error) {
	var order Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		Preload("Customer").
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

// GetOrderByNumber retrieves an order by its order number
func (s *Service) GetOrderByNumber(ctx context.Context, number string) (*Order, error) {
	var order Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		Preload("Customer").
		Where("order_number = ?", number).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

// GetOrders retrieves orders with filtering and pagination
func (s *Service) GetOrders(ctx context.Context, req *OrderListRequest) (*OrderListResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}

	query := s.db.WithContext(ctx).Model(&Order{})

	if req.Status != "" {
		query = query.Where("status = ?", req.Status)
	}
	if req.PaymentStatus != "" {
		query = query.Where("payment_status = ?", req.PaymentStatus)
	}
	if req.CustomerID > 0 {
		query = query.Where("customer_id = ?", req.CustomerID)
	}
	if req.DateFrom != "" {
		if from, err := time.Parse("2006-01-02", req.DateFrom); err == nil {
			query = query.Where("created_at >= ?", from)
		}
	}
	if req.DateTo != "" {
		if to, err := time.Parse("2006-01-02", req.DateTo); err == nil {
			query = query.Where("created_at < ?", to.AddDate(0, 0, 1))
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	order := "created_at DESC"
	if req.SortOrder == "asc" {
		order = "created_at ASC"
	}

	var orders []Order
	offset := (req.Page - 1) * req.Limit
	err := query.
		Preload("Items").
		Preload("Customer").
		Order(order).
		Offset(offset).
		Limit(req.Limit).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))
	return &OrderListResponse{
		Orders: orders,
		Pagination: &product.Pagination{
			Page:       req.Page,
			Limit:      req.Limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    req.Page < totalPages,
			HasPrev:    req.Page > 1,
		},
	}, nil
}

// UpdateOrderStatus updates order and/or payment status, enforcing the
// status transition rules.
func (s *Service) UpdateOrderStatus(ctx context.Context, id uint, req *UpdateOrderStatusRequest) (*Order, error) {
	var order Order
	if err := s.db.WithContext(ctx).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	updates := map[string]interface{}{}

	if req.Status != "" {
		next := OrderStatus(req.Status)
		switch next {
		case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		default:
			return nil, ErrInvalidStatus
		}
		if next != order.Status {
			if !order.CanTransitionTo(next) {
				return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, next)
			}
			updates["status"] = next
		}
	}

	if req.PaymentStatus != "" {
		ps := PaymentStatus(req.PaymentStatus)
		switch ps {
		case PaymentStatusUnpaid, PaymentStatusPartial, PaymentStatusPaid:
		default:
			return nil, ErrInvalidStatus
		}
		updates["payment_status"] = ps
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&order).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update order: %w", err)
		}
	}

	return s.GetOrder(ctx, id)
}

// DeleteOrder soft deletes an order
func (s *Service) DeleteOrder(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&Order{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// nextOrderNumber produces ORD-YYYYMMDD-XXXX where XXXX is a per-day
// sequence. Runs inside the order creation transaction so concurrent
// creates get distinct numbers under the unique index.
func (s *Service) nextOrderNumber(tx *gorm.DB) (string, error) {
	day := time.Now().Format("20060102")

	var count int64
	err := tx.Model(&Order{}).
		Unscoped().
		Where("order_number LIKE ?", fmt.Sprintf("ORD-%s-%%", day)).
		Count(&count).Error
	if err != nil {
		return "", fmt.Errorf("failed to generate order number: %w", err)
	}

	return fmt.Sprintf("ORD-%s-%04d", day, count+1), nil
}

// Customer operations

// CreateCustomerRequest represents a customer creation request
type CreateCustomerRequest struct {
	BusinessName string `json:"business_name" binding:"required,max=255"`
	ContactName  string `json:"contact_name" binding:"required,max=255"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required,max=20"`
	Address      string `json:"address" binding:"max=500"`
	City         string `json:"city" binding:"max=100"`
}

// CreateCustomer registers a new customer
func (s *Service) CreateCustomer(ctx context.Context, req *CreateCustomerRequest, createdBy *uint) (*Customer, error) {
	customer := &Customer{
		BusinessName: req.BusinessName,
		ContactName:  req.ContactName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		CreatedBy:    createdBy,
	}
	if err := s.db.WithContext(ctx).Create(customer).Error; err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

// GetCustomers lists customers, newest first
func (s *Service) GetCustomers(ctx context.Context) ([]Customer, error) {
	var customers []Customer
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&customers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}
	return customers, nil
}

// GetCustomer retrieves a single customer
func (s *Service) GetCustomer(ctx context.Context, id uint) (*Customer, error) {
	var customer Customer
	if err := s.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &customer, nil
}
