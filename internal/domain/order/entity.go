// internal/domain/order/entity.go
package order

import (
	"time"

	"gorm.io/gorm"
)

// OrderStatus represents the order status
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// PaymentStatus represents how much of an order has been paid. Payments are
// settled out of band (bank transfer confirmed over chat); there is no
// payment gateway.
type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Customer represents a business customer in the back-office registry.
type Customer struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	BusinessName string         `gorm:"not null;size:255" json:"business_name"`
	ContactName  string         `gorm:"not null;size:255" json:"contact_name"`
	Email        string         `gorm:"not null;size:255" json:"email"`
	Phone        string         `gorm:"not null;size:20" json:"phone"`
	Address      string         `gorm:"size:500" json:"address"`
	City         string         `gorm:"size:100" json:"city"`
	CreatedBy    *uint          `gorm:"index" json:"created_by,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// Order represents a back-office order
type Order struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	OrderNumber   string        `gorm:"uniqueIndex;not null;size:50" json:"order_number"`
	CustomerID    *uint         `gorm:"index" json:"customer_id"`
	Status        OrderStatus   `gorm:"not null;default:'pending'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"not null;default:'unpaid'" json:"payment_status"`
	TotalAmount   int64         `gorm:"not null" json:"total_amount"` // rupiah, smallest unit
	Notes         string        `gorm:"type:text" json:"notes"`
	CreatedBy     *uint         `gorm:"index" json:"created_by,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Customer *Customer   `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer,omitempty"`
	Items    []OrderItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// OrderItem represents one line of an order. Product name and prices are
// denormalized so the order survives later product edits.
type OrderItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OrderID     uint      `gorm:"not null;index" json:"order_id"`
	ProductID   *uint     `gorm:"index" json:"product_id"`
	ProductName string    `gorm:"not null;size:255" json:"product_name"`
	Quantity    int       `gorm:"not null;default:1" json:"quantity"`
	UnitPrice   int64     `gorm:"not null" json:"unit_price"`
	TotalPrice  int64     `gorm:"not null" json:"total_price"` // Quantity * UnitPrice
	CreatedAt   time.Time `json:"created_at"`
}

// TableName overrides
func (Customer) TableName() string  { return "customers" }
func (Order) TableName() string     { return "orders" }
func (OrderItem) TableName() string { return "order_items" }

// CanTransitionTo reports whether a status change is allowed. Completed and
// cancelled are terminal.
func (o *Order) CanTransitionTo(next OrderStatus) bool {
	transitions := map[OrderStatus][]OrderStatus{
		OrderStatusPending:    {OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled},
		OrderStatusProcessing: {OrderStatusCompleted, OrderStatusCancelled},
		OrderStatusCompleted:  {},
		OrderStatusCancelled:  {},
	}

	for _, allowed := range transitions[o.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CountsTowardRevenue reports whether the order contributes to cashflow.
// Cancelled orders never do; unpaid orders are outstanding, not revenue.
func (o *Order) CountsTowardRevenue() bool {
	return o.Status != OrderStatusCancelled && o.PaymentStatus != PaymentStatusUnpaid
}
