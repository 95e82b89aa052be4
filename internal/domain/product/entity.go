// internal/domain/product/entity.go
package product

import (
	"time"

	"gorm.io/gorm"
)

// Stock status values shown in the back office. These are display states,
// not tracked inventory; the storefront never validates stock.
const (
	StockStatusInStock    = "in_stock"
	StockStatusLowStock   = "low_stock"
	StockStatusOutOfStock = "out_of_stock"
)

// Product represents a back-office product record. It is the admin-managed
// counterpart of the static storefront catalog: admins create and edit
// these rows, while the storefront keeps serving the read-only dataset.
type Product struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null;size:255" json:"name"`
	Category    string         `gorm:"not null;size:100;index" json:"category"`
	Variant     string         `gorm:"size:100" json:"variant"` // pack label, e.g. "250ml Botol"
	Price       int64          `gorm:"not null" json:"price"`   // rupiah, smallest unit
	Description string         `gorm:"type:text" json:"description"`
	ImageURL    string         `gorm:"size:500" json:"image_url"`
	StockStatus string         `gorm:"size:20;default:'in_stock'" json:"stock_status"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedBy   *uint          `gorm:"index" json:"created_by,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (Product) TableName() string {
	return "admin_products"
}

// IsAvailable reports whether the product should be offered at all.
func (p *Product) IsAvailable() bool {
	return p.IsActive && p.StockStatus != StockStatusOutOfStock
}
