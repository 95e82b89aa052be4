// internal/domain/analytics/entity.go
package analytics

import "time"

// PageView records one storefront page load. Sessions are anonymous
// browser-generated identifiers, not authenticated users.
type PageView struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID string    `gorm:"not null;index;size:64" json:"session_id"`
	Path      string    `gorm:"not null;size:255" json:"path"`
	Referrer  string    `gorm:"size:255" json:"referrer"`
	UserAgent string    `gorm:"size:500" json:"user_agent"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// ProductInterest records a visitor engaging with a product: opening its
// detail view, adding it to the cart, or tapping through to WhatsApp.
type ProductInterest struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SessionID   string    `gorm:"not null;index;size:64" json:"session_id"`
	ProductCode string    `gorm:"not null;index;size:20" json:"product_code"`
	Action      string    `gorm:"not null;size:20" json:"action"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

// Interest actions
const (
	ActionView      = "view"
	ActionAddToCart = "add_to_cart"
	ActionWhatsApp  = "whatsapp"
)

// SearchEvent records one catalog search and how many products it matched.
type SearchEvent struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SessionID   string    `gorm:"not null;index;size:64" json:"session_id"`
	Query       string    `gorm:"not null;size:255" json:"query"`
	ResultCount int       `gorm:"not null" json:"result_count"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

// TableName overrides
func (PageView) TableName() string        { return "page_views" }
func (ProductInterest) TableName() string { return "product_interests" }
func (SearchEvent) TableName() string     { return "search_analytics" }
