// internal/domain/analytics/service.go
package analytics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/alcho-id/alcho-backend/internal/config"
	"github.com/alcho-id/alcho-backend/internal/domain/catalog"
)

var (
	ErrInvalidAction  = errors.New("invalid interest action")
	ErrUnknownProduct = errors.New("unknown product code")
)

// Service captures storefront events and aggregates them for the
// back-office dashboard
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new analytics service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// PageViewRequest represents a page view capture request
type PageViewRequest struct {
	SessionID string `json:"session_id" binding:"required,max=64"`
	Path      string `json:"path" binding:"required,max=255"`
	Referrer  string `json:"referrer" binding:"max=255"`
	UserAgent string `json:"user_agent" binding:"max=500"`
}

// InterestRequest represents a product interest capture request
type InterestRequest struct {
	SessionID   string `json:"session_id" binding:"required,max=64"`
	ProductCode string `json:"product_code" binding:"required,max=20"`
	Action      string `json:"action" binding:"required"`
}

// SearchRequest represents a search capture request
type SearchRequest struct {
	SessionID   string `json:"session_id" binding:"required,max=64"`
	Query       string `json:"query" binding:"required,max=255"`
	ResultCount int    `json:"result_count" binding:"min=0"`
}

// TrackPageView stores a page view event
func (s *Service) TrackPageView(ctx context.Context, req *PageViewRequest) error {
	view := PageView{
		SessionID: req.SessionID,
		Path:      req.Path,
		Referrer:  req.Referrer,
		UserAgent: req.UserAgent,
	}
	if err := s.db.WithContext(ctx).Create(&view).Error; err != nil {
		return fmt.Errorf("failed to track page view: %w", err)
	}
	return nil
}

// TrackInterest stores a product interest event. The product code must
// exist in the catalog so dashboard joins stay meaningful.
func (s *Service) TrackInterest(ctx context.Context, req *InterestRequest) error {
	switch req.Action {
	case ActionView, ActionAddToCart, ActionWhatsApp:
	default:
		return ErrInvalidAction
	}

	code := strings.ToUpper(strings.TrimSpace(req.ProductCode))
	if _, ok := catalog.FindProduct(code); !ok {
		return ErrUnknownProduct
	}

	interest := ProductInterest{
		SessionID:   req.SessionID,
		ProductCode: code,
		Action:      req.Action,
	}
	if err := s.db.WithContext(ctx).Create(&interest).Error; err != nil {
		return fmt.Errorf("failed to track interest: %w", err)
	}
	return nil
}

// TrackSearch stores a search event
func (s *Service) TrackSearch(ctx context.Context, req *SearchRequest) error {
	event := SearchEvent{
		SessionID:   req.SessionID,
		Query:       strings.TrimSpace(req.Query),
		ResultCount: req.ResultCount,
	}
	if event.Query == "" {
		return nil
	}
	if err := s.db.WithContext(ctx).Create(&event).Error; err != nil {
		return fmt.Errorf("failed to track search: %w", err)
	}
	return nil
}

// ProductInterestData is one row of the product interest ranking
type ProductInterestData struct {
	ProductCode  string `json:"product_code"`
	ProductName  string `json:"product_name"`
	Views        int64  `json:"views"`
	CartAdds     int64  `json:"cart_adds"`
	WhatsAppTaps int64  `json:"whatsapp_taps"`
}

// SearchTermData is one row of the popular-search ranking
type SearchTermData struct {
	Query      string  `json:"query"`
	Count      int64   `json:"count"`
	AvgResults float64 `json:"avg_results"`
}

// Insights represents aggregated storefront activity for a recent window
type Insights struct {
	Days            int                   `json:"days"`
	TotalPageViews  int64                 `json:"total_page_views"`
	UniqueSessions  int64                 `json:"unique_sessions"`
	TopProducts     []ProductInterestData `json:"top_products"`
	TopSearches     []SearchTermData      `json:"top_searches"`
	ZeroResultTerms []SearchTermData      `json:"zero_result_terms"`
}

// GetInsights aggregates storefront activity over the last N days
func (s *Service) GetInsights(ctx context.Context, days int) (*Insights, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	insights := &Insights{Days: days}
	db := s.db.WithContext(ctx)

	db.Raw("SELECT COUNT(*) FROM page_views WHERE created_at >= ?", since).Scan(&insights.TotalPageViews)
	db.Raw("SELECT COUNT(DISTINCT session_id) FROM page_views WHERE created_at >= ?", since).Scan(&insights.UniqueSessions)

	rows, err := db.Raw(`
		SELECT
			product_code,
			COUNT(*) FILTER (WHERE action = 'view') as views,
			COUNT(*) FILTER (WHERE action = 'add_to_cart') as cart_adds,
			COUNT(*) FILTER (WHERE action = 'whatsapp') as whatsapp_taps
		FROM product_interests
		WHERE created_at >= ?
		GROUP BY product_code
		ORDER BY views DESC
		LIMIT 10
	`, since).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to get product interest: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var data ProductInterestData
		if err := rows.Scan(&data.ProductCode, &data.Views, &data.CartAdds, &data.WhatsAppTaps); err != nil {
			continue
		}
		if p, ok := catalog.FindProduct(data.ProductCode); ok {
			data.ProductName = p.Name
		}
		insights.TopProducts = append(insights.TopProducts, data)
	}

	searchRows, err := db.Raw(`
		SELECT LOWER(query) as query, COUNT(*) as count, AVG(result_count) as avg_results
		FROM search_analytics
		WHERE created_at >= ?
		GROUP BY LOWER(query)
		ORDER BY count DESC
		LIMIT 10
	`, since).Rows()
	if err == nil {
		defer searchRows.Close()
		for searchRows.Next() {
			var term SearchTermData
			if err := searchRows.Scan(&term.Query, &term.Count, &term.AvgResults); err != nil {
				continue
			}
			insights.TopSearches = append(insights.TopSearches, term)
		}
	}

	// Searches that found nothing point at catalog gaps
	zeroRows, err := db.Raw(`
		SELECT LOWER(query) as query, COUNT(*) as count, 0 as avg_results
		FROM search_analytics
		WHERE created_at >= ? AND result_count = 0
		GROUP BY LOWER(query)
		ORDER BY count DESC
		LIMIT 10
	`, since).Rows()
	if err == nil {
		defer zeroRows.Close()
		for zeroRows.Next() {
			var term SearchTermData
			if err := zeroRows.Scan(&term.Query, &term.Count, &term.AvgResults); err != nil {
				continue
			}
			insights.ZeroResultTerms = append(insights.ZeroResultTerms, term)
		}
	}

	return insights, nil
}
