// internal/domain/cashflow/service.go
package cashflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/alcho-id/alcho-backend/internal/config"
)

// ErrInvalidPeriod is returned when the requested date range is inverted.
var ErrInvalidPeriod = errors.New("period start must not be after period end")

// revenueFilter keeps cancelled orders and orders with no payment yet out
// of every revenue figure.
const revenueFilter = "status <> 'cancelled' AND payment_status <> 'unpaid'"

// Service computes revenue summaries over back-office orders
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new cashflow service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// SummaryRequest selects the reporting period. Dates are inclusive and use
// YYYY-MM-DD.
type SummaryRequest struct {
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
}

// DailyRevenue is one point of the per-day series
type DailyRevenue struct {
	Date       string `json:"date"`
	Revenue    int64  `json:"revenue"`
	OrderCount int64  `json:"order_count"`
}

// Summary represents the revenue summary for a period
type Summary struct {
	PeriodStart   string         `json:"period_start"`
	PeriodEnd     string         `json:"period_end"`
	TotalRevenue  int64          `json:"total_revenue"`
	OrderCount    int64          `json:"order_count"`
	AvgOrderValue int64          `json:"avg_order_value"`
	DailyAverage  int64          `json:"daily_average"`
	RevenueGrowth float64        `json:"revenue_growth"` // vs the preceding period of equal length
	Daily         []DailyRevenue `json:"daily"`
}

// GetSummary computes the revenue summary for the requested period. An
// empty range defaults to the current month to date.
func (s *Service) GetSummary(ctx context.Context, req *SummaryRequest) (*Summary, error) {
	start, end, err := resolvePeriod(req, time.Now())
	if err != nil {
		return nil, err
	}

	// end is inclusive; queries use a half-open range
	endExclusive := end.AddDate(0, 0, 1)

	summary := &Summary{
		PeriodStart: start.Format("2006-01-02"),
		PeriodEnd:   end.Format("2006-01-02"),
	}

	db := s.db.WithContext(ctx)

	err = db.Raw(
		"SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE "+revenueFilter+" AND deleted_at IS NULL AND created_at >= ? AND created_at < ?",
		start, endExclusive,
	).Scan(&summary.TotalRevenue).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	err = db.Raw(
		"SELECT COUNT(*) FROM orders WHERE "+revenueFilter+" AND deleted_at IS NULL AND created_at >= ? AND created_at < ?",
		start, endExclusive,
	).Scan(&summary.OrderCount).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	if summary.OrderCount > 0 {
		summary.AvgOrderValue = summary.TotalRevenue / summary.OrderCount
	}

	days := periodDays(start, end)
	summary.DailyAverage = summary.TotalRevenue / int64(days)

	// Growth against the preceding period of the same length
	prevStart := start.AddDate(0, 0, -days)
	var prevRevenue int64
	err = db.Raw(
		"SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE "+revenueFilter+" AND deleted_at IS NULL AND created_at >= ? AND created_at < ?",
		prevStart, start,
	).Scan(&prevRevenue).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum previous period revenue: %w", err)
	}
	summary.RevenueGrowth = growthPercent(summary.TotalRevenue, prevRevenue)

	rows, err := db.Raw(
		"SELECT DATE(created_at) as date, COALESCE(SUM(total_amount), 0) as revenue, COUNT(*) as order_count FROM orders WHERE "+revenueFilter+" AND deleted_at IS NULL AND created_at >= ? AND created_at < ? GROUP BY DATE(created_at) ORDER BY date",
		start, endExclusive,
	).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to get daily revenue: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var day DailyRevenue
		if err := rows.Scan(&day.Date, &day.Revenue, &day.OrderCount); err != nil {
			continue
		}
		summary.Daily = append(summary.Daily, day)
	}

	return summary, nil
}

// resolvePeriod parses the requested range, defaulting to the current
// month to date.
func resolvePeriod(req *SummaryRequest, now time.Time) (time.Time, time.Time, error) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if req.DateFrom != "" {
		parsed, err := time.Parse("2006-01-02", req.DateFrom)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid date_from: %w", err)
		}
		start = parsed
	}
	if req.DateTo != "" {
		parsed, err := time.Parse("2006-01-02", req.DateTo)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid date_to: %w", err)
		}
		end = parsed
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
	return start, end, nil
}

// periodDays counts the days in an inclusive range.
func periodDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// growthPercent returns the percentage change from previous to current.
// With no previous revenue there is no baseline, so growth reads as zero.
func growthPercent(current, previous int64) float64 {
	if previous <= 0 {
		return 0
	}
	return float64(current-previous) / float64(previous) * 100
}
