package cashflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrowthPercent(t *testing.T) {
	tests := []struct {
		name     string
		current  int64
		previous int64
		want     float64
	}{
		{"doubled revenue", 200000, 100000, 100},
		{"halved revenue", 50000, 100000, -50},
		{"flat", 75000, 75000, 0},
		{"no baseline reads as zero", 150000, 0, 0},
		{"dropped to nothing", 0, 80000, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, growthPercent(tt.current, tt.previous), 0.001)
		})
	}
}

func TestResolvePeriod(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)

	t.Run("defaults to month to date", func(t *testing.T) {
		start, end, err := resolvePeriod(&SummaryRequest{}, now)
		require.NoError(t, err)
		assert.Equal(t, "2026-03-01", start.Format("2006-01-02"))
		assert.Equal(t, "2026-03-15", end.Format("2006-01-02"))
	})

	t.Run("explicit range", func(t *testing.T) {
		req := &SummaryRequest{DateFrom: "2026-01-01", DateTo: "2026-01-31"}
		start, end, err := resolvePeriod(req, now)
		require.NoError(t, err)
		assert.Equal(t, "2026-01-01", start.Format("2006-01-02"))
		assert.Equal(t, "2026-01-31", end.Format("2006-01-02"))
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		req := &SummaryRequest{DateFrom: "2026-02-10", DateTo: "2026-02-01"}
		_, _, err := resolvePeriod(req, now)
		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		req := &SummaryRequest{DateFrom: "10-02-2026"}
		_, _, err := resolvePeriod(req, now)
		assert.Error(t, err)
	})
}

func TestPeriodDays(t *testing.T) {
	jan1 := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, periodDays(jan1, jan1))
	assert.Equal(t, 31, periodDays(jan1, time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 7, periodDays(jan1, jan1.AddDate(0, 0, 6)))
}
