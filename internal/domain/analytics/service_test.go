package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackInterestValidation(t *testing.T) {
	// Validation runs before any storage access.
	s := NewService(nil, nil)

	t.Run("rejects unknown action", func(t *testing.T) {
		err := s.TrackInterest(context.Background(), &InterestRequest{
			SessionID:   "sess-1",
			ProductCode: "ALC-001",
			Action:      "purchase",
		})
		assert.ErrorIs(t, err, ErrInvalidAction)
	})

	t.Run("rejects code not in catalog", func(t *testing.T) {
		err := s.TrackInterest(context.Background(), &InterestRequest{
			SessionID:   "sess-1",
			ProductCode: "ALC-999",
			Action:      ActionView,
		})
		assert.ErrorIs(t, err, ErrUnknownProduct)
	})
}

func TestTrackSearchSkipsBlankQuery(t *testing.T) {
	s := NewService(nil, nil)

	err := s.TrackSearch(context.Background(), &SearchRequest{
		SessionID: "sess-1",
		Query:     "   ",
	})
	assert.NoError(t, err)
}
