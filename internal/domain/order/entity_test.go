package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"pending to processing", OrderStatusPending, OrderStatusProcessing, true},
		{"pending straight to completed", OrderStatusPending, OrderStatusCompleted, true},
		{"pending to cancelled", OrderStatusPending, OrderStatusCancelled, true},
		{"processing to completed", OrderStatusProcessing, OrderStatusCompleted, true},
		{"processing to cancelled", OrderStatusProcessing, OrderStatusCancelled, true},
		{"processing back to pending", OrderStatusProcessing, OrderStatusPending, false},
		{"completed is terminal", OrderStatusCompleted, OrderStatusProcessing, false},
		{"cancelled is terminal", OrderStatusCancelled, OrderStatusPending, false},
		{"cancelled cannot complete", OrderStatusCancelled, OrderStatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Order{Status: tt.from}
			assert.Equal(t, tt.allowed, o.CanTransitionTo(tt.to))
		})
	}
}

func TestCountsTowardRevenue(t *testing.T) {
	tests := []struct {
		name    string
		status  OrderStatus
		payment PaymentStatus
		want    bool
	}{
		{"paid completed order counts", OrderStatusCompleted, PaymentStatusPaid, true},
		{"partial payment counts", OrderStatusProcessing, PaymentStatusPartial, true},
		{"unpaid order is outstanding", OrderStatusPending, PaymentStatusUnpaid, false},
		{"cancelled never counts", OrderStatusCancelled, PaymentStatusPaid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Order{Status: tt.status, PaymentStatus: tt.payment}
			assert.Equal(t, tt.want, o.CountsTowardRevenue())
		})
	}
}
