package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrustedDeviceExpiry(t *testing.T) {
	now := time.Date(2026, time.May, 1, 12, 0, 0, 0, time.UTC)

	active := &TrustedDevice{ExpiresAt: now.AddDate(0, 0, 30)}
	assert.False(t, active.IsExpired(now))

	lapsed := &TrustedDevice{ExpiresAt: now.AddDate(0, 0, -1)}
	assert.True(t, lapsed.IsExpired(now))

	// Expiry boundary itself still counts as trusted
	edge := &TrustedDevice{ExpiresAt: now}
	assert.False(t, edge.IsExpired(now))
}

func TestOTPKeyIsScopedPerDevice(t *testing.T) {
	assert.Equal(t, "otp:device:7:abc123", otpKey(7, "abc123"))
	assert.NotEqual(t, otpKey(7, "device-a"), otpKey(7, "device-b"))
	assert.NotEqual(t, otpKey(7, "device-a"), otpKey(8, "device-a"))
}
