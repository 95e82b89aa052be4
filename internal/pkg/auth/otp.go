// internal/pkg/auth/otp.go
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
)

// OTPLength is the number of digits in a device verification code.
const OTPLength = 6

// GenerateOTP returns a zero-padded numeric code for device verification.
func GenerateOTP() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < OTPLength; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}

	return fmt.Sprintf("%0*d", OTPLength, n), nil
}

// GenerateDeviceID returns a random identifier for a browser the admin is
// signing in from. Stored in a long-lived cookie on the client.
func GenerateDeviceID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate device id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
