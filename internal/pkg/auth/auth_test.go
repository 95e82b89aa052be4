package auth

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alcho-id/alcho-backend/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "alcho-backend"
	cfg.JWT.Secret = "0123456789abcdef0123456789abcdef"
	cfg.JWT.AccessTokenExpiry = 15 * time.Minute
	cfg.JWT.RefreshTokenExpiry = 7 * 24 * time.Hour
	cfg.Security.BcryptCost = 4 // keep the test fast
	return cfg
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewJWTManager(testConfig())

	token, err := m.GenerateAccessToken(42, "admin@alcho.id", "device-abc")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin@alcho.id", claims.Email)
	assert.Equal(t, "device-abc", claims.DeviceID)
	assert.Equal(t, "access", claims.TokenType)
}

func TestRefreshTokenRejectedAsAccess(t *testing.T) {
	m := NewJWTManager(testConfig())

	token, err := m.GenerateRefreshToken(42, "admin@alcho.id")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)

	claims, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims.TokenType)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	m := NewJWTManager(testConfig())

	token, err := m.GenerateAccessToken(1, "admin@alcho.id", "")
	require.NoError(t, err)

	_, err = m.ValidateToken(token + "x")
	assert.Error(t, err)

	other := testConfig()
	other.JWT.Secret = "ffffffffffffffffffffffffffffffff"
	_, err = NewJWTManager(other).ValidateToken(token)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc.def.ghi", ExtractTokenFromHeader("Bearer abc.def.ghi"))
	assert.Equal(t, "", ExtractTokenFromHeader("abc.def.ghi"))
	assert.Equal(t, "", ExtractTokenFromHeader(""))
	assert.Equal(t, "", ExtractTokenFromHeader("Bearer"))
}

func TestPasswordHashAndVerify(t *testing.T) {
	pm := NewPasswordManager(testConfig())

	hash, err := pm.HashPassword("Sambal4Enak")
	require.NoError(t, err)
	assert.NotEqual(t, "Sambal4Enak", hash)

	assert.NoError(t, pm.VerifyPassword("Sambal4Enak", hash))
	assert.Error(t, pm.VerifyPassword("sambal4enak", hash))
}

func TestValidatePassword(t *testing.T) {
	pm := NewPasswordManager(testConfig())

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Sambal4Enak", false},
		{"too short", "Ab1", true},
		{"no uppercase", "sambal4enak", true},
		{"no lowercase", "SAMBAL4ENAK", true},
		{"no number", "SambalEnak", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pm.ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateOTP(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{6}$`)
	for i := 0; i < 20; i++ {
		otp, err := GenerateOTP()
		require.NoError(t, err)
		assert.Regexp(t, pattern, otp)
	}
}

func TestGenerateDeviceID(t *testing.T) {
	a, err := GenerateDeviceID()
	require.NoError(t, err)
	b, err := GenerateDeviceID()
	require.NoError(t, err)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
