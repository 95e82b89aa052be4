// internal/domain/user/service.go
package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/alcho-id/alcho-backend/internal/config"
	"github.com/alcho-id/alcho-backend/internal/pkg/auth"
	"github.com/alcho-id/alcho-backend/internal/pkg/email"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidOTP         = errors.New("invalid or expired verification code")
)

// Service handles admin account and device verification logic
type Service struct {
	db              *gorm.DB
	redis           *redis.Client
	config          *config.Config
	passwordManager *auth.PasswordManager
	jwtManager      *auth.JWTManager
	email           email.Sender
}

// NewService creates a new user service
func NewService(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, sender email.Sender) *Service {
	return &Service{
		db:              db,
		redis:           redisClient,
		config:          cfg,
		passwordManager: auth.NewPasswordManager(cfg),
		jwtManager:      auth.NewJWTManager(cfg),
		email:           sender,
	}
}

// CreateUserRequest represents admin account provisioning data
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required,max=255"`
}

// LoginRequest represents a sign-in attempt. DeviceID comes from a
// long-lived cookie; a first-time browser sends none.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	DeviceID string `json:"device_id"`
}

// VerifyDeviceRequest completes a sign-in from an unrecognized device.
type VerifyDeviceRequest struct {
	Email    string `json:"email" binding:"required,email"`
	DeviceID string `json:"device_id" binding:"required"`
	Code     string `json:"code" binding:"required,len=6"`
}

// AuthResponse represents a completed authentication
type AuthResponse struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	DeviceID     string `json:"device_id"`
}

// LoginResult is either a completed authentication or a pending device
// verification.
type LoginResult struct {
	RequiresVerification bool          `json:"requires_verification"`
	DeviceID             string        `json:"device_id,omitempty"`
	Auth                 *AuthResponse `json:"auth,omitempty"`
}

// CreateUser provisions a new admin account
func (s *Service) CreateUser(ctx context.Context, req *CreateUserRequest) (*User, error) {
	var existing User
	if err := s.db.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hashed, err := s.passwordManager.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := User{
		Email:    req.Email,
		Password: hashed,
		Name:     req.Name,
		IsActive: true,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user.Password = ""
	return &user, nil
}

// Login authenticates an admin. Credentials are checked first; a sign-in
// from an unrecognized device then gets an emailed code instead of tokens.
func (s *Service) Login(ctx context.Context, req *LoginRequest, userAgent string) (*LoginResult, error) {
	var user User
	result := s.db.WithContext(ctx).Where("email = ? AND is_active = ?", req.Email, true).First(&user)
	if result.Error != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.passwordManager.VerifyPassword(req.Password, user.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	deviceID := req.DeviceID
	if deviceID == "" {
		id, err := auth.GenerateDeviceID()
		if err != nil {
			return nil, err
		}
		deviceID = id
	}

	trusted, err := s.isDeviceTrusted(ctx, user.ID, deviceID)
	if err != nil {
		return nil, err
	}

	if !trusted {
		if err := s.sendDeviceOTP(ctx, &user, deviceID); err != nil {
			return nil, err
		}
		return &LoginResult{
			RequiresVerification: true,
			DeviceID:             deviceID,
		}, nil
	}

	authResp, err := s.issueTokens(ctx, &user, deviceID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Auth: authResp}, nil
}

// VerifyDevice checks the emailed code, marks the device as trusted and
// completes the sign-in.
func (s *Service) VerifyDevice(ctx context.Context, req *VerifyDeviceRequest, userAgent string) (*AuthResponse, error) {
	var user User
	result := s.db.WithContext(ctx).Where("email = ? AND is_active = ?", req.Email, true).First(&user)
	if result.Error != nil {
		return nil, ErrInvalidCredentials
	}

	key := otpKey(user.ID, req.DeviceID)
	stored, err := s.redis.Get(ctx, key).Result()
	if err == redis.Nil || stored != req.Code {
		return nil, ErrInvalidOTP
	}
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to check verification code: %w", err)
	}

	// Single use
	s.redis.Del(ctx, key)

	now := time.Now().UTC()
	device := TrustedDevice{
		UserID:     user.ID,
		DeviceID:   req.DeviceID,
		UserAgent:  userAgent,
		LastUsedAt: now,
		ExpiresAt:  now.AddDate(0, 0, s.config.Security.TrustedDeviceDays),
	}
	if err := s.db.WithContext(ctx).Create(&device).Error; err != nil {
		return nil, fmt.Errorf("failed to store trusted device: %w", err)
	}

	return s.issueTokens(ctx, &user, req.DeviceID)
}

// RefreshToken generates new tokens using a refresh token
func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	var user User
	result := s.db.WithContext(ctx).Where("id = ? AND is_active = ?", claims.UserID, true).First(&user)
	if result.Error != nil {
		return nil, ErrUserNotFound
	}

	return s.issueTokens(ctx, &user, claims.DeviceID)
}

// GetProfile gets a user profile by ID
func (s *Service) GetProfile(ctx context.Context, userID uint) (*User, error) {
	var user User
	result := s.db.WithContext(ctx).Where("id = ? AND is_active = ?", userID, true).First(&user)
	if result.Error != nil {
		return nil, ErrUserNotFound
	}

	user.Password = ""
	return &user, nil
}

// ChangePassword changes the password after verifying the current one
func (s *Service) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	var user User
	result := s.db.WithContext(ctx).Where("id = ? AND is_active = ?", userID, true).First(&user)
	if result.Error != nil {
		return ErrUserNotFound
	}

	if err := s.passwordManager.VerifyPassword(currentPassword, user.Password); err != nil {
		return fmt.Errorf("current password is incorrect")
	}

	hashed, err := s.passwordManager.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.db.WithContext(ctx).Model(&user).Update("password", hashed).Error; err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// GetTrustedDevices lists current trusted devices for a user
func (s *Service) GetTrustedDevices(ctx context.Context, userID uint) ([]TrustedDevice, error) {
	var devices []TrustedDevice
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND expires_at > ?", userID, time.Now().UTC()).
		Order("last_used_at DESC").
		Find(&devices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get trusted devices: %w", err)
	}
	return devices, nil
}

// RevokeTrustedDevice removes a trusted device so the next sign-in from it
// requires a fresh code.
func (s *Service) RevokeTrustedDevice(ctx context.Context, userID uint, deviceID string) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND device_id = ?", userID, deviceID).
		Delete(&TrustedDevice{})
	if result.Error != nil {
		return fmt.Errorf("failed to revoke device: %w", result.Error)
	}
	return nil
}

func (s *Service) isDeviceTrusted(ctx context.Context, userID uint, deviceID string) (bool, error) {
	if deviceID == "" {
		return false, nil
	}

	var device TrustedDevice
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND device_id = ? AND expires_at > ?", userID, deviceID, time.Now().UTC()).
		First(&device).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check trusted device: %w", err)
	}

	s.db.WithContext(ctx).Model(&device).Update("last_used_at", time.Now().UTC())
	return true, nil
}

func (s *Service) sendDeviceOTP(ctx context.Context, user *User, deviceID string) error {
	code, err := auth.GenerateOTP()
	if err != nil {
		return err
	}

	key := otpKey(user.ID, deviceID)
	if err := s.redis.Set(ctx, key, code, s.config.Security.OTPExpiry).Err(); err != nil {
		return fmt.Errorf("failed to store verification code: %w", err)
	}

	if err := s.email.SendDeviceOTP(user.Email, code); err != nil {
		return fmt.Errorf("failed to send verification code: %w", err)
	}
	return nil
}

func (s *Service) issueTokens(ctx context.Context, user *User, deviceID string) (*AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	now := time.Now().UTC()
	user.LastLoginAt = &now
	s.db.WithContext(ctx).Model(user).Update("last_login_at", now)

	user.Password = ""
	return &AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.config.JWT.AccessTokenExpiry.Seconds()),
		DeviceID:     deviceID,
	}, nil
}

func otpKey(userID uint, deviceID string) string {
	return fmt.Sprintf("otp:device:%d:%s", userID, deviceID)
}
