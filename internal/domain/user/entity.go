// internal/domain/user/entity.go
package user

import (
	"time"

	"gorm.io/gorm"
)

// User represents a back-office admin account. There is no public
// registration; accounts are provisioned by an existing admin.
type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Email       string         `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Password    string         `gorm:"not null;size:255" json:"-"`
	Name        string         `gorm:"not null;size:255" json:"name"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	LastLoginAt *time.Time     `json:"last_login_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TrustedDevice records a browser that has completed OTP verification.
// Sign-ins from a listed device skip the email code until the entry
// expires.
type TrustedDevice struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	DeviceID   string    `gorm:"not null;index;size:64" json:"device_id"`
	UserAgent  string    `gorm:"size:500" json:"user_agent"`
	LastUsedAt time.Time `json:"last_used_at"`
	ExpiresAt  time.Time `gorm:"index" json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName overrides
func (User) TableName() string          { return "users" }
func (TrustedDevice) TableName() string { return "trusted_devices" }

// IsExpired reports whether the trust window has lapsed.
func (d *TrustedDevice) IsExpired(now time.Time) bool {
	return now.After(d.ExpiresAt)
}
