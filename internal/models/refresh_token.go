package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is a stored admin session
type RefreshToken struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	AdminUserID uuid.UUID  `json:"admin_user_id" db:"admin_user_id"`
	TokenHash   string     `json:"-" db:"token_hash"` // Never expose
	IPAddress   *string    `json:"ip_address,omitempty" db:"ip_address"`
	UserAgent   *string    `json:"user_agent,omitempty" db:"user_agent"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	ExpiresAt   time.Time  `json:"expires_at" db:"expires_at"`
	LastUsedAt  *time.Time `json:"last_used_at,omitempty" db:"last_used_at"`
	Revoked     bool       `json:"revoked" db:"revoked"`
	RevokedAt   *time.Time `json:"revoked_at,omitempty" db:"revoked_at"`
}
