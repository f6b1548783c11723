package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is an authenticated principal of the back-office.
// Holding an account grants nothing; access is decided by UserRole records.
type AdminUser struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"` // Never expose password hash in JSON
	FullName     string     `json:"full_name" db:"full_name"`
	IsActive     bool       `json:"is_active" db:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty" db:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// AdminSignInRequest represents the sign-in payload
type AdminSignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// AdminSignUpRequest represents the sign-up payload
type AdminSignUpRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	FullName string `json:"full_name" binding:"max=100"`
}

// AdminSession is returned after a successful sign-in or refresh
type AdminSession struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
	ExpiresIn    int64      `json:"expires_in"`
	AdminUser    *AdminUser `json:"admin_user"`
	Roles        []string   `json:"roles"`
}

// AdminRefreshRequest represents the token refresh / sign-out payload
type AdminRefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
