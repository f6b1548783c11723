package models

import (
	"time"

	"github.com/google/uuid"
)

// RoleAdmin grants access to the dashboard
const RoleAdmin = "admin"

// UserRole is an authorization grant, kept apart from the principal record
type UserRole struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	UserID    uuid.UUID  `json:"user_id" db:"user_id"`
	Role      string     `json:"role" db:"role"`
	GrantedBy *uuid.UUID `json:"granted_by,omitempty" db:"granted_by"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// GrantRoleRequest represents an admin granting a role to another principal
type GrantRoleRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
	Role   string    `json:"role" binding:"required,oneof=admin"`
}
