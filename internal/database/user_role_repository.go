package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/princeomar/cruise-backend/internal/models"
)

// UserRoleRepository handles role grant database operations
type UserRoleRepository struct {
	db DB
}

// NewUserRoleRepository creates a new user role repository
func NewUserRoleRepository(db DB) *UserRoleRepository {
	return &UserRoleRepository{db: db}
}

// HasRole reports whether a role record exists for the user
func (r *UserRoleRepository) HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM user_roles WHERE user_id = $1 AND role = $2)`, userID, role)
	if err != nil {
		return false, fmt.Errorf("failed to check role: %w", err)
	}
	return exists, nil
}

// ListRoles returns the roles granted to a user
func (r *UserRoleRepository) ListRoles(ctx context.Context, userID uuid.UUID) ([]string, error) {
	roles := []string{}
	err := r.db.SelectContext(ctx, &roles,
		`SELECT role FROM user_roles WHERE user_id = $1 ORDER BY role`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	return roles, nil
}

// Grant records a role for a user. Granting an existing role is a no-op that
// returns the original record.
func (r *UserRoleRepository) Grant(ctx context.Context, userID uuid.UUID, role string, grantedBy *uuid.UUID) (*models.UserRole, error) {
	query := `
		INSERT INTO user_roles (id, user_id, role, granted_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, role) DO UPDATE SET role = EXCLUDED.role
		RETURNING id, user_id, role, granted_by, created_at
	`

	var grant models.UserRole
	if err := r.db.GetContext(ctx, &grant, query, uuid.New(), userID, role, grantedBy); err != nil {
		return nil, fmt.Errorf("failed to grant role: %w", err)
	}
	return &grant, nil
}

// Revoke removes a role record; it reports whether one existed
func (r *UserRoleRepository) Revoke(ctx context.Context, userID uuid.UUID, role string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM user_roles WHERE user_id = $1 AND role = $2`, userID, role)
	if err != nil {
		return false, fmt.Errorf("failed to revoke role: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}
