package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/princeomar/cruise-backend/internal/models"
)

const adminUserColumns = `id, email, password_hash, full_name, is_active, last_login_at, created_at, updated_at`

// AdminUserRepository handles admin user database operations
type AdminUserRepository struct {
	db DB
}

// NewAdminUserRepository creates a new admin user repository
func NewAdminUserRepository(db DB) *AdminUserRepository {
	return &AdminUserRepository{db: db}
}

// Create inserts a principal. Emails are stored lower-cased; a taken email
// yields ErrDuplicate.
func (r *AdminUserRepository) Create(ctx context.Context, u *models.AdminUser) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	query := `
		INSERT INTO admin_users (id, email, password_hash, full_name, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query, u.ID, u.Email, u.PasswordHash, u.FullName, u.IsActive).
		Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	return nil
}

// GetByEmail retrieves an admin user by email
func (r *AdminUserRepository) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	return r.getOne(ctx, `SELECT `+adminUserColumns+` FROM admin_users WHERE email = $1`,
		strings.ToLower(strings.TrimSpace(email)))
}

// GetByID retrieves an admin user by ID
func (r *AdminUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AdminUser, error) {
	return r.getOne(ctx, `SELECT `+adminUserColumns+` FROM admin_users WHERE id = $1`, id)
}

func (r *AdminUserRepository) getOne(ctx context.Context, query string, arg interface{}) (*models.AdminUser, error) {
	var admin models.AdminUser
	if err := r.db.GetContext(ctx, &admin, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get admin user: %w", err)
	}
	return &admin, nil
}

// UpdateLastLogin stamps the last successful sign-in
func (r *AdminUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE admin_users SET last_login_at = NOW(), updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}
