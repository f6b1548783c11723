package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/princeomar/cruise-backend/internal/models"
	"github.com/princeomar/cruise-backend/internal/utils"
)

// RefreshTokenRepository handles admin refresh token database operations.
// Tokens are never stored in clear; every lookup goes through their SHA-256.
type RefreshTokenRepository struct {
	db DB
}

// NewRefreshTokenRepository creates a new refresh token repository
func NewRefreshTokenRepository(db DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

// Store saves the hash of a refresh token issued to a user
func (r *RefreshTokenRepository) Store(ctx context.Context, userID uuid.UUID, token, ipAddress, userAgent string, expiresAt time.Time) error {
	query := `
		INSERT INTO admin_refresh_tokens (id, admin_user_id, token_hash, ip_address, user_agent, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	var ipVal, uaVal interface{}
	if ipAddress != "" {
		ipVal = ipAddress
	}
	if userAgent != "" {
		uaVal = userAgent
	}

	_, err := r.db.ExecContext(ctx, query, uuid.New(), userID, utils.HashToken(token), ipVal, uaVal, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

// Get retrieves a stored refresh token
func (r *RefreshTokenRepository) Get(ctx context.Context, token string) (*models.RefreshToken, error) {
	query := `
		SELECT id, admin_user_id, token_hash, ip_address, user_agent, created_at,
		       expires_at, last_used_at, revoked, revoked_at
		FROM admin_refresh_tokens
		WHERE token_hash = $1
	`

	var rt models.RefreshToken
	if err := r.db.GetContext(ctx, &rt, query, utils.HashToken(token)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}
	return &rt, nil
}

// MarkUsed stamps the last use of a refresh token
func (r *RefreshTokenRepository) MarkUsed(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE admin_refresh_tokens SET last_used_at = NOW() WHERE token_hash = $1`, utils.HashToken(token))
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	return nil
}

// Revoke revokes a single refresh token
func (r *RefreshTokenRepository) Revoke(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE admin_refresh_tokens SET revoked = TRUE, revoked_at = NOW() WHERE token_hash = $1 AND NOT revoked`,
		utils.HashToken(token))
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// RevokeAllForUser revokes every active session of a user and returns how many were revoked
func (r *RefreshTokenRepository) RevokeAllForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE admin_refresh_tokens SET revoked = TRUE, revoked_at = NOW() WHERE admin_user_id = $1 AND NOT revoked`,
		userID)
	if err != nil {
		return 0, fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}

// DeleteExpired removes tokens that expired or were revoked before cutoff
func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM admin_refresh_tokens WHERE expires_at < $1 OR (revoked AND revoked_at < $1)`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired refresh tokens: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}
