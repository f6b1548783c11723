package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/princeomar/cruise-backend/internal/database"
	"github.com/princeomar/cruise-backend/internal/utils"
)

// Audit actions
const (
	AuditSignInSuccess = "admin_sign_in_success"
	AuditSignInFailed  = "admin_sign_in_failed"
	AuditSignInDenied  = "admin_sign_in_denied"
	AuditSignUp        = "admin_sign_up"
	AuditSignOut       = "admin_sign_out"
	AuditTokenRefresh  = "admin_token_refresh"
	AuditAccessRevoked = "admin_access_revoked"
	AuditRoleGranted   = "role_granted"
	AuditBookingStatus = "booking_status_changed"
)

// Auditor records security and admin events
type Auditor interface {
	Log(ctx context.Context, event AuditEvent) error
}

// AuditEvent represents an event to be logged
type AuditEvent struct {
	UserID     *uuid.UUID // nil before authentication
	Action     string     // one of the Audit* actions
	EntityType string     // "admin_user", "session", "booking", "role"
	EntityID   *uuid.UUID // affected entity, may be nil
	IPAddress  string
	UserAgent  string
	Details    map[string]interface{} // stored as JSONB
}

// AuditService writes events to the audit_logs table
type AuditService struct {
	db      database.DB
	enabled bool
}

// NewAuditService creates a new audit service. A disabled service accepts
// and drops every event.
func NewAuditService(db database.DB, enabled bool) *AuditService {
	return &AuditService{db: db, enabled: enabled}
}

// Log writes one event
func (s *AuditService) Log(ctx context.Context, event AuditEvent) error {
	if !s.enabled {
		return nil
	}

	details := event.Details
	if details == nil {
		details = map[string]interface{}{}
	}
	if event.UserAgent != "" {
		details["device_info"] = utils.ParseUserAgent(event.UserAgent)
	}
	payload, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to encode audit details: %w", err)
	}

	query := `
		INSERT INTO audit_logs (user_id, action, entity_type, entity_id, ip_address, user_agent, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	`
	_, err = s.db.ExecContext(ctx, query,
		event.UserID,
		event.Action,
		event.EntityType,
		event.EntityID,
		nullIfEmpty(event.IPAddress),
		nullIfEmpty(event.UserAgent),
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to log audit event: %w", err)
	}
	return nil
}

// CleanupOldAuditLogs removes audit logs older than the specified duration
func (s *AuditService) CleanupOldAuditLogs(ctx context.Context, olderThan time.Duration) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM audit_logs WHERE created_at < $1`, time.Now().Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup old audit logs: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
