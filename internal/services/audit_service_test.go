package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/princeomar/cruise-backend/internal/database"
)

func newAuditMock(t *testing.T) (*database.PostgresDB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return database.NewFromSQL(db, "sqlmock"), mock
}

func TestAuditService_Log(t *testing.T) {
	db, mock := newAuditMock(t)
	svc := NewAuditService(db, true)

	userID := uuid.New()
	mock.ExpectExec("INSERT INTO audit_logs").
		WithArgs(userID, AuditSignInDenied, "admin_user", userID, "41.33.1.1", nil, `{"reason":"missing_admin_role"}`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := svc.Log(context.Background(), AuditEvent{
		UserID:     &userID,
		Action:     AuditSignInDenied,
		EntityType: "admin_user",
		EntityID:   &userID,
		IPAddress:  "41.33.1.1",
		Details:    map[string]interface{}{"reason": "missing_admin_role"},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditService_Log_Disabled(t *testing.T) {
	db, mock := newAuditMock(t)
	svc := NewAuditService(db, false)

	require.NoError(t, svc.Log(context.Background(), AuditEvent{Action: AuditSignInFailed}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditService_Log_Failure(t *testing.T) {
	db, mock := newAuditMock(t)
	svc := NewAuditService(db, true)

	mock.ExpectExec("INSERT INTO audit_logs").WillReturnError(errBoom)

	err := svc.Log(context.Background(), AuditEvent{Action: AuditSignInFailed})
	assert.ErrorIs(t, err, errBoom)
}

func TestAuditService_CleanupOldAuditLogs(t *testing.T) {
	db, mock := newAuditMock(t)
	svc := NewAuditService(db, true)

	mock.ExpectExec("DELETE FROM audit_logs WHERE created_at").
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 42))

	removed, err := svc.CleanupOldAuditLogs(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(42), removed)
}
