package database

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/princeomar/cruise-backend/internal/models"
	"github.com/princeomar/cruise-backend/internal/utils"
)

func TestAdminUserRepository_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAdminUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		u := &models.AdminUser{Email: "  Admin@PrinceOmar.example ", PasswordHash: "hash", FullName: "Omar", IsActive: true}

		mock.ExpectQuery(`INSERT INTO admin_users`).
			WithArgs(sqlmock.AnyArg(), "admin@princeomar.example", "hash", "Omar", true).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		require.NoError(t, repo.Create(ctx, u))
		assert.Equal(t, "admin@princeomar.example", u.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO admin_users`).
			WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

		err := repo.Create(ctx, &models.AdminUser{Email: "admin@princeomar.example"})
		assert.ErrorIs(t, err, ErrDuplicate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAdminUserRepository_GetByEmail(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAdminUserRepository(db)
	ctx := context.Background()
	columns := []string{"id", "email", "password_hash", "full_name", "is_active", "last_login_at", "created_at", "updated_at"}

	t.Run("Success", func(t *testing.T) {
		id := uuid.New()
		now := time.Now()
		mock.ExpectQuery(`SELECT (.+) FROM admin_users WHERE email = \$1`).
			WithArgs("admin@princeomar.example").
			WillReturnRows(sqlmock.NewRows(columns).AddRow(id.String(), "admin@princeomar.example", "hash", "Omar", true, nil, now, now))

		u, err := repo.GetByEmail(ctx, "ADMIN@princeomar.example")
		require.NoError(t, err)
		assert.Equal(t, id, u.ID)
		assert.Nil(t, u.LastLoginAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM admin_users WHERE email = \$1`).WillReturnError(sql.ErrNoRows)

		u, err := repo.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, u)
	})
}

func TestUserRoleRepository(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRoleRepository(db)
	ctx := context.Background()
	userID := uuid.New()
	granter := uuid.New()

	t.Run("HasRole", func(t *testing.T) {
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs(userID, models.RoleAdmin).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		ok, err := repo.HasRole(ctx, userID, models.RoleAdmin)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("ListRoles", func(t *testing.T) {
		mock.ExpectQuery(`SELECT role FROM user_roles WHERE user_id = \$1`).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("admin"))

		roles, err := repo.ListRoles(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, []string{"admin"}, roles)
	})

	t.Run("Grant", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(`INSERT INTO user_roles (.+) ON CONFLICT \(user_id, role\)`).
			WithArgs(sqlmock.AnyArg(), userID, models.RoleAdmin, &granter).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "role", "granted_by", "created_at"}).
				AddRow(uuid.NewString(), userID.String(), "admin", granter.String(), now))

		grant, err := repo.Grant(ctx, userID, models.RoleAdmin, &granter)
		require.NoError(t, err)
		assert.Equal(t, userID, grant.UserID)
		require.NotNil(t, grant.GrantedBy)
		assert.Equal(t, granter, *grant.GrantedBy)
	})

	t.Run("Revoke", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM user_roles`).
			WithArgs(userID, models.RoleAdmin).
			WillReturnResult(sqlmock.NewResult(0, 1))

		removed, err := repo.Revoke(ctx, userID, models.RoleAdmin)
		require.NoError(t, err)
		assert.True(t, removed)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshTokenRepository(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRefreshTokenRepository(db)
	ctx := context.Background()
	userID := uuid.New()
	token := "header.payload.signature"
	expires := time.Now().Add(7 * 24 * time.Hour)

	t.Run("Store Hashes Token", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO admin_refresh_tokens`).
			WithArgs(sqlmock.AnyArg(), userID, utils.HashToken(token), "41.33.1.1", nil, expires).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Store(ctx, userID, token, "41.33.1.1", "", expires))
	})

	t.Run("Get Missing", func(t *testing.T) {
		mock.ExpectQuery(`FROM admin_refresh_tokens\s+WHERE token_hash = \$1`).
			WithArgs(utils.HashToken("unknown")).
			WillReturnError(sql.ErrNoRows)

		rt, err := repo.Get(ctx, "unknown")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, rt)
	})

	t.Run("RevokeAllForUser", func(t *testing.T) {
		mock.ExpectExec(`UPDATE admin_refresh_tokens SET revoked = TRUE, revoked_at = NOW\(\) WHERE admin_user_id = \$1`).
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 3))

		n, err := repo.RevokeAllForUser(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("Revoke", func(t *testing.T) {
		mock.ExpectExec(`UPDATE admin_refresh_tokens SET revoked = TRUE`).
			WithArgs(utils.HashToken(token)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Revoke(ctx, token))
	})

	t.Run("DeleteExpired", func(t *testing.T) {
		cutoff := time.Now()
		mock.ExpectExec(`DELETE FROM admin_refresh_tokens`).
			WithArgs(cutoff).
			WillReturnResult(sqlmock.NewResult(0, 5))

		n, err := repo.DeleteExpired(ctx, cutoff)
		require.NoError(t, err)
		assert.Equal(t, int64(5), n)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
