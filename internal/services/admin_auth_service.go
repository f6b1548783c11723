package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/princeomar/cruise-backend/internal/database"
	"github.com/princeomar/cruise-backend/internal/models"
	"github.com/princeomar/cruise-backend/pkg/jwt"
)

// AdminUserStore persists principals
type AdminUserStore interface {
	Create(ctx context.Context, u *models.AdminUser) error
	GetByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.AdminUser, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

// RoleStore persists authorization grants
type RoleStore interface {
	HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error)
	ListRoles(ctx context.Context, userID uuid.UUID) ([]string, error)
	Grant(ctx context.Context, userID uuid.UUID, role string, grantedBy *uuid.UUID) (*models.UserRole, error)
}

// SessionStore persists hashed refresh tokens
type SessionStore interface {
	Store(ctx context.Context, userID uuid.UUID, token, ipAddress, userAgent string, expiresAt time.Time) error
	Get(ctx context.Context, token string) (*models.RefreshToken, error)
	MarkUsed(ctx context.Context, token string) error
	Revoke(ctx context.Context, token string) error
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// ClientInfo describes the caller of an auth operation
type ClientInfo struct {
	IP        string
	UserAgent string
}

// AdminAuthService handles admin authentication and the admin role gate
type AdminAuthService struct {
	users      AdminUserStore
	roles      RoleStore
	sessions   SessionStore
	jwtService *jwt.Service
	auditor    Auditor
	bcryptCost int
	now        func() time.Time
	logger     logrus.FieldLogger

	// compared against when the email is unknown so both paths cost a hash
	dummyHash []byte
}

// NewAdminAuthService creates a new admin auth service
func NewAdminAuthService(
	users AdminUserStore,
	roles RoleStore,
	sessions SessionStore,
	jwtService *jwt.Service,
	auditor Auditor,
	bcryptCost int,
	logger logrus.FieldLogger,
) *AdminAuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	dummy, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcryptCost)
	return &AdminAuthService{
		users:      users,
		roles:      roles,
		sessions:   sessions,
		jwtService: jwtService,
		auditor:    auditor,
		bcryptCost: bcryptCost,
		now:        time.Now,
		logger:     logger,
		dummyHash:  dummy,
	}
}

// SignUp registers a principal. It never grants a role; access to the
// dashboard is given separately through GrantRole.
func (s *AdminAuthService) SignUp(ctx context.Context, req models.AdminSignUpRequest, client ClientInfo) (*models.AdminUser, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.AdminUser{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(req.FullName),
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}

	s.audit(ctx, &user.ID, AuditSignUp, client, map[string]interface{}{"email": user.Email})
	s.logger.WithFields(logrus.Fields{
		"admin_id": user.ID,
		"email":    user.Email,
	}).Info("Admin principal registered")
	return user, nil
}

// SignIn verifies credentials and then the admin role. An authenticated
// principal without the role has every session revoked and gets ErrNotAuthorized.
func (s *AdminAuthService) SignIn(ctx context.Context, req models.AdminSignInRequest, client ClientInfo) (*models.AdminSession, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, database.ErrNotFound) {
			return nil, fmt.Errorf("failed to load admin user: %w", err)
		}
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(req.Password))
		s.audit(ctx, nil, AuditSignInFailed, client, map[string]interface{}{"email": email, "reason": "unknown_email"})
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.audit(ctx, &user.ID, AuditSignInFailed, client, map[string]interface{}{"email": email, "reason": "wrong_password"})
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		s.audit(ctx, &user.ID, AuditSignInDenied, client, map[string]interface{}{"reason": "inactive"})
		return nil, ErrAccountDisabled
	}

	if err := s.requireAdmin(ctx, user.ID, client); err != nil {
		return nil, err
	}

	session, err := s.issueSession(ctx, user, client)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.WithError(err).WithField("admin_id", user.ID).Warn("Failed to update last login")
	}
	s.audit(ctx, &user.ID, AuditSignInSuccess, client, nil)
	return session, nil
}

// Refresh rotates a refresh token. The active flag and the admin role are
// checked again, so a revoked role ends the session here.
func (s *AdminAuthService) Refresh(ctx context.Context, refreshToken string, client ClientInfo) (*models.AdminSession, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	stored, err := s.sessions.Get(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to load refresh token: %w", err)
	}
	if stored.Revoked || s.now().After(stored.ExpiresAt) || stored.AdminUserID != claims.UserID {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to load admin user: %w", err)
	}
	if !user.IsActive {
		s.revokeAll(ctx, user.ID)
		return nil, ErrAccountDisabled
	}
	if err := s.requireAdmin(ctx, user.ID, client); err != nil {
		return nil, err
	}

	if err := s.sessions.Revoke(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	session, err := s.issueSession(ctx, user, client)
	if err != nil {
		return nil, err
	}
	s.audit(ctx, &user.ID, AuditTokenRefresh, client, nil)
	return session, nil
}

// SignOut revokes one refresh token. Unknown tokens are ignored.
func (s *AdminAuthService) SignOut(ctx context.Context, refreshToken string, client ClientInfo) error {
	if err := s.sessions.Revoke(ctx, refreshToken); err != nil && !errors.Is(err, database.ErrNotFound) {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	var userID *uuid.UUID
	if claims, err := s.jwtService.ValidateRefreshToken(refreshToken); err == nil {
		userID = &claims.UserID
	}
	s.audit(ctx, userID, AuditSignOut, client, nil)
	return nil
}

// IsAdmin reports whether the principal currently holds the admin role
func (s *AdminAuthService) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	ok, err := s.roles.HasRole(ctx, userID, models.RoleAdmin)
	if err != nil {
		return false, fmt.Errorf("failed to check admin role: %w", err)
	}
	return ok, nil
}

// RevokeSessions signs a principal out everywhere and audits why
func (s *AdminAuthService) RevokeSessions(ctx context.Context, userID uuid.UUID, client ClientInfo, reason string) {
	count := s.revokeAll(ctx, userID)
	s.audit(ctx, &userID, AuditAccessRevoked, client, map[string]interface{}{
		"reason":           reason,
		"sessions_revoked": count,
	})
}

// GrantRole gives userID a role. granter is nil for bootstrap grants.
func (s *AdminAuthService) GrantRole(ctx context.Context, granter *uuid.UUID, userID uuid.UUID, role string, client ClientInfo) (*models.UserRole, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load admin user: %w", err)
	}

	grant, err := s.roles.Grant(ctx, userID, role, granter)
	if err != nil {
		return nil, fmt.Errorf("failed to grant role: %w", err)
	}

	s.audit(ctx, granter, AuditRoleGranted, client, map[string]interface{}{
		"user_id": userID.String(),
		"role":    role,
	})
	s.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"role":    role,
	}).Info("Role granted")
	return grant, nil
}

// GrantRoleByEmail is GrantRole for callers that only know the email
func (s *AdminAuthService) GrantRoleByEmail(ctx context.Context, email, role string) (*models.UserRole, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load admin user: %w", err)
	}
	return s.GrantRole(ctx, nil, user.ID, role, ClientInfo{})
}

// Profile returns the principal and its roles
func (s *AdminAuthService) Profile(ctx context.Context, userID uuid.UUID) (*models.AdminUser, []string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("failed to load admin user: %w", err)
	}
	roles, err := s.roles.ListRoles(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list roles: %w", err)
	}
	return user, roles, nil
}

func (s *AdminAuthService) requireAdmin(ctx context.Context, userID uuid.UUID, client ClientInfo) error {
	ok, err := s.IsAdmin(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		s.RevokeSessions(ctx, userID, client, "missing_admin_role")
		s.audit(ctx, &userID, AuditSignInDenied, client, map[string]interface{}{"reason": "missing_admin_role"})
		return ErrNotAuthorized
	}
	return nil
}

func (s *AdminAuthService) issueSession(ctx context.Context, user *models.AdminUser, client ClientInfo) (*models.AdminSession, error) {
	roles, err := s.roles.ListRoles(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.ID, user.Email, roles)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, expiresAt, err := s.jwtService.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	if err := s.sessions.Store(ctx, user.ID, refreshToken, client.IP, client.UserAgent, expiresAt); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &models.AdminSession{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtService.AccessTokenExpiry().Seconds()),
		AdminUser:    user,
		Roles:        roles,
	}, nil
}

func (s *AdminAuthService) revokeAll(ctx context.Context, userID uuid.UUID) int64 {
	count, err := s.sessions.RevokeAllForUser(ctx, userID)
	if err != nil {
		s.logger.WithError(err).WithField("admin_id", userID).Error("Failed to revoke admin sessions")
		return 0
	}
	return count
}

func (s *AdminAuthService) audit(ctx context.Context, userID *uuid.UUID, action string, client ClientInfo, details map[string]interface{}) {
	if s.auditor == nil {
		return
	}
	err := s.auditor.Log(ctx, AuditEvent{
		UserID:     userID,
		Action:     action,
		EntityType: "admin_user",
		EntityID:   userID,
		IPAddress:  client.IP,
		UserAgent:  client.UserAgent,
		Details:    details,
	})
	if err != nil {
		s.logger.WithError(err).WithField("action", action).Warn("Failed to write audit log")
	}
}
