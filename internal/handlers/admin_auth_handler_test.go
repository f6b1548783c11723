package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/princeomar/cruise-backend/internal/middleware"
	"github.com/princeomar/cruise-backend/internal/models"
	"github.com/princeomar/cruise-backend/internal/services"
)

type stubAuth struct {
	session *models.AdminSession
	user    *models.AdminUser
	grant   *models.UserRole
	err     error

	signedOut string
	granter   *uuid.UUID
}

func (s *stubAuth) SignUp(context.Context, models.AdminSignUpRequest, services.ClientInfo) (*models.AdminUser, error) {
	return s.user, s.err
}

func (s *stubAuth) SignIn(context.Context, models.AdminSignInRequest, services.ClientInfo) (*models.AdminSession, error) {
	return s.session, s.err
}

func (s *stubAuth) Refresh(context.Context, string, services.ClientInfo) (*models.AdminSession, error) {
	return s.session, s.err
}

func (s *stubAuth) SignOut(_ context.Context, token string, _ services.ClientInfo) error {
	s.signedOut = token
	return s.err
}

func (s *stubAuth) Profile(context.Context, uuid.UUID) (*models.AdminUser, []string, error) {
	return s.user, []string{"admin"}, s.err
}

func (s *stubAuth) GrantRole(_ context.Context, granter *uuid.UUID, _ uuid.UUID, _ string, _ services.ClientInfo) (*models.UserRole, error) {
	s.granter = granter
	return s.grant, s.err
}

func withAdmin(id uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.AdminContextKey, middleware.AdminContext{
			UserID: id,
			Email:  "admin@princeomar.example",
			Roles:  []string{"admin"},
		})
		c.Next()
	}
}

func setupAuthTest(t *testing.T, auth *stubAuth, adminID uuid.UUID) *gin.Engine {
	t.Helper()
	handler := NewAdminAuthHandler(auth, quietLogger())
	router := setupTestRouter(t)
	public := router.Group("/api/v1/admin/auth")
	public.POST("/sign-in", handler.SignIn)
	public.POST("/sign-up", handler.SignUp)
	public.POST("/refresh", handler.Refresh)
	public.POST("/sign-out", handler.SignOut)

	protected := router.Group("/api/v1/admin", withAdmin(adminID))
	protected.GET("/me", handler.GetProfile)
	protected.POST("/roles", handler.GrantRole)
	return router
}

var signInBody = map[string]string{"email": "admin@princeomar.example", "password": "s3cret-pass"}

func TestSignIn_Success(t *testing.T) {
	auth := &stubAuth{session: &models.AdminSession{
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresIn:    3600,
		AdminUser:    &models.AdminUser{ID: uuid.New(), Email: "admin@princeomar.example"},
		Roles:        []string{"admin"},
	}}
	router := setupAuthTest(t, auth, uuid.New())

	w := doJSON(router, http.MethodPost, "/api/v1/admin/auth/sign-in", signInBody, nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "access", body["access_token"])
	assert.Equal(t, float64(3600), body["expires_in"])
}

func TestSignIn_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"bad credentials", services.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"no admin role", services.ErrNotAuthorized, http.StatusForbidden, "NOT_AUTHORIZED"},
		{"disabled", services.ErrAccountDisabled, http.StatusForbidden, "ACCOUNT_DISABLED"},
		{"store down", errBoom, http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupAuthTest(t, &stubAuth{err: tt.err}, uuid.New())
			w := doJSON(router, http.MethodPost, "/api/v1/admin/auth/sign-in", signInBody, nil)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, decode(t, w)["code"])
		})
	}
}

func TestSignIn_InvalidBody(t *testing.T) {
	router := setupAuthTest(t, &stubAuth{}, uuid.New())

	w := doJSON(router, http.MethodPost, "/api/v1/admin/auth/sign-in", map[string]string{"email": "nope"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decode(t, w)["code"])
}

func TestSignUp(t *testing.T) {
	t.Run("created without role", func(t *testing.T) {
		user := &models.AdminUser{ID: uuid.New(), Email: "new@princeomar.example"}
		router := setupAuthTest(t, &stubAuth{user: user}, uuid.New())

		w := doJSON(router, http.MethodPost, "/api/v1/admin/auth/sign-up", map[string]string{
			"email":    "new@princeomar.example",
			"password": "long-enough-pass",
		}, nil)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, decode(t, w)["message"], "must grant access")
	})

	t.Run("email taken", func(t *testing.T) {
		router := setupAuthTest(t, &stubAuth{err: services.ErrEmailTaken}, uuid.New())

		w := doJSON(router, http.MethodPost, "/api/v1/admin/auth/sign-up", map[string]string{
			"email":    "taken@princeomar.example",
			"password": "long-enough-pass",
		}, nil)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "EMAIL_TAKEN", decode(t, w)["code"])
	})
}

func TestRefresh_Invalid(t *testing.T) {
	router := setupAuthTest(t, &stubAuth{err: services.ErrInvalidRefreshToken}, uuid.New())

	w := doJSON(router, http.MethodPost, "/api/v1/admin/auth/refresh", map[string]string{"refresh_token": "stale"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_REFRESH_TOKEN", decode(t, w)["code"])
}

func TestSignOut(t *testing.T) {
	auth := &stubAuth{}
	router := setupAuthTest(t, auth, uuid.New())

	w := doJSON(router, http.MethodPost, "/api/v1/admin/auth/sign-out", map[string]string{"refresh_token": "tok"}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tok", auth.signedOut)
}

func TestGetProfile(t *testing.T) {
	adminID := uuid.New()
	router := setupAuthTest(t, &stubAuth{user: &models.AdminUser{ID: adminID, Email: "admin@princeomar.example"}}, adminID)

	w := doJSON(router, http.MethodGet, "/api/v1/admin/me", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{"admin"}, decode(t, w)["roles"])
}

func TestGrantRole(t *testing.T) {
	adminID := uuid.New()
	target := uuid.New()

	t.Run("granted", func(t *testing.T) {
		auth := &stubAuth{grant: &models.UserRole{ID: uuid.New(), UserID: target, Role: "admin"}}
		router := setupAuthTest(t, auth, adminID)

		w := doJSON(router, http.MethodPost, "/api/v1/admin/roles", map[string]string{"user_id": target.String(), "role": "admin"}, nil)
		assert.Equal(t, http.StatusCreated, w.Code)
		require.NotNil(t, auth.granter)
		assert.Equal(t, adminID, *auth.granter)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		router := setupAuthTest(t, &stubAuth{}, adminID)

		w := doJSON(router, http.MethodPost, "/api/v1/admin/roles", map[string]string{"user_id": target.String(), "role": "owner"}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		router := setupAuthTest(t, &stubAuth{err: services.ErrUserNotFound}, adminID)

		w := doJSON(router, http.MethodPost, "/api/v1/admin/roles", map[string]string{"user_id": target.String(), "role": "admin"}, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "USER_NOT_FOUND", decode(t, w)["code"])
	})
}
