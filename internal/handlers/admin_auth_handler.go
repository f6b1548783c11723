package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/princeomar/cruise-backend/internal/middleware"
	"github.com/princeomar/cruise-backend/internal/models"
	"github.com/princeomar/cruise-backend/internal/services"
	"github.com/princeomar/cruise-backend/internal/utils"
)

// AdminAuthenticator is the admin identity service used by the handlers
type AdminAuthenticator interface {
	SignUp(ctx context.Context, req models.AdminSignUpRequest, client services.ClientInfo) (*models.AdminUser, error)
	SignIn(ctx context.Context, req models.AdminSignInRequest, client services.ClientInfo) (*models.AdminSession, error)
	Refresh(ctx context.Context, refreshToken string, client services.ClientInfo) (*models.AdminSession, error)
	SignOut(ctx context.Context, refreshToken string, client services.ClientInfo) error
	Profile(ctx context.Context, userID uuid.UUID) (*models.AdminUser, []string, error)
	GrantRole(ctx context.Context, granter *uuid.UUID, userID uuid.UUID, role string, client services.ClientInfo) (*models.UserRole, error)
}

// AdminAuthHandler handles admin authentication HTTP requests
type AdminAuthHandler struct {
	auth   AdminAuthenticator
	logger logrus.FieldLogger
}

// NewAdminAuthHandler creates a new admin auth handler
func NewAdminAuthHandler(auth AdminAuthenticator, logger logrus.FieldLogger) *AdminAuthHandler {
	return &AdminAuthHandler{auth: auth, logger: logger}
}

// SignIn handles admin sign-in requests
// @Summary Admin sign-in
// @Description Authenticate and check the admin role. Authenticated principals without the role get 403.
// @Tags Admin Auth
// @Accept json
// @Produce json
// @Param request body models.AdminSignInRequest true "Credentials"
// @Success 200 {object} models.AdminSession
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /admin/auth/sign-in [post]
func (h *AdminAuthHandler) SignIn(c *gin.Context) {
	var req models.AdminSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "Invalid request body", "INVALID_REQUEST")
		return
	}

	session, err := h.auth.SignIn(c.Request.Context(), req, clientInfo(c))
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"email": req.Email,
			"error": err.Error(),
		}).Warn("Admin sign-in failed")
		h.respondAuthError(c, err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"admin_id": session.AdminUser.ID,
		"email":    session.AdminUser.Email,
	}).Info("Admin sign-in successful")

	c.JSON(http.StatusOK, session)
}

// SignUp handles admin principal registration. No role is granted.
// @Summary Register an admin principal
// @Tags Admin Auth
// @Accept json
// @Produce json
// @Param request body models.AdminSignUpRequest true "Account"
// @Success 201 {object} models.AdminUser
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /admin/auth/sign-up [post]
func (h *AdminAuthHandler) SignUp(c *gin.Context) {
	var req models.AdminSignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "Invalid request body", "INVALID_REQUEST")
		return
	}

	user, err := h.auth.SignUp(c.Request.Context(), req, clientInfo(c))
	if err != nil {
		h.respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"admin_user": user,
		"message":    "Account created. An administrator must grant access before you can sign in.",
	})
}

// Refresh handles token refresh requests
// @Summary Refresh access token
// @Tags Admin Auth
// @Accept json
// @Produce json
// @Param request body models.AdminRefreshRequest true "Refresh token"
// @Success 200 {object} models.AdminSession
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /admin/auth/refresh [post]
func (h *AdminAuthHandler) Refresh(c *gin.Context) {
	var req models.AdminRefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "Invalid request body", "INVALID_REQUEST")
		return
	}

	session, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken, clientInfo(c))
	if err != nil {
		h.logger.WithError(err).Warn("Token refresh failed")
		h.respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// SignOut handles admin sign-out requests
func (h *AdminAuthHandler) SignOut(c *gin.Context) {
	var req models.AdminRefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "Invalid request body", "INVALID_REQUEST")
		return
	}

	if err := h.auth.SignOut(c.Request.Context(), req.RefreshToken, clientInfo(c)); err != nil {
		h.logger.WithError(err).Error("Sign-out failed")
		respondError(c, http.StatusInternalServerError, "internal_error", "Failed to sign out", "SIGN_OUT_FAILED")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Signed out successfully"})
}

// GetProfile retrieves the current admin's profile
func (h *AdminAuthHandler) GetProfile(c *gin.Context) {
	adminCtx := middleware.MustGetAdminContext(c)

	user, roles, err := h.auth.Profile(c.Request.Context(), adminCtx.UserID)
	if err != nil {
		h.respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin_user": user, "roles": roles})
}

// GrantRole handles POST /api/v1/admin/roles
func (h *AdminAuthHandler) GrantRole(c *gin.Context) {
	adminCtx := middleware.MustGetAdminContext(c)

	var req models.GrantRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "Invalid request body", "INVALID_REQUEST")
		return
	}

	grant, err := h.auth.GrantRole(c.Request.Context(), &adminCtx.UserID, req.UserID, req.Role, clientInfo(c))
	if err != nil {
		h.respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, grant)
}

func (h *AdminAuthHandler) respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "invalid_credentials", err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, services.ErrInvalidRefreshToken):
		respondError(c, http.StatusUnauthorized, "invalid_token", err.Error(), "INVALID_REFRESH_TOKEN")
	case errors.Is(err, services.ErrNotAuthorized):
		respondError(c, http.StatusForbidden, "forbidden", err.Error(), "NOT_AUTHORIZED")
	case errors.Is(err, services.ErrAccountDisabled):
		respondError(c, http.StatusForbidden, "forbidden", err.Error(), "ACCOUNT_DISABLED")
	case errors.Is(err, services.ErrEmailTaken):
		respondError(c, http.StatusConflict, "conflict", err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, services.ErrUserNotFound):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), "USER_NOT_FOUND")
	default:
		h.logger.WithError(err).Error("Admin auth request failed")
		respondError(c, http.StatusInternalServerError, "internal_error", "Something went wrong", "INTERNAL_ERROR")
	}
}

func clientInfo(c *gin.Context) services.ClientInfo {
	return services.ClientInfo{
		IP:        utils.GetRealIP(c),
		UserAgent: utils.GetUserAgent(c),
	}
}
