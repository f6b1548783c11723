package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/princeomar/cruise-backend/internal/services"
	"github.com/princeomar/cruise-backend/internal/utils"
	"github.com/princeomar/cruise-backend/pkg/jwt"
)

// AdminContextKey is the key used to store the authenticated principal in Gin context
const AdminContextKey = "admin"

// AdminContext represents the authenticated principal's information
type AdminContext struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Roles  []string  `json:"roles"`
}

// AdminChecker decides on every request whether a principal may use the dashboard
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
	RevokeSessions(ctx context.Context, userID uuid.UUID, client services.ClientInfo, reason string)
}

// AuthMiddleware validates the bearer access token (authentication only)
func AuthMiddleware(jwtService *jwt.Service, logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields := logrus.Fields{"path": c.Request.URL.Path, "ip": c.ClientIP()}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.WithFields(fields).Warn("Auth failed: missing authorization header")
			abortUnauthorized(c, "unauthorized", "Authorization header is required", "MISSING_AUTH_HEADER")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			logger.WithFields(fields).Warn("Auth failed: invalid authorization format")
			abortUnauthorized(c, "unauthorized", "Invalid authorization header format. Expected: Bearer <token>", "INVALID_AUTH_FORMAT")
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			logger.WithFields(fields).Warn("Auth failed: empty token")
			abortUnauthorized(c, "unauthorized", "Token cannot be empty", "INVALID_AUTH_FORMAT")
			return
		}

		claims, err := jwtService.ValidateAccessToken(tokenString)
		if err != nil {
			logger.WithFields(fields).WithError(err).Warn("Auth failed: invalid access token")
			if jwt.IsExpired(err) {
				abortUnauthorized(c, "token_expired", "Access token has expired. Please refresh your token.", "TOKEN_EXPIRED")
			} else {
				abortUnauthorized(c, "invalid_token", "Invalid access token", "INVALID_TOKEN")
			}
			return
		}

		c.Set(AdminContextKey, AdminContext{
			UserID: claims.UserID,
			Email:  claims.Email,
			Roles:  claims.Roles,
		})
		c.Set("user_id", claims.UserID.String())
		c.Next()
	}
}

// RequireAdmin checks the admin role record on every request. Token claims are
// not trusted for authorization; a principal whose role is gone is signed out
// everywhere and refused.
func RequireAdmin(checker AdminChecker, logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminCtx, exists := GetAdminContext(c)
		if !exists {
			abortUnauthorized(c, "unauthorized", "User context not found. Auth middleware may not be applied.", "MISSING_USER_CONTEXT")
			return
		}

		ok, err := checker.IsAdmin(c.Request.Context(), adminCtx.UserID)
		if err != nil {
			logger.WithError(err).WithField("admin_id", adminCtx.UserID).Error("Admin role check failed")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "internal_error",
				"message": "Could not verify access",
				"code":    "ROLE_CHECK_FAILED",
			})
			c.Abort()
			return
		}

		if !ok {
			logger.WithFields(logrus.Fields{
				"admin_id": adminCtx.UserID,
				"path":     c.Request.URL.Path,
			}).Warn("Access denied: missing admin role")
			checker.RevokeSessions(c.Request.Context(), adminCtx.UserID, services.ClientInfo{
				IP:        utils.GetRealIP(c),
				UserAgent: utils.GetUserAgent(c),
			}, "missing_admin_role")
			c.JSON(http.StatusForbidden, gin.H{
				"error":   "forbidden",
				"message": "You do not have admin access",
				"code":    "NOT_AUTHORIZED",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetAdminContext retrieves the principal from Gin context
func GetAdminContext(c *gin.Context) (AdminContext, bool) {
	value, exists := c.Get(AdminContextKey)
	if !exists {
		return AdminContext{}, false
	}

	adminCtx, ok := value.(AdminContext)
	if !ok {
		return AdminContext{}, false
	}

	return adminCtx, true
}

// MustGetAdminContext retrieves the principal or panics (use only after AuthMiddleware)
func MustGetAdminContext(c *gin.Context) AdminContext {
	adminCtx, exists := GetAdminContext(c)
	if !exists {
		panic("admin context not found - ensure AuthMiddleware is applied")
	}
	return adminCtx
}

func abortUnauthorized(c *gin.Context, errCode, message, code string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"error":   errCode,
		"message": message,
		"code":    code,
	})
	c.Abort()
}
