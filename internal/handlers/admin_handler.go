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

// Dashboard is the admin read model and booking workflow
type Dashboard interface {
	Dashboard(ctx context.Context) (*models.DashboardStats, error)
	ListBookings(ctx context.Context, status *models.BookingStatus) ([]models.Booking, error)
	UpdateBookingStatus(ctx context.Context, actor services.Actor, id uuid.UUID, next models.BookingStatus) (*services.StatusChange, error)
}

// AdminHandler serves the admin dashboard
type AdminHandler struct {
	dashboard Dashboard
	logger    logrus.FieldLogger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(dashboard Dashboard, logger logrus.FieldLogger) *AdminHandler {
	return &AdminHandler{dashboard: dashboard, logger: logger}
}

// GetDashboard handles GET /api/v1/admin/dashboard
func (h *AdminHandler) GetDashboard(c *gin.Context) {
	stats, err := h.dashboard.Dashboard(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to load dashboard")
		respondError(c, http.StatusInternalServerError, "internal_error", "Failed to load dashboard", "DASHBOARD_FAILED")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListBookings handles GET /api/v1/admin/bookings?status=
func (h *AdminHandler) ListBookings(c *gin.Context) {
	var status *models.BookingStatus
	if raw := c.Query("status"); raw != "" {
		s := models.BookingStatus(raw)
		if !s.IsValid() {
			respondError(c, http.StatusBadRequest, "validation_error", "Unknown booking status", "INVALID_STATUS")
			return
		}
		status = &s
	}

	bookings, err := h.dashboard.ListBookings(c.Request.Context(), status)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list bookings")
		respondError(c, http.StatusInternalServerError, "internal_error", "Failed to list bookings", "LIST_BOOKINGS_FAILED")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings": bookings,
		"total":    len(bookings),
	})
}

// UpdateBookingStatus handles PATCH /api/v1/admin/bookings/:id/status
// @Summary Confirm or cancel a pending booking
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body models.UpdateBookingStatusRequest true "New status"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /admin/bookings/{id}/status [patch]
func (h *AdminHandler) UpdateBookingStatus(c *gin.Context) {
	adminCtx := middleware.MustGetAdminContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "Invalid booking ID", "INVALID_ID")
		return
	}

	var req models.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "Status must be confirmed or cancelled", "INVALID_STATUS")
		return
	}

	actor := services.Actor{
		UserID:    adminCtx.UserID,
		IP:        utils.GetRealIP(c),
		UserAgent: utils.GetUserAgent(c),
	}
	change, err := h.dashboard.UpdateBookingStatus(c.Request.Context(), actor, id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			respondError(c, http.StatusNotFound, "not_found", err.Error(), "BOOKING_NOT_FOUND")
		case errors.Is(err, services.ErrInvalidTransition):
			respondError(c, http.StatusConflict, "conflict", "Only pending bookings can be confirmed or cancelled", "INVALID_TRANSITION")
		default:
			h.logger.WithError(err).WithField("booking_id", id).Error("Failed to update booking status")
			respondError(c, http.StatusInternalServerError, "internal_error", "Failed to update booking", "UPDATE_FAILED")
		}
		return
	}

	body := gin.H{
		"booking":         change.Booking,
		"previous_status": change.Previous,
	}
	if change.Stats != nil {
		body["stats"] = change.Stats
	}
	c.JSON(http.StatusOK, body)
}
