package handlers

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/princeomar/cruise-backend/internal/middleware"
	"github.com/princeomar/cruise-backend/internal/models"
	"github.com/princeomar/cruise-backend/internal/services"
	"github.com/princeomar/cruise-backend/internal/utils"
)

// BookingSubmitter accepts guest booking forms
type BookingSubmitter interface {
	Submit(ctx context.Context, req models.CreateBookingRequest, meta services.SubmissionMeta) (*models.BookingSubmission, error)
}

// BookingHandler handles guest booking HTTP requests
type BookingHandler struct {
	bookings BookingSubmitter
	logger   logrus.FieldLogger
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookings BookingSubmitter, logger logrus.FieldLogger) *BookingHandler {
	return &BookingHandler{bookings: bookings, logger: logger}
}

// CreateBooking handles POST /api/v1/bookings
// @Summary Submit a booking request
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body models.CreateBookingRequest true "Booking form"
// @Success 201 {object} models.BookingSubmission
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	loc := middleware.GetLocale(c)

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "Invalid request body",
			Code:    "INVALID_REQUEST",
		})
		return
	}

	meta := services.SubmissionMeta{
		IP:        utils.GetRealIP(c),
		UserAgent: utils.GetUserAgent(c),
		ClientIP:  c.ClientIP(),
	}

	result, err := h.bookings.Submit(c.Request.Context(), req, meta)
	if err != nil {
		var verr *services.ValidationError
		var rle *services.RateLimitError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "validation_error",
				Message: verr.Err.Error(),
				Code:    "VALIDATION_FAILED",
				Field:   verr.Field,
			})
		case errors.As(err, &rle):
			retry := int(math.Ceil(time.Until(rle.RetryAfter).Seconds()))
			if retry < 1 {
				retry = 1
			}
			c.Header("Retry-After", strconv.Itoa(retry))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate_limited",
				"message":     loc.T("error.rate_limited"),
				"code":        "RATE_LIMIT_EXCEEDED",
				"retry_after": rle.RetryAfter,
			})
		default:
			h.logger.WithFields(logrus.Fields{
				"ip":    meta.IP,
				"error": err.Error(),
			}).Error("Booking submission failed")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "booking_failed",
				"title":   loc.T("booking.failed"),
				"message": loc.T("booking.failed.description"),
				"code":    "BOOKING_FAILED",
			})
		}
		return
	}

	result.Message = loc.T("booking.submitted.description")
	c.JSON(http.StatusCreated, gin.H{
		"title":        loc.T("booking.submitted"),
		"message":      result.Message,
		"booking":      result.Booking,
		"whatsapp_url": result.WhatsAppURL,
	})
}
