package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/princeomar/cruise-backend/internal/models"
	"github.com/princeomar/cruise-backend/internal/services"
	"github.com/princeomar/cruise-backend/internal/utils"
)

// VisitTracker records page views in the background
type VisitTracker interface {
	Track(ctx context.Context, in services.VisitInput)
}

// VisitHandler handles page view beacons
type VisitHandler struct {
	visits VisitTracker
}

// NewVisitHandler creates a new visit handler
func NewVisitHandler(visits VisitTracker) *VisitHandler {
	return &VisitHandler{visits: visits}
}

// TrackVisit handles POST /api/v1/visits. The visit is recorded after the
// response is sent; the caller never waits on geolocation or storage.
func (h *VisitHandler) TrackVisit(c *gin.Context) {
	var req models.TrackVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "Invalid request body", "INVALID_REQUEST")
		return
	}

	h.visits.Track(c.Request.Context(), services.VisitInput{
		PagePath:  req.PagePath,
		Referrer:  utils.GetReferrer(c, req.Referrer),
		IP:        utils.GetRealIP(c),
		UserAgent: utils.GetUserAgent(c),
	})

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}
