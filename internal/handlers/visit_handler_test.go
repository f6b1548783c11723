package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/princeomar/cruise-backend/internal/services"
)

type recordingTracker struct {
	inputs []services.VisitInput
}

func (r *recordingTracker) Track(_ context.Context, in services.VisitInput) {
	r.inputs = append(r.inputs, in)
}

func TestTrackVisit(t *testing.T) {
	tracker := &recordingTracker{}
	router := setupTestRouter(t)
	router.POST("/api/v1/visits", NewVisitHandler(tracker).TrackVisit)

	w := doJSON(router, http.MethodPost, "/api/v1/visits", map[string]string{
		"page_path": "/cruises/luxor-aswan",
		"referrer":  "https://www.google.com/",
	}, map[string]string{
		"X-Forwarded-For": "10.0.0.3, 41.33.10.20",
		"User-Agent":      "Mozilla/5.0 (iPhone; CPU iPhone OS 17_1 like Mac OS X) Mobile/15E148",
		"Referer":         "https://princeomar.example/",
	})

	assert.Equal(t, http.StatusAccepted, w.Code)
	require.Len(t, tracker.inputs, 1)
	in := tracker.inputs[0]
	assert.Equal(t, "/cruises/luxor-aswan", in.PagePath)
	assert.Equal(t, "https://www.google.com/", in.Referrer)
	assert.Equal(t, "41.33.10.20", in.IP)
	assert.Contains(t, in.UserAgent, "iPhone")
}

func TestTrackVisit_MissingPath(t *testing.T) {
	tracker := &recordingTracker{}
	router := setupTestRouter(t)
	router.POST("/api/v1/visits", NewVisitHandler(tracker).TrackVisit)

	w := doJSON(router, http.MethodPost, "/api/v1/visits", map[string]string{"referrer": "x"}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, tracker.inputs)
}
