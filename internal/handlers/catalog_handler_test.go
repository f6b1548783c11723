package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/princeomar/cruise-backend/internal/catalog"
)

func setupCatalogTest(t *testing.T) *gin.Engine {
	t.Helper()
	handler := NewCatalogHandler(catalog.NewRenderer("/assets"), catalog.Contact{
		WhatsApp: "201023723245",
		Phone:    "+20 102 372 3245",
		Email:    "reservations@princeomar.example",
	}, time.UTC)
	handler.now = func() time.Time { return time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC) }

	router := setupTestRouter(t)
	api := router.Group("/api/v1")
	api.GET("/pages/home", handler.Home)
	api.GET("/cruises", handler.ListCruises)
	api.GET("/cruises/:id", handler.GetCruise)
	api.GET("/cruises/:id/departures", handler.Departures)
	api.GET("/cruises/:id/quote", handler.Quote)
	api.GET("/accommodations", handler.Accommodations)
	api.GET("/gallery", handler.Gallery)
	api.GET("/contact", handler.Contact)
	api.GET("/i18n/languages", handler.Languages)
	return router
}

func TestHome(t *testing.T) {
	router := setupCatalogTest(t)

	w := doJSON(router, http.MethodGet, "/api/v1/pages/home", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Len(t, body["cruises"], 2)
	assert.Len(t, body["gallery"], galleryPreviewSize)
	contact := body["contact"].(map[string]interface{})
	assert.Equal(t, "https://wa.me/201023723245", contact["whatsapp_url"])
}

func TestHome_Arabic(t *testing.T) {
	router := setupCatalogTest(t)

	w := doJSON(router, http.MethodGet, "/api/v1/pages/home?lang=ar", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	locale := body["locale"].(map[string]interface{})
	assert.Equal(t, "ar", locale["language"])
	assert.Equal(t, "rtl", locale["direction"])

	cruises := body["cruises"].([]interface{})
	first := cruises[0].(map[string]interface{})
	assert.Equal(t, "الأقصر إلى أسوان", first["title"])
}

func TestGetCruise(t *testing.T) {
	router := setupCatalogTest(t)

	t.Run("found with itinerary", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/v1/cruises/luxor-aswan", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		cruise := decode(t, w)["cruise"].(map[string]interface{})
		assert.Equal(t, "Luxor to Aswan", cruise["title"])
		assert.NotEmpty(t, cruise["itinerary"])
	})

	t.Run("unknown cruise", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/v1/cruises/cairo-alex", nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "CRUISE_NOT_FOUND")
	})
}

func TestDepartures(t *testing.T) {
	router := setupCatalogTest(t)

	w := doJSON(router, http.MethodGet, "/api/v1/cruises/luxor-aswan/departures", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	departures := body["departures"].([]interface{})
	assert.Len(t, departures, 12)
	for _, d := range departures {
		date, err := time.Parse("2006-01-02", d.(string))
		require.NoError(t, err)
		assert.True(t, date.After(time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)))
	}
}

func TestQuote(t *testing.T) {
	router := setupCatalogTest(t)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantTotal  float64
		wantCode   string
	}{
		{name: "defaults", query: "", wantStatus: http.StatusOK, wantTotal: 960},
		{name: "single with child", query: "?cabin=single&adults=1&children=1", wantStatus: http.StatusOK, wantTotal: 960},
		{name: "unknown cabin", query: "?cabin=penthouse", wantStatus: http.StatusBadRequest, wantCode: "INVALID_CABIN"},
		{name: "too many adults", query: "?adults=11", wantStatus: http.StatusBadRequest, wantCode: "INVALID_GUEST_COUNT"},
		{name: "non-numeric", query: "?children=two", wantStatus: http.StatusBadRequest, wantCode: "INVALID_GUEST_COUNT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodGet, "/api/v1/cruises/luxor-aswan/quote"+tt.query, nil, nil)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			body := decode(t, w)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, body["code"])
				return
			}
			assert.Equal(t, tt.wantTotal, body["total"])
			assert.Equal(t, "USD", body["currency"])
		})
	}
}

func TestGallery(t *testing.T) {
	router := setupCatalogTest(t)

	w := doJSON(router, http.MethodGet, "/api/v1/gallery?category=Cabins", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	for _, img := range body["images"].([]interface{}) {
		assert.Equal(t, "Cabins", img.(map[string]interface{})["category"])
	}

	w = doJSON(router, http.MethodGet, "/api/v1/gallery?category=Pool", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_CATEGORY")
}

func TestAccommodations_LocalizedTitle(t *testing.T) {
	router := setupCatalogTest(t)

	w := doJSON(router, http.MethodGet, "/api/v1/accommodations", nil, map[string]string{"Accept-Language": "ar-EG,ar;q=0.9"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "كبائن وأجنحة فاخرة", decode(t, w)["title"])
}

func TestLanguages(t *testing.T) {
	router := setupCatalogTest(t)

	w := doJSON(router, http.MethodGet, "/api/v1/i18n/languages", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["languages"], 2)
}
