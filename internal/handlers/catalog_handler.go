package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/princeomar/cruise-backend/internal/catalog"
	"github.com/princeomar/cruise-backend/internal/i18n"
	"github.com/princeomar/cruise-backend/internal/middleware"
)

const galleryPreviewSize = 6

// CatalogHandler serves the localized static catalog
type CatalogHandler struct {
	renderer *catalog.Renderer
	contact  catalog.Contact
	loc      *time.Location
	now      func() time.Time
}

// NewCatalogHandler creates a new catalog handler. Departure dates are
// computed from the current date in loc.
func NewCatalogHandler(renderer *catalog.Renderer, contact catalog.Contact, loc *time.Location) *CatalogHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &CatalogHandler{
		renderer: renderer,
		contact:  contact,
		loc:      loc,
		now:      time.Now,
	}
}

// ContactView is the contact section payload
type ContactView struct {
	catalog.Contact
	WhatsAppURL string `json:"whatsapp_url"`
}

// QuoteResponse is the price of a prospective booking
type QuoteResponse struct {
	CruiseID catalog.RouteID    `json:"cruise_id"`
	Cabin    catalog.CabinClass `json:"cabin"`
	Adults   int                `json:"adults"`
	Children int                `json:"children"`
	Total    int64              `json:"total"`
	Currency string             `json:"currency"`
}

// Home handles GET /api/v1/pages/home
func (h *CatalogHandler) Home(c *gin.Context) {
	loc := middleware.GetLocale(c)

	gallery := h.renderer.Gallery(loc, catalog.CategoryAll)
	if len(gallery) > galleryPreviewSize {
		gallery = gallery[:galleryPreviewSize]
	}

	c.JSON(http.StatusOK, gin.H{
		"locale": localeInfo(loc),
		"hero": gin.H{
			"tagline":      loc.T("hero.tagline"),
			"description":  loc.T("hero.description"),
			"luxury_rooms": loc.T("hero.luxury_rooms"),
			"royal_suites": loc.T("hero.royal_suites"),
		},
		"cruises":        h.renderer.Routes(loc),
		"inclusions":     h.renderer.Inclusions(loc),
		"accommodations": h.renderer.Accommodations(loc),
		"gallery":        gallery,
		"contact":        h.contactView(),
	})
}

// ListCruises handles GET /api/v1/cruises
func (h *CatalogHandler) ListCruises(c *gin.Context) {
	loc := middleware.GetLocale(c)
	c.JSON(http.StatusOK, gin.H{
		"locale":  localeInfo(loc),
		"cruises": h.renderer.Routes(loc),
	})
}

// GetCruise handles GET /api/v1/cruises/:id
func (h *CatalogHandler) GetCruise(c *gin.Context) {
	route, ok := h.lookup(c)
	if !ok {
		return
	}
	loc := middleware.GetLocale(c)
	c.JSON(http.StatusOK, gin.H{
		"locale": localeInfo(loc),
		"cruise": h.renderer.Route(loc, route, true),
	})
}

// Departures handles GET /api/v1/cruises/:id/departures
func (h *CatalogHandler) Departures(c *gin.Context) {
	route, ok := h.lookup(c)
	if !ok {
		return
	}
	dates := catalog.DepartureDates(route.Departure, h.now().In(h.loc), catalog.DepartureCount)
	c.JSON(http.StatusOK, gin.H{
		"cruise_id":  route.ID,
		"weekday":    catalog.WeekdayName(route.Departure, middleware.GetLocale(c).Language),
		"departures": dates,
	})
}

// Quote handles GET /api/v1/cruises/:id/quote?cabin=&adults=&children=
func (h *CatalogHandler) Quote(c *gin.Context) {
	route, ok := h.lookup(c)
	if !ok {
		return
	}

	cabin, ok := catalog.ParseCabin(c.DefaultQuery("cabin", string(catalog.CabinDouble)))
	if !ok {
		respondError(c, http.StatusBadRequest, "validation_error", catalog.ErrUnknownCabin.Error(), "INVALID_CABIN")
		return
	}
	adults, err := strconv.Atoi(c.DefaultQuery("adults", "2"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "adults must be a number", "INVALID_GUEST_COUNT")
		return
	}
	children, err := strconv.Atoi(c.DefaultQuery("children", "0"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "children must be a number", "INVALID_GUEST_COUNT")
		return
	}

	total, err := catalog.Quote(route.ID, cabin, adults, children)
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), "INVALID_GUEST_COUNT")
		return
	}

	c.JSON(http.StatusOK, QuoteResponse{
		CruiseID: route.ID,
		Cabin:    cabin,
		Adults:   adults,
		Children: children,
		Total:    total,
		Currency: "USD",
	})
}

// Accommodations handles GET /api/v1/accommodations
func (h *CatalogHandler) Accommodations(c *gin.Context) {
	loc := middleware.GetLocale(c)
	c.JSON(http.StatusOK, gin.H{
		"locale":         localeInfo(loc),
		"title":          loc.T("accommodations.title"),
		"description":    loc.T("accommodations.description"),
		"accommodations": h.renderer.Accommodations(loc),
	})
}

// Gallery handles GET /api/v1/gallery?category=
func (h *CatalogHandler) Gallery(c *gin.Context) {
	category, ok := catalog.ParseGalleryCategory(c.Query("category"))
	if !ok {
		respondError(c, http.StatusBadRequest, "validation_error", "Unknown gallery category", "INVALID_CATEGORY")
		return
	}
	loc := middleware.GetLocale(c)
	c.JSON(http.StatusOK, gin.H{
		"locale":     localeInfo(loc),
		"category":   category,
		"categories": h.renderer.GalleryCategories(loc),
		"images":     h.renderer.Gallery(loc, category),
	})
}

// Contact handles GET /api/v1/contact
func (h *CatalogHandler) Contact(c *gin.Context) {
	c.JSON(http.StatusOK, h.contactView())
}

// Languages handles GET /api/v1/i18n/languages
func (h *CatalogHandler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"current":   localeInfo(middleware.GetLocale(c)),
		"languages": i18n.Languages(),
	})
}

func (h *CatalogHandler) lookup(c *gin.Context) (catalog.Route, bool) {
	route, ok := catalog.Lookup(catalog.RouteID(c.Param("id")))
	if !ok {
		respondError(c, http.StatusNotFound, "not_found", "Cruise not found", "CRUISE_NOT_FOUND")
		return catalog.Route{}, false
	}
	return route, true
}

func (h *CatalogHandler) contactView() ContactView {
	return ContactView{Contact: h.contact, WhatsAppURL: h.contact.WhatsAppURL()}
}

func localeInfo(loc i18n.Locale) gin.H {
	return gin.H{"language": loc.Language, "direction": loc.Direction}
}
