package catalog

import (
	"fmt"
	"path"
	"strings"

	"github.com/princeomar/cruise-backend/internal/i18n"
)

// ActivityView is the localized rendering of an Activity
type ActivityView struct {
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// ItineraryDayView is the localized rendering of an ItineraryDay
type ItineraryDayView struct {
	Day        int            `json:"day"`
	Title      string         `json:"title"`
	Location   string         `json:"location"`
	DayName    string         `json:"day_name"`
	Activities []ActivityView `json:"activities"`
}

// RouteView is the localized rendering of a Route
type RouteView struct {
	ID        RouteID            `json:"id"`
	Title     string             `json:"title"`
	Nights    int                `json:"nights"`
	Days      int                `json:"days"`
	Departure string             `json:"departure"`
	Weekday   string             `json:"departure_weekday"`
	Pricing   Pricing            `json:"pricing"`
	Itinerary []ItineraryDayView `json:"itinerary,omitempty"`
}

// InclusionView is the localized rendering of an Inclusion
type InclusionView struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AmenityView is the localized rendering of an Amenity
type AmenityView struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// AccommodationView is the localized rendering of an Accommodation
type AccommodationView struct {
	Type        string        `json:"type"`
	Count       int           `json:"count"`
	CountLabel  string        `json:"count_label"`
	Size        string        `json:"size"`
	Bedding     string        `json:"bedding"`
	Description string        `json:"description"`
	Images      []string      `json:"images"`
	Amenities   []AmenityView `json:"amenities"`
	Highlight   bool          `json:"highlight"`
}

// GalleryImageView is the localized rendering of a GalleryImage
type GalleryImageView struct {
	URL      string          `json:"url"`
	Alt      string          `json:"alt"`
	Category GalleryCategory `json:"category"`
}

// GalleryCategoryView is a localized filter choice
type GalleryCategoryView struct {
	ID    GalleryCategory `json:"id"`
	Label string          `json:"label"`
}

// Renderer localizes catalog entries for a request locale
type Renderer struct {
	assetBase string
}

// NewRenderer creates a renderer that prefixes image files with assetBase
func NewRenderer(assetBase string) *Renderer {
	if assetBase == "" {
		assetBase = "/assets"
	}
	return &Renderer{assetBase: strings.TrimRight(assetBase, "/")}
}

// ImageURL returns the public URL of an image file
func (r *Renderer) ImageURL(file string) string {
	return r.assetBase + "/" + path.Base(file)
}

// Route renders a route, including the day-by-day itinerary when detailed is set
func (r *Renderer) Route(loc i18n.Locale, route Route, detailed bool) RouteView {
	view := RouteView{
		ID:        route.ID,
		Title:     route.Title.In(loc.Language),
		Nights:    route.Nights,
		Days:      route.Days,
		Departure: route.Schedule.In(loc.Language),
		Weekday:   WeekdayName(route.Departure, loc.Language),
		Pricing:   route.Pricing,
	}
	if !detailed {
		return view
	}
	view.Itinerary = make([]ItineraryDayView, 0, len(route.Itinerary))
	for _, day := range route.Itinerary {
		dv := ItineraryDayView{
			Day:        day.Day,
			Title:      day.Title.In(loc.Language),
			Location:   day.Location.In(loc.Language),
			DayName:    WeekdayName(day.Weekday, loc.Language),
			Activities: make([]ActivityView, 0, len(day.Activities)),
		}
		for _, a := range day.Activities {
			dv.Activities = append(dv.Activities, ActivityView{
				Time:        a.Time,
				Title:       a.Title.In(loc.Language),
				Description: a.Description.In(loc.Language),
				Icon:        a.Icon,
			})
		}
		view.Itinerary = append(view.Itinerary, dv)
	}
	return view
}

// Routes renders every route without itineraries
func (r *Renderer) Routes(loc i18n.Locale) []RouteView {
	out := make([]RouteView, 0, len(routes))
	for _, route := range routes {
		out = append(out, r.Route(loc, route, false))
	}
	return out
}

// Inclusions renders the package inclusions
func (r *Renderer) Inclusions(loc i18n.Locale) []InclusionView {
	out := make([]InclusionView, 0, len(inclusions))
	for _, inc := range inclusions {
		out = append(out, InclusionView{
			Icon:        inc.Icon,
			Title:       inc.Title.In(loc.Language),
			Description: inc.Description.In(loc.Language),
		})
	}
	return out
}

// Accommodations renders the cabin categories
func (r *Renderer) Accommodations(loc i18n.Locale) []AccommodationView {
	out := make([]AccommodationView, 0, len(accommodations))
	for _, a := range accommodations {
		view := AccommodationView{
			Type:        a.Type.In(loc.Language),
			Count:       a.Count,
			CountLabel:  fmt.Sprintf("%d %s", a.Count, a.Unit.In(loc.Language)),
			Size:        fmt.Sprintf("~%d sqm", a.SizeSqm),
			Bedding:     a.Bedding.In(loc.Language),
			Description: a.Description.In(loc.Language),
			Images:      make([]string, 0, len(a.Images)),
			Amenities:   make([]AmenityView, 0, len(a.Amenities)),
			Highlight:   a.Highlight,
		}
		for _, img := range a.Images {
			view.Images = append(view.Images, r.ImageURL(img))
		}
		for _, am := range a.Amenities {
			view.Amenities = append(view.Amenities, AmenityView{Icon: am.Icon, Text: am.Text.In(loc.Language)})
		}
		out = append(out, view)
	}
	return out
}

// Gallery renders the images of a category
func (r *Renderer) Gallery(loc i18n.Locale, category GalleryCategory) []GalleryImageView {
	images := Gallery(category)
	out := make([]GalleryImageView, 0, len(images))
	for _, img := range images {
		out = append(out, GalleryImageView{
			URL:      r.ImageURL(img.File),
			Alt:      img.Alt.In(loc.Language),
			Category: img.Category,
		})
	}
	return out
}

// GalleryCategories renders the gallery filter choices
func (r *Renderer) GalleryCategories(loc i18n.Locale) []GalleryCategoryView {
	out := make([]GalleryCategoryView, 0, len(GalleryCategories))
	for _, c := range GalleryCategories {
		out = append(out, GalleryCategoryView{ID: c, Label: categoryNames[c].In(loc.Language)})
	}
	return out
}
