// Package catalog holds the compiled-in cruise catalog: routes, rates,
// itineraries, inclusions, accommodations, gallery and contact channels.
package catalog

import (
	"time"

	"github.com/princeomar/cruise-backend/internal/i18n"
)

// RouteID identifies a cruise route
type RouteID string

const (
	RouteLuxorAswan RouteID = "luxor-aswan"
	RouteAswanLuxor RouteID = "aswan-luxor"
)

// CabinClass is the occupancy class a guest books
type CabinClass string

const (
	CabinDouble CabinClass = "double"
	CabinSingle CabinClass = "single"
	CabinTriple CabinClass = "triple"
)

// CabinClasses lists the bookable classes in display order
var CabinClasses = []CabinClass{CabinDouble, CabinSingle, CabinTriple}

// Text is a string with an optional Arabic rendering
type Text struct {
	EN string
	AR string
}

// In returns the text for lang, falling back to English
func (t Text) In(lang i18n.Language) string {
	if lang == i18n.Arabic && t.AR != "" {
		return t.AR
	}
	return t.EN
}

// Pricing holds whole-dollar per-person rates of a route
type Pricing struct {
	Double int64 `json:"double"`
	Single int64 `json:"single"`
	Triple int64 `json:"triple"`
	Child  int64 `json:"child"`
}

// Rate returns the per-adult rate of a cabin class
func (p Pricing) Rate(cabin CabinClass) (int64, bool) {
	switch cabin {
	case CabinDouble:
		return p.Double, true
	case CabinSingle:
		return p.Single, true
	case CabinTriple:
		return p.Triple, true
	}
	return 0, false
}

// Activity is one scheduled item of an itinerary day
type Activity struct {
	Time        string
	Title       Text
	Description Text
	Icon        string
}

// ItineraryDay is one day of a route
type ItineraryDay struct {
	Day        int
	Title      Text
	Location   Text
	Weekday    time.Weekday
	Activities []Activity
}

// Route is a bookable cruise
type Route struct {
	ID        RouteID
	Title     Text
	Nights    int
	Days      int
	Departure time.Weekday
	Schedule  Text
	Pricing   Pricing
	Itinerary []ItineraryDay
}

// Lookup returns the route with the given id
func Lookup(id RouteID) (Route, bool) {
	for _, r := range routes {
		if r.ID == id {
			return r, true
		}
	}
	return Route{}, false
}

// Routes returns all routes in display order
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// ParseCabin returns the cabin class named by s
func ParseCabin(s string) (CabinClass, bool) {
	for _, c := range CabinClasses {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

var weekdayNames = map[time.Weekday]Text{
	time.Sunday:    {EN: "Sunday", AR: "الأحد"},
	time.Monday:    {EN: "Monday", AR: "الاثنين"},
	time.Tuesday:   {EN: "Tuesday", AR: "الثلاثاء"},
	time.Wednesday: {EN: "Wednesday", AR: "الأربعاء"},
	time.Thursday:  {EN: "Thursday", AR: "الخميس"},
	time.Friday:    {EN: "Friday", AR: "الجمعة"},
	time.Saturday:  {EN: "Saturday", AR: "السبت"},
}

// WeekdayName returns the localized name of a weekday
func WeekdayName(d time.Weekday, lang i18n.Language) string {
	return weekdayNames[d].In(lang)
}
