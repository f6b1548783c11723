package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/princeomar/cruise-backend/internal/i18n"
	"github.com/princeomar/cruise-backend/internal/models"
)

func TestLookup(t *testing.T) {
	route, ok := Lookup(RouteLuxorAswan)
	require.True(t, ok)
	assert.Equal(t, time.Monday, route.Departure)
	assert.Equal(t, 4, route.Nights)
	assert.Len(t, route.Itinerary, 5)

	route, ok = Lookup(RouteAswanLuxor)
	require.True(t, ok)
	assert.Equal(t, time.Friday, route.Departure)
	assert.Equal(t, 3, route.Nights)
	assert.Len(t, route.Itinerary, 4)

	_, ok = Lookup("cairo-alexandria")
	assert.False(t, ok)
}

func TestRoutes_StableOrder(t *testing.T) {
	routes := Routes()
	require.Len(t, routes, 2)
	assert.Equal(t, RouteLuxorAswan, routes[0].ID)
	assert.Equal(t, RouteAswanLuxor, routes[1].ID)
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name     string
		route    RouteID
		cabin    CabinClass
		adults   int
		children int
		expected int64
		err      error
	}{
		{"luxor-aswan double with child", RouteLuxorAswan, CabinDouble, 2, 1, 1200, nil},
		{"luxor-aswan single", RouteLuxorAswan, CabinSingle, 1, 0, 720, nil},
		{"aswan-luxor triple family", RouteAswanLuxor, CabinTriple, 3, 2, 3*345 + 2*180, nil},
		{"max guests", RouteAswanLuxor, CabinDouble, 6, 4, 6*360 + 4*180, nil},
		{"unknown route", "nowhere", CabinDouble, 2, 0, 0, ErrUnknownRoute},
		{"unknown cabin", RouteLuxorAswan, "penthouse", 2, 0, 0, ErrUnknownCabin},
		{"no adults", RouteLuxorAswan, CabinDouble, 0, 1, 0, ErrInvalidAdultCount},
		{"too many adults", RouteLuxorAswan, CabinDouble, 7, 0, 0, ErrInvalidAdultCount},
		{"negative children", RouteLuxorAswan, CabinDouble, 2, -1, 0, ErrInvalidChildCount},
		{"too many children", RouteLuxorAswan, CabinDouble, 2, 5, 0, ErrInvalidChildCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := Quote(tt.route, tt.cabin, tt.adults, tt.children)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, total)
		})
	}
}

func TestDepartureDates(t *testing.T) {
	cairo, err := time.LoadLocation("Africa/Cairo")
	require.NoError(t, err)

	tests := []struct {
		name    string
		weekday time.Weekday
		today   time.Time
		first   string
	}{
		// 2026-10-16 is a Friday
		{"monday from friday", time.Monday, time.Date(2026, 10, 16, 10, 0, 0, 0, cairo), "2026-10-19"},
		{"friday on a friday skips today", time.Friday, time.Date(2026, 10, 16, 0, 0, 1, 0, cairo), "2026-10-23"},
		{"friday late evening", time.Friday, time.Date(2026, 10, 16, 23, 59, 0, 0, cairo), "2026-10-23"},
		{"monday from sunday", time.Monday, time.Date(2026, 10, 18, 8, 0, 0, 0, cairo), "2026-10-19"},
		{"across year end", time.Friday, time.Date(2026, 12, 30, 12, 0, 0, 0, cairo), "2027-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates := DepartureDates(tt.weekday, tt.today, DepartureCount)
			require.Len(t, dates, DepartureCount)
			assert.Equal(t, tt.first, dates[0].String())

			todayDate := models.NewDate(tt.today)
			for i, d := range dates {
				assert.Equal(t, tt.weekday, d.Weekday())
				assert.True(t, d.After(todayDate.Time), "date %s must be after today", d)
				if i > 0 {
					assert.Equal(t, 7*24*time.Hour, d.Sub(dates[i-1].Time))
				}
			}
		})
	}

	assert.Empty(t, DepartureDates(time.Monday, time.Now(), 0))
}

func TestIsDepartureDate(t *testing.T) {
	today := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

	mustDate := func(s string) models.Date {
		d, err := models.ParseDate(s)
		require.NoError(t, err)
		return d
	}

	assert.True(t, IsDepartureDate(RouteLuxorAswan, mustDate("2026-10-19"), today))
	assert.True(t, IsDepartureDate(RouteLuxorAswan, mustDate("2027-01-04"), today))
	assert.False(t, IsDepartureDate(RouteLuxorAswan, mustDate("2027-01-11"), today), "13th Monday is outside the window")
	assert.False(t, IsDepartureDate(RouteLuxorAswan, mustDate("2026-10-20"), today), "Tuesday")
	assert.False(t, IsDepartureDate(RouteAswanLuxor, mustDate("2026-10-16"), today), "today is not bookable")
	assert.True(t, IsDepartureDate(RouteAswanLuxor, mustDate("2026-10-23"), today))
	assert.False(t, IsDepartureDate("unknown", mustDate("2026-10-23"), today))
}

func TestGallery(t *testing.T) {
	assert.Len(t, Gallery(CategoryAll), 16)
	assert.Len(t, Gallery(CategoryExterior), 2)
	assert.Len(t, Gallery(CategoryInterior), 4)
	assert.Len(t, Gallery(CategoryCabins), 5)
	assert.Len(t, Gallery(CategoryDining), 2)
	assert.Len(t, Gallery(CategoryDeck), 3)

	for _, img := range Gallery(CategoryDeck) {
		assert.Equal(t, CategoryDeck, img.Category)
	}
}

func TestParseGalleryCategory(t *testing.T) {
	c, ok := ParseGalleryCategory("")
	assert.True(t, ok)
	assert.Equal(t, CategoryAll, c)

	c, ok = ParseGalleryCategory("dining")
	assert.True(t, ok)
	assert.Equal(t, CategoryDining, c)

	_, ok = ParseGalleryCategory("engine-room")
	assert.False(t, ok)
}

func TestRenderer(t *testing.T) {
	l, err := i18n.NewLocalizer("en")
	require.NoError(t, err)
	r := NewRenderer("/static/")

	route, _ := Lookup(RouteLuxorAswan)

	en := r.Route(l.For(i18n.English), route, true)
	assert.Equal(t, "Luxor to Aswan", en.Title)
	assert.Equal(t, "Every Monday", en.Departure)
	assert.Equal(t, "Monday", en.Weekday)
	require.Len(t, en.Itinerary, 5)
	assert.Equal(t, "Friday", en.Itinerary[4].DayName)
	assert.Equal(t, "West Bank Tour", en.Itinerary[0].Activities[2].Title)

	ar := r.Route(l.For(i18n.Arabic), route, false)
	assert.Equal(t, "الأقصر إلى أسوان", ar.Title)
	assert.Equal(t, "كل يوم اثنين", ar.Departure)
	assert.Empty(t, ar.Itinerary)

	accs := r.Accommodations(l.For(i18n.English))
	require.Len(t, accs, 2)
	assert.Equal(t, "70 Cabins", accs[0].CountLabel)
	assert.Equal(t, "~18 sqm", accs[0].Size)
	assert.Len(t, accs[0].Amenities, 8)
	assert.Equal(t, "/static/room-1.jpg", accs[0].Images[0])
	assert.True(t, accs[1].Highlight)

	incs := r.Inclusions(l.For(i18n.Arabic))
	require.Len(t, incs, 6)
	assert.Equal(t, "الإقامة", incs[0].Title)

	cats := r.GalleryCategories(l.For(i18n.English))
	require.Len(t, cats, 6)
	assert.Equal(t, CategoryAll, cats[0].ID)
}

func TestContact_WhatsAppURL(t *testing.T) {
	c := Contact{WhatsApp: "201023723245"}
	assert.Equal(t, "https://wa.me/201023723245", c.WhatsAppURL())
}
