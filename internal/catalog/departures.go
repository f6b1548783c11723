package catalog

import (
	"time"

	"github.com/jinzhu/now"

	"github.com/princeomar/cruise-backend/internal/models"
)

// DepartureCount is the number of candidate dates offered for booking
const DepartureCount = 12

// DepartureDates returns n consecutive weekly occurrences of weekday that fall
// strictly after today's calendar date. When today is itself the departure
// weekday the series starts one week later.
func DepartureDates(weekday time.Weekday, today time.Time, n int) []models.Date {
	if n <= 0 {
		return nil
	}
	start := now.With(today).BeginningOfDay()
	offset := (int(weekday) - int(start.Weekday()) + 7) % 7
	if offset == 0 {
		offset = 7
	}
	first := start.AddDate(0, 0, offset)

	dates := make([]models.Date, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, models.NewDate(first.AddDate(0, 0, 7*i)))
	}
	return dates
}

// Departures returns the bookable departure dates of a route
func Departures(id RouteID, today time.Time) ([]models.Date, error) {
	route, ok := Lookup(id)
	if !ok {
		return nil, ErrUnknownRoute
	}
	return DepartureDates(route.Departure, today, DepartureCount), nil
}

// IsDepartureDate reports whether date is one of the route's bookable departures
func IsDepartureDate(id RouteID, date models.Date, today time.Time) bool {
	dates, err := Departures(id, today)
	if err != nil {
		return false
	}
	for _, d := range dates {
		if d.Equal(date) {
			return true
		}
	}
	return false
}
