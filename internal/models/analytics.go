package models

import "time"

// UnknownCountry labels visits whose geography could not be resolved
const UnknownCountry = "Unknown"

// CountryStat is one bucket of the per-country visit distribution
type CountryStat struct {
	Country    string `json:"country"`
	Visits     int    `json:"visits"`
	Percentage int    `json:"percentage"`
}

// PageStat counts visits for one page path
type PageStat struct {
	Page   string `json:"page"`
	Visits int    `json:"visits"`
}

// DailyVisits counts visits for one calendar day
type DailyVisits struct {
	Date   string `json:"date"`  // YYYY-MM-DD
	Label  string `json:"label"` // e.g. "Mon, Oct 12"
	Visits int    `json:"visits"`
}

// DeviceStat counts visits per device type
type DeviceStat struct {
	DeviceType string `json:"device_type"`
	Visits     int    `json:"visits"`
}

// BookingStatusCounts holds booking counters per status
type BookingStatusCounts struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
}

func (c *BookingStatusCounts) add(status BookingStatus, delta int) {
	switch status {
	case BookingStatusPending:
		c.Pending += delta
	case BookingStatusConfirmed:
		c.Confirmed += delta
	case BookingStatusCancelled:
		c.Cancelled += delta
	}
}

// Increment adds one booking with the given status
func (c *BookingStatusCounts) Increment(status BookingStatus) {
	c.add(status, 1)
}

// DashboardStats is the read-side view rendered by the admin dashboard
type DashboardStats struct {
	TotalVisits      int                 `json:"total_visits"`
	TodayVisits      int                 `json:"today_visits"`
	WeekVisits       int                 `json:"week_visits"`
	UniqueCountries  int                 `json:"unique_countries"`
	Countries        []CountryStat       `json:"countries"`
	Pages            []PageStat          `json:"pages"`
	DailyVisits      []DailyVisits       `json:"daily_visits"`
	Devices          []DeviceStat        `json:"devices"`
	TotalBookings    int                 `json:"total_bookings"`
	BookingsByStatus BookingStatusCounts `json:"bookings_by_status"`
	Revenue          int64               `json:"revenue"`
	GeneratedAt      time.Time           `json:"generated_at"`
}

// AddBooking counts a booking that the view does not include yet
func (s *DashboardStats) AddBooking(status BookingStatus, totalPrice int64) {
	s.TotalBookings++
	s.BookingsByStatus.Increment(status)
	if status == BookingStatusConfirmed {
		s.Revenue += totalPrice
	}
}

// ApplyStatusChange patches counters and revenue after a single booking moved
// from previous to next, so the view stays current without a re-fetch.
func (s *DashboardStats) ApplyStatusChange(previous, next BookingStatus, totalPrice int64) {
	if previous == next {
		return
	}
	s.BookingsByStatus.add(previous, -1)
	s.BookingsByStatus.add(next, 1)
	if previous == BookingStatusConfirmed {
		s.Revenue -= totalPrice
	}
	if next == BookingStatusConfirmed {
		s.Revenue += totalPrice
	}
}
