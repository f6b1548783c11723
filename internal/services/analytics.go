package services

import (
	"math"
	"sort"
	"time"

	"github.com/jinzhu/now"

	"github.com/princeomar/cruise-backend/internal/models"
	"github.com/princeomar/cruise-backend/internal/utils"
)

const (
	// TopCountries caps the per-country distribution
	TopCountries = 10
	// HistogramDays is the length of the trailing daily visit histogram
	HistogramDays = 7

	dayLabelLayout = "Mon, Jan 2"
)

// Aggregate derives the dashboard view from the full visit and booking sets.
// Calendar days are taken in loc. Nothing is persisted.
func Aggregate(visits []models.Visit, bookings []models.Booking, at time.Time, loc *time.Location) models.DashboardStats {
	if loc == nil {
		loc = time.UTC
	}
	stats := models.DashboardStats{
		TotalVisits:   len(visits),
		TotalBookings: len(bookings),
		GeneratedAt:   at,
	}

	countries := map[string]int{}
	known := map[string]struct{}{}
	pages := map[string]int{}
	devices := map[string]int{}
	perDay := map[string]int{}

	for _, v := range visits {
		country := models.UnknownCountry
		if v.Country != nil && *v.Country != "" {
			country = *v.Country
			known[country] = struct{}{}
		}
		countries[country]++
		pages[v.PagePath]++

		device := v.DeviceType
		if device == "" {
			device = utils.DeviceUnknown
		}
		devices[device]++

		perDay[v.CreatedAt.In(loc).Format(models.DateLayout)]++
	}

	stats.Countries = countryStats(countries, len(visits))
	stats.UniqueCountries = len(known)
	stats.Pages = pageStats(pages)
	stats.Devices = deviceStats(devices)
	stats.DailyVisits = dailyHistogram(perDay, at.In(loc))

	for _, d := range stats.DailyVisits {
		stats.WeekVisits += d.Visits
	}
	if n := len(stats.DailyVisits); n > 0 {
		stats.TodayVisits = stats.DailyVisits[n-1].Visits
	}

	for _, b := range bookings {
		stats.BookingsByStatus.Increment(b.Status)
		if b.Status == models.BookingStatusConfirmed {
			stats.Revenue += b.TotalPrice
		}
	}

	return stats
}

type bucket struct {
	key   string
	count int
}

// rank orders buckets by count descending, then key ascending
func rank(counts map[string]int) []bucket {
	buckets := make([]bucket, 0, len(counts))
	for k, c := range counts {
		buckets = append(buckets, bucket{key: k, count: c})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].count != buckets[j].count {
			return buckets[i].count > buckets[j].count
		}
		return buckets[i].key < buckets[j].key
	})
	return buckets
}

func countryStats(counts map[string]int, total int) []models.CountryStat {
	ranked := rank(counts)
	if len(ranked) > TopCountries {
		ranked = ranked[:TopCountries]
	}
	stats := make([]models.CountryStat, 0, len(ranked))
	for _, b := range ranked {
		stats = append(stats, models.CountryStat{
			Country:    b.key,
			Visits:     b.count,
			Percentage: percentage(b.count, total),
		})
	}
	return stats
}

func percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

func pageStats(counts map[string]int) []models.PageStat {
	ranked := rank(counts)
	stats := make([]models.PageStat, 0, len(ranked))
	for _, b := range ranked {
		stats = append(stats, models.PageStat{Page: b.key, Visits: b.count})
	}
	return stats
}

func deviceStats(counts map[string]int) []models.DeviceStat {
	ranked := rank(counts)
	stats := make([]models.DeviceStat, 0, len(ranked))
	for _, b := range ranked {
		stats = append(stats, models.DeviceStat{DeviceType: b.key, Visits: b.count})
	}
	return stats
}

// dailyHistogram returns HistogramDays buckets ending with today, oldest first
func dailyHistogram(perDay map[string]int, today time.Time) []models.DailyVisits {
	start := now.With(today).BeginningOfDay()
	days := make([]models.DailyVisits, 0, HistogramDays)
	for i := HistogramDays - 1; i >= 0; i-- {
		day := start.AddDate(0, 0, -i)
		key := day.Format(models.DateLayout)
		days = append(days, models.DailyVisits{
			Date:   key,
			Label:  day.Format(dayLabelLayout),
			Visits: perDay[key],
		})
	}
	return days
}
