package notify

import (
	"fmt"
	"net/url"
	"strings"
)

// BookingSummary holds the fields shown to the operator for a booking
type BookingSummary struct {
	RouteTitle      string `json:"route_title"`
	Cabin           string `json:"cabin"`
	Date            string `json:"date"`
	Adults          int    `json:"adults"`
	Children        int    `json:"children"`
	Total           int64  `json:"total"`
	GuestName       string `json:"guest_name"`
	GuestEmail      string `json:"guest_email"`
	GuestPhone      string `json:"guest_phone"`
	GuestCountry    string `json:"guest_country,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

// BookingMessage formats the plain-text booking summary sent to the operator
func BookingMessage(s BookingSummary) string {
	country := s.GuestCountry
	if country == "" {
		country = "Not specified"
	}
	requests := s.SpecialRequests
	if requests == "" {
		requests = "None"
	}

	var b strings.Builder
	b.WriteString("🚢 New Booking Request!\n\n")
	fmt.Fprintf(&b, "Cruise: %s\n", s.RouteTitle)
	fmt.Fprintf(&b, "Cabin: %s\n", capitalize(s.Cabin))
	fmt.Fprintf(&b, "Date: %s\n", s.Date)
	fmt.Fprintf(&b, "Guests: %d Adults, %d Children\n", s.Adults, s.Children)
	fmt.Fprintf(&b, "Total: $%d\n\n", s.Total)
	fmt.Fprintf(&b, "Guest: %s\n", s.GuestName)
	fmt.Fprintf(&b, "Email: %s\n", s.GuestEmail)
	fmt.Fprintf(&b, "Phone: %s\n", s.GuestPhone)
	fmt.Fprintf(&b, "Country: %s\n\n", country)
	fmt.Fprintf(&b, "Special Requests: %s", requests)
	return b.String()
}

// WhatsAppLink builds a wa.me deep link that opens a chat with number
// pre-filled with message.
func WhatsAppLink(number, message string) string {
	digits := strings.TrimPrefix(strings.TrimSpace(number), "+")
	link := "https://wa.me/" + digits
	if message == "" {
		return link
	}
	return link + "?text=" + strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
