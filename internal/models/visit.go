package models

import (
	"time"

	"github.com/google/uuid"
)

// Visit represents one page view
type Visit struct {
	ID          uuid.UUID `json:"id" db:"id"`
	PagePath    string    `json:"page_path" db:"page_path"`
	Country     *string   `json:"country,omitempty" db:"country"`
	CountryCode *string   `json:"country_code,omitempty" db:"country_code"`
	City        *string   `json:"city,omitempty" db:"city"`
	UserAgent   string    `json:"user_agent" db:"user_agent"`
	Referrer    *string   `json:"referrer,omitempty" db:"referrer"`
	DeviceType  string    `json:"device_type" db:"device_type"`
	Browser     string    `json:"browser" db:"browser"`
	OS          string    `json:"os" db:"os"`
	IsBot       bool      `json:"is_bot" db:"is_bot"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// TrackVisitRequest is sent by the browser on every navigation
type TrackVisitRequest struct {
	PagePath string `json:"page_path" binding:"required,max=512"`
	Referrer string `json:"referrer" binding:"max=2048"`
}
