package geoip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotRoutable is returned for addresses that have no public geography
var ErrNotRoutable = errors.New("address is not publicly routable")

// Location is the geography resolved for an IP address
type Location struct {
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
	City        string `json:"city"`
}

// Locator resolves an IP address to a location
type Locator interface {
	Locate(ctx context.Context, ip string) (*Location, error)
}

// IPAPIClient implements Locator against the ipapi.co JSON API
type IPAPIClient struct {
	baseURL string
	client  *http.Client
}

// IPAPIConfig holds configuration for the ipapi.co client
type IPAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// NewIPAPIClient creates a new ipapi.co client
func NewIPAPIClient(config IPAPIConfig) *IPAPIClient {
	if config.BaseURL == "" {
		config.BaseURL = "https://ipapi.co"
	}
	if config.Timeout <= 0 {
		config.Timeout = 5 * time.Second
	}
	return &IPAPIClient{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		client:  &http.Client{Timeout: config.Timeout},
	}
}

// ipapiResponse represents the subset of the ipapi.co payload we use
type ipapiResponse struct {
	CountryName string `json:"country_name"`
	CountryCode string `json:"country_code"`
	City        string `json:"city"`
	Error       bool   `json:"error"`
	Reason      string `json:"reason"`
}

// Locate looks up ip. Private, loopback and unparseable addresses are
// rejected with ErrNotRoutable without calling the API.
func (c *IPAPIClient) Locate(ctx context.Context, ip string) (*Location, error) {
	parsed := net.ParseIP(strings.TrimSpace(ip))
	if parsed == nil || !IsPublic(parsed) {
		return nil, ErrNotRoutable
	}

	endpoint := fmt.Sprintf("%s/%s/json/", c.baseURL, url.PathEscape(parsed.String()))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create geolocation request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "prince-omar-backend/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geolocation request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return nil, fmt.Errorf("failed to read geolocation response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("geolocation API returned status %d", resp.StatusCode)
	}

	var payload ipapiResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse geolocation response: %w", err)
	}
	if payload.Error {
		return nil, fmt.Errorf("geolocation API error: %s", payload.Reason)
	}

	return &Location{
		Country:     payload.CountryName,
		CountryCode: payload.CountryCode,
		City:        payload.City,
	}, nil
}

// IsPublic reports whether ip is a globally routable unicast address
func IsPublic(ip net.IP) bool {
	return !(ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified() ||
		ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() || ip.IsMulticast())
}
