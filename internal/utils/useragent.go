package utils

import (
	"strings"

	ua "github.com/mssola/user_agent"
)

// Device types recorded on visits
const (
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceDesktop = "desktop"
	DeviceBot     = "bot"
	DeviceUnknown = "unknown"
)

// DeviceInfo holds parsed information from a User-Agent string
type DeviceInfo struct {
	DeviceType string `json:"device_type"`
	OS         string `json:"os"`      // Android 14, iOS 17.1, Windows 10
	Browser    string `json:"browser"` // Chrome, Safari, Firefox
	IsBot      bool   `json:"is_bot"`
}

var tabletIndicators = []string{
	"ipad",
	"tablet",
	"kindle",
	"playbook",
	"nexus 7",
	"nexus 9",
	"nexus 10",
	"xoom",
	"sm-t", // Samsung tablets
}

// ParseUserAgent parses a User-Agent string and extracts device information
func ParseUserAgent(userAgent string) DeviceInfo {
	if userAgent == "" || userAgent == "Unknown" {
		return DeviceInfo{DeviceType: DeviceUnknown, OS: "Unknown", Browser: "Unknown"}
	}

	parser := ua.New(userAgent)
	info := DeviceInfo{
		IsBot:   parser.Bot(),
		OS:      getOS(parser),
		Browser: getBrowser(parser),
	}

	switch {
	case info.IsBot:
		info.DeviceType = DeviceBot
	case isTablet(userAgent):
		info.DeviceType = DeviceTablet
	case parser.Mobile():
		info.DeviceType = DeviceMobile
	default:
		info.DeviceType = DeviceDesktop
	}
	return info
}

func isTablet(userAgent string) bool {
	lower := strings.ToLower(userAgent)
	for _, indicator := range tabletIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	// Android tablets omit "Mobile" from their user agent
	return strings.Contains(lower, "android") && !strings.Contains(lower, "mobile")
}

// getOS extracts operating system name and version
func getOS(parser *ua.UserAgent) string {
	osInfo := parser.OSInfo()
	if osInfo.Name == "" {
		return "Unknown"
	}
	if osInfo.Version != "" {
		return osInfo.Name + " " + osInfo.Version
	}
	return osInfo.Name
}

// getBrowser extracts browser name
func getBrowser(parser *ua.UserAgent) string {
	name, _ := parser.Browser()
	if name == "" {
		return "Unknown"
	}
	return name
}
