package utils

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// GetRealIP extracts the client IP address of a request.
//
// Priority order:
//  1. X-Real-IP, when it holds a public address (set by Nginx)
//  2. the first public address in X-Forwarded-For
//  3. the first valid address in X-Forwarded-For
//  4. gin's ClientIP (RemoteAddr)
func GetRealIP(c *gin.Context) string {
	realIP := strings.TrimSpace(c.Request.Header.Get("X-Real-IP"))
	if ip := net.ParseIP(realIP); ip != nil && !isPrivateIP(ip) && !ip.IsLoopback() {
		return realIP
	}

	if forwarded := c.Request.Header.Get("X-Forwarded-For"); forwarded != "" {
		candidates := strings.Split(forwarded, ",")
		for _, candidate := range candidates {
			candidate = strings.TrimSpace(candidate)
			if ip := net.ParseIP(candidate); ip != nil && !isPrivateIP(ip) && !ip.IsLoopback() {
				return candidate
			}
		}
		if first := strings.TrimSpace(candidates[0]); net.ParseIP(first) != nil {
			return first
		}
	}

	return c.ClientIP()
}

// GetUserAgent extracts the User-Agent header from the request
func GetUserAgent(c *gin.Context) string {
	ua := c.Request.UserAgent()
	if ua == "" {
		return "Unknown"
	}
	return ua
}

// GetReferrer prefers the referrer reported in the body by single-page
// clients, whose Referer header only names the site itself
func GetReferrer(c *gin.Context, reported string) string {
	if reported = strings.TrimSpace(reported); reported != "" {
		return reported
	}
	return strings.TrimSpace(c.Request.Referer())
}

// isPrivateIP checks if an IP is in a private range
func isPrivateIP(ip net.IP) bool {
	return ip != nil && ip.IsPrivate()
}
