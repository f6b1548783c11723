package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(headers map[string]string, remoteAddr string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/visits", nil)
	c.Request.RemoteAddr = remoteAddr
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestGetRealIP(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		remote   string
		expected string
	}{
		{"public X-Real-IP", map[string]string{"X-Real-IP": "41.33.1.1"}, "10.0.0.1:1234", "41.33.1.1"},
		{"private X-Real-IP ignored", map[string]string{"X-Real-IP": "10.1.1.1", "X-Forwarded-For": "8.8.8.8"}, "10.0.0.1:1234", "8.8.8.8"},
		{"first public forwarded", map[string]string{"X-Forwarded-For": "192.168.1.2, 41.33.1.1, 8.8.8.8"}, "10.0.0.1:1234", "41.33.1.1"},
		{"all private forwarded", map[string]string{"X-Forwarded-For": "192.168.1.2, 10.0.0.9"}, "10.0.0.1:1234", "192.168.1.2"},
		{"no headers", nil, "203.0.113.7:5555", "203.0.113.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newContext(tt.headers, tt.remote)
			assert.Equal(t, tt.expected, GetRealIP(c))
		})
	}
}

func TestGetUserAgentAndReferrer(t *testing.T) {
	c := newContext(map[string]string{"Referer": "https://www.google.com/"}, "1.1.1.1:1")
	assert.Equal(t, "Unknown", GetUserAgent(c))
	assert.Equal(t, "https://www.google.com/", GetReferrer(c, ""))
	assert.Equal(t, "https://facebook.com/", GetReferrer(c, " https://facebook.com/ "))
}

func TestParseUserAgent(t *testing.T) {
	tests := []struct {
		name       string
		ua         string
		deviceType string
		browser    string
		isBot      bool
	}{
		{"desktop chrome", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36", DeviceDesktop, "Chrome", false},
		{"iphone safari", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_1 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Mobile/15E148 Safari/604.1", DeviceMobile, "Safari", false},
		{"ipad", "Mozilla/5.0 (iPad; CPU OS 16_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.6 Mobile/15E148 Safari/604.1", DeviceTablet, "Safari", false},
		{"googlebot", "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)", DeviceBot, "Googlebot", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ParseUserAgent(tt.ua)
			assert.Equal(t, tt.deviceType, info.DeviceType)
			assert.Equal(t, tt.browser, info.Browser)
			assert.Equal(t, tt.isBot, info.IsBot)
		})
	}

	empty := ParseUserAgent("")
	assert.Equal(t, DeviceUnknown, empty.DeviceType)
	assert.Equal(t, "Unknown", empty.OS)
}

func TestSecrets(t *testing.T) {
	secret, err := GenerateSecret(32)
	require.NoError(t, err)
	assert.Len(t, secret, 64)

	access, refresh, err := GenerateJWTSecrets()
	require.NoError(t, err)
	assert.NotEqual(t, access, refresh)

	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}
