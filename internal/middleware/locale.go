package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/princeomar/cruise-backend/internal/i18n"
)

// LocaleContextKey is the key used to store the request locale in Gin context
const LocaleContextKey = "locale"

const localeCookieMaxAge = 365 * 24 * 60 * 60

// Locale resolves the request language from ?lang=, the lang cookie and
// Accept-Language, in that order. An explicit ?lang= choice is remembered
// in the cookie.
func Locale(localizer *i18n.Localizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("lang")
		cookie, _ := c.Cookie(i18n.CookieName)
		locale := localizer.Resolve(query, cookie, c.GetHeader("Accept-Language"))

		if _, ok := i18n.Parse(query); ok {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(i18n.CookieName, string(locale.Language), localeCookieMaxAge, "/", "", false, false)
		}

		c.Set(LocaleContextKey, locale)
		c.Header("Content-Language", string(locale.Language))
		c.Next()
	}
}

// GetLocale returns the request locale, or English when Locale was not applied
func GetLocale(c *gin.Context) i18n.Locale {
	if value, ok := c.Get(LocaleContextKey); ok {
		if locale, ok := value.(i18n.Locale); ok {
			return locale
		}
	}
	return (&i18n.Localizer{}).For(i18n.English)
}
