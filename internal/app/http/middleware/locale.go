package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-site/internal/domain/i18n"
)

const localeKey = "locale"

// Paths that are never locale-prefixed.
var unlocalizedPrefixes = []string{"/checkout", "/webhooks", "/health", "/metrics", "/_next", "/studio"}

// LocaleRedirect sends GET and HEAD requests outside any locale segment to
// the same path under the negotiated locale, keeping the query string.
func LocaleRedirect() gin.HandlerFunc {
	return func(c *gin.Context) {
		r := c.Request
		if (r.Method != http.MethodGet && r.Method != http.MethodHead) ||
			i18n.HasPrefix(r.URL.Path) || unlocalized(r.URL.Path) {
			c.Next()
			return
		}

		loc := i18n.Negotiate(r.Header.Get("Accept-Language"))
		target := "/" + loc.String()
		if r.URL.Path != "/" && r.URL.Path != "" {
			target += r.URL.Path
		}
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		c.Header("Vary", "Accept-Language")
		c.Redirect(http.StatusTemporaryRedirect, target)
		c.Abort()
	}
}

// unlocalized also covers static files, recognised by a dot in the last
// path segment.
func unlocalized(path string) bool {
	if strings.Contains(path[strings.LastIndex(path, "/")+1:], ".") {
		return true
	}
	for _, p := range unlocalizedPrefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// SetLocale pins the locale for a route group.
func SetLocale(loc i18n.Locale) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(localeKey, loc)
		c.Header("Content-Language", loc.String())
		c.Next()
	}
}

// CurrentLocale returns the group's locale, or the default outside a group.
func CurrentLocale(c *gin.Context) i18n.Locale {
	if v, ok := c.Get(localeKey); ok {
		if loc, ok := v.(i18n.Locale); ok {
			return loc
		}
	}
	return i18n.Default
}
