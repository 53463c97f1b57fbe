package session

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CookieName = "sid"
	contextKey = "session"
)

// skipPrefixes are requests that never need visitor state.
var skipPrefixes = []string{"/static/", "/images/", "/favicon", "/health", "/sitemap.xml", "/robots.txt"}

// Middleware attaches the visitor's session to the request, issuing a cookie
// the first time.
func Middleware(st *Store, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, p := range skipPrefixes {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}

		id, _ := c.Cookie(CookieName)
		s, created := st.GetOrCreate(id)
		if created {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CookieName, s.ID, 0, "/", "", secure, true)
		}

		c.Set(contextKey, s)
		c.Next()
	}
}

// FromContext returns the session attached by Middleware.
func FromContext(c *gin.Context) (*Session, bool) {
	v, ok := c.Get(contextKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*Session)
	return s, ok
}
