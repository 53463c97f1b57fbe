package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/Zachkp/portfolio/internal/scroll"
	"github.com/Zachkp/portfolio/internal/sitemap"
	"github.com/Zachkp/portfolio/internal/theme"
	"github.com/Zachkp/portfolio/internal/widget"
)

func (s *server) toggleSelect(c *gin.Context) {
	sess := mustSession(c)
	id := c.Param("id")

	known := false
	for _, sel := range widget.ContactSelects() {
		if sel.ID == id {
			known = true
			break
		}
	}
	if !known {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown select"})
		return
	}

	closed := sess.Selects.Toggle(id)
	c.JSON(http.StatusOK, gin.H{"open": sess.Selects.OpenID(), "closed": closed})
}

func (s *server) closeSelects(c *gin.Context) {
	sess := mustSession(c)
	closed := sess.Selects.CloseAll()
	c.JSON(http.StatusOK, gin.H{"open": "", "closed": closed})
}

func (s *server) toggleTheme(c *gin.Context) {
	sess := mustSession(c)
	s.syncTheme(c, sess)

	t := sess.Theme.Toggle()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(themeCookie, string(t), 365*24*3600, "/", "", s.deps.SecureCookies, false)
	c.JSON(http.StatusOK, gin.H{"theme": t, "themeColor": theme.Color(t)})
}

type scrollRequest struct {
	Path string  `json:"path" binding:"required"`
	Y    float64 `json:"y"`
}

// saveScroll receives the sendBeacon fired on pagehide/visibilitychange.
// Beacons arrive as text/plain, so the body is decoded as JSON regardless.
func (s *server) saveScroll(c *gin.Context) {
	sess := mustSession(c)

	var req scrollRequest
	if err := c.ShouldBindWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scroll position"})
		return
	}
	if !isPagePath(req.Path) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown page"})
		return
	}
	if err := sess.Scroll.Save(req.Path, req.Y); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scroll position"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *server) restoreScroll(c *gin.Context) {
	sess := mustSession(c)

	nav := scroll.ParseNavigationType(c.Query("nav"))
	y, ok := sess.Scroll.Restore(c.DefaultQuery("path", "/"), nav)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"restore": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restore": true, "y": y})
}

// isPagePath reports whether path is one of the public pages. Only those get
// a saved scroll position, which bounds what a session can hold.
func isPagePath(path string) bool {
	for _, r := range sitemap.DefaultRoutes {
		if r.Path == path {
			return true
		}
	}
	return false
}
