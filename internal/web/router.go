// Package web serves the portfolio: full pages, HTMX fragments, the contact
// flow and the small JSON API used by the page scripts.
package web

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/parallax"
	"github.com/Zachkp/portfolio/internal/resume"
	"github.com/Zachkp/portfolio/internal/session"
)

type Deps struct {
	ServiceName string
	Version     string
	Logger      *zap.Logger

	// Portfolio is read per request so content reloads show up immediately.
	Portfolio *content.Holder
	Contact   *contact.Service
	Sessions  *session.Store

	Resume         resume.Store
	ResumeFilename string

	Parallax parallax.Settings

	// ContactPerMinute and ContactBurst throttle POST /contact per client.
	ContactPerMinute int
	ContactBurst     int

	AllowedOrigins []string
	SecureCookies  bool

	// AssetsDir holds static/, images/ and public/. Empty disables static
	// file serving.
	AssetsDir string
}

// Scroll beacons fire on every tab switch, so they get a looser bucket than
// the contact form.
const (
	scrollBeaconLimit = rate.Limit(0.5)
	scrollBeaconBurst = 10
)

type server struct {
	deps   Deps
	logger *zap.Logger
}

func NewRouter(d Deps) (*gin.Engine, error) {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Portfolio == nil || d.Contact == nil || d.Sessions == nil || d.Resume == nil {
		return nil, fmt.Errorf("web: portfolio, contact, sessions and resume are required")
	}
	if d.ContactPerMinute <= 0 {
		d.ContactPerMinute = 5
	}
	if d.ContactBurst <= 0 {
		d.ContactBurst = 3
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &server{deps: d, logger: d.Logger}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware(d.Logger))
	r.SetHTMLTemplate(tmpl)

	NewHealthHandler(d.ServiceName, d.Version, d.Sessions.Len).RegisterRoutes(r)

	if d.AssetsDir != "" {
		r.Static("/images", filepath.Join(d.AssetsDir, "images"))
		r.Static("/static", filepath.Join(d.AssetsDir, "static"))
		for _, name := range []string{"sitemap.xml", "robots.txt", "favicon.ico"} {
			path := filepath.Join(d.AssetsDir, "public", name)
			if _, err := os.Stat(path); err == nil {
				r.StaticFile("/"+name, path)
			}
		}
	}

	site := r.Group("/")
	site.Use(session.Middleware(d.Sessions, d.SecureCookies))

	site.GET("/", s.homePage)
	site.GET("/services", s.servicesPage)
	site.GET("/contact", s.contactPage)

	site.GET("/work-content", s.workContent)
	site.GET("/education-content", s.educationContent)
	site.GET("/projects-content", s.projectsContent)
	site.GET("/skills-content", s.skillsContent)
	site.GET("/services-content", s.servicesContent)
	site.GET("/contact-form", s.contactForm)

	limit := rate.Every(time.Minute / time.Duration(d.ContactPerMinute))
	site.POST("/contact",
		RateLimitMiddleware(limit, d.ContactBurst, d.Sessions.HashIP, d.Logger),
		s.submitContact,
	)
	site.POST("/contact/validate/phone", s.validatePhone)
	site.POST("/contact/selects/:id/toggle", s.toggleSelect)
	site.POST("/contact/selects/close", s.closeSelects)

	site.GET("/toasts", s.listToasts)
	site.DELETE("/toasts/:id", s.dismissToast)

	site.POST("/theme", s.toggleTheme)

	api := site.Group("/api")
	api.Use(cors.New(corsConfig(d.AllowedOrigins)))
	resume.NewHandler(d.Resume, d.ResumeFilename, d.Logger).RegisterRoutes(api)
	api.GET("/toasts", s.listToastsJSON)
	api.POST("/scroll",
		RateLimitMiddleware(scrollBeaconLimit, scrollBeaconBurst, d.Sessions.HashIP, d.Logger),
		s.saveScroll,
	)
	api.GET("/scroll", s.restoreScroll)

	return r, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.ExposeHeaders = []string{"Content-Disposition", "X-Request-Id"}
	return cfg
}
