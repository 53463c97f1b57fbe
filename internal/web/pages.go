package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/theme"
)

const themeCookie = "theme"

func (s *server) page(c *gin.Context, name, title string) {
	sess := mustSession(c)
	t := s.syncTheme(c, sess)

	c.HTML(http.StatusOK, "index.html", pageData{
		Page:       name,
		Title:      title,
		Theme:      string(t),
		ThemeColor: theme.Color(t),
		Portfolio:  s.deps.Portfolio.Get(),
		Parallax:   s.deps.Parallax,
		Contact:    newContactView(contact.FormData{}, nil),
		ToastView:  toastView{Toasts: sess.Toasts.List()},
	})
}

func (s *server) homePage(c *gin.Context) {
	p := s.deps.Portfolio.Get().Profile
	s.page(c, "home", p.Name+" | "+p.Title)
}

func (s *server) servicesPage(c *gin.Context) {
	s.page(c, "services", "Services | "+s.deps.Portfolio.Get().Profile.Name)
}

func (s *server) contactPage(c *gin.Context) {
	s.page(c, "contact", "Contact | "+s.deps.Portfolio.Get().Profile.Name)
}

func (s *server) workContent(c *gin.Context) {
	c.HTML(http.StatusOK, "work-content.html", s.deps.Portfolio.Get().Experience)
}

func (s *server) educationContent(c *gin.Context) {
	c.HTML(http.StatusOK, "education-content.html", s.deps.Portfolio.Get().Education)
}

func (s *server) projectsContent(c *gin.Context) {
	c.HTML(http.StatusOK, "projects-content.html", s.deps.Portfolio.Get().Projects)
}

func (s *server) skillsContent(c *gin.Context) {
	c.HTML(http.StatusOK, "skills-content.html", s.deps.Portfolio.Get().Skills)
}

func (s *server) servicesContent(c *gin.Context) {
	c.HTML(http.StatusOK, "services-content.html", s.deps.Portfolio.Get())
}

// HTMX Contact form endpoint - returns just the form HTML
func (s *server) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact-form.html", newContactView(contact.FormData{}, nil))
}

// syncTheme seeds a session's theme from the cookie the browser sent.
func (s *server) syncTheme(c *gin.Context, sess *session.Session) theme.Theme {
	if v, err := c.Cookie(themeCookie); err == nil {
		if t, ok := theme.Parse(v); ok {
			sess.Theme.Set(t)
		}
	}
	return sess.Theme.Current()
}

func mustSession(c *gin.Context) *session.Session {
	sess, ok := session.FromContext(c)
	if !ok {
		panic("web: route registered without session middleware")
	}
	return sess
}
