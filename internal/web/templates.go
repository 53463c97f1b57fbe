package web

import (
	"embed"
	"html/template"
	"strings"
	"time"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/parallax"
	"github.com/Zachkp/portfolio/internal/toast"
	"github.com/Zachkp/portfolio/internal/widget"
)

//go:embed templates/*.html
var templateFS embed.FS

type fieldErrorView struct {
	ID      string
	Message string
}

var templateFuncs = template.FuncMap{
	"join": strings.Join,
	"first": func(words []string) string {
		if len(words) == 0 {
			return ""
		}
		return words[0]
	},
	"millis": func(d time.Duration) int64 { return d.Milliseconds() },
	"fieldError": func(id, msg string) fieldErrorView {
		return fieldErrorView{ID: id, Message: msg}
	},
}

func parseTemplates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
}

type contactView struct {
	Form    contact.FormData
	Errors  contact.FieldErrors
	Selects []widget.Select
}

func newContactView(form contact.FormData, errs contact.FieldErrors) contactView {
	if errs == nil {
		errs = contact.FieldErrors{}
	}
	return contactView{Form: form, Errors: errs, Selects: widget.ContactSelects()}
}

type toastView struct {
	Toasts []toast.Toast
	OOB    bool
}

type pageData struct {
	Page       string
	Title      string
	Theme      string
	ThemeColor string
	Portfolio  *content.Portfolio
	Parallax   parallax.Settings
	Contact    contactView
	ToastView  toastView
}

type contactResponse struct {
	Contact   contactView
	ToastView toastView
}
