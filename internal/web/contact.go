package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/toast"
)

// Handle contact form submission with HTMX
func (s *server) submitContact(c *gin.Context) {
	sess := mustSession(c)

	if !sess.BeginSubmit() {
		c.JSON(http.StatusConflict, gin.H{"error": contact.ErrSubmitInFlight.Error()})
		return
	}
	defer sess.EndSubmit()

	var form contact.FormData
	if err := c.ShouldBind(&form); err != nil {
		s.logger.Debug("contact form bind failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form submission"})
		return
	}

	ctx := c.Request.Context()
	res := s.deps.Contact.Submit(ctx, form, sess.Toasts)
	s.logger.Info("contact submit handled",
		zap.String("request_id", GetRequestID(ctx)),
		zap.Bool("sent", res.Sent()),
		zap.Int("failure", int(res.Failure)),
	)
	if res.Sent() {
		c.Header("HX-Trigger", "contactSent")
	}

	c.HTML(http.StatusOK, "contact-response.html", contactResponse{
		Contact:   newContactView(res.Form, res.Errors),
		ToastView: toastView{Toasts: sess.Toasts.List(), OOB: true},
	})
}

// validatePhone runs on blur so the visitor sees the phone error before
// submitting.
func (s *server) validatePhone(c *gin.Context) {
	msg := ""
	if err := contact.ValidatePhone(c.PostForm("phone")); err != nil {
		msg = err.Error()
	}
	c.HTML(http.StatusOK, "field-error.html", fieldErrorView{ID: "phone-error", Message: msg})
}

func (s *server) listToasts(c *gin.Context) {
	sess := mustSession(c)
	c.HTML(http.StatusOK, "toasts.html", toastView{Toasts: sess.Toasts.List()})
}

func (s *server) listToastsJSON(c *gin.Context) {
	sess := mustSession(c)
	c.JSON(http.StatusOK, gin.H{"toasts": sess.Toasts.List()})
}

func (s *server) dismissToast(c *gin.Context) {
	sess := mustSession(c)
	if !sess.Toasts.Dismiss(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Toast not found"})
		return
	}
	c.HTML(http.StatusOK, "toasts.html", toastView{Toasts: sess.Toasts.List()})
}

var _ contact.Notifier = (*toast.Queue)(nil)
