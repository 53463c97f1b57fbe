package resume

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	store    Store
	filename string
	logger   *zap.Logger
}

func NewHandler(store Store, filename string, logger *zap.Logger) *Handler {
	if filename == "" {
		filename = "resume.pdf"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, filename: filename, logger: logger}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/resume", h.Download)
}

// Download streams the resume as an attachment.
func (h *Handler) Download(c *gin.Context) {
	body, size, err := h.store.Open(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Resume not found"})
			return
		}
		h.logger.Error("failed to open resume", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load resume"})
		return
	}
	defer body.Close()

	c.DataFromReader(http.StatusOK, size, "application/pdf", body, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", h.filename),
		"Cache-Control":       "public, max-age=3600",
		"X-Robots-Tag":        "noindex, nofollow",
	})
}
