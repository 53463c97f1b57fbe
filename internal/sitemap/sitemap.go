// Package sitemap writes public/sitemap.xml at build time. The server only
// ever serves the generated file as a static asset.
package sitemap

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/snabb/sitemap"
)

type Route struct {
	Path       string
	ChangeFreq sitemap.ChangeFreq
	Priority   float32
}

var DefaultRoutes = []Route{
	{Path: "/", ChangeFreq: sitemap.Weekly, Priority: 1.0},
	{Path: "/services", ChangeFreq: sitemap.Monthly, Priority: 0.8},
	{Path: "/contact", ChangeFreq: sitemap.Monthly, Priority: 0.7},
}

var ErrInvalidBaseURL = errors.New("base URL must be an absolute http(s) URL")

// Generate writes a sitemap for routes under baseURL with lastmod set to now.
func Generate(w io.Writer, baseURL string, routes []Route, now time.Time) error {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	lastMod := now.UTC().Truncate(time.Second)
	sm := sitemap.New()
	for _, r := range routes {
		path := r.Path
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		sm.Add(&sitemap.URL{
			Loc:        base.String() + path,
			LastMod:    &lastMod,
			ChangeFreq: r.ChangeFreq,
			Priority:   r.Priority,
		})
	}

	if _, err := sm.WriteTo(w); err != nil {
		return fmt.Errorf("write sitemap: %w", err)
	}
	return nil
}

// WriteFile generates the sitemap into path, creating parent directories.
func WriteFile(path, baseURL string, routes []Route, now time.Time) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create sitemap dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create sitemap: %w", err)
	}
	if err := Generate(f, baseURL, routes, now); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
