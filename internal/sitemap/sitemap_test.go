package sitemap

import (
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type urlset struct {
	URLs []struct {
		Loc        string `xml:"loc"`
		LastMod    string `xml:"lastmod"`
		ChangeFreq string `xml:"changefreq"`
	} `xml:"url"`
}

var now = time.Date(2026, 10, 15, 8, 30, 0, 0, time.UTC)

func TestGenerate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, "https://zach.dev/", DefaultRoutes, now))

	var got urlset
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.URLs, len(DefaultRoutes))
	assert.Equal(t, "https://zach.dev/", got.URLs[0].Loc)
	assert.Equal(t, "https://zach.dev/services", got.URLs[1].Loc)
	assert.Equal(t, "weekly", got.URLs[0].ChangeFreq)
	assert.Contains(t, got.URLs[0].LastMod, "2026-10-15")
}

func TestGenerateRejectsRelativeBase(t *testing.T) {
	var buf bytes.Buffer
	err := Generate(&buf, "zach.dev", DefaultRoutes, now)
	assert.ErrorIs(t, err, ErrInvalidBaseURL)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "public", "sitemap.xml")
	require.NoError(t, WriteFile(path, "https://zach.dev", []Route{{Path: "contact"}}, now))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<loc>https://zach.dev/contact</loc>")
}
