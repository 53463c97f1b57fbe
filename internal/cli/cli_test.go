package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/config"
	"github.com/Zachkp/portfolio/internal/mailer"
)

func TestSitemapCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "public", "sitemap.xml")

	cmd := sitemapCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"--out", out, "--base-url", "https://example.dev"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "https://example.dev/services")
	assert.Contains(t, stdout.String(), "Wrote 3 routes")
}

func TestBuildRelay(t *testing.T) {
	cfg := &config.Config{}
	assert.IsType(t, mailer.Unconfigured{}, buildRelay(cfg, zap.NewNop()))

	cfg.SMTP = config.SMTPConfig{User: "u", Pass: "p"}
	assert.IsType(t, &mailer.SMTP{}, buildRelay(cfg, zap.NewNop()))

	cfg.EmailJS = config.EmailJSConfig{ServiceID: "s", TemplateID: "t", PublicKey: "k"}
	assert.IsType(t, &mailer.EmailJS{}, buildRelay(cfg, zap.NewNop()))
}

func TestLoadPortfolioOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile:\n  name: Someone Else\n"), 0o644))

	p, err := loadPortfolio(&config.Config{Content: config.ContentConfig{Path: path}})
	require.NoError(t, err)
	assert.Equal(t, "Someone Else", p.Profile.Name)
}
