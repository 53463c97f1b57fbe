package content

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	assert.NotEmpty(t, p.Profile.Name)
	assert.NotEmpty(t, p.Hero.FlipWords)
	assert.Len(t, p.Experience, 2)
	assert.Len(t, p.Projects, 4)
	for _, pr := range p.Projects {
		assert.NotEmpty(t, pr.Tags, pr.Title)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader("profile:\n  name: A\n  nickname: B\n"))
	require.Error(t, err)
}

func TestLoadRejectsRelativeProjectLink(t *testing.T) {
	doc := `
profile:
  name: A
projects:
  - title: P
    links:
      - label: Source
        url: /relative
`
	_, err := Load(strings.NewReader(doc))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidContent))
}

func TestLoadRequiresName(t *testing.T) {
	_, err := Load(strings.NewReader("hero:\n  greeting: hi\n"))
	assert.ErrorIs(t, err, ErrInvalidContent)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("does-not-exist.yaml")
	assert.Error(t, err)
}
