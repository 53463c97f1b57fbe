// Package content holds the display data rendered by the site: biography,
// experience, education, projects, skills and services. Records are loaded
// once at startup and never mutated afterwards.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var defaultPortfolio []byte

var ErrInvalidContent = errors.New("invalid portfolio content")

type Portfolio struct {
	Profile    Profile      `yaml:"profile"`
	Hero       Hero         `yaml:"hero"`
	Experience []Experience `yaml:"experience"`
	Education  []Education  `yaml:"education"`
	Projects   []Project    `yaml:"projects"`
	Skills     []SkillGroup `yaml:"skills"`
	Services   []Service    `yaml:"services"`
}

type Profile struct {
	Name    string `yaml:"name"`
	Title   string `yaml:"title"`
	AboutMe string `yaml:"about"`
	Email   string `yaml:"email"`
	Links   []Link `yaml:"links"`
}

// Hero is the landing banner. FlipWords are cycled one at a time by the page.
type Hero struct {
	Greeting  string   `yaml:"greeting"`
	Tagline   string   `yaml:"tagline"`
	FlipWords []string `yaml:"flip_words"`
	Image     string   `yaml:"image"`
}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

type Experience struct {
	Title        string   `yaml:"title"`
	Company      string   `yaml:"company"`
	StartDate    string   `yaml:"start_date"`
	EndDate      string   `yaml:"end_date"`
	LogoPath     string   `yaml:"logo"`
	BulletPoints []string `yaml:"bullets"`
	Tags         []string `yaml:"tags"`
}

type Education struct {
	Title        string   `yaml:"title"`
	Institution  string   `yaml:"institution"`
	StartDate    string   `yaml:"start_date"`
	EndDate      string   `yaml:"end_date"`
	LogoPath     string   `yaml:"logo"`
	BulletPoints []string `yaml:"bullets"`
}

type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Image       string   `yaml:"image"`
	Tags        []string `yaml:"tags"`
	Links       []Link   `yaml:"links"`
}

type SkillGroup struct {
	Title  string   `yaml:"title"`
	Skills []string `yaml:"skills"`
}

type Service struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
}

// Default returns the portfolio compiled into the binary.
func Default() (*Portfolio, error) {
	return Load(bytes.NewReader(defaultPortfolio))
}

func LoadFile(path string) (*Portfolio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

func Load(r io.Reader) (*Portfolio, error) {
	var p Portfolio
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode portfolio: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Portfolio) Validate() error {
	if p.Profile.Name == "" {
		return fmt.Errorf("%w: profile name is required", ErrInvalidContent)
	}
	for i, e := range p.Experience {
		if e.Title == "" || e.Company == "" {
			return fmt.Errorf("%w: experience[%d] needs title and company", ErrInvalidContent, i)
		}
	}
	for i, e := range p.Education {
		if e.Title == "" || e.Institution == "" {
			return fmt.Errorf("%w: education[%d] needs title and institution", ErrInvalidContent, i)
		}
	}
	for i, pr := range p.Projects {
		if pr.Title == "" {
			return fmt.Errorf("%w: projects[%d] has no title", ErrInvalidContent, i)
		}
		for _, l := range pr.Links {
			if !isAbsoluteURL(l.URL) {
				return fmt.Errorf("%w: project %q link %q is not an absolute URL", ErrInvalidContent, pr.Title, l.URL)
			}
		}
	}
	for i, s := range p.Skills {
		if s.Title == "" {
			return fmt.Errorf("%w: skills[%d] has no title", ErrInvalidContent, i)
		}
	}
	for i, s := range p.Services {
		if s.Title == "" {
			return fmt.Errorf("%w: services[%d] has no title", ErrInvalidContent, i)
		}
	}
	return nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
