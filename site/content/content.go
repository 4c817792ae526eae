// Package content holds the copy, contact details and showreel of the site.
//
// The defaults are embedded; a deployment may replace any top-level section
// with a YAML file and swap the showreel clip URLs from the environment.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

var (
	ErrInvalidContent = errors.New("content: invalid content")
	ErrReadContent    = errors.New("content: failed to read content file")
)

// Content is everything the page renders that is not markup.
type Content struct {
	Studio   Studio   `yaml:"studio"`
	Banner   string   `yaml:"banner"`
	Hero     Hero     `yaml:"hero"`
	Clips    []Clip   `yaml:"clips"`
	Services Services `yaml:"services"`
	Contact  Contact  `yaml:"contact"`
}

// Studio describes the company.
type Studio struct {
	Name        string   `yaml:"name"`
	LegalName   string   `yaml:"legal_name"`
	Tagline     string   `yaml:"tagline"`
	Owner       string   `yaml:"owner"`
	Description string   `yaml:"description"`
	Address     []string `yaml:"address"`
	Phones      []Phone  `yaml:"phones"`
	Emails      []string `yaml:"emails"`
}

// Phone is a displayed phone number.
type Phone struct {
	Number string `yaml:"number"`
	Label  string `yaml:"label"`
}

// Href returns the tel: link for the number.
func (p Phone) Href() string {
	var b strings.Builder
	for _, r := range p.Number {
		if r == '+' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return "tel:" + b.String()
}

// Display is the number followed by the label in parentheses.
func (p Phone) Display() string {
	if p.Label == "" {
		return p.Number
	}
	return p.Number + " (" + p.Label + ")"
}

// Hero is the headline block over the background video.
type Hero struct {
	Eyebrow   string `yaml:"eyebrow"`
	Title     string `yaml:"title"`
	Highlight string `yaml:"highlight"`
}

// Clip is one showreel video. Thumbnail is optional.
type Clip struct {
	Title     string `yaml:"title"`
	URL       string `yaml:"url"`
	Thumbnail string `yaml:"thumbnail"`
}

// Services is the expertise grid.
type Services struct {
	Heading    string    `yaml:"heading"`
	Subheading string    `yaml:"subheading"`
	Blurb      string    `yaml:"blurb"`
	Items      []Service `yaml:"items"`
}

// Service is one card of the grid.
type Service struct {
	Title string `yaml:"title"`
	Icon  string `yaml:"icon"`
}

// Contact is the copy above the enquiry form.
type Contact struct {
	Heading    string `yaml:"heading"`
	Subheading string `yaml:"subheading"`
}

// Default returns the embedded content.
func Default() *Content {
	c, err := decode(&Content{}, defaultYAML)
	if err != nil {
		panic(err)
	}
	return c
}

// Load returns the embedded content with the sections present in the YAML
// file at path laid over it. An empty path returns the defaults.
func Load(path string) (*Content, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadContent, err)
	}
	if c, err = decode(c, data); err != nil {
		return nil, err
	}
	return c, nil
}

func decode(into *Content, data []byte) (*Content, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(into); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidContent, err)
	}
	if err := into.Validate(); err != nil {
		return nil, err
	}
	return into, nil
}

// WithClipURLs replaces the showreel video URLs. The nth URL keeps the title
// and thumbnail of the nth existing clip; extra URLs get a numbered title.
// Blank entries are dropped and an empty list leaves the clips unchanged.
func (c *Content) WithClipURLs(urls []string) *Content {
	var clips []Clip
	for _, u := range urls {
		if u = strings.TrimSpace(u); u == "" {
			continue
		}
		clip := Clip{Title: fmt.Sprintf("Showreel %d", len(clips)+1)}
		if i := len(clips); i < len(c.Clips) {
			clip = c.Clips[i]
		}
		clip.URL = u
		clips = append(clips, clip)
	}
	if len(clips) == 0 {
		return c
	}

	out := *c
	out.Clips = clips
	return &out
}

// Validate reports clips without a URL or title and services without a title.
func (c *Content) Validate() error {
	var errs []error
	for i, clip := range c.Clips {
		if strings.TrimSpace(clip.URL) == "" {
			errs = append(errs, fmt.Errorf("clip %d: url is required", i+1))
		}
		if strings.TrimSpace(clip.Title) == "" {
			errs = append(errs, fmt.Errorf("clip %d: title is required", i+1))
		}
	}
	for i, s := range c.Services.Items {
		if strings.TrimSpace(s.Title) == "" {
			errs = append(errs, fmt.Errorf("service %d: title is required", i+1))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrInvalidContent}, errs...)...)
}

// ClipURLs returns the video URLs in showreel order.
func (c *Content) ClipURLs() []string {
	out := make([]string, len(c.Clips))
	for i, clip := range c.Clips {
		out[i] = clip.URL
	}
	return out
}
