package mailer

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"
	texttemplate "text/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// Renderer turns template files into HTML and plain-text bodies.
// Parsed templates and layouts are cached; execution always uses fresh data.
type Renderer struct {
	fs    fs.FS
	md    goldmark.Markdown
	strip *bluemonday.Policy

	templateCache map[string]*cachedTemplate
	layoutCache   map[string]*template.Template
	templateDir   string
	layoutDir     string

	mu sync.RWMutex
}

type executor interface {
	Execute(w io.Writer, data any) error
}

type cachedTemplate struct {
	metadata map[string]any
	exec     executor
	markdown bool
}

// RendererConfig configures template lookup.
type RendererConfig struct {
	TemplateDir string // default "."
	LayoutDir   string // default "layouts"
}

// NewRenderer creates a Renderer with the default directories.
func NewRenderer(filesystem fs.FS) *Renderer {
	return NewRendererWithConfig(filesystem, RendererConfig{})
}

// NewRendererWithConfig creates a Renderer reading from the given directories.
func NewRendererWithConfig(filesystem fs.FS, opts RendererConfig) *Renderer {
	if opts.TemplateDir == "" {
		opts.TemplateDir = "."
	}
	if opts.LayoutDir == "" {
		opts.LayoutDir = "layouts"
	}

	return &Renderer{
		fs:          filesystem,
		templateDir: opts.TemplateDir,
		layoutDir:   opts.LayoutDir,
		md: goldmark.New(
			goldmark.WithExtensions(extension.Linkify),
			goldmark.WithRendererOptions(goldmarkhtml.WithHardWraps()),
		),
		strip:         bluemonday.StrictPolicy(),
		templateCache: make(map[string]*cachedTemplate),
		layoutCache:   make(map[string]*template.Template),
	}
}

// RenderResult holds the rendered bodies and the template frontmatter.
type RenderResult struct {
	Metadata map[string]any
	HTML     string
	Text     string
}

// Render executes templateName with data and wraps the result in layout.
func (r *Renderer) Render(layout, templateName string, data any) (*RenderResult, error) {
	cached, err := r.getTemplate(templateName)
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	if err := cached.exec.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("%w: execute %s: %v", ErrRenderFailed, templateName, err)
	}

	var content, text string
	if cached.markdown {
		text = body.String()
		var out bytes.Buffer
		if err := r.md.Convert(body.Bytes(), &out); err != nil {
			return nil, fmt.Errorf("%w: convert markdown: %v", ErrRenderFailed, err)
		}
		content = out.String()
	} else {
		content = body.String()
		text = r.plainText(content)
	}

	layoutTmpl, err := r.getLayout(layout)
	if err != nil {
		return nil, err
	}

	var final bytes.Buffer
	err = layoutTmpl.Execute(&final, map[string]any{
		"Content":  template.HTML(content), //nolint:gosec // produced by html/template or goldmark
		"Metadata": cached.metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: execute layout %s: %v", ErrRenderFailed, layout, err)
	}

	return &RenderResult{
		HTML:     final.String(),
		Text:     text,
		Metadata: cached.metadata,
	}, nil
}

// plainText derives a text part from rendered HTML. Block-level breaks become
// newlines before tags are stripped.
func (r *Renderer) plainText(s string) string {
	s = breakReplacer.Replace(s)
	s = html.UnescapeString(r.strip.Sanitize(s))

	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" && (len(out) == 0 || out[len(out)-1] == "") {
			continue
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

var breakReplacer = strings.NewReplacer(
	"<br/>", "\n", "<br>", "\n", "<br />", "\n",
	"</p>", "</p>\n\n", "</div>", "</div>\n", "</li>", "</li>\n",
	"</h1>", "</h1>\n\n", "</h2>", "</h2>\n\n", "</tr>", "</tr>\n",
)

var templateFuncs = template.FuncMap{
	// nl2br escapes s and turns line breaks into <br/>.
	"nl2br": func(s string) template.HTML {
		s = strings.ReplaceAll(s, "\r\n", "\n")
		return template.HTML(strings.ReplaceAll(template.HTMLEscapeString(s), "\n", "<br/>")) //nolint:gosec // escaped above
	},
}

func (r *Renderer) getTemplate(name string) (*cachedTemplate, error) {
	r.mu.RLock()
	if cached, ok := r.templateCache[name]; ok {
		r.mu.RUnlock()
		return cached, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.templateCache[name]; ok {
		return cached, nil
	}

	content, err := fs.ReadFile(r.fs, path.Join(r.templateDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
	}

	parsed, err := ParseTemplate(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRenderFailed, name, err)
	}

	cached := &cachedTemplate{metadata: parsed.Metadata}
	switch path.Ext(name) {
	case ".md":
		cached.markdown = true
		cached.exec, err = texttemplate.New(name).Parse(parsed.Body)
	case ".html":
		cached.exec, err = template.New(name).Funcs(templateFuncs).Parse(parsed.Body)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrRenderFailed, name, err)
	}

	r.templateCache[name] = cached
	return cached, nil
}

func (r *Renderer) getLayout(name string) (*template.Template, error) {
	r.mu.RLock()
	if cached, ok := r.layoutCache[name]; ok {
		r.mu.RUnlock()
		return cached, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.layoutCache[name]; ok {
		return cached, nil
	}

	content, err := fs.ReadFile(r.fs, path.Join(r.layoutDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLayoutNotFound, name, err)
	}

	layoutTmpl, err := template.New(name).Funcs(templateFuncs).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: parse layout %s: %v", ErrRenderFailed, name, err)
	}

	r.layoutCache[name] = layoutTmpl
	return layoutTmpl, nil
}
