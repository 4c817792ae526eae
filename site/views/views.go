// Package views renders the site markup.
//
// Every view is a templ.Component backed by the embedded html/template set,
// so handlers pass them to Context.Render like any other component.
package views

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"io"
	"io/fs"
	"time"

	"github.com/a-h/templ"

	"github.com/previz/site/site/content"
	"github.com/previz/site/site/page"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Assets is the static file tree; serve its "static" directory.
var Assets fs.FS = staticFS

var templates = template.Must(template.New("views").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))

var funcs = template.FuncMap{
	"icon": icon,
	// tel: is not in html/template's URL allow list.
	"tel": func(p content.Phone) template.URL {
		return template.URL(p.Href()) //nolint:gosec // digits and + only
	},
	"json": func(v any) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	},
}

// PageData is what the page templates render.
type PageData struct {
	Now     time.Time
	Content *content.Content
	State   *page.State
	// Fields holds server-side validation messages keyed by field name.
	Fields map[string]string
}

// Year is the copyright year.
func (d PageData) Year() int {
	return d.Now.Year()
}

// ToastVisible reports whether the toast should be rendered.
func (d PageData) ToastVisible() bool {
	return d.State != nil && d.State.ToastVisible(d.Now)
}

// ToastRemaining is the time left before the toast hides, in milliseconds.
func (d PageData) ToastRemaining() int64 {
	if !d.ToastVisible() {
		return 0
	}
	return (page.ToastDuration - d.Now.Sub(d.State.Toast.ShownAt)).Milliseconds()
}

// HeroClip is the clip playing behind the hero.
func (d PageData) HeroClip() content.Clip {
	if d.State == nil || d.State.Hero.Index >= len(d.Content.Clips) {
		if len(d.Content.Clips) > 0 {
			return d.Content.Clips[0]
		}
		return content.Clip{}
	}
	return d.Content.Clips[d.State.Hero.Index]
}

// Component names.
const (
	tmplPage        = "page"
	tmplContactForm = "contact_form"
	tmplToast       = "toast"
	tmplErrorPage   = "error_page"
)

func render(name string, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return templates.ExecuteTemplate(w, name, data)
	})
}

// Page is the full single page.
func Page(data PageData) templ.Component {
	return render(tmplPage, data)
}

// ContactForm is the enquiry form fragment swapped by htmx.
func ContactForm(data PageData) templ.Component {
	return render(tmplContactForm, data)
}

// Toast is the notification, marked for an out-of-band swap.
func Toast(data PageData) templ.Component {
	return render(tmplToast, ToastData{PageData: data, OOB: true})
}

// ToastData renders the toast either in place or as an out-of-band swap.
type ToastData struct {
	PageData
	OOB bool
}

// InlineToast is the toast as part of the full page.
func (d PageData) InlineToast() ToastData {
	return ToastData{PageData: d}
}

// ErrorData describes an error page.
type ErrorData struct {
	Title   string
	Message string
	Code    int
}

// ErrorPage is a standalone error document.
func ErrorPage(data ErrorData) templ.Component {
	return render(tmplErrorPage, data)
}
