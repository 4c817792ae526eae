package handlers

import (
	"net/http"
	"time"

	previz "github.com/previz/site"
	"github.com/previz/site/site/content"
	"github.com/previz/site/site/page"
	"github.com/previz/site/site/views"
)

var now = time.Now

// Page serves the single page.
type Page struct {
	content *content.Content
}

// NewPage creates the page handler.
func NewPage(c *content.Content) *Page {
	return &Page{content: c}
}

// Routes implements previz.Handler.
func (h *Page) Routes(r previz.Router) {
	r.GET("/", h.show)
}

// show renders the page. Query parameters select the initial state:
// clip picks the hero video, play opens the modal on a showreel clip and
// enquiry=sent shows the confirmation after a form post redirect.
func (h *Page) show(c previz.Context) error {
	t := now()
	st := page.New(len(h.content.Clips))
	st.Hero.Select(previz.QueryInt(c, "clip", 0))
	if i := previz.QueryInt(c, "play", -1); i >= 0 && i < len(h.content.Clips) {
		st.Open(h.content.Clips[i])
	}
	if c.Query("enquiry") == "sent" {
		st.FinishSubmit(t, nil)
	}

	return c.Render(http.StatusOK, views.Page(views.PageData{
		Now:     t,
		Content: h.content,
		State:   st,
	}))
}
