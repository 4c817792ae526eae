package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	previz "github.com/previz/site"
	"github.com/previz/site/pkg/htmx"
	"github.com/previz/site/pkg/mailer"
	"github.com/previz/site/site/content"
	"github.com/previz/site/site/enquiry"
	"github.com/previz/site/site/handlers"
)

var recipients = []string{"studio@example.com"}

// outbox records every email handed to it.
type outbox struct {
	err    error
	emails []*mailer.Email
	mu     sync.Mutex
}

func (o *outbox) Send(_ context.Context, email *mailer.Email) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.emails = append(o.emails, email)
	return o.err
}

func (o *outbox) count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.emails)
}

func newSiteService(box *outbox) *enquiry.Service {
	m := enquiry.NewMailer(box, mailer.Config{DefaultLayout: "base.html", FallbackSubject: "Website enquiry"})
	return enquiry.NewService(enquiry.Config{Recipients: recipients}, m)
}

func newApp(svc handlers.Submitter, opts ...handlers.EnquiryOption) *previz.App {
	c := content.Default()
	return previz.New(
		previz.WithErrorHandler(handlers.ErrorHandler),
		previz.WithNotFoundHandler(handlers.NotFound),
		previz.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		previz.WithHandlers(
			handlers.NewPage(c),
			handlers.NewEnquiry(svc, c, opts...),
		),
	)
}

const validJSON = `{"name":"Ravi","phone":"+91 98765 43210","email":"ravi@example.com","message":"Need previs"}`

func postJSON(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, handlers.PathAPI, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func postForm(t *testing.T, h http.Handler, form string, hx bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, handlers.PathContact, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if hx {
		req.Header.Set(htmx.HeaderHXRequest, "true")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}
