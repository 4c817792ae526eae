package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	previz "github.com/previz/site"
	"github.com/previz/site/middlewares"
	"github.com/previz/site/pkg/htmx"
	"github.com/previz/site/pkg/mailer"
	"github.com/previz/site/site/enquiry"
	"github.com/previz/site/site/handlers"
)

// routes adapts a function to previz.Handler.
type routes func(r previz.Router)

func (f routes) Routes(r previz.Router) { f(r) }

func failingApp(err error, mw ...previz.Middleware) *previz.App {
	return previz.New(
		previz.WithErrorHandler(handlers.ErrorHandler),
		previz.WithMiddleware(mw...),
		previz.WithHandlers(routes(func(r previz.Router) {
			r.GET("/api/fail", func(previz.Context) error { return err })
			r.GET("/fail", func(previz.Context) error { return err })
			r.GET("/panic", func(previz.Context) error { panic("boom") })
		})),
	)
}

func TestErrorHandler_JSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		code int
		body string
	}{
		{
			name: "http error",
			err:  previz.ErrBadRequest("bad input"),
			code: http.StatusBadRequest,
			body: `{"error":"bad input"}`,
		},
		{
			name: "wrapped http error",
			err:  fmt.Errorf("lookup: %w", previz.ErrNotFound("no such clip")),
			code: http.StatusNotFound,
			body: `{"error":"no such clip"}`,
		},
		{
			name: "config error",
			err:  &enquiry.ConfigError{Message: "Enquiry recipients are not set."},
			code: http.StatusInternalServerError,
			body: `{"error":"Enquiry recipients are not set."}`,
		},
		{
			name: "deadline",
			err:  fmt.Errorf("send: %w", context.DeadlineExceeded),
			code: http.StatusGatewayTimeout,
			body: `{"error":"request timed out"}`,
		},
		{
			name: "send cut off by the deadline",
			err:  &enquiry.DeliveryError{Err: errors.Join(mailer.ErrSendFailed, context.DeadlineExceeded)},
			code: http.StatusGatewayTimeout,
			body: `{"error":"request timed out"}`,
		},
		{
			name: "delivery failure",
			err:  &enquiry.DeliveryError{Err: errors.Join(mailer.ErrSendFailed, errors.New("535 authentication failed"))},
			code: http.StatusInternalServerError,
			body: `{"error":"535 authentication failed"}`,
		},
		{
			name: "timeout middleware",
			err:  errors.Join(&middlewares.TimeoutError{}, context.DeadlineExceeded),
			code: http.StatusGatewayTimeout,
			body: `{"error":"request timed out"}`,
		},
		{
			name: "unknown",
			err:  errors.New("secret detail"),
			code: http.StatusInternalServerError,
			body: `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			failingApp(tt.err).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/fail", nil))

			assert.Equal(t, tt.code, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestErrorHandler_Page(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	failingApp(previz.ErrServiceUnavailable("")).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "<h1>Service Unavailable</h1>")
}

func TestErrorHandler_AcceptJSON(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	failingApp(previz.ErrBadRequest("nope")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"nope"}`, rec.Body.String())
}

func TestErrorHandler_HTMX(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	req.Header.Set(htmx.HeaderHXRequest, "true")
	rec := httptest.NewRecorder()
	failingApp(previz.ErrBadRequest("Clip not found")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, string(htmx.SwapNone), rec.Header().Get(htmx.HeaderHXReswap))
	body := rec.Body.String()
	assert.Contains(t, body, `hx-swap-oob="true"`)
	assert.Contains(t, body, "Clip not found")
}

func TestErrorHandler_Panic(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	app := failingApp(nil, middlewares.Recover())
	require.NotPanics(t, func() {
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}
