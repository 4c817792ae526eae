// Package handlers holds the HTTP handlers of the site.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	previz "github.com/previz/site"
	"github.com/previz/site/middlewares"
	"github.com/previz/site/pkg/binder"
	"github.com/previz/site/pkg/htmx"
	"github.com/previz/site/pkg/validator"
	"github.com/previz/site/site/enquiry"
	"github.com/previz/site/site/page"
	"github.com/previz/site/site/views"
)

// errorResponse is the JSON error body.
type errorResponse struct {
	Fields map[string]string `json:"fields,omitempty"`
	Error  string            `json:"error"`
}

// ErrorHandler renders errors returned from handlers and middleware.
// API paths get JSON, htmx requests an out-of-band toast, anything else an
// error page.
func ErrorHandler(c previz.Context, err error) error {
	httpErr := toHTTPError(err)
	if httpErr.Code >= http.StatusInternalServerError {
		c.LogError("request failed", "error", err, "status", httpErr.Code)
	} else {
		c.LogDebug("request rejected", "error", err, "status", httpErr.Code)
	}

	if wantsJSON(c.Request()) {
		return c.JSON(httpErr.Code, errorResponse{Error: httpErr.Message, Fields: httpErr.Fields})
	}

	if c.IsHTMX() {
		t := now()
		st := page.New(0)
		st.ShowToast(t, page.ToastError, page.TitleError, httpErr.Message)
		return c.Render(httpErr.Code,
			views.Toast(views.PageData{Now: t, State: st}),
			htmx.WithReswap(htmx.SwapNone),
		)
	}

	return c.Render(httpErr.Code, views.ErrorPage(views.ErrorData{
		Code:    httpErr.Code,
		Title:   http.StatusText(httpErr.Code),
		Message: httpErr.Message,
	}))
}

// NotFound renders 404 through ErrorHandler.
func NotFound(previz.Context) error {
	return previz.ErrNotFound("The page you're looking for doesn't exist.")
}

// MethodNotAllowed renders 405 through ErrorHandler.
func MethodNotAllowed(previz.Context) error {
	return previz.ErrMethodNotAllowed("This HTTP method is not allowed for this resource.")
}

// toHTTPError maps any error to an HTTPError. Messages of unknown errors are
// not exposed.
func toHTTPError(err error) *previz.HTTPError {
	if httpErr := previz.AsHTTPError(err); httpErr != nil {
		return httpErr
	}

	if ve := validator.ExtractValidationErrors(err); ve != nil {
		return previz.ErrUnprocessable(validator.ErrValidation.Error(),
			previz.WithFields(ve.Fields()), previz.WithError(err))
	}
	if ce := enquiry.AsConfigError(err); ce != nil {
		return previz.ErrInternal(ce.Message, previz.WithErrorCode("not_configured"), previz.WithError(err))
	}
	// A send cut off by the deadline is a timeout, not a delivery failure.
	if _, ok := middlewares.AsTimeoutError(err); ok || errors.Is(err, context.DeadlineExceeded) {
		return previz.ErrGatewayTimeout("request timed out", previz.WithError(err))
	}
	if de := enquiry.AsDeliveryError(err); de != nil {
		return previz.ErrInternal(de.Message(), previz.WithErrorCode("send_failed"), previz.WithError(err))
	}

	switch {
	case errors.Is(err, binder.ErrBodyTooLarge):
		return previz.NewHTTPError(http.StatusRequestEntityTooLarge, "", previz.WithError(err))
	case errors.Is(err, binder.ErrUnsupportedType):
		return previz.NewHTTPError(http.StatusUnsupportedMediaType, "", previz.WithError(err))
	case errors.Is(err, binder.ErrMalformedBody):
		return previz.ErrBadRequest("malformed request body", previz.WithError(err))
	}

	return previz.ErrInternal("", previz.WithError(err))
}

func wantsJSON(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return true
	}
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}
