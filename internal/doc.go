// Package internal implements the web layer behind package previz.
//
// Import "github.com/previz/site" instead; it re-exports the public API.
//
// # Core Types
//
//   - App: owns the chi router, the middleware stack and graceful shutdown
//   - Context: request/response access, binding, rendering and logging
//   - Router: the interface handlers use to declare routes
//   - Handler: a type that registers routes on a Router
//   - HandlerFunc: a route handler returning an error
//   - Middleware: wraps a HandlerFunc
//   - ErrorHandler: turns returned errors into responses
//
// # Context as context.Context
//
// Context embeds context.Context, so handlers pass it straight to
// services and senders. Cancellation follows the request:
//
//	func (h *API) send(c previz.Context) error {
//	    if err := h.enquiries.Submit(c, in); err != nil {
//	        return err
//	    }
//	    return c.JSON(http.StatusOK, map[string]bool{"ok": true})
//	}
//
// # Binding
//
// Bind and BindJSON decode the request, apply `sanitize` tags
// and check `validate` tags. A validation failure is returned as
// ValidationErrors with a nil error so the handler can render a 422:
//
//	var in EnquiryInput
//	verrs, err := c.BindJSON(&in)
//	if err != nil {
//	    return previz.ErrBadRequest("malformed request body", previz.WithError(err))
//	}
//	if len(verrs) > 0 {
//	    return previz.ErrUnprocessable("invalid enquiry", previz.WithFields(verrs.Fields()))
//	}
//
// # htmx
//
// The ResponseWriter reports every status as 200 to htmx clients so the
// fragment is swapped in, while Status keeps the real code for logs and
// metrics. Render accepts htmx options that only apply to htmx requests:
//
//	return c.Render(http.StatusOK, views.ContactForm(form),
//	    htmx.WithOOB(views.Toast(toast)))
//
// # Errors
//
// Handlers return *HTTPError values built with ErrBadRequest,
// ErrUnprocessable and friends. Anything else reaching the ErrorHandler
// is treated as an internal error by the site's handler.
package internal
