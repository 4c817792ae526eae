package internal

// Handler declares routes on a router.
//
// Example:
//
//	type ContactHandler struct {
//	    enquiries *enquiry.Service
//	}
//
//	func (h *ContactHandler) Routes(r previz.Router) {
//	    r.POST("/contact", h.submit)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// A non-nil error is passed to the application's ErrorHandler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc.
// It may inspect the request, short-circuit with an error, or decorate the response.
//
// Example:
//
//	func NoStore(next previz.HandlerFunc) previz.HandlerFunc {
//	    return func(c previz.Context) error {
//	        c.SetHeader("Cache-Control", "no-store")
//	        return next(c)
//	    }
//	}
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler renders errors returned from handlers and middleware.
type ErrorHandler func(Context, error) error
