// Package htmx holds request detection and response helpers for htmx.
//
// IsHTMX tells a partial request from a full page load. Render options
// (WithOOB, WithRetarget, WithReswap, WithTrigger, ...) collect the response
// headers and out-of-band components applied by Context.Render:
//
//	return c.Render(http.StatusOK, views.ContactForm(state),
//		htmx.WithOOB(views.Toast(state.Toast)),
//		htmx.WithTrigger("enquiry:sent"),
//	)
//
// Redirect answers htmx requests with HX-Redirect and everything else with a
// regular HTTP redirect.
package htmx
