// Package sanitizer cleans user-supplied strings before validation.
//
// Functions work on single values; SanitizeStruct applies them to string
// fields tagged with `sanitize:"..."`:
//
//	type ContactRequest struct {
//		Name    string `sanitize:"trim,strip_html,collapse"`
//		Email   string `sanitize:"trim,lower,email"`
//		Message string `sanitize:"trim"`
//	}
//
// Tags run left to right. Unknown tag names are reported as errors so a typo
// does not silently disable cleaning.
package sanitizer
