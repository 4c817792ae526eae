// Package page models the interactive state of one page session.
//
// State changes only through its transition methods. The server uses it to
// render the page as first shown and after a form post; the browser script
// applies the same transitions on its own copy.
package page

import (
	"errors"
	"time"

	"github.com/previz/site/pkg/validator"
	"github.com/previz/site/site/content"
	"github.com/previz/site/site/enquiry"
)

// ToastDuration is how long a toast stays visible.
const ToastDuration = 5 * time.Second

// Toast texts.
const (
	TitleSent  = "Message Sent"
	TitleError = "Error"

	MsgSent       = "Thank you — your enquiry was sent. Our team will call you shortly."
	MsgIncomplete = "Please provide a valid email or phone and fill name & message."
	MsgNetwork    = "An error occurred while sending your enquiry."
	msgFailed     = "Failed to send enquiry: "
)

var (
	ErrSubmitting = errors.New("page: submission already in progress")
	ErrIncomplete = errors.New("page: form is incomplete")

	// ErrNetwork marks a submission that never got a server response.
	ErrNetwork = errors.New("page: enquiry request failed")
)

// ToastKind selects the toast style.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

// Toast is a transient notification.
type Toast struct {
	ShownAt time.Time
	Kind    ToastKind
	Title   string
	Message string
}

// State is the page state of one visitor.
type State struct {
	Toast      *Toast
	Modal      *content.Clip
	Form       enquiry.Enquiry
	Hero       Hero
	Slider     Slider
	Submitting bool
}

// New returns the state of a freshly loaded page with clips background
// videos.
func New(clips int) *State {
	return &State{Hero: Hero{Clips: clips}}
}

// CanSubmit reports whether the submit button is enabled.
func (s *State) CanSubmit() bool {
	return !s.Submitting && s.Form.Complete()
}

// BeginSubmit starts a submission. It refuses while one is in flight and
// shows the incomplete-form toast when the form is not Complete. Length caps
// are checked by the server.
func (s *State) BeginSubmit(now time.Time) error {
	if s.Submitting {
		return ErrSubmitting
	}
	if !s.Form.Complete() {
		s.ShowToast(now, ToastError, TitleError, MsgIncomplete)
		return ErrIncomplete
	}
	s.Submitting = true
	return nil
}

// FinishSubmit ends the submission with the server outcome. Success clears
// the form; failures keep it for another try.
func (s *State) FinishSubmit(now time.Time, err error) {
	s.Submitting = false
	switch {
	case err == nil:
		s.Form = enquiry.Enquiry{}
		s.ShowToast(now, ToastSuccess, TitleSent, MsgSent)
	case errors.Is(err, ErrNetwork):
		s.ShowToast(now, ToastError, TitleError, MsgNetwork)
	case validator.IsValidationError(err):
		s.ShowToast(now, ToastError, TitleError, MsgIncomplete)
	default:
		s.ShowToast(now, ToastError, TitleError, msgFailed+Reason(err))
	}
}

// Reason is the visitor-facing text of a failed submission.
func Reason(err error) string {
	if de := enquiry.AsDeliveryError(err); de != nil {
		return de.Message()
	}
	if ce := enquiry.AsConfigError(err); ce != nil {
		return ce.Message
	}
	return err.Error()
}

// ShowToast replaces any visible toast.
func (s *State) ShowToast(now time.Time, kind ToastKind, title, message string) {
	s.Toast = &Toast{Kind: kind, Title: title, Message: message, ShownAt: now}
}

// DismissToast hides the toast.
func (s *State) DismissToast() {
	s.Toast = nil
}

// Expire hides the toast once ToastDuration has passed.
func (s *State) Expire(now time.Time) {
	if s.Toast != nil && now.Sub(s.Toast.ShownAt) >= ToastDuration {
		s.Toast = nil
	}
}

// ToastVisible reports whether a toast is shown at now.
func (s *State) ToastVisible(now time.Time) bool {
	return s.Toast != nil && now.Sub(s.Toast.ShownAt) < ToastDuration
}

// Open shows clip in the modal player and pauses the hero video.
func (s *State) Open(clip content.Clip) {
	s.Modal = &clip
	s.Hero.Paused = true
}

// Close hides the modal and resumes the hero video.
func (s *State) Close() {
	s.Modal = nil
	s.Hero.Paused = false
}
