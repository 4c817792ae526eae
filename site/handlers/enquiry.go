package handlers

import (
	"context"
	"net/http"

	previz "github.com/previz/site"
	"github.com/previz/site/middlewares"
	"github.com/previz/site/pkg/htmx"
	"github.com/previz/site/pkg/metrics"
	"github.com/previz/site/site/content"
	"github.com/previz/site/site/enquiry"
	"github.com/previz/site/site/page"
	"github.com/previz/site/site/views"
)

// Metric endpoint labels.
const (
	endpointAPI  = "api"
	endpointForm = "form"
)

// Paths of the enquiry endpoints.
const (
	PathAPI     = "/api/send-email"
	PathContact = "/contact"
)

// Submitter relays an enquiry. *enquiry.Service implements it.
type Submitter interface {
	Submit(ctx context.Context, e enquiry.Enquiry) error
}

// Enquiry serves the JSON relay endpoint and the HTML contact form.
type Enquiry struct {
	service       Submitter
	content       *content.Content
	metrics       *metrics.Metrics
	ratePerMinute int
}

// EnquiryOption configures the Enquiry handler.
type EnquiryOption func(*Enquiry)

// WithMetrics counts enquiries by endpoint and outcome.
func WithMetrics(m *metrics.Metrics) EnquiryOption {
	return func(h *Enquiry) {
		h.metrics = m
	}
}

// WithRateLimit caps submissions per client IP across both endpoints.
// Zero disables the limit.
func WithRateLimit(perMinute int) EnquiryOption {
	return func(h *Enquiry) {
		h.ratePerMinute = perMinute
	}
}

// NewEnquiry creates the enquiry handler.
func NewEnquiry(svc Submitter, c *content.Content, opts ...EnquiryOption) *Enquiry {
	h := &Enquiry{service: svc, content: c}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes implements previz.Handler.
func (h *Enquiry) Routes(r previz.Router) {
	limit := middlewares.RateLimit(h.ratePerMinute,
		middlewares.WithRateLimitMessage("Too many enquiries. Please try again in a minute."),
		middlewares.WithRateLimitOnReject(func(c previz.Context) {
			h.metrics.IncEnquiry(endpointOf(c), metrics.OutcomeThrottled)
		}),
	)

	r.POST(PathAPI, h.send, limit)
	r.POST(PathContact, h.contact, limit)
}

// send is the JSON relay: 200 {ok:true}, 422 on invalid input, 500 with the
// provider or configuration message otherwise.
func (h *Enquiry) send(c previz.Context) error {
	var in enquiry.Enquiry
	errs, err := c.BindJSON(&in)
	if err != nil {
		h.metrics.IncEnquiry(endpointAPI, metrics.OutcomeInvalid)
		return err
	}

	if errs.IsEmpty() {
		err = h.service.Submit(c, in)
	} else {
		err = in.Validate()
	}
	h.metrics.IncEnquiry(endpointAPI, enquiry.Outcome(err))
	if err != nil {
		return err
	}

	c.LogInfo("enquiry accepted", "endpoint", endpointAPI)
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// contact handles the HTML form. htmx requests get the form fragment plus
// an out-of-band toast; plain posts are redirected on success and get the
// full page with the toast otherwise.
func (h *Enquiry) contact(c previz.Context) error {
	var in enquiry.Enquiry
	if _, err := c.Bind(&in); err != nil {
		h.metrics.IncEnquiry(endpointForm, metrics.OutcomeInvalid)
		return err
	}

	t := now()
	st := page.New(len(h.content.Clips))
	st.Form = in

	var err error
	if err = st.BeginSubmit(t); err != nil {
		err = in.Validate()
	} else {
		err = h.service.Submit(c, in)
		st.FinishSubmit(t, err)
	}
	h.metrics.IncEnquiry(endpointForm, enquiry.Outcome(err))

	code := http.StatusOK
	if err != nil {
		code = toHTTPError(err).Code
		c.LogWarn("enquiry not sent", "endpoint", endpointForm, "error", err)
	}

	data := views.PageData{
		Now:     t,
		Content: h.content,
		State:   st,
		Fields:  enquiry.FieldMessages(err),
	}

	if c.IsHTMX() {
		return c.Render(code, views.ContactForm(data), htmx.WithOOB(views.Toast(data)))
	}
	if err == nil {
		return c.Redirect(http.StatusSeeOther, "/?enquiry=sent#contact")
	}
	return c.Render(code, views.Page(data))
}

func endpointOf(c previz.Context) string {
	if c.Request().URL.Path == PathContact {
		return endpointForm
	}
	return endpointAPI
}
