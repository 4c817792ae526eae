// Package metrics holds the Prometheus collectors of the site.
//
// Collectors are registered on the Registerer passed to New so tests can use
// a throwaway prometheus.NewRegistry.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "previz"

// Enquiry outcomes.
const (
	OutcomeAccepted      = "accepted"
	OutcomeInvalid       = "invalid"
	OutcomeConfigError   = "config_error"
	OutcomeProviderError = "provider_error"
	OutcomeThrottled     = "throttled"
)

// Metrics groups the collectors.
type Metrics struct {
	gatherer prometheus.Gatherer

	enquiries        *prometheus.CounterVec
	mailSends        *prometheus.CounterVec
	mailSendDuration *prometheus.HistogramVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// New registers the collectors on reg. When reg is also a Gatherer (as
// *prometheus.Registry is) Handler serves it, otherwise the default gatherer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		enquiries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "enquiry",
			Name:      "submissions_total",
			Help:      "Enquiry submissions by endpoint and outcome",
		}, []string{"endpoint", "outcome"}),
		mailSends: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "mail",
			Name:      "sends_total",
			Help:      "Mail send attempts by provider and result",
		}, []string{"provider", "result"}),
		mailSendDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "mail",
			Name:      "send_duration_seconds",
			Help:      "Duration of a single mail send attempt",
			Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30},
		}, []string{"provider"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(m.enquiries, m.mailSends, m.mailSendDuration, m.httpRequests, m.httpDuration)

	if g, ok := reg.(prometheus.Gatherer); ok {
		m.gatherer = g
	} else {
		m.gatherer = prometheus.DefaultGatherer
	}
	return m
}

// NewRegistry returns a registry preloaded with the Go and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// IncEnquiry counts one enquiry submission.
func (m *Metrics) IncEnquiry(endpoint, outcome string) {
	if m == nil {
		return
	}
	m.enquiries.WithLabelValues(orUnknown(endpoint), orUnknown(outcome)).Inc()
}

// ObserveMailSend records one send attempt.
func (m *Metrics) ObserveMailSend(provider string, err error, d time.Duration) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	provider = orUnknown(provider)
	m.mailSends.WithLabelValues(provider, result).Inc()
	m.mailSendDuration.WithLabelValues(provider).Observe(d.Seconds())
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route, status string, d time.Duration) {
	if m == nil {
		return
	}
	route = orUnknown(route)
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
