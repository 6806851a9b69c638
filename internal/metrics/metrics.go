// Package metrics holds the Prometheus collectors of the shortening service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "url_shortener"

// Outcomes of a shorten request, used as the "result" label.
const (
	ResultCreated  = "created"
	ResultExisting = "existing"
	ResultRejected = "rejected"
	ResultFailed   = "failed"
)

// Outcomes of a resolve request.
const (
	ResultFound    = "found"
	ResultNotFound = "not_found"
)

type Metrics struct {
	Shortened *prometheus.CounterVec
	Resolved  *prometheus.CounterVec
}

// New registers the collectors on reg. A nil reg leaves them unregistered,
// which is what tests usually want.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Shortened: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shorten_requests_total",
			Help:      "Shorten requests by result.",
		}, []string{"result"}),
		Resolved: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolve_requests_total",
			Help:      "Resolve requests by result.",
		}, []string{"result"}),
	}
}
