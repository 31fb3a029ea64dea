// Package observability bundles the Prometheus metrics for the query engine
// and provides helpers to wire them into HTTP handlers.
package observability

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// EngineCollector holds the engine-side Prometheus metrics: how many
// requests each operation has served and how long they took.
type EngineCollector struct {
	gatherer prometheus.Gatherer

	Requests  *prometheus.CounterVec
	Durations *prometheus.HistogramVec
}

// NewEngineCollector registers the engine metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
// Re-registration of an identical collector is tolerated so tests can
// construct the stack repeatedly.
func NewEngineCollector(reg prometheus.Registerer) (*EngineCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "spot_engine_requests_total",
		Help: "Total number of handled engine requests, labeled by operation type.",
	}, []string{"op"})
	requests, err := registerCounterVec(reg, requests)
	if err != nil {
		return nil, err
	}

	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "spot_engine_request_duration_seconds",
		Help:    "Engine request latency in seconds, labeled by operation type.",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"op"})
	durations, err = registerHistogramVec(reg, durations)
	if err != nil {
		return nil, err
	}

	return &EngineCollector{
		gatherer:  gatherer,
		Requests:  requests,
		Durations: durations,
	}, nil
}

// Observe records one completed operation. Safe to call on a nil collector,
// so the worker can run without metrics in tests.
func (c *EngineCollector) Observe(op string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.Requests.WithLabelValues(op).Inc()
	c.Durations.WithLabelValues(op).Observe(elapsed.Seconds())
}

// Handler returns the HTTP handler serving the collector's metrics.
func (c *EngineCollector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, cv *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(cv); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return cv, nil
}

func registerHistogramVec(reg prometheus.Registerer, hv *prometheus.HistogramVec) (*prometheus.HistogramVec, error) {
	if err := reg.Register(hv); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return hv, nil
}
