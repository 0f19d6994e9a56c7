// Package metrics exposes Prometheus collectors for language resolution and
// the HTTP surface.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/iso639/internal/domain"
)

const namespace = "iso639"

// Resolution outcomes.
const (
	OutcomeResolved   = "resolved"
	OutcomeDeprecated = "deprecated"
	OutcomeInvalid    = "invalid"
)

// Metrics holds every collector of the service. All methods are safe for
// concurrent use.
type Metrics struct {
	resolutions    *prometheus.CounterVec
	datasetRecords prometheus.Gauge
	datasetInfo    *prometheus.GaugeVec
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolutions_total",
			Help:      "Language value resolutions by outcome and matched field.",
		}, []string{"outcome", "field"}),
		datasetRecords: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dataset",
			Name:      "records",
			Help:      "Number of language records in the loaded dataset.",
		}),
		datasetInfo: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dataset",
			Name:      "info",
			Help:      "Loaded dataset version and source; always 1.",
		}, []string{"version", "source"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route pattern and status code.",
		}, []string{"route", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		}, []string{"route"}),
	}
}

// Resolved implements the registry observer.
func (m *Metrics) Resolved(f domain.Field) {
	m.resolutions.WithLabelValues(OutcomeResolved, string(f)).Inc()
}

// Deprecated implements the registry observer.
func (m *Metrics) Deprecated() {
	m.resolutions.WithLabelValues(OutcomeDeprecated, "").Inc()
}

// Invalid implements the registry observer.
func (m *Metrics) Invalid() {
	m.resolutions.WithLabelValues(OutcomeInvalid, "").Inc()
}

// DatasetLoaded records the dataset the service is serving.
func (m *Metrics) DatasetLoaded(version, source string, records int) {
	m.datasetInfo.Reset()
	m.datasetInfo.WithLabelValues(version, source).Set(1)
	m.datasetRecords.Set(float64(records))
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}
