// Package metrics exposes Prometheus collectors for credential flows and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"blogauth/config"
	"blogauth/internal/errors"
)

const namespace = "blogauth"

// Result labels.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultPartial = "partial"
)

// Metrics owns every collector of the service. A nil *Metrics records nothing.
type Metrics struct {
	gatherer prometheus.Gatherer

	loginTotal            *prometheus.CounterVec
	credentialChangeTotal *prometheus.CounterVec
	mirrorSyncTotal       *prometheus.CounterVec
	mirrorSyncAttempts    prometheus.Histogram
	reconcileRepaired     prometheus.Counter
	httpRequestsTotal     *prometheus.CounterVec
	httpRequestDuration   *prometheus.HistogramVec
}

// Params defines the parameters required for the metrics registry
type Params struct {
	fx.In

	Config *config.Config
}

// New registers the collectors on a dedicated registry when metrics are enabled.
func New(params Params) (*Metrics, error) {
	if !params.Config.Metrics.Enabled {
		return nil, nil
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return NewWithRegistry(registry, registry)
}

// NewWithRegistry registers the collectors on reg and serves them from gatherer.
func NewWithRegistry(reg prometheus.Registerer, gatherer prometheus.Gatherer) (*Metrics, error) {
	m := &Metrics{
		gatherer: gatherer,
		loginTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_total",
			Help:      "Login attempts by result",
		}, []string{"result"}),
		credentialChangeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "credential_change_total",
			Help:      "Password changes and resets by operation and result",
		}, []string{"op", "result"}),
		mirrorSyncTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mirror_sync_total",
			Help:      "Mirror store writes by result",
		}, []string{"result"}),
		mirrorSyncAttempts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "mirror_sync_attempts",
			Help:      "Attempts needed per mirror write",
			Buckets:   []float64{1, 2, 3, 5, 8},
		}),
		reconcileRepaired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mirror_reconcile_repaired_total",
			Help:      "Mirror rows rewritten by the reconciler",
		}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	for _, collector := range []prometheus.Collector{
		m.loginTotal,
		m.credentialChangeTotal,
		m.mirrorSyncTotal,
		m.mirrorSyncAttempts,
		m.reconcileRepaired,
		m.httpRequestsTotal,
		m.httpRequestDuration,
	} {
		if err := reg.Register(collector); err != nil {
			return nil, errors.Wrap(err, "register collector")
		}
	}

	return m, nil
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}

	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// RecordLogin counts one login attempt.
func (m *Metrics) RecordLogin(result string) {
	if m == nil {
		return
	}
	m.loginTotal.WithLabelValues(result).Inc()
}

// RecordCredentialChange counts one change-password or reset-password outcome.
func (m *Metrics) RecordCredentialChange(op, result string) {
	if m == nil {
		return
	}
	m.credentialChangeTotal.WithLabelValues(op, result).Inc()
}

// RecordMirrorSync counts one mirror write and the attempts it took.
func (m *Metrics) RecordMirrorSync(result string, attempts int) {
	if m == nil {
		return
	}
	m.mirrorSyncTotal.WithLabelValues(result).Inc()
	m.mirrorSyncAttempts.Observe(float64(attempts))
}

// RecordReconcileRepaired adds rows repaired by one reconcile pass.
func (m *Metrics) RecordReconcileRepaired(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.reconcileRepaired.Add(float64(n))
}

// RecordHTTPRequest observes one finished request. route is the registered path template.
func (m *Metrics) RecordHTTPRequest(method, route string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(seconds)
}
