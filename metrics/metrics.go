// Package metrics exposes Prometheus instrumentation for the relayer and a
// small standalone server to scrape it from, kept off the public listener.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsServer serves the Prometheus scrape endpoint on its own address.
type MetricsServer struct {
	srv *http.Server
}

// New creates a metrics server listening on listenAddr.
func New(listenAddr string) (*MetricsServer, error) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &MetricsServer{
		srv: &http.Server{
			Addr:         listenAddr,
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
	}, nil
}

// ListenAndServe blocks serving the scrape endpoint.
func (m *MetricsServer) ListenAndServe() error {
	return m.srv.ListenAndServe()
}

// Shutdown gracefully stops the metrics server.
func (m *MetricsServer) Shutdown(ctx context.Context) error {
	return m.srv.Shutdown(ctx)
}

// RelayerMetrics holds the relayer's counters.
type RelayerMetrics struct {
	HTTPRequests         *prometheus.CounterVec
	PurchaseOutcomes     *prometheus.CounterVec
	StoreReadRetries     prometheus.Counter
	ItemReadFailures     prometheus.Counter
	NotificationFailures prometheus.Counter
}

// NewRelayerMetrics registers the relayer's counters under the given
// namespace with reg. Pass prometheus.DefaultRegisterer in production; tests
// use a fresh registry so counters never collide between cases.
func NewRelayerMetrics(namespace string, reg prometheus.Registerer) *RelayerMetrics {
	factory := promauto.With(reg)
	return &RelayerMetrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests handled, by route and status code.",
		}, []string{"route", "status"}),
		PurchaseOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "purchase_outcomes_total",
			Help:      "Purchase requests by final outcome.",
		}, []string{"outcome"}),
		StoreReadRetries: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_read_retries_total",
			Help:      "Transient store failures that were retried.",
		}),
		ItemReadFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "item_read_failures_total",
			Help:      "Item reads that failed after retries and were substituted with placeholders.",
		}),
		NotificationFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_failures_total",
			Help:      "Best-effort purchase notifications that failed.",
		}),
	}
}
