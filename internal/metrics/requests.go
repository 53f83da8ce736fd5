// Package metrics exposes Prometheus metrics for the REST calls the console
// makes.
package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"wishlist-console/internal/restapi"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// RequestMetrics records request duration and outcome per operation.
type RequestMetrics struct {
	duration *prometheus.HistogramVec
	requests *prometheus.CounterVec
}

var _ restapi.Observer = (*RequestMetrics)(nil)

// NewRequestMetrics registers the request metrics on the provided registerer.
func NewRequestMetrics(reg prometheus.Registerer) *RequestMetrics {
	if reg == nil {
		return &RequestMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wishlist_console_request_duration_seconds",
		Help:    "Duration of wishlist service requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wishlist_console_requests_total",
		Help: "Wishlist service requests by outcome.",
	}, []string{"op", "outcome"})
	reg.MustRegister(duration, requests)
	return &RequestMetrics{duration: duration, requests: requests}
}

// Outcome classifies a finished request.
func Outcome(rec restapi.Record) string {
	switch {
	case rec.Err == nil:
		return "ok"
	case rec.Status == 0:
		return "transport_error"
	case rec.Status >= 500:
		return "server_error"
	default:
		return "client_error"
	}
}

func (m *RequestMetrics) ObserveRequest(_ context.Context, rec restapi.Record) {
	if m == nil || m.duration == nil {
		return
	}
	op := normalizeLabel(string(rec.Op))
	m.duration.WithLabelValues(op).Observe(rec.Duration.Seconds())
	m.requests.WithLabelValues(op, Outcome(rec)).Inc()
}

func normalizeLabel(op string) string {
	if op == "" {
		return "unknown"
	}
	return op
}

// Serve exposes g on addr at /metrics until ctx is done.
func Serve(ctx context.Context, addr string, g prometheus.Gatherer, logger logrus.FieldLogger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("metrics server stopped")
		}
	}()
	logger.WithField("addr", ln.Addr().String()).Info("serving metrics")
	return nil
}
