// Package metrics exposes Prometheus counters for tracker operations.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "progress_tracker"

// ═══════════════════════════════════════════════════════════════════════════════
// METRICS
// ═══════════════════════════════════════════════════════════════════════════════

// Metrics holds the tracker's collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	studentsAdded     prometheus.Counter
	pointsUpdates     prometheus.Counter
	notificationsSent prometheus.Counter
	commands          *prometheus.CounterVec
	commandErrors     *prometheus.CounterVec
}

// New registers the tracker collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		studentsAdded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "students_added_total",
			Help:      "Total students successfully added",
		}),
		pointsUpdates: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_updates_total",
			Help:      "Total accepted points submissions",
		}),
		notificationsSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_sent_total",
			Help:      "Total course completion notifications produced",
		}),
		// Labels: command (add students, add points, list, ...)
		commands: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Total top-level commands executed",
		}, []string{"command"}),
		// Labels: command, kind (validation, not_found, internal)
		commandErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "command_errors_total",
			Help:      "Total rejected or failed operations",
		}, []string{"command", "kind"}),
	}
}

// StudentAdded counts one added student.
func (m *Metrics) StudentAdded() {
	if m == nil {
		return
	}
	m.studentsAdded.Inc()
}

// PointsUpdated counts one accepted points line.
func (m *Metrics) PointsUpdated() {
	if m == nil {
		return
	}
	m.pointsUpdates.Inc()
}

// NotificationsSent counts n produced notifications.
func (m *Metrics) NotificationsSent(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.notificationsSent.Add(float64(n))
}

// CommandExecuted counts one top-level command.
func (m *Metrics) CommandExecuted(command string) {
	if m == nil {
		return
	}
	m.commands.WithLabelValues(command).Inc()
}

// CommandFailed counts one rejected or failed operation.
func (m *Metrics) CommandFailed(command, kind string) {
	if m == nil {
		return
	}
	m.commandErrors.WithLabelValues(command, kind).Inc()
}

// Registry returns the registry backing these metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ═══════════════════════════════════════════════════════════════════════════════
// HTTP EXPOSITION
// ═══════════════════════════════════════════════════════════════════════════════

// Handler returns the /metrics handler for the private registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Serve exposes /metrics, and /healthz when health is not nil, on addr
// until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string, health *HealthChecker, logger *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	if health != nil {
		mux.Handle("/healthz", health.Handler())
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("metrics server started", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
