// Package metrics exports locomotion events as Prometheus metrics.
package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/younwookim/locomotion/internal/domain/entity"
)

const namespace = "locomotion"

// Recorder counts movement events. It implements system.Observer.
type Recorder struct {
	transitions *prometheus.CounterVec
	cancelled   prometheus.Counter
	clamped     prometheus.Counter
	paused      prometheus.Gauge
}

// NewRecorder creates the collectors and registers them with reg
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "state_transitions_total",
			Help:      "Movement state changes by source and target state.",
		}, []string{"from", "to"}),
		cancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "floating_cancelled_total",
			Help:      "Floating sessions ended by a ceiling contact.",
		}),
		clamped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "velocity_clamped_total",
			Help:      "Ticks where the body speed was capped at maxVelocity.",
		}),
		paused: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "paused",
			Help:      "1 while movement is paused.",
		}),
	}

	for _, c := range []prometheus.Collector{r.transitions, r.cancelled, r.clamped, r.paused} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Transition implements system.Observer
func (r *Recorder) Transition(from, to entity.ActorState) {
	r.transitions.WithLabelValues(from.String(), to.String()).Inc()
}

// FloatingCancelled implements system.Observer
func (r *Recorder) FloatingCancelled() {
	r.cancelled.Inc()
}

// VelocityClamped implements system.Observer
func (r *Recorder) VelocityClamped() {
	r.clamped.Inc()
}

// Paused implements system.Observer
func (r *Recorder) Paused(paused bool) {
	if paused {
		r.paused.Set(1)
		return
	}
	r.paused.Set(0)
}

// Serve exposes /metrics for g on addr until ctx is done
func Serve(ctx context.Context, addr string, g prometheus.Gatherer, log *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("metrics listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
