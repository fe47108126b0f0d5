// Package metrics exposes runner activity as Prometheus metrics.
//
// Labels are bounded: event kinds, host names and rejection reasons come
// from fixed sets, never from player input.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vovakirdan/tui-runner/internal/runner"
)

var (
	tickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "runner_tick_duration_seconds",
		Help:    "Time spent in a simulation tick",
		Buckets: []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.005},
	})

	renderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "runner_render_duration_seconds",
		Help:    "Time spent rendering a frame",
		Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.033},
	})

	eventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "runner_events_total",
		Help: "Simulation events by kind",
	}, []string{"kind"})

	sessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "runner_sessions_active",
		Help: "Currently open play sessions",
	})

	sessionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "runner_sessions_total",
		Help: "Play sessions opened, by host",
	}, []string{"host"}) // Bounded: "tui", "ssh", "desktop"

	runScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "runner_run_score",
		Help:    "Final score of finished runs",
		Buckets: []float64{0, 5, 10, 25, 50, 100, 250, 500},
	})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "runner_run_duration_seconds",
		Help:    "Play time of finished runs",
		Buckets: []float64{5, 15, 30, 60, 120, 300, 600},
	})

	scoreSaves = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "runner_score_saves_total",
		Help: "Score persistence attempts by result",
	}, []string{"result"}) // Bounded: "ok", "error"

	connectionsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "runner_connections_rejected_total",
		Help: "Connections rejected before a session started",
	}, []string{"reason"}) // Bounded: "rate_limit"
)

// RecordTick records the time one simulation tick took.
func RecordTick(d time.Duration) {
	tickDuration.Observe(d.Seconds())
}

// RecordRender records the time one frame took to render.
func RecordRender(d time.Duration) {
	renderDuration.Observe(d.Seconds())
}

// RecordEvents counts the events emitted by a tick.
func RecordEvents(events []runner.Event) {
	for _, e := range events {
		eventsTotal.WithLabelValues(e.Kind.String()).Inc()
	}
}

// SessionOpened marks a play session as started on the given host.
func SessionOpened(host string) {
	sessionsActive.Inc()
	sessionsTotal.WithLabelValues(host).Inc()
}

// SessionClosed marks a play session as finished.
func SessionClosed() {
	sessionsActive.Dec()
}

// RecordRun records the outcome of a finished run.
func RecordRun(score int, played time.Duration) {
	runScore.Observe(float64(score))
	runDuration.Observe(played.Seconds())
}

// RecordScoreSave counts a score persistence attempt.
func RecordScoreSave(err error) {
	if err != nil {
		scoreSaves.WithLabelValues("error").Inc()
		return
	}
	scoreSaves.WithLabelValues("ok").Inc()
}

// RecordConnectionRejected counts a rejected connection.
// reason must be one of: "rate_limit".
func RecordConnectionRejected(reason string) {
	connectionsRejected.WithLabelValues(reason).Inc()
}
