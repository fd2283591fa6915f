// Package metrics exposes Prometheus counters for the scoreboard server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder holds the server's metric instruments. A nil Recorder is safe to
// call, so wiring stays optional in tests.
type Recorder struct {
	registry *prometheus.Registry

	gamesCreated        *prometheus.CounterVec
	intentsApplied      *prometheus.CounterVec
	clockTicks          prometheus.Counter
	persistenceFailures *prometheus.CounterVec
}

// NewRecorder registers the instruments on a private registry.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	r := &Recorder{
		registry: registry,
		gamesCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scorekeeper_games_created_total",
			Help: "Games created, by kind.",
		}, []string{"kind"}),
		intentsApplied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scorekeeper_intents_applied_total",
			Help: "State machine intents applied, by intent name.",
		}, []string{"intent"}),
		clockTicks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scorekeeper_clock_ticks_total",
			Help: "Scoreboard clock ticks dispatched.",
		}),
		persistenceFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scorekeeper_persistence_failures_total",
			Help: "Fire-and-forget persistence failures, by store.",
		}, []string{"store"}),
	}
	registry.MustRegister(r.gamesCreated, r.intentsApplied, r.clockTicks, r.persistenceFailures)
	return r
}

// Handler serves the /metrics endpoint.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// GameCreated counts a new game of the given kind ("sports", "yahtzee").
func (r *Recorder) GameCreated(kind string) {
	if r == nil {
		return
	}
	r.gamesCreated.WithLabelValues(kind).Inc()
}

// IntentApplied counts one committed state transition.
func (r *Recorder) IntentApplied(intent string) {
	if r == nil {
		return
	}
	r.intentsApplied.WithLabelValues(intent).Inc()
}

// ClockTick counts one dispatched clock tick.
func (r *Recorder) ClockTick() {
	if r == nil {
		return
	}
	r.clockTicks.Inc()
}

// PersistenceFailure counts a failed background write to the named store.
func (r *Recorder) PersistenceFailure(store string) {
	if r == nil {
		return
	}
	r.persistenceFailures.WithLabelValues(store).Inc()
}
