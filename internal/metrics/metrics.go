// Package metrics exposes prometheus collectors for the action bridge.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Outcome labels for action invocations.
const (
	OutcomeOK        = "ok"
	OutcomeInvalid   = "invalid"
	OutcomeNotFound  = "not_found"
	OutcomeInvariant = "invariant"
	OutcomeError     = "error"
)

// Bridge holds the collectors recorded around action dispatch.
type Bridge struct {
	Invocations *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
}

// NewBridge creates and registers the bridge collectors on reg.
func NewBridge(reg prometheus.Registerer) *Bridge {
	b := &Bridge{
		Invocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sojourn_action_invocations_total",
				Help: "Total action dispatches by action name and outcome",
			},
			[]string{"action", "outcome"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "sojourn_action_duration_seconds",
				Help: "Duration of action dispatches",
			},
			[]string{"action"},
		),
	}
	reg.MustRegister(b.Invocations, b.Duration)
	return b
}

// Observe records one dispatch. Nil-safe so the bridge can run unmetered
// in tests.
func (b *Bridge) Observe(action, outcome string, seconds float64) {
	if b == nil {
		return
	}
	b.Invocations.WithLabelValues(action, outcome).Inc()
	b.Duration.WithLabelValues(action).Observe(seconds)
}
