// Package metrics exposes Prometheus collectors for trace generation and
// playback. A nil *Collector is valid and records nothing.
package metrics

import (
	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/algotrace/playback"
)

const namespace = "algotrace"

// Collector groups the algotrace metrics.
type Collector struct {
	generated   *prometheus.CounterVec
	steps       *prometheus.HistogramVec
	invalid     *prometheus.CounterVec
	transitions *prometheus.CounterVec
}

// New creates the collectors and registers them on reg. A nil reg leaves
// them unregistered.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "traces_generated_total",
			Help:      "Traces generated, by algorithm.",
		}, []string{"algorithm"}),
		steps: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "trace_steps",
			Help:      "Number of steps per generated trace.",
			Buckets:   prometheus.ExponentialBuckets(4, 2, 10),
		}, []string{"algorithm"}),
		invalid: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalid_inputs_total",
			Help:      "Inputs rejected before any step was recorded, by algorithm.",
		}, []string{"algorithm"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "playback_transitions_total",
			Help:      "Playback controller state transitions.",
		}, []string{"from", "to"}),
	}
	if reg == nil {
		return c, nil
	}
	for _, col := range []prometheus.Collector{c.generated, c.steps, c.invalid, c.transitions} {
		if err := reg.Register(col); err != nil {
			return nil, errors.Wrap(err, "metrics: register")
		}
	}

	return c, nil
}

// ObserveTrace records a generated trace of n steps.
func (c *Collector) ObserveTrace(algorithm string, n int) {
	if c == nil {
		return
	}
	c.generated.WithLabelValues(algorithm).Inc()
	c.steps.WithLabelValues(algorithm).Observe(float64(n))
}

// ObserveInvalid records a rejected input.
func (c *Collector) ObserveInvalid(algorithm string) {
	if c == nil {
		return
	}
	c.invalid.WithLabelValues(algorithm).Inc()
}

// Transition records one playback state change.
func (c *Collector) Transition(from, to playback.State) {
	if c == nil {
		return
	}
	c.transitions.WithLabelValues(from.String(), to.String()).Inc()
}

// TransitionHook returns a playback.TransitionHook feeding c.
func (c *Collector) TransitionHook() playback.TransitionHook {
	return c.Transition
}
