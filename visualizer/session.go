package visualizer

import (
	"io"
	"log/slog"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algotrace/metrics"
	"github.com/katalvlaran/algotrace/playback"
	"github.com/katalvlaran/algotrace/trace"
)

type config struct {
	logger   *slog.Logger
	metrics  *metrics.Collector
	playback []playback.Option
}

// Option configures a Session.
type Option func(*config)

// WithLogger sets the session logger; it is also handed to the controller.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics records generated traces, rejected inputs and playback
// transitions on m.
func WithMetrics(m *metrics.Collector) Option {
	return func(c *config) { c.metrics = m }
}

// WithPlaybackOptions passes options through to the controller.
func WithPlaybackOptions(opts ...playback.Option) Option {
	return func(c *config) { c.playback = append(c.playback, opts...) }
}

// Session owns one playback controller and the kind of the loaded trace.
type Session[S any] struct {
	cfg  config
	ctrl *playback.Controller[S]

	mu     sync.Mutex
	kind   Kind
	loaded bool
}

// NewSession returns a session with an Idle controller.
func NewSession[S any](opts ...Option) *Session[S] {
	cfg := config{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&cfg)
	}
	popts := []playback.Option{playback.WithLogger(cfg.logger)}
	if cfg.metrics != nil {
		popts = append(popts, playback.WithTransitionHook(cfg.metrics.TransitionHook()))
	}
	popts = append(popts, cfg.playback...)

	return &Session[S]{cfg: cfg, ctrl: playback.NewController[S](popts...)}
}

// Run generates the job's trace and loads it into the controller. On any
// generator error the controller is left untouched and the error is
// returned unchanged; invalid input is logged at Warn.
func (s *Session[S]) Run(job Job[S]) error {
	if job.Generate == nil {
		return errors.AssertionFailedf("visualizer: job %s has no generator", job.Kind)
	}
	name := job.Kind.String()
	tr, err := job.Generate()
	if err != nil {
		if trace.IsInvalidInput(err) {
			s.cfg.metrics.ObserveInvalid(name)
			s.cfg.logger.Warn("input rejected", "kind", name, "err", err)
		}

		return err
	}
	if err := s.ctrl.Initialize(tr); err != nil {
		return errors.Wrapf(err, "visualizer: load %s trace", name)
	}

	s.mu.Lock()
	s.kind, s.loaded = job.Kind, true
	s.mu.Unlock()
	s.cfg.metrics.ObserveTrace(name, tr.Len())
	s.cfg.logger.Debug("trace loaded", "kind", name, "steps", tr.Len())

	return nil
}

// Kind returns the kind of the loaded trace; ok is false before the first
// successful Run.
func (s *Session[S]) Kind() (k Kind, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.kind, s.loaded
}

// Controller exposes the transport operations.
func (s *Session[S]) Controller() *playback.Controller[S] { return s.ctrl }

// Close cancels any pending playback tick.
func (s *Session[S]) Close() error { return s.ctrl.Close() }
