package playback

import (
	"io"
	"log/slog"
	"time"
)

// DefaultDelay is the delay between automatic advances.
const DefaultDelay = 500 * time.Millisecond

// TransitionHook observes every state change.
type TransitionHook func(from, to State)

type config struct {
	delay  time.Duration
	sched  Scheduler
	logger *slog.Logger
	hooks  []TransitionHook
}

func defaultConfig() config {
	return config{
		delay:  DefaultDelay,
		sched:  realScheduler{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option configures a Controller.
type Option func(*config)

// WithSpeed sets the initial delay between automatic advances.
// Panics if d ≤ 0.
func WithSpeed(d time.Duration) Option {
	if d <= 0 {
		panic("playback: WithSpeed requires a positive delay")
	}

	return func(c *config) { c.delay = d }
}

// WithScheduler replaces the time.AfterFunc scheduler. Panics on nil.
func WithScheduler(s Scheduler) Option {
	if s == nil {
		panic("playback: WithScheduler(nil)")
	}

	return func(c *config) { c.sched = s }
}

// WithLogger sets the logger; transitions are logged at Debug.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTransitionHook registers fn to be called, outside the lock, after
// every state change. Hooks are called in registration order.
func WithTransitionHook(fn TransitionHook) Option {
	if fn == nil {
		panic("playback: WithTransitionHook(nil)")
	}

	return func(c *config) { c.hooks = append(c.hooks, fn) }
}
