package playback

import (
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"

	"github.com/katalvlaran/algotrace/trace"
)

// Event describes one observable change.
type Event[S any] struct {
	From, To State
	Cursor   int
	Step     trace.Step[S]
}

// Controller is the playback state machine over a *trace.Trace[S].
// It is safe for concurrent use.
type Controller[S any] struct {
	cfg config

	mu     sync.Mutex
	tr     *trace.Trace[S]
	cursor int
	state  State
	delay  time.Duration
	gen    uint64
	timer  Timer
	seq    uint64 // numbers captured events

	nextSub   int
	observers map[int]func(Event[S])

	// Delivery queue, guarded by emitMu. Events leave it in seq order and
	// one goroutine at a time drains it.
	emitMu   sync.Mutex
	queue    []pending[S]
	queued   uint64
	draining bool
}

// NewController returns an Idle controller.
func NewController[S any](opts ...Option) *Controller[S] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Controller[S]{
		cfg:       cfg,
		delay:     cfg.delay,
		observers: make(map[int]func(Event[S])),
	}
}

// Initialize replaces the trace, cancels any pending tick and moves to
// Paused at cursor 0. An empty or malformed trace is rejected and the
// controller is left untouched.
func (c *Controller[S]) Initialize(t *trace.Trace[S]) error {
	if err := t.Validate(); err != nil {
		if errors.Is(err, trace.ErrEmptyTrace) {
			return ErrEmptyTrace
		}

		return errors.Wrap(err, "playback: initialize")
	}

	c.mu.Lock()
	from := c.state
	c.stopLocked()
	c.tr = t
	c.cursor = 0
	c.state = Paused
	ev := c.eventLocked(from)
	c.mu.Unlock()

	c.emit(ev)

	return nil
}

// Play starts automatic advancement. It is a no-op when already playing
// or when the cursor is on the last step.
func (c *Controller[S]) Play() error {
	c.mu.Lock()
	if err := c.loadedLocked("play"); err != nil {
		c.mu.Unlock()

		return err
	}
	if c.state == Playing || c.cursor == c.tr.Len()-1 {
		c.mu.Unlock()

		return nil
	}
	from := c.state
	c.state = Playing
	c.scheduleLocked()
	ev := c.eventLocked(from)
	c.mu.Unlock()

	c.emit(ev)

	return nil
}

// Pause halts automatic advancement and keeps the cursor.
func (c *Controller[S]) Pause() error {
	c.mu.Lock()
	if err := c.loadedLocked("pause"); err != nil {
		c.mu.Unlock()

		return err
	}
	if c.state != Playing {
		c.mu.Unlock()

		return nil
	}
	c.stopLocked()
	c.state = Paused
	ev := c.eventLocked(Playing)
	c.mu.Unlock()

	c.emit(ev)

	return nil
}

// StepForward moves the cursor one step forward, pausing playback.
// At the last step it is a no-op.
func (c *Controller[S]) StepForward() error {
	return c.move("step forward", func(cur int) int { return cur + 1 })
}

// StepBackward moves the cursor one step back, pausing playback.
// At step 0 it is a no-op.
func (c *Controller[S]) StepBackward() error {
	return c.move("step backward", func(cur int) int { return cur - 1 })
}

// Seek jumps to index, clamped to [0, Len-1], pausing playback.
func (c *Controller[S]) Seek(index int) error {
	return c.move("seek", func(int) int { return index })
}

// Reset returns the cursor to 0 without discarding the trace.
func (c *Controller[S]) Reset() error {
	return c.move("reset", func(int) int { return 0 })
}

// move applies a manual cursor edit. Manual edits cancel playback and leave
// the controller Paused; a no-op edit on a non-playing controller changes
// nothing and emits nothing.
func (c *Controller[S]) move(op string, to func(cur int) int) error {
	c.mu.Lock()
	if err := c.loadedLocked(op); err != nil {
		c.mu.Unlock()

		return err
	}
	next := min(max(to(c.cursor), 0), c.tr.Len()-1)
	from := c.state
	if next == c.cursor && from != Playing {
		c.mu.Unlock()

		return nil
	}
	c.stopLocked()
	c.cursor = next
	c.state = Paused
	ev := c.eventLocked(from)
	c.mu.Unlock()

	c.emit(ev)

	return nil
}

// SetSpeed sets the delay used for ticks scheduled from now on; a pending
// tick keeps its delay.
//
// Unlike the transport operations, SetSpeed is accepted while Idle: it only
// stores the delay that playback will use once a trace is loaded.
func (c *Controller[S]) SetSpeed(d time.Duration) error {
	if d <= 0 {
		return errors.Wrapf(ErrBadSpeed, "got %s", d)
	}
	c.mu.Lock()
	c.delay = d
	c.mu.Unlock()
	c.cfg.logger.Debug("playback speed changed", "delay", d)

	return nil
}

// Status returns a snapshot of the controller.
func (c *Controller[S]) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.statusLocked()
}

// Current returns the step under the cursor.
func (c *Controller[S]) Current() (trace.Step[S], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.loadedLocked("current"); err != nil {
		return trace.Step[S]{}, err
	}

	return c.tr.At(c.cursor), nil
}

// Trace returns the loaded trace, nil when Idle.
func (c *Controller[S]) Trace() *trace.Trace[S] {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.tr
}

// Subscribe registers fn for every subsequent Event and returns a function
// that unregisters it.
func (c *Controller[S]) Subscribe(fn func(Event[S])) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.observers[id] = fn
	c.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.observers, id)
			c.mu.Unlock()
		})
	}
}

// Close cancels any pending tick. A playing controller ends up Paused.
func (c *Controller[S]) Close() error {
	if c.Status().State == Playing {
		return c.Pause()
	}
	c.mu.Lock()
	c.stopLocked()
	c.mu.Unlock()

	return nil
}

// tick advances one step if it still belongs to the current generation.
func (c *Controller[S]) tick(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || c.state != Playing {
		c.mu.Unlock()
		c.cfg.logger.Debug("playback stale tick dropped", "gen", gen)

		return
	}
	c.timer = nil
	c.cursor++
	if c.cursor >= c.tr.Len()-1 {
		c.cursor = c.tr.Len() - 1
		c.gen++
		c.state = Completed
	} else {
		c.scheduleLocked()
	}
	ev := c.eventLocked(Playing)
	c.mu.Unlock()

	c.emit(ev)
}

func (c *Controller[S]) scheduleLocked() {
	gen := c.gen
	c.timer = c.cfg.sched.AfterFunc(c.delay, func() { c.tick(gen) })
}

// stopLocked invalidates any scheduled tick.
func (c *Controller[S]) stopLocked() {
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller[S]) loadedLocked(op string) error {
	if c.tr == nil {
		return errors.Wrapf(ErrIllegalState, "%s", redact.SafeString(op))
	}

	return nil
}

func (c *Controller[S]) statusLocked() Status {
	return Status{Cursor: c.cursor, Len: c.tr.Len(), State: c.state, Delay: c.delay}
}

// pending is an event captured under the lock, delivered after unlock.
type pending[S any] struct {
	seq       uint64
	ev        Event[S]
	observers []func(Event[S])
}

func (c *Controller[S]) eventLocked(from State) pending[S] {
	c.seq++
	p := pending[S]{seq: c.seq, ev: Event[S]{From: from, To: c.state, Cursor: c.cursor, Step: c.tr.At(c.cursor)}}
	for id := 0; id < c.nextSub; id++ {
		if fn, ok := c.observers[id]; ok {
			p.observers = append(p.observers, fn)
		}
	}

	return p
}

// emit queues p for delivery. An event captured before one that is already
// queued is stale and dropped, so the last event an observer sees always
// matches the controller. The goroutine that finds the queue idle delivers
// everything queued meanwhile; an observer that calls back into the
// controller gets its event delivered after it returns.
func (c *Controller[S]) emit(p pending[S]) {
	c.emitMu.Lock()
	if p.seq <= c.queued {
		c.emitMu.Unlock()
		c.cfg.logger.Debug("playback superseded event dropped", "seq", p.seq, "cursor", p.ev.Cursor)

		return
	}
	c.queued = p.seq
	c.queue = append(c.queue, p)
	if c.draining {
		c.emitMu.Unlock()

		return
	}
	c.draining = true
	for len(c.queue) > 0 {
		next := c.queue[0]
		c.queue = c.queue[1:]
		c.emitMu.Unlock()
		c.deliver(next)
		c.emitMu.Lock()
	}
	c.draining = false
	c.emitMu.Unlock()
}

func (c *Controller[S]) deliver(p pending[S]) {
	ev := p.ev
	if ev.From != ev.To {
		c.cfg.logger.Debug("playback transition",
			"from", ev.From.String(), "to", ev.To.String(), "cursor", ev.Cursor)
		for _, h := range c.cfg.hooks {
			h(ev.From, ev.To)
		}
	}
	for _, fn := range p.observers {
		fn(ev)
	}
}
