package playback

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

var (
	// ErrEmptyTrace is returned by Initialize for a trace without steps.
	ErrEmptyTrace = errors.New("playback: trace is empty")

	// ErrIllegalState is returned by transport operations invoked before
	// Initialize.
	ErrIllegalState = errors.New("playback: no trace loaded")

	// ErrBadSpeed is returned by SetSpeed for a non-positive delay.
	ErrBadSpeed = errors.New("playback: delay must be positive")
)

// State is the controller state.
type State int

const (
	// Idle: no trace loaded.
	Idle State = iota
	// Paused: trace loaded, no automatic advancement.
	Paused
	// Playing: a tick is pending.
	Playing
	// Completed: automatic playback reached the last step.
	Completed
)

var stateNames = [...]string{"idle", "paused", "playing", "completed"}

var _ redact.SafeValue = State(0)

// SafeValue implements redact.SafeValue; state names never carry user data.
func (State) SafeValue() {}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}

	return stateNames[s]
}

// Status is a read-only view of the controller.
type Status struct {
	Cursor int
	Len    int
	State  State
	// Delay between automatic advances; the inverse of speed.
	Delay time.Duration
}

// Playing reports whether automatic advancement is active.
func (s Status) Playing() bool { return s.State == Playing }

// Complete reports whether the cursor sits on the terminal step.
func (s Status) Complete() bool { return s.Len > 0 && s.Cursor == s.Len-1 }

// Timer is a pending tick.
type Timer interface {
	// Stop prevents the tick from firing; it reports false if the tick
	// already fired or was stopped.
	Stop() bool
}

// Scheduler runs f once after d on its own goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// realScheduler is the time.AfterFunc scheduler.
type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }
