package playback_test

import (
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/algotrace/playback"
	"github.com/katalvlaran/algotrace/trace"
)

// frame is a minimal snapshot: the step number itself.
type frame int

func (f frame) Clone() frame { return f }

// makeTrace returns a valid trace of n frames (n == 0 gives an empty trace).
func makeTrace(n int) *trace.Trace[frame] {
	switch n {
	case 0:
		return trace.FromSteps[frame](nil)
	case 1:
		return trace.FromSteps([]trace.Step[frame]{{Index: 0, Description: "only", Terminal: true}})
	}
	rec := trace.NewRecorder(frame(0), "frame 0")
	for i := 1; i < n-1; i++ {
		rec.Record(frame(i), fmt.Sprintf("frame %d", i))
	}

	return rec.Finish(frame(n-1), fmt.Sprintf("frame %d", n-1))
}

// fakeScheduler hands out timers that fire only when the test says so.
type fakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

type fakeTimer struct {
	s       *fakeScheduler
	d       time.Duration
	f       func()
	stopped bool
	fired   bool
	replay  bool
}

var _ playback.Scheduler = (*fakeScheduler)(nil)

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) playback.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{s: s, d: d, f: f}
	s.timers = append(s.timers, t)

	return t
}

func (t *fakeTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true

	return true
}

// fireNext runs the oldest live timer and returns its delay.
func (s *fakeScheduler) fireNext() (time.Duration, bool) {
	s.mu.Lock()
	var next *fakeTimer
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			next = t
			break
		}
	}
	if next == nil {
		s.mu.Unlock()
		return 0, false
	}
	next.fired = true
	s.mu.Unlock()
	next.f()

	return next.d, true
}

// fireStale runs the callback of the most recently stopped timer, as if it
// had already started when Stop was called.
func (s *fakeScheduler) fireStale() (time.Duration, bool) {
	s.mu.Lock()
	var last *fakeTimer
	for i := len(s.timers) - 1; i >= 0; i-- {
		if t := s.timers[i]; t.stopped && !t.replay {
			last = t
			break
		}
	}
	if last == nil {
		s.mu.Unlock()
		return 0, false
	}
	last.replay = true
	s.mu.Unlock()
	last.f()

	return last.d, true
}

// live counts timers that are neither stopped nor fired.
func (s *fakeScheduler) live() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}

	return n
}
