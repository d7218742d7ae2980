package playback

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeScheduler runs callbacks on virtual time advanced by the test
type fakeScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*fakeTimer
}

type fakeTimer struct {
	s       *fakeScheduler
	due     time.Duration
	seq     int
	f       func()
	stopped bool
	fired   bool
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{}
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t := &fakeTimer{s: s, due: s.now + d, seq: s.seq, f: f}
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

// Pending returns the number of timers that have neither fired nor been stopped
func (s *fakeScheduler) Pending() int {
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

// Advance moves virtual time forward by d, firing due callbacks in order.
// Callbacks run without the scheduler lock so they may schedule again.
func (s *fakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		s.mu.Lock()
		var next *fakeTimer
		sort.Slice(s.timers, func(i, j int) bool {
			if s.timers[i].due == s.timers[j].due {
				return s.timers[i].seq < s.timers[j].seq
			}
			return s.timers[i].due < s.timers[j].due
		})
		for _, t := range s.timers {
			if !t.stopped && !t.fired && t.due <= target {
				next = t
				break
			}
		}
		if next == nil {
			s.now = target
			s.mu.Unlock()
			return
		}
		next.fired = true
		s.now = next.due
		s.mu.Unlock()

		next.f()
	}
}

// fireStopped runs every stopped callback, as a runtime timer that already
// started firing would despite Stop.
func (s *fakeScheduler) fireStopped() {
	s.mu.Lock()
	var late []func()
	for _, t := range s.timers {
		if t.stopped && !t.fired {
			t.fired = true
			late = append(late, t.f)
		}
	}
	s.mu.Unlock()

	for _, f := range late {
		f()
	}
}

func TestSystemScheduler_AfterFunc(t *testing.T) {
	fired := make(chan struct{})
	SystemScheduler{}.AfterFunc(time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("callback did not fire")
	}
}

func TestSystemScheduler_Stop(t *testing.T) {
	var mu sync.Mutex
	fired := false
	timer := SystemScheduler{}.AfterFunc(time.Hour, func() {
		mu.Lock()
		fired = true
		mu.Unlock()
	})

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	mu.Lock()
	defer mu.Unlock()
	assert.False(t, fired)
}
