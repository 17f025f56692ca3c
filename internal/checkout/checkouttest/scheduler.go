// Package checkouttest provides a deterministic scheduler for driving the
// checkout timers from tests.
package checkouttest

import (
	"sync"
	"time"

	"BOAT_CHECKOUT_BACK-END/internal/checkout"
)

type timer struct {
	at        time.Duration
	seq       int
	f         func()
	cancelled bool
}

// Scheduler fires callbacks only when Advance moves its clock past them
type Scheduler struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*timer
}

// NewScheduler returns a scheduler at time zero
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// AfterFunc implements checkout.Scheduler
func (s *Scheduler) AfterFunc(d time.Duration, f func()) checkout.Cancel {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	t := &timer{at: s.now + d, seq: s.seq, f: f}
	s.timers = append(s.timers, t)

	return func() {
		s.mu.Lock()
		t.cancelled = true
		s.mu.Unlock()
	}
}

// Advance moves the clock forward by d, running due callbacks in order
func (s *Scheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	for {
		next := s.nextDueLocked(target)
		if next == nil {
			break
		}
		s.now = next.at
		s.mu.Unlock()
		next.f()
		s.mu.Lock()
	}
	s.now = target
	s.mu.Unlock()
}

// Pending returns the number of callbacks that have neither run nor been cancelled
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

func (s *Scheduler) nextDueLocked(target time.Duration) *timer {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	s.timers = live

	idx := -1
	for i, t := range s.timers {
		if t.at > target {
			continue
		}
		if idx == -1 || t.at < s.timers[idx].at || (t.at == s.timers[idx].at && t.seq < s.timers[idx].seq) {
			idx = i
		}
	}
	if idx == -1 {
		return nil
	}
	t := s.timers[idx]
	s.timers = append(s.timers[:idx], s.timers[idx+1:]...)
	return t
}
