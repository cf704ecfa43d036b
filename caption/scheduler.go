package caption

import (
	"sync"
	"time"
)

// frame is one rendered caption block waiting to be emitted.
type frame struct {
	lines []string
	final bool
}

// scheduler throttles non-final frames to one per interval with a trailing
// edge, so the latest pending content is emitted once the interval elapses.
// Final frames are emitted at once and discard any pending trailing frame.
type scheduler struct {
	mu       sync.Mutex
	interval time.Duration
	emit     func(frame)
	lastEmit time.Time
	timer    *time.Timer
	gen      uint64
	stopped  bool
}

func newScheduler(interval time.Duration, emit func(frame)) *scheduler {
	return &scheduler{interval: interval, emit: emit}
}

func (s *scheduler) submit(f frame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}

	now := time.Now()
	s.cancelLocked()

	elapsed := now.Sub(s.lastEmit)
	if f.final || s.lastEmit.IsZero() || elapsed >= s.interval {
		s.fireLocked(f, now)
		return
	}

	gen := s.gen
	s.timer = time.AfterFunc(s.interval-elapsed, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.stopped || s.gen != gen {
			return
		}
		s.timer = nil
		s.fireLocked(f, time.Now())
	})
}

// pending reports whether a trailing frame is scheduled.
func (s *scheduler) pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

// stop cancels the trailing frame; later submits are ignored.
func (s *scheduler) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	s.cancelLocked()
}

// cancelLocked also bumps the generation so a timer that already fired but
// has not taken the lock yet stays silent.
func (s *scheduler) cancelLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
}

func (s *scheduler) fireLocked(f frame, at time.Time) {
	s.lastEmit = at
	s.emit(f)
}
