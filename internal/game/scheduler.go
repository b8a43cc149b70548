package game

import (
	"sort"
	"time"
)

// Scheduler is a cooperative queue of deferred callbacks on virtual time.
// The owning loop advances it by frame deltas; callbacks run synchronously
// inside Advance, never on another goroutine.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	queue []scheduled
}

type scheduled struct {
	due time.Duration
	seq uint64
	fn  func()
}

// NewScheduler creates an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler's virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After queues fn to run once delay has elapsed. Callbacks with the same due
// time run in the order they were queued.
func (s *Scheduler) After(delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	task := scheduled{due: s.now + delay, seq: s.seq, fn: fn}

	i := sort.Search(len(s.queue), func(i int) bool { return s.queue[i].due > task.due })
	s.queue = append(s.queue, scheduled{})
	copy(s.queue[i+1:], s.queue[i:])
	s.queue[i] = task
}

// Advance moves time forward by dt and runs every callback that is due,
// including ones queued by callbacks during this call. Returns how many ran.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}
	ran := 0
	for len(s.queue) > 0 && s.queue[0].due <= s.now {
		task := s.queue[0]
		s.queue = s.queue[1:]
		task.fn()
		ran++
	}
	return ran
}

// Pending returns the number of queued callbacks.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// Clear drops every queued callback.
func (s *Scheduler) Clear() {
	s.queue = nil
}
