// Package persist defers profile writes behind a trailing debounce:
// every change re-arms a quiet-period timer, so rapid interaction (a
// running timer, checkbox sprees) produces one write per quiet window
// while the last state is always eventually persisted.
package persist

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/ritankar/lakshya/internal/profile"
)

// DefaultQuietPeriod is the debounce delay between the last change and
// the write.
const DefaultQuietPeriod = 1500 * time.Millisecond

// Writer persists a whole profile document keyed by account id.
type Writer interface {
	Put(ctx context.Context, accountID string, p profile.Profile) error
}

// Timer is the cancellable handle armed per schedule.
type Timer interface {
	Stop() bool
}

// TimerFactory arms a timer that calls fn after d. Production uses
// time.AfterFunc; tests inject a manual trigger.
type TimerFactory func(d time.Duration, fn func()) Timer

func realTimer(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// Scheduler owns the pending write state for one signed-in account.
type Scheduler struct {
	mu        sync.Mutex
	writer    Writer
	accountID string
	quiet     time.Duration
	newTimer  TimerFactory
	timer     Timer
	pending   *profile.Profile
	closed    bool
	onError   func(error)
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithQuietPeriod overrides the debounce delay.
func WithQuietPeriod(d time.Duration) Option {
	return func(s *Scheduler) { s.quiet = d }
}

// WithTimerFactory injects the timer implementation.
func WithTimerFactory(f TimerFactory) Option {
	return func(s *Scheduler) { s.newTimer = f }
}

// WithErrorHandler replaces the default stderr warning on write failure.
func WithErrorHandler(fn func(error)) Option {
	return func(s *Scheduler) { s.onError = fn }
}

// NewScheduler creates a Scheduler writing documents for accountID.
func NewScheduler(writer Writer, accountID string, opts ...Option) *Scheduler {
	s := &Scheduler{
		writer:    writer,
		accountID: accountID,
		quiet:     DefaultQuietPeriod,
		newTimer:  realTimer,
		onError: func(err error) {
			fmt.Fprintf(os.Stderr, "warning: profile write failed: %v\n", err)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Schedule records p as the value to persist and re-arms the quiet
// timer, cancelling any write still pending.
func (s *Scheduler) Schedule(p profile.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.pending = &p
	s.timer = s.newTimer(s.quiet, s.fire)
}

func (s *Scheduler) fire() {
	s.mu.Lock()
	p := s.pending
	s.pending = nil
	s.timer = nil
	s.mu.Unlock()

	if p == nil {
		return
	}
	if err := s.writer.Put(context.Background(), s.accountID, *p); err != nil {
		s.onError(err)
	}
}

// Flush writes any pending value immediately and disarms the timer.
func (s *Scheduler) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.fire()
}

// Close flushes pending state and stops accepting schedules.
func (s *Scheduler) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.Flush()
}
