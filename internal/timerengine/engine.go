// Package timerengine implements the stopwatch/countdown state machine
// behind the timer screen. The engine owns no clock: the caller feeds
// it one-second ticks while running, which keeps every transition
// deterministic under test.
package timerengine

import (
	"fmt"

	"github.com/ritankar/lakshya/internal/profile"
)

// State is the engine lifecycle state.
type State int

const (
	Idle State = iota
	Running
	Paused
)

// Mode selects counting direction.
type Mode int

const (
	Stopwatch Mode = iota
	Countdown
)

// CommitFloorSeconds is the minimum elapsed time worth committing.
// Sessions at or below the floor are discarded without a prompt.
const CommitFloorSeconds = 60

// Result is the outcome of a stopped session.
type Result struct {
	Seconds int
	Minutes float64
	XP      int
}

// Engine is the timer state machine.
type Engine struct {
	mode      Mode
	state     State
	elapsed   int // stopwatch: seconds counted up
	remaining int // countdown: seconds left
	duration  int // countdown: configured length in seconds
	completed bool
}

// New creates an idle engine in the given mode.
func New(mode Mode) *Engine {
	return &Engine{mode: mode}
}

func (e *Engine) State() State { return e.state }
func (e *Engine) Mode() Mode   { return e.mode }

// Completed reports whether the last countdown ran to zero.
func (e *Engine) Completed() bool { return e.completed }

// SetMode switches counting direction. Only valid while idle.
func (e *Engine) SetMode(mode Mode) {
	if e.state != Idle {
		return
	}
	e.mode = mode
	e.elapsed = 0
	e.remaining = e.duration
	e.completed = false
}

// SetDuration configures the countdown length in minutes. Only valid
// while idle.
func (e *Engine) SetDuration(minutes int) {
	if e.state != Idle || minutes <= 0 {
		return
	}
	e.duration = minutes * 60
	e.remaining = e.duration
}

// Start begins or resumes counting. A countdown that already ran to
// zero is re-armed to the configured duration first.
func (e *Engine) Start() {
	if e.state == Running {
		return
	}
	if e.state == Idle {
		e.completed = false
		if e.mode == Countdown && e.remaining == 0 {
			e.remaining = e.duration
		}
		if e.mode == Stopwatch {
			e.elapsed = 0
		}
	}
	e.state = Running
}

// Pause suspends the tick without losing progress.
func (e *Engine) Pause() {
	if e.state == Running {
		e.state = Paused
	}
}

// Tick advances the engine by one second. In countdown mode, reaching
// zero transitions to Idle and reports completion.
func (e *Engine) Tick() (completed bool) {
	if e.state != Running {
		return false
	}

	switch e.mode {
	case Stopwatch:
		e.elapsed++
	case Countdown:
		if e.remaining > 0 {
			e.remaining--
		}
		if e.remaining == 0 {
			e.state = Idle
			e.completed = true
			return true
		}
	}
	return false
}

// Elapsed returns the seconds of study represented by the current run.
func (e *Engine) Elapsed() int {
	if e.mode == Countdown {
		return e.duration - e.remaining
	}
	return e.elapsed
}

// Stop ends the current run and returns the commit candidate. ok is
// false when there is nothing running or the elapsed time is under the
// commit floor, in which case the run is simply discarded.
func (e *Engine) Stop() (Result, bool) {
	if e.state == Idle && !e.completed {
		return Result{}, false
	}

	seconds := e.Elapsed()
	e.state = Idle
	e.elapsed = 0
	e.remaining = e.duration
	e.completed = false

	if seconds <= CommitFloorSeconds {
		return Result{}, false
	}

	minutes := profile.SessionMinutes(seconds)
	return Result{
		Seconds: seconds,
		Minutes: minutes,
		XP:      int(minutes),
	}, true
}

// Display formats the live clock value: remaining time for countdowns,
// elapsed time for stopwatches.
func (e *Engine) Display() string {
	secs := e.elapsed
	if e.mode == Countdown {
		secs = e.remaining
	}
	if secs >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", secs/3600, secs%3600/60, secs%60)
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
