package persist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ritankar/lakshya/internal/profile"
)

type fakeTimer struct {
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

// manualClock hands out fakeTimers and lets the test fire the most
// recently armed one.
type manualClock struct {
	timers []*fakeTimer
}

func (c *manualClock) factory(_ time.Duration, fn func()) Timer {
	t := &fakeTimer{fn: fn}
	c.timers = append(c.timers, t)
	return t
}

func (c *manualClock) fireLast() {
	if len(c.timers) == 0 {
		return
	}
	last := c.timers[len(c.timers)-1]
	if !last.stopped {
		last.fn()
	}
}

type recordingWriter struct {
	writes []profile.Profile
	err    error
}

func (w *recordingWriter) Put(_ context.Context, _ string, p profile.Profile) error {
	if w.err != nil {
		return w.err
	}
	w.writes = append(w.writes, p)
	return nil
}

func TestSchedule_DebouncesToLatestValue(t *testing.T) {
	clock := &manualClock{}
	writer := &recordingWriter{}
	s := NewScheduler(writer, "acct-1", WithTimerFactory(clock.factory))

	p1 := profile.DefaultProfile()
	p2 := profile.SetDailyGoal(p1, 4)
	p3 := profile.SetDailyGoal(p1, 8)

	s.Schedule(p1)
	s.Schedule(p2)
	s.Schedule(p3)

	// The first two timers must have been cancelled by rescheduling.
	if len(clock.timers) != 3 {
		t.Fatalf("timers armed = %d, want 3", len(clock.timers))
	}
	if !clock.timers[0].stopped || !clock.timers[1].stopped {
		t.Error("earlier timers were not cancelled")
	}

	clock.fireLast()

	if len(writer.writes) != 1 {
		t.Fatalf("writes = %d, want exactly 1", len(writer.writes))
	}
	if got := writer.writes[0].DailyGoal; got != 8 {
		t.Errorf("persisted DailyGoal = %v, want the third value 8", got)
	}
}

func TestFlush_WritesPendingImmediately(t *testing.T) {
	clock := &manualClock{}
	writer := &recordingWriter{}
	s := NewScheduler(writer, "acct-1", WithTimerFactory(clock.factory))

	s.Schedule(profile.SetDailyGoal(profile.DefaultProfile(), 7))
	s.Flush()

	if len(writer.writes) != 1 {
		t.Fatalf("writes = %d, want 1 after Flush", len(writer.writes))
	}
	if writer.writes[0].DailyGoal != 7 {
		t.Errorf("DailyGoal = %v, want 7", writer.writes[0].DailyGoal)
	}

	// Timer fired later must not double-write.
	clock.fireLast()
	if len(writer.writes) != 1 {
		t.Errorf("writes = %d, a flushed timer must not fire again", len(writer.writes))
	}
}

func TestFlush_NoPendingIsNoOp(t *testing.T) {
	writer := &recordingWriter{}
	s := NewScheduler(writer, "acct-1", WithTimerFactory((&manualClock{}).factory))

	s.Flush()
	if len(writer.writes) != 0 {
		t.Errorf("writes = %d, want 0", len(writer.writes))
	}
}

func TestClose_FlushesAndRejectsSchedules(t *testing.T) {
	clock := &manualClock{}
	writer := &recordingWriter{}
	s := NewScheduler(writer, "acct-1", WithTimerFactory(clock.factory))

	s.Schedule(profile.DefaultProfile())
	s.Close()

	if len(writer.writes) != 1 {
		t.Fatalf("writes = %d, want 1 on Close", len(writer.writes))
	}

	s.Schedule(profile.DefaultProfile())
	clock.fireLast()
	if len(writer.writes) != 1 {
		t.Errorf("writes = %d, schedules after Close must be ignored", len(writer.writes))
	}
}

func TestWriteFailure_ReportedNotFatal(t *testing.T) {
	clock := &manualClock{}
	writer := &recordingWriter{err: errors.New("store offline")}

	var reported error
	s := NewScheduler(writer, "acct-1",
		WithTimerFactory(clock.factory),
		WithErrorHandler(func(err error) { reported = err }))

	s.Schedule(profile.DefaultProfile())
	clock.fireLast()

	if reported == nil {
		t.Error("write failure was not reported")
	}
}
