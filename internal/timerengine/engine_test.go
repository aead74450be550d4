package timerengine

import "testing"

func tick(e *Engine, n int) {
	for range n {
		e.Tick()
	}
}

func TestStopwatch_CommitRoundTrip(t *testing.T) {
	e := New(Stopwatch)
	e.Start()
	if e.State() != Running {
		t.Fatalf("state = %v, want Running", e.State())
	}

	tick(e, 125)
	if e.Elapsed() != 125 {
		t.Fatalf("Elapsed = %d, want 125", e.Elapsed())
	}

	res, ok := e.Stop()
	if !ok {
		t.Fatal("expected a commit candidate for a 125s session")
	}
	if res.Seconds != 125 {
		t.Errorf("Seconds = %d, want 125", res.Seconds)
	}
	if res.Minutes != 2.08 {
		t.Errorf("Minutes = %v, want 2.08", res.Minutes)
	}
	if res.XP != 2 {
		t.Errorf("XP = %d, want 2", res.XP)
	}
	if e.State() != Idle {
		t.Errorf("state after stop = %v, want Idle", e.State())
	}
}

func TestStopwatch_UnderFloorDiscarded(t *testing.T) {
	e := New(Stopwatch)
	e.Start()
	tick(e, 45)
	if _, ok := e.Stop(); ok {
		t.Error("sessions under the commit floor must be discarded")
	}
}

func TestPause_SuspendsTick(t *testing.T) {
	e := New(Stopwatch)
	e.Start()
	tick(e, 10)
	e.Pause()
	if e.State() != Paused {
		t.Fatalf("state = %v, want Paused", e.State())
	}

	tick(e, 100)
	if e.Elapsed() != 10 {
		t.Errorf("Elapsed = %d, ticks while paused must be ignored", e.Elapsed())
	}

	e.Start()
	tick(e, 5)
	if e.Elapsed() != 15 {
		t.Errorf("Elapsed = %d, want 15 after resume", e.Elapsed())
	}
}

func TestCountdown_CompletesAtZero(t *testing.T) {
	e := New(Countdown)
	e.SetDuration(2) // 120s
	e.Start()

	for i := range 119 {
		if done := e.Tick(); done {
			t.Fatalf("completed early at tick %d", i+1)
		}
	}
	if !e.Tick() {
		t.Fatal("expected completion on the final tick")
	}
	if e.State() != Idle {
		t.Errorf("state = %v, want Idle after completion", e.State())
	}
	if !e.Completed() {
		t.Error("Completed flag not set")
	}

	res, ok := e.Stop()
	if !ok {
		t.Fatal("expected a commit candidate for a completed countdown")
	}
	if res.Seconds != 120 {
		t.Errorf("Seconds = %d, want full duration 120", res.Seconds)
	}
	if res.Minutes != 2.0 {
		t.Errorf("Minutes = %v, want 2.0", res.Minutes)
	}
}

func TestCountdown_PartialElapsed(t *testing.T) {
	e := New(Countdown)
	e.SetDuration(5)
	e.Start()
	tick(e, 90)

	if e.Elapsed() != 90 {
		t.Fatalf("Elapsed = %d, want duration minus remaining = 90", e.Elapsed())
	}
	res, ok := e.Stop()
	if !ok || res.Seconds != 90 {
		t.Errorf("Stop = (%+v, %v), want 90s commit", res, ok)
	}
}

func TestCountdown_StartRearmsAfterCompletion(t *testing.T) {
	e := New(Countdown)
	e.SetDuration(1)
	e.Start()
	tick(e, 60)
	e.Stop()

	e.Start()
	tick(e, 1)
	if e.Elapsed() != 1 {
		t.Errorf("Elapsed = %d after re-arm, want 1", e.Elapsed())
	}
}

func TestSetMode_OnlyWhileIdle(t *testing.T) {
	e := New(Stopwatch)
	e.Start()
	e.SetMode(Countdown)
	if e.Mode() != Stopwatch {
		t.Error("SetMode must be ignored while running")
	}

	e.Stop()
	e.SetMode(Countdown)
	if e.Mode() != Countdown {
		t.Error("SetMode ignored while idle")
	}
}

func TestStop_IdleIsNoOp(t *testing.T) {
	e := New(Stopwatch)
	if _, ok := e.Stop(); ok {
		t.Error("Stop on an idle engine must not produce a commit")
	}
}

func TestDisplay(t *testing.T) {
	e := New(Countdown)
	e.SetDuration(90)
	if got := e.Display(); got != "1:30:00" {
		t.Errorf("Display = %q, want 1:30:00", got)
	}

	s := New(Stopwatch)
	s.Start()
	tick(s, 65)
	if got := s.Display(); got != "01:05" {
		t.Errorf("Display = %q, want 01:05", got)
	}
}
