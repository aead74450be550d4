package app

import (
	"sync"

	"github.com/ritankar/lakshya/internal/persist"
	"github.com/ritankar/lakshya/internal/profile"
	"github.com/ritankar/lakshya/internal/sessiongate"
)

// writeWatcher routes live-profile changes into a per-account debounce
// scheduler. Changes observed while no user is signed in (the gate
// resets the live store to defaults on sign-out) are dropped rather
// than written over the previous account's document.
type writeWatcher struct {
	mu     sync.Mutex
	writer persist.Writer
	gate   *sessiongate.Gate
	sched  *persist.Scheduler
	acct   string
}

func newWriteWatcher(writer persist.Writer, gate *sessiongate.Gate) *writeWatcher {
	return &writeWatcher{writer: writer, gate: gate}
}

func (w *writeWatcher) onProfile(p profile.Profile) {
	u := w.gate.User()

	w.mu.Lock()
	defer w.mu.Unlock()

	if u == nil {
		w.retire()
		return
	}
	if w.sched == nil || w.acct != u.ID {
		w.retire()
		w.sched = persist.NewScheduler(w.writer, u.ID)
		w.acct = u.ID
	}
	w.sched.Schedule(p)
}

// retire flushes and drops the current scheduler. Caller holds mu.
func (w *writeWatcher) retire() {
	if w.sched != nil {
		w.sched.Close()
		w.sched = nil
		w.acct = ""
	}
}

// Close flushes any pending write on shutdown.
func (w *writeWatcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.retire()
}
