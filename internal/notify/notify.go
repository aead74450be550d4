// Package notify sends best-effort desktop notifications. Failures are
// reported to the caller as a notice, never as a crash: many terminals
// run where no notification daemon exists.
package notify

import (
	"github.com/gen2brain/beeep"
)

// Send shows a desktop notification with the app icon. The returned
// error is informational; callers render it as a dismissible notice.
func Send(title, body string) error {
	return beeep.Notify(title, body, "")
}

// Beep plays the system alert sound.
func Beep() error {
	return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
}
