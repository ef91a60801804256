package domain

import (
	"fmt"
	"time"
)

// startedAtFormat renders a start instant in local time, e.g.
// "January 2 3:04:05 PM 2006".
const startedAtFormat = "January 2 3:04:05 PM 2006"

// FormatDuration renders a duration as "Xh, Ym, Zs".
func FormatDuration(d time.Duration) string {
	secs := int64(d / time.Second)
	return fmt.Sprintf("%dh, %dm, %ds", secs/3600, (secs/60)%60, secs%60)
}

// StartedDisplay returns the local start time of a running task, or
// "STOPPED".
func (t *Task) StartedDisplay() string {
	if t.StartedAt == nil {
		return "STOPPED"
	}
	return time.Unix(*t.StartedAt, 0).Local().Format(startedAtFormat)
}

// TrackedDisplay returns the accumulated-plus-live duration of the
// task, or "NONE" when it has never run.
func (t *Task) TrackedDisplay(now time.Time) string {
	if !t.HasTracked() {
		return "NONE"
	}
	return FormatDuration(t.TrackedTotal(now))
}

// StatusDisplay returns a short human-readable task state.
func (t *Task) StatusDisplay() string {
	switch {
	case t.Running():
		return "RUNNING"
	case t.Completed:
		return "COMPLETE"
	default:
		return "STOPPED"
	}
}
