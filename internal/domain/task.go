// Package domain contains the core time-tracking entities and interfaces.
package domain

import "time"

// Task represents an individual unit of work whose time is tracked.
// StartedAt and Tracked are unix-second values; nil means not running /
// never tracked. The JSON field names are the persisted snapshot format
// and must not change.
type Task struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	StartedAt *int64 `json:"started_at"`
	Tracked   *int64 `json:"tracked"`
	Completed bool   `json:"is_complete"`
}

// NewTask creates a stopped, not-complete task.
func NewTask(id int, name string) *Task {
	return &Task{
		ID:   id,
		Name: name,
	}
}

// Running returns true if the task has an open interval.
func (t *Task) Running() bool {
	return t.StartedAt != nil
}

// Start opens a tracking interval at now and clears completion.
//
// Starting an already-running task resets the interval: the partial
// elapsed time is discarded, not folded into Tracked. This mirrors the
// historical behavior and is asserted by tests.
func (t *Task) Start(now time.Time) {
	ts := now.Unix()
	t.StartedAt = &ts
	t.Completed = false
}

// Stop closes the open interval, if any, folding its elapsed seconds
// into Tracked. Stopping a task that is not running leaves Tracked
// untouched. Elapsed time is not clamped; a clock that moved backwards
// between Start and Stop produces a negative contribution.
func (t *Task) Stop(now time.Time) {
	if t.StartedAt != nil {
		total := now.Unix() - *t.StartedAt
		if t.Tracked != nil {
			total += *t.Tracked
		}
		t.Tracked = &total
	}
	t.StartedAt = nil
}

// Complete stops the task and marks it complete. A later Start reopens it.
func (t *Task) Complete(now time.Time) {
	t.Stop(now)
	t.Completed = true
}

// TrackedTotal returns the accumulated duration plus the live interval
// when the task is running. It is recomputed on every call.
func (t *Task) TrackedTotal(now time.Time) time.Duration {
	var secs int64
	if t.Tracked != nil {
		secs = *t.Tracked
	}
	if t.StartedAt != nil {
		secs += now.Unix() - *t.StartedAt
	}
	return time.Duration(secs) * time.Second
}

// HasTracked returns true if the task has ever accumulated time or is
// currently running.
func (t *Task) HasTracked() bool {
	return t.Tracked != nil || t.StartedAt != nil
}

// Snapshot returns a detached copy of the task. Mutating the copy (or
// the values behind its pointer fields) does not affect the stored task.
func (t *Task) Snapshot() Task {
	cp := *t
	if t.StartedAt != nil {
		v := *t.StartedAt
		cp.StartedAt = &v
	}
	if t.Tracked != nil {
		v := *t.Tracked
		cp.Tracked = &v
	}
	return cp
}
