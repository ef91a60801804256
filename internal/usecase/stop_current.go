package usecase

import (
	"context"
	"time"

	"github.com/trackctl/track/internal/domain"
)

// StopCurrentOutput contains the result of stopping the running task.
type StopCurrentOutput struct {
	Task domain.Task // Detached copy of the stopped task
	Now  time.Time   // Command instant, for display
}

// StopCurrent is the use case for stopping the current group's running
// task.
type StopCurrent struct {
	store domain.SnapshotStore
	clock domain.Clock
}

// NewStopCurrent creates a new StopCurrent use case.
func NewStopCurrent(store domain.SnapshotStore, clock domain.Clock) *StopCurrent {
	return &StopCurrent{store: store, clock: clock}
}

// Execute stops the running task and persists the snapshot.
func (uc *StopCurrent) Execute(_ context.Context) (*StopCurrentOutput, error) {
	m, err := loadManager(uc.store, uc.clock)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	task, err := m.StopCurrent(now, uc.clock.TodayLabel())
	if err != nil {
		return nil, err
	}

	if err := commit(uc.store, m); err != nil {
		return nil, err
	}
	return &StopCurrentOutput{Task: task, Now: now}, nil
}
