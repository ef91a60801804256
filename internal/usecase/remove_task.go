package usecase

import (
	"context"
	"time"

	"github.com/trackctl/track/internal/domain"
)

// RemoveTaskInput contains the parameters for removing a task.
type RemoveTaskInput struct {
	TaskID int // Task ID within the current group
}

// RemoveTaskOutput contains the result of removing a task.
type RemoveTaskOutput struct {
	Task domain.Task // Detached copy of the removed task
	Now  time.Time   // Command instant, for display
}

// RemoveTask is the use case for removing a task from the current group.
type RemoveTask struct {
	store domain.SnapshotStore
	clock domain.Clock
}

// NewRemoveTask creates a new RemoveTask use case.
func NewRemoveTask(store domain.SnapshotStore, clock domain.Clock) *RemoveTask {
	return &RemoveTask{store: store, clock: clock}
}

// Execute removes the task and persists the snapshot.
func (uc *RemoveTask) Execute(_ context.Context, in RemoveTaskInput) (*RemoveTaskOutput, error) {
	m, err := loadManager(uc.store, uc.clock)
	if err != nil {
		return nil, err
	}

	task, err := m.RemoveTask(in.TaskID, uc.clock.TodayLabel())
	if err != nil {
		return nil, err
	}

	if err := commit(uc.store, m); err != nil {
		return nil, err
	}
	return &RemoveTaskOutput{Task: task, Now: uc.clock.Now()}, nil
}
