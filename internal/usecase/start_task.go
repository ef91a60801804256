package usecase

import (
	"context"
	"time"

	"github.com/trackctl/track/internal/domain"
)

// StartTaskInput contains the parameters for starting a task.
type StartTaskInput struct {
	TaskID int // Task ID within the current group
}

// StartTaskOutput contains the result of starting a task.
type StartTaskOutput struct {
	Task domain.Task // Detached copy of the started task
	Now  time.Time   // Command instant, for display
}

// StartTask is the use case for starting a task's tracking interval.
// Whatever task was running in the group is stopped first.
type StartTask struct {
	store domain.SnapshotStore
	clock domain.Clock
}

// NewStartTask creates a new StartTask use case.
func NewStartTask(store domain.SnapshotStore, clock domain.Clock) *StartTask {
	return &StartTask{store: store, clock: clock}
}

// Execute starts the task and persists the snapshot. The command
// instant is sampled once and used for both the implicit stop and the
// start.
func (uc *StartTask) Execute(_ context.Context, in StartTaskInput) (*StartTaskOutput, error) {
	m, err := loadManager(uc.store, uc.clock)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	task, err := m.StartTask(in.TaskID, now, uc.clock.TodayLabel())
	if err != nil {
		return nil, err
	}

	if err := commit(uc.store, m); err != nil {
		return nil, err
	}
	return &StartTaskOutput{Task: task, Now: now}, nil
}
