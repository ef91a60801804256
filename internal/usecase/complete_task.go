package usecase

import (
	"context"
	"time"

	"github.com/trackctl/track/internal/domain"
)

// CompleteTaskInput contains the parameters for completing a task.
type CompleteTaskInput struct {
	TaskID *int // Explicit task ID; nil targets the running task
}

// CompleteTaskOutput contains the result of completing a task.
type CompleteTaskOutput struct {
	Task domain.Task // Detached copy of the completed task
	Now  time.Time   // Command instant, for display
}

// CompleteTask is the use case for marking a task complete, stopping
// its running interval first if it has one.
type CompleteTask struct {
	store domain.SnapshotStore
	clock domain.Clock
}

// NewCompleteTask creates a new CompleteTask use case.
func NewCompleteTask(store domain.SnapshotStore, clock domain.Clock) *CompleteTask {
	return &CompleteTask{store: store, clock: clock}
}

// Execute completes the task and persists the snapshot.
func (uc *CompleteTask) Execute(_ context.Context, in CompleteTaskInput) (*CompleteTaskOutput, error) {
	m, err := loadManager(uc.store, uc.clock)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	task, err := m.CompleteTask(in.TaskID, now, uc.clock.TodayLabel())
	if err != nil {
		return nil, err
	}

	if err := commit(uc.store, m); err != nil {
		return nil, err
	}
	return &CompleteTaskOutput{Task: task, Now: now}, nil
}
