package usecase

import (
	"context"
	"time"

	"github.com/trackctl/track/internal/domain"
)

// AddTaskInput contains the parameters for creating a task.
type AddTaskInput struct {
	Name string // Task name (required)
}

// AddTaskOutput contains the result of creating a task.
type AddTaskOutput struct {
	Task      domain.Task // Detached copy of the created task
	GroupName string      // Name of the group it was added to
	Now       time.Time   // Command instant, for display
}

// AddTask is the use case for adding a task to the current group.
type AddTask struct {
	store domain.SnapshotStore
	clock domain.Clock
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(store domain.SnapshotStore, clock domain.Clock) *AddTask {
	return &AddTask{store: store, clock: clock}
}

// Execute adds the task and persists the snapshot.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	if in.Name == "" {
		return nil, domain.ErrEmptyTaskName
	}

	m, err := loadManager(uc.store, uc.clock)
	if err != nil {
		return nil, err
	}

	today := uc.clock.TodayLabel()
	task, err := m.AddTask(in.Name, today)
	if err != nil {
		return nil, err
	}

	group, err := m.ResolvedGroup(today)
	if err != nil {
		return nil, err
	}

	if err := commit(uc.store, m); err != nil {
		return nil, err
	}
	return &AddTaskOutput{Task: task, GroupName: group.Name, Now: uc.clock.Now()}, nil
}
