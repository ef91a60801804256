package usecase

import (
	"context"
	"time"

	"github.com/trackctl/track/internal/domain"
)

// ListTasksOutput contains the resolved group and the instant to
// compute live durations against.
type ListTasksOutput struct {
	Group domain.Group // Detached copy of the resolved group
	Now   time.Time    // Command instant, for live tracked totals
}

// ListTasks is the use case for listing the current group's tasks.
type ListTasks struct {
	store domain.SnapshotStore
	clock domain.Clock
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(store domain.SnapshotStore, clock domain.Clock) *ListTasks {
	return &ListTasks{store: store, clock: clock}
}

// Execute resolves the current group. Read-only apart from first-use
// default group creation.
func (uc *ListTasks) Execute(_ context.Context) (*ListTasksOutput, error) {
	m, err := loadManager(uc.store, uc.clock)
	if err != nil {
		return nil, err
	}

	group, err := m.ResolvedGroup(uc.clock.TodayLabel())
	if err != nil {
		return nil, err
	}
	return &ListTasksOutput{Group: group, Now: uc.clock.Now()}, nil
}
