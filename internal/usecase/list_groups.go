package usecase

import (
	"context"

	"github.com/trackctl/track/internal/domain"
)

// ListGroupsOutput contains all groups and the resolved current one.
type ListGroupsOutput struct {
	Groups    []domain.Group // Detached copies, insertion order
	CurrentID int            // ID of the resolved current group
}

// ListGroups is the use case for listing all groups.
type ListGroups struct {
	store domain.SnapshotStore
	clock domain.Clock
}

// NewListGroups creates a new ListGroups use case.
func NewListGroups(store domain.SnapshotStore, clock domain.Clock) *ListGroups {
	return &ListGroups{store: store, clock: clock}
}

// Execute lists the groups. Read-only apart from first-use default
// group creation.
func (uc *ListGroups) Execute(_ context.Context) (*ListGroupsOutput, error) {
	m, err := loadManager(uc.store, uc.clock)
	if err != nil {
		return nil, err
	}

	current, err := m.ResolvedGroup(uc.clock.TodayLabel())
	if err != nil {
		return nil, err
	}
	return &ListGroupsOutput{Groups: m.GroupSnapshots(), CurrentID: current.ID}, nil
}
