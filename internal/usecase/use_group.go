package usecase

import (
	"context"

	"github.com/trackctl/track/internal/domain"
)

// UseGroupInput contains the parameters for selecting a group.
type UseGroupInput struct {
	GroupID int // Group to select
}

// UseGroupOutput contains the result of selecting a group.
type UseGroupOutput struct {
	Group domain.Group // Detached copy of the selected group
}

// UseGroup is the use case for pinning commands to a specific group.
type UseGroup struct {
	store domain.SnapshotStore
	clock domain.Clock
}

// NewUseGroup creates a new UseGroup use case.
func NewUseGroup(store domain.SnapshotStore, clock domain.Clock) *UseGroup {
	return &UseGroup{store: store, clock: clock}
}

// Execute selects the group and persists the snapshot.
func (uc *UseGroup) Execute(_ context.Context, in UseGroupInput) (*UseGroupOutput, error) {
	m, err := loadManager(uc.store, uc.clock)
	if err != nil {
		return nil, err
	}

	group, err := m.UseGroup(in.GroupID)
	if err != nil {
		return nil, err
	}

	if err := commit(uc.store, m); err != nil {
		return nil, err
	}
	return &UseGroupOutput{Group: group}, nil
}
