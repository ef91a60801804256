package usecase

import (
	"context"

	"github.com/trackctl/track/internal/domain"
)

// AddGroupInput contains the parameters for creating a group.
type AddGroupInput struct {
	Name   string // Group name (required, unique among active groups)
	Select bool   // Also make the new group current
}

// AddGroupOutput contains the result of creating a group.
type AddGroupOutput struct {
	Group domain.Group // Detached copy of the created group
}

// AddGroup is the use case for creating a named group.
type AddGroup struct {
	store domain.SnapshotStore
	clock domain.Clock
}

// NewAddGroup creates a new AddGroup use case.
func NewAddGroup(store domain.SnapshotStore, clock domain.Clock) *AddGroup {
	return &AddGroup{store: store, clock: clock}
}

// Execute creates the group and persists the snapshot.
func (uc *AddGroup) Execute(_ context.Context, in AddGroupInput) (*AddGroupOutput, error) {
	if in.Name == "" {
		return nil, domain.ErrEmptyGroupName
	}

	m, err := loadManager(uc.store, uc.clock)
	if err != nil {
		return nil, err
	}

	group, err := m.AddGroup(in.Name)
	if err != nil {
		return nil, err
	}
	if in.Select {
		if group, err = m.UseGroup(group.ID); err != nil {
			return nil, err
		}
	}

	if err := commit(uc.store, m); err != nil {
		return nil, err
	}
	return &AddGroupOutput{Group: group}, nil
}
