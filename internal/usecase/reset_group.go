package usecase

import (
	"context"

	"github.com/trackctl/track/internal/domain"
)

// ResetGroupOutput contains the group in effect after the reset.
type ResetGroupOutput struct {
	Group domain.Group // Detached copy of the default (today) group
}

// ResetGroup is the use case for clearing the explicit group selection.
type ResetGroup struct {
	store domain.SnapshotStore
	clock domain.Clock
}

// NewResetGroup creates a new ResetGroup use case.
func NewResetGroup(store domain.SnapshotStore, clock domain.Clock) *ResetGroup {
	return &ResetGroup{store: store, clock: clock}
}

// Execute clears the selection and persists the snapshot.
func (uc *ResetGroup) Execute(_ context.Context) (*ResetGroupOutput, error) {
	m, err := loadManager(uc.store, uc.clock)
	if err != nil {
		return nil, err
	}

	m.ResetGroup()
	group, err := m.ResolvedGroup(uc.clock.TodayLabel())
	if err != nil {
		return nil, err
	}

	if err := commit(uc.store, m); err != nil {
		return nil, err
	}
	return &ResetGroupOutput{Group: group}, nil
}
