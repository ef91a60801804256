package usecase

import (
	"context"

	"github.com/trackctl/track/internal/domain"
)

// TomorrowGroupOutput contains the result of creating tomorrow's group.
type TomorrowGroupOutput struct {
	Group domain.Group // Detached copy of the created-and-selected group
}

// TomorrowGroup is the use case for planning ahead: it creates the
// group named for the next calendar day and selects it.
type TomorrowGroup struct {
	store domain.SnapshotStore
	clock domain.Clock
}

// NewTomorrowGroup creates a new TomorrowGroup use case.
func NewTomorrowGroup(store domain.SnapshotStore, clock domain.Clock) *TomorrowGroup {
	return &TomorrowGroup{store: store, clock: clock}
}

// Execute creates and selects tomorrow's group. Running it twice fails
// with ErrDuplicateGroupName; the selection from the first run stands.
func (uc *TomorrowGroup) Execute(ctx context.Context) (*TomorrowGroupOutput, error) {
	add := NewAddGroup(uc.store, uc.clock)
	out, err := add.Execute(ctx, AddGroupInput{
		Name:   uc.clock.TomorrowLabel(),
		Select: true,
	})
	if err != nil {
		return nil, err
	}
	return &TomorrowGroupOutput{Group: out.Group}, nil
}
