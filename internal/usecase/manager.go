// Package usecase contains application use cases. Every mutating use
// case performs one snapshot load, one manager operation, and one save;
// an operation error leaves the persisted snapshot untouched.
package usecase

import (
	"fmt"

	"github.com/trackctl/track/internal/domain"
)

// loadManager loads the snapshot and guarantees the default (today)
// group exists, persisting immediately when it had to be created. This
// is the init step every command runs before its own operation.
func loadManager(store domain.SnapshotStore, clock domain.Clock) (*domain.Manager, error) {
	m, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if m.EnsureDefaultGroup(clock.TodayLabel()) {
		if err := store.Save(m); err != nil {
			return nil, fmt.Errorf("save snapshot: %w", err)
		}
	}
	return m, nil
}

// commit persists the mutated snapshot.
func commit(store domain.SnapshotStore, m *domain.Manager) error {
	if err := store.Save(m); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
