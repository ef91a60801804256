package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trackctl/track/internal/domain"
)

// ArchiveGroupsInput contains the parameters for archiving groups.
type ArchiveGroupsInput struct {
	GroupIDs []int // Groups to archive, or to keep when Retain is set
	Retain   bool  // Invert the selection: IDs name the survivors
}

// ArchiveGroupsOutput contains the result of archiving groups.
type ArchiveGroupsOutput struct {
	Batch    domain.ArchiveBatch // The batch the groups were written under
	Archived []domain.Group      // Detached copies of the extracted groups
}

// ArchiveGroups is the use case for moving groups out of the active
// snapshot into the archive. After extraction the surviving group IDs
// are renumbered to close the gaps, and only then is the snapshot
// persisted; an archive write failure leaves it untouched.
type ArchiveGroups struct {
	store   domain.SnapshotStore
	archive domain.ArchiveStore
	clock   domain.Clock
}

// NewArchiveGroups creates a new ArchiveGroups use case.
func NewArchiveGroups(store domain.SnapshotStore, archive domain.ArchiveStore, clock domain.Clock) *ArchiveGroups {
	return &ArchiveGroups{store: store, archive: archive, clock: clock}
}

// Execute extracts, archives, renumbers, and persists.
func (uc *ArchiveGroups) Execute(_ context.Context, in ArchiveGroupsInput) (*ArchiveGroupsOutput, error) {
	m, err := loadManager(uc.store, uc.clock)
	if err != nil {
		return nil, err
	}

	extracted, err := m.ExtractGroups(in.Retain, in.GroupIDs, uc.clock.TodayLabel())
	if err != nil {
		return nil, err
	}
	if len(extracted) == 0 {
		return nil, domain.ErrGroupNotFound
	}

	batch := domain.ArchiveBatch{
		ID:         uuid.NewString(),
		ArchivedAt: uc.clock.Now(),
	}
	if err := uc.archive.ArchiveGroups(batch, extracted); err != nil {
		return nil, fmt.Errorf("write archive: %w", err)
	}

	m.MinimizeIDs()
	if err := commit(uc.store, m); err != nil {
		return nil, err
	}
	return &ArchiveGroupsOutput{Batch: batch, Archived: extracted}, nil
}
