package usecase

import (
	"context"
	"fmt"

	"github.com/trackctl/track/internal/domain"
)

// ListArchiveOutput contains the archive contents.
type ListArchiveOutput struct {
	Batches []domain.ArchiveBatch
	Groups  []domain.ArchivedGroup
}

// ListArchive is the use case for inspecting the archive.
type ListArchive struct {
	archive domain.ArchiveStore
}

// NewListArchive creates a new ListArchive use case.
func NewListArchive(archive domain.ArchiveStore) *ListArchive {
	return &ListArchive{archive: archive}
}

// Execute reads the archive. The active snapshot is not touched.
func (uc *ListArchive) Execute(_ context.Context) (*ListArchiveOutput, error) {
	batches, err := uc.archive.ListBatches()
	if err != nil {
		return nil, fmt.Errorf("list archive batches: %w", err)
	}
	groups, err := uc.archive.ListGroups()
	if err != nil {
		return nil, fmt.Errorf("list archived groups: %w", err)
	}
	return &ListArchiveOutput{Batches: batches, Groups: groups}, nil
}
