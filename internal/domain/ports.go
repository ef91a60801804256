package domain

import "time"

// SnapshotStore persists the full manager snapshot. Load tolerates a
// missing file by returning a fresh manager; mutating commands call
// Save exactly once, after the operation succeeded.
type SnapshotStore interface {
	// Load reads the snapshot, or returns a new empty manager if none
	// exists yet.
	Load() (*Manager, error)

	// Save overwrites the snapshot with the given manager.
	Save(m *Manager) error
}

// ArchiveBatch identifies one archive operation.
type ArchiveBatch struct {
	ID         string    // Batch identifier (UUID)
	ArchivedAt time.Time // When the batch was written
}

// ArchivedGroup is a group as stored in the archive, tagged with the
// batch that extracted it.
type ArchivedGroup struct {
	BatchID    string
	ArchivedAt time.Time
	Group      Group
}

// ArchiveStore is the long-term home for groups extracted from the
// active snapshot.
type ArchiveStore interface {
	// ArchiveGroups writes the groups under the given batch.
	ArchiveGroups(batch ArchiveBatch, groups []Group) error

	// ListBatches returns all batches, oldest first.
	ListBatches() ([]ArchiveBatch, error)

	// ListGroups returns all archived groups, oldest batch first.
	ListGroups() ([]ArchivedGroup, error)

	// Close releases the underlying storage.
	Close() error
}

// Clock supplies the current instant and the calendar-day labels used
// to name default groups.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// TodayLabel returns the timezone-local label of the current day.
	TodayLabel() string

	// TomorrowLabel returns the label of the next calendar day.
	TomorrowLabel() string
}

// ConfigLoader loads the application configuration.
type ConfigLoader interface {
	// Load returns the configuration, falling back to defaults when no
	// config file exists.
	Load() (*Config, error)
}
