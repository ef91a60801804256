package usecase

import (
	"time"

	"github.com/trackctl/track/internal/domain"
)

// mockClock is a test double for domain.Clock.
type mockClock struct {
	now      time.Time
	today    string
	tomorrow string
}

func (m *mockClock) Now() time.Time        { return m.now }
func (m *mockClock) TodayLabel() string    { return m.today }
func (m *mockClock) TomorrowLabel() string { return m.tomorrow }

func newMockClock() *mockClock {
	return &mockClock{
		now:      time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
		today:    "06-01-2024",
		tomorrow: "06-02-2024",
	}
}

// mockStore is a test double for domain.SnapshotStore.
type mockStore struct {
	manager *domain.Manager
	loadErr error
	saveErr error
	saves   int
}

func newMockStore() *mockStore {
	return &mockStore{manager: domain.NewManager()}
}

func (m *mockStore) Load() (*domain.Manager, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.manager, nil
}

func (m *mockStore) Save(mgr *domain.Manager) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.manager = mgr
	m.saves++
	return nil
}

// mockArchive is a test double for domain.ArchiveStore.
type mockArchive struct {
	batches    []domain.ArchiveBatch
	groups     []domain.ArchivedGroup
	archiveErr error
}

func (m *mockArchive) ArchiveGroups(batch domain.ArchiveBatch, groups []domain.Group) error {
	if m.archiveErr != nil {
		return m.archiveErr
	}
	m.batches = append(m.batches, batch)
	for _, g := range groups {
		m.groups = append(m.groups, domain.ArchivedGroup{
			BatchID:    batch.ID,
			ArchivedAt: batch.ArchivedAt,
			Group:      g,
		})
	}
	return nil
}

func (m *mockArchive) ListBatches() ([]domain.ArchiveBatch, error) {
	return m.batches, nil
}

func (m *mockArchive) ListGroups() ([]domain.ArchivedGroup, error) {
	return m.groups, nil
}

func (m *mockArchive) Close() error { return nil }
