package usecase

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/trackctl/track/internal/domain"
)

// ExportArchiveOutput contains the YAML document.
type ExportArchiveOutput struct {
	YAML []byte
}

// ExportArchive is the use case for dumping the archive as YAML, for
// hand inspection or migration.
type ExportArchive struct {
	archive domain.ArchiveStore
}

// NewExportArchive creates a new ExportArchive use case.
func NewExportArchive(archive domain.ArchiveStore) *ExportArchive {
	return &ExportArchive{archive: archive}
}

// exportDoc is the YAML shape of the export.
type exportDoc struct {
	Batches []exportBatch `yaml:"batches"`
}

type exportBatch struct {
	ID         string        `yaml:"id"`
	ArchivedAt time.Time     `yaml:"archived_at"`
	Groups     []exportGroup `yaml:"groups"`
}

type exportGroup struct {
	ID    int          `yaml:"id"`
	Name  string       `yaml:"name"`
	Tasks []exportTask `yaml:"tasks"`
}

type exportTask struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	Tracked  *int64 `yaml:"tracked_seconds"`
	Complete bool   `yaml:"complete"`
}

// Execute reads the archive and encodes it.
func (uc *ExportArchive) Execute(_ context.Context) (*ExportArchiveOutput, error) {
	batches, err := uc.archive.ListBatches()
	if err != nil {
		return nil, fmt.Errorf("list archive batches: %w", err)
	}
	groups, err := uc.archive.ListGroups()
	if err != nil {
		return nil, fmt.Errorf("list archived groups: %w", err)
	}

	doc := exportDoc{}
	byBatch := make(map[string][]exportGroup, len(batches))
	for _, ag := range groups {
		eg := exportGroup{ID: ag.Group.ID, Name: ag.Group.Name}
		for _, t := range ag.Group.Tasks {
			eg.Tasks = append(eg.Tasks, exportTask{
				ID:       t.ID,
				Name:     t.Name,
				Tracked:  t.Tracked,
				Complete: t.Completed,
			})
		}
		byBatch[ag.BatchID] = append(byBatch[ag.BatchID], eg)
	}
	for _, b := range batches {
		doc.Batches = append(doc.Batches, exportBatch{
			ID:         b.ID,
			ArchivedAt: b.ArchivedAt,
			Groups:     byBatch[b.ID],
		})
	}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("encode archive export: %w", err)
	}
	return &ExportArchiveOutput{YAML: out}, nil
}
