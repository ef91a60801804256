// Package archive implements the SQLite-backed long-term store for
// groups extracted from the active snapshot.
package archive

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/trackctl/track/internal/domain"
)

// archivedAtFormat is how batch timestamps are stored (RFC 3339).
const archivedAtFormat = time.RFC3339

// Store implements domain.ArchiveStore on a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the archive database at the given
// path and ensures the schema exists.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create archive directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open archive database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize archive schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// ArchiveGroups writes the groups and their tasks under one batch, in a
// single transaction.
func (s *Store) ArchiveGroups(batch domain.ArchiveBatch, groups []domain.Group) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin archive transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(
		`INSERT INTO batches (batch_id, archived_at) VALUES (?, ?)`,
		batch.ID, batch.ArchivedAt.UTC().Format(archivedAtFormat),
	); err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}

	for pos, g := range groups {
		if _, err := tx.Exec(
			`INSERT INTO groups (batch_id, group_id, name, next_task_id, current_task, position)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			batch.ID, g.ID, g.Name, g.NextTaskID, nullableInt(g.CurrentTask), pos,
		); err != nil {
			return fmt.Errorf("insert group %d: %w", g.ID, err)
		}

		for tpos, t := range g.Tasks {
			if _, err := tx.Exec(
				`INSERT INTO tasks (batch_id, group_id, task_id, name, started_at, tracked, is_complete, position)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				batch.ID, g.ID, t.ID, t.Name,
				nullableInt64(t.StartedAt), nullableInt64(t.Tracked), t.Completed, tpos,
			); err != nil {
				return fmt.Errorf("insert task %d of group %d: %w", t.ID, g.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit archive transaction: %w", err)
	}
	return nil
}

// ListBatches returns all batches, oldest first.
func (s *Store) ListBatches() ([]domain.ArchiveBatch, error) {
	rows, err := s.db.Query(
		`SELECT batch_id, archived_at FROM batches ORDER BY archived_at, batch_id`)
	if err != nil {
		return nil, fmt.Errorf("query batches: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var batches []domain.ArchiveBatch
	for rows.Next() {
		var b domain.ArchiveBatch
		var at string
		if err := rows.Scan(&b.ID, &at); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		b.ArchivedAt, err = time.Parse(archivedAtFormat, at)
		if err != nil {
			return nil, fmt.Errorf("parse batch timestamp: %w", err)
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

// ListGroups returns all archived groups with their tasks, oldest batch
// first, preserving the order the groups held in the snapshot.
func (s *Store) ListGroups() ([]domain.ArchivedGroup, error) {
	rows, err := s.db.Query(
		`SELECT g.batch_id, b.archived_at, g.group_id, g.name, g.next_task_id, g.current_task
		 FROM groups g JOIN batches b ON b.batch_id = g.batch_id
		 ORDER BY b.archived_at, g.batch_id, g.position`)
	if err != nil {
		return nil, fmt.Errorf("query groups: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var groups []domain.ArchivedGroup
	for rows.Next() {
		var ag domain.ArchivedGroup
		var at string
		var current sql.NullInt64
		if err := rows.Scan(&ag.BatchID, &at, &ag.Group.ID, &ag.Group.Name,
			&ag.Group.NextTaskID, &current); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		ag.ArchivedAt, err = time.Parse(archivedAtFormat, at)
		if err != nil {
			return nil, fmt.Errorf("parse batch timestamp: %w", err)
		}
		if current.Valid {
			id := int(current.Int64)
			ag.Group.CurrentTask = &id
		}
		groups = append(groups, ag)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range groups {
		tasks, err := s.groupTasks(groups[i].BatchID, groups[i].Group.ID)
		if err != nil {
			return nil, err
		}
		groups[i].Group.Tasks = tasks
	}
	return groups, nil
}

func (s *Store) groupTasks(batchID string, groupID int) ([]*domain.Task, error) {
	rows, err := s.db.Query(
		`SELECT task_id, name, started_at, tracked, is_complete
		 FROM tasks WHERE batch_id = ? AND group_id = ? ORDER BY position`,
		batchID, groupID)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []*domain.Task
	for rows.Next() {
		var t domain.Task
		var started, tracked sql.NullInt64
		if err := rows.Scan(&t.ID, &t.Name, &started, &tracked, &t.Completed); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		if started.Valid {
			v := started.Int64
			t.StartedAt = &v
		}
		if tracked.Valid {
			v := tracked.Int64
			t.Tracked = &v
		}
		tasks = append(tasks, &t)
	}
	return tasks, rows.Err()
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableInt64(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

// Ensure Store implements ArchiveStore.
var _ domain.ArchiveStore = (*Store)(nil)
