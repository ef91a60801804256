// Package app provides the dependency injection container for the
// application.
package app

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/trackctl/track/internal/domain"
	"github.com/trackctl/track/internal/infra/archive"
	"github.com/trackctl/track/internal/infra/config"
	"github.com/trackctl/track/internal/infra/jsonstore"
	"github.com/trackctl/track/internal/usecase"
)

// SnapshotFileName is the name of the snapshot file in the data dir.
const SnapshotFileName = "data.json"

// ArchiveFileName is the name of the archive database in the data dir.
const ArchiveFileName = "archive.db"

// Container holds all port implementations and provides factory
// methods for use cases.
type Container struct {
	Snapshot domain.SnapshotStore
	Archive  domain.ArchiveStore
	Clock    domain.Clock
	Logger   *slog.Logger
	Config   *domain.Config
}

// New creates a Container from the user configuration.
func New() (*Container, error) {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return nil, err
	}

	archiveStore, err := archive.Open(filepath.Join(cfg.DataDir, ArchiveFileName))
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.Log.Level),
	}))

	return &Container{
		Snapshot: jsonstore.New(filepath.Join(cfg.DataDir, SnapshotFileName)),
		Archive:  archiveStore,
		Clock:    domain.RealClock{},
		Logger:   logger,
		Config:   cfg,
	}, nil
}

// NewWithDeps creates a Container with custom dependencies for testing.
func NewWithDeps(snapshot domain.SnapshotStore, archiveStore domain.ArchiveStore, clock domain.Clock, logger *slog.Logger, cfg *domain.Config) *Container {
	return &Container{
		Snapshot: snapshot,
		Archive:  archiveStore,
		Clock:    clock,
		Logger:   logger,
		Config:   cfg,
	}
}

// Close releases held resources.
func (c *Container) Close() error {
	if c.Archive != nil {
		return c.Archive.Close()
	}
	return nil
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Snapshot, c.Clock)
}

// RemoveTaskUseCase returns a new RemoveTask use case.
func (c *Container) RemoveTaskUseCase() *usecase.RemoveTask {
	return usecase.NewRemoveTask(c.Snapshot, c.Clock)
}

// StartTaskUseCase returns a new StartTask use case.
func (c *Container) StartTaskUseCase() *usecase.StartTask {
	return usecase.NewStartTask(c.Snapshot, c.Clock)
}

// StopCurrentUseCase returns a new StopCurrent use case.
func (c *Container) StopCurrentUseCase() *usecase.StopCurrent {
	return usecase.NewStopCurrent(c.Snapshot, c.Clock)
}

// CompleteTaskUseCase returns a new CompleteTask use case.
func (c *Container) CompleteTaskUseCase() *usecase.CompleteTask {
	return usecase.NewCompleteTask(c.Snapshot, c.Clock)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Snapshot, c.Clock)
}

// ListGroupsUseCase returns a new ListGroups use case.
func (c *Container) ListGroupsUseCase() *usecase.ListGroups {
	return usecase.NewListGroups(c.Snapshot, c.Clock)
}

// UseGroupUseCase returns a new UseGroup use case.
func (c *Container) UseGroupUseCase() *usecase.UseGroup {
	return usecase.NewUseGroup(c.Snapshot, c.Clock)
}

// ResetGroupUseCase returns a new ResetGroup use case.
func (c *Container) ResetGroupUseCase() *usecase.ResetGroup {
	return usecase.NewResetGroup(c.Snapshot, c.Clock)
}

// AddGroupUseCase returns a new AddGroup use case.
func (c *Container) AddGroupUseCase() *usecase.AddGroup {
	return usecase.NewAddGroup(c.Snapshot, c.Clock)
}

// TomorrowGroupUseCase returns a new TomorrowGroup use case.
func (c *Container) TomorrowGroupUseCase() *usecase.TomorrowGroup {
	return usecase.NewTomorrowGroup(c.Snapshot, c.Clock)
}

// ArchiveGroupsUseCase returns a new ArchiveGroups use case.
func (c *Container) ArchiveGroupsUseCase() *usecase.ArchiveGroups {
	return usecase.NewArchiveGroups(c.Snapshot, c.Archive, c.Clock)
}

// ListArchiveUseCase returns a new ListArchive use case.
func (c *Container) ListArchiveUseCase() *usecase.ListArchive {
	return usecase.NewListArchive(c.Archive)
}

// ExportArchiveUseCase returns a new ExportArchive use case.
func (c *Container) ExportArchiveUseCase() *usecase.ExportArchive {
	return usecase.NewExportArchive(c.Archive)
}
