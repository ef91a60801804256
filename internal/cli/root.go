// Package cli provides the command-line interface for track.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trackctl/track/internal/app"
)

// Command group IDs.
const (
	groupTasks   = "tasks"
	groupGroups  = "groups"
	groupArchive = "archive"
)

// NewRootCommand creates the root command for track. It receives the
// container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "track",
		Short: "Personal time tracking CLI",
		Long: `track keeps a record of what you worked on and for how long.

Tasks live in date-named groups (one per day by default). Start a task
to begin tracking, stop or complete it to fold the elapsed time into
its total. Old groups can be archived out of the active record.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.AddGroup(
		&cobra.Group{ID: groupTasks, Title: "Tasks:"},
		&cobra.Group{ID: groupGroups, Title: "Groups:"},
		&cobra.Group{ID: groupArchive, Title: "Archive:"},
	)

	root.AddCommand(
		newNewCommand(c),
		newRemoveCommand(c),
		newTasksCommand(c),
		newStartCommand(c),
		newStopCommand(c),
		newCompleteCommand(c),
		newGroupsCommand(c),
		newUseCommand(c),
		newTomorrowCommand(c),
		newArchiveCommand(c),
		newTUICommand(c),
		newVersionCommand(version),
	)

	return root
}

// newVersionCommand creates the version command.
func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the track version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "track %s\n", version)
		},
	}
}
