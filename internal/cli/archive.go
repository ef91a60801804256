package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/trackctl/track/internal/app"
	"github.com/trackctl/track/internal/domain"
	"github.com/trackctl/track/internal/usecase"
)

// newArchiveCommand creates the archive command and its subcommands.
func newArchiveCommand(c *app.Container) *cobra.Command {
	var retain bool

	cmd := &cobra.Command{
		Use:     "archive <id>...",
		Short:   "Move groups out of the active record",
		GroupID: groupArchive,
		Long: `Move groups out of the active record into the archive database.

By default the listed IDs are archived. With --keep the listed IDs are
the groups to keep and everything else is archived. The current group
can never be archived. Surviving group IDs are renumbered to be dense
afterwards.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int, len(args))
			for i, arg := range args {
				id, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid group id %q", arg)
				}
				ids[i] = id
			}

			out, err := c.ArchiveGroupsUseCase().Execute(cmd.Context(), usecase.ArchiveGroupsInput{
				GroupIDs: ids,
				Retain:   retain,
			})
			if err != nil {
				return err
			}

			c.Logger.Debug("archived groups",
				"batch", out.Batch.ID, "count", len(out.Archived))
			fmt.Fprintf(cmd.OutOrStdout(), "Archived %d group(s) in batch %s:\n",
				len(out.Archived), out.Batch.ID)
			for _, g := range out.Archived {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s (%d tasks)\n", g.Name, len(g.Tasks))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&retain, "keep", false, "Archive everything except the listed group IDs")

	cmd.AddCommand(
		newArchiveListCommand(c),
		newArchiveExportCommand(c),
	)
	return cmd
}

// newArchiveListCommand creates the archive list subcommand.
func newArchiveListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List archived groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListArchiveUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			if len(out.Groups) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Archive is empty.")
				return nil
			}
			for _, g := range out.Groups {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s (%d tasks, %s tracked)\n",
					g.ArchivedAt.Local().Format("2006-01-02"),
					g.Group.Name, len(g.Group.Tasks), totalTracked(g.Group))
			}
			return nil
		},
	}
}

// newArchiveExportCommand creates the archive export subcommand.
func newArchiveExportCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Dump the archive as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ExportArchiveUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out.YAML)
			return err
		},
	}
}

func totalTracked(g domain.Group) string {
	var total time.Duration
	for _, t := range g.Tasks {
		if t.Tracked != nil {
			total += time.Duration(*t.Tracked) * time.Second
		}
	}
	return domain.FormatDuration(total)
}
