package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/trackctl/track/internal/app"
	"github.com/trackctl/track/internal/usecase"
)

// newGroupsCommand creates the groups command for listing all groups.
func newGroupsCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "groups",
		Short:   "List all groups",
		GroupID: groupGroups,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListGroupsUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderGroups(out.Groups, out.CurrentID))
			return nil
		},
	}
}

// newUseCommand creates the use command for selecting a group.
func newUseCommand(c *app.Container) *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:     "use [id]",
		Short:   "Select the group to operate on",
		GroupID: groupGroups,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if reset {
				out, err := c.ResetGroupUseCase().Execute(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Using group: %s\n", out.Group.Name)
				return nil
			}

			if len(args) != 1 {
				return fmt.Errorf("group id required (or --reset)")
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid group id %q", args[0])
			}
			out, err := c.UseGroupUseCase().Execute(cmd.Context(), usecase.UseGroupInput{
				GroupID: id,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Using group: %s\n", out.Group.Name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "Revert to whatever today's group is")
	return cmd
}

// newTomorrowCommand creates the tomorrow command for planning ahead.
func newTomorrowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "tomorrow",
		Short:   "Create and select tomorrow's group",
		GroupID: groupGroups,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.TomorrowGroupUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added group: %s\n", out.Group.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Using group: %s\n", out.Group.Name)
			return nil
		},
	}
}
