package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/trackctl/track/internal/app"
	"github.com/trackctl/track/internal/usecase"
)

// newNewCommand creates the new command for adding tasks.
func newNewCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "new <name>",
		Short:   "Add a task to the current group",
		GroupID: groupTasks,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.AddTaskUseCase().Execute(cmd.Context(), usecase.AddTaskInput{
				Name: args[0],
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added to %s:\n%s\n", out.GroupName, renderTask(out.Task, out.Now))
			return nil
		},
	}
}

// newRemoveCommand creates the remove command for deleting tasks.
func newRemoveCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Short:   "Remove a task from the current group",
		GroupID: groupTasks,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[0])
			}
			out, err := c.RemoveTaskUseCase().Execute(cmd.Context(), usecase.RemoveTaskInput{
				TaskID: id,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed:\n%s\n", renderTask(out.Task, out.Now))
			return nil
		},
	}
}

// newTasksCommand creates the tasks command for listing the current group.
func newTasksCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "tasks",
		Short:   "List the tasks in the current group",
		GroupID: groupTasks,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListTasksUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s:\n%s\n", out.Group.Name, renderGroup(out.Group, out.Now))
			return nil
		},
	}
}

// newStartCommand creates the start command.
func newStartCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "start <id>",
		Short:   "Start tracking a task (stops the running one)",
		GroupID: groupTasks,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[0])
			}
			out, err := c.StartTaskUseCase().Execute(cmd.Context(), usecase.StartTaskInput{
				TaskID: id,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Starting:\n%s\n", renderTask(out.Task, out.Now))
			return nil
		},
	}
}

// newStopCommand creates the stop command.
func newStopCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "stop",
		Short:   "Stop the running task",
		GroupID: groupTasks,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.StopCurrentUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stopping:\n%s\n", renderTask(out.Task, out.Now))
			return nil
		},
	}
}

// newCompleteCommand creates the complete command. With no argument it
// completes the running task.
func newCompleteCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "complete [id]",
		Short:   "Complete a task (default: the running one)",
		GroupID: groupTasks,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input usecase.CompleteTaskInput
			if len(args) == 1 {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid task id %q", args[0])
				}
				input.TaskID = &id
			}
			out, err := c.CompleteTaskUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completed:\n%s\n", renderTask(out.Task, out.Now))
			return nil
		},
	}
}
