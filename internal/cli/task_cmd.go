package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/trailmap/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks of a project",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskDoneCmd(app),
		newTaskEditCmd(app),
		newTaskRenameCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var content string

	cmd := &cobra.Command{
		Use:   "add PROJECT FILENAME",
		Short: "Add a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			project, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Planner.CreateTask(ctx, project, args[1], content); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s\n", args[1], domain.DisplayName(project))
			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "Task notes")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done PROJECT TASK",
		Short: "Complete a task or record a training repetition",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			project, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}
			filename, err := resolveTask(ctx, app, project, args[1])
			if err != nil {
				return err
			}

			newName, err := app.Planner.CompleteTask(ctx, project, filename)
			if err != nil {
				return err
			}

			verb := "Completed"
			if domain.KindOf(project) == domain.KindTraining {
				verb = "Recorded repetition"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", verb, newName)
			return nil
		},
	}
}

func newTaskEditCmd(app *App) *cobra.Command {
	var content string

	cmd := &cobra.Command{
		Use:   "edit PROJECT TASK",
		Short: "Replace a task's notes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("content") {
				return errors.New("--content is required")
			}
			ctx := cmd.Context()
			project, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}
			filename, err := resolveTask(ctx, app, project, args[1])
			if err != nil {
				return err
			}
			if err := app.Planner.UpdateContent(ctx, project, filename, content); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", filename)
			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "New task notes")

	return cmd
}

func newTaskRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename PROJECT TASK NEW_FILENAME",
		Short: "Rename a task",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			project, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}
			filename, err := resolveTask(ctx, app, project, args[1])
			if err != nil {
				return err
			}
			if err := app.Planner.RenameTask(ctx, project, filename, args[2]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %s\n", filename, args[2])
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm PROJECT TASK",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			project, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}
			filename, err := resolveTask(ctx, app, project, args[1])
			if err != nil {
				return err
			}

			if !yes {
				ok, err := confirm(app, fmt.Sprintf("Delete %s from %s?", filename, domain.DisplayName(project)))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			if err := app.Planner.DeleteTask(ctx, project, filename); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", filename)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
