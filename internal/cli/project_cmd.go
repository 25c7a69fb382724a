package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/trailmap/internal/cli/formatter"
	"github.com/alexanderramin/trailmap/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectListCmd(app),
		newProjectAddCmd(app),
		newProjectTrainingCmd(app),
		newProjectShowCmd(app),
		newProjectBrowseCmd(app),
	)

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects with their progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			sums, err := app.Planner.Summaries(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if ok, err := writeStructured(out, output, sums); ok {
				return err
			}
			if len(sums) == 0 {
				fmt.Fprintln(out, "No projects found.")
				return nil
			}
			fmt.Fprintln(out, formatter.FormatProjectList(sums))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format: text, json or yaml")

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var training bool

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if training && domain.KindOf(name) != domain.KindTraining {
				name = domain.TrainingMarker + name
			}
			if err := app.Planner.CreateProject(cmd.Context(), name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s project %s\n", domain.KindOf(name), domain.DisplayName(name))
			return nil
		},
	}

	cmd.Flags().BoolVar(&training, "training", false, "Create a spaced-repetition training project")

	return cmd
}

func newProjectTrainingCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "training NAME",
		Short: "Toggle spaced-repetition training mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			project, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}
			newName, err := app.Planner.ToggleTraining(ctx, project)
			if err != nil {
				return err
			}
			state := "off"
			if domain.KindOf(newName) == domain.KindTraining {
				state = "on"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Training %s for %s\n", state, domain.DisplayName(newName))
			return nil
		},
	}
}

func newProjectShowCmd(app *App) *cobra.Command {
	var output, selected string

	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Show a project's roadmap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			ctx := cmd.Context()
			project, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}
			if selected != "" {
				if selected, err = resolveTask(ctx, app, project, selected); err != nil {
					return err
				}
			}

			rm, err := app.Planner.Roadmap(ctx, project, selected)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if ok, err := writeStructured(out, output, rm); ok {
				return err
			}
			fmt.Fprint(out, formatter.FormatRoadmap(rm, app.Schedule.Stages(), app.today()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format: text, json or yaml")
	cmd.Flags().StringVar(&selected, "selected", "", "Highlight this task")

	return cmd
}

func newProjectBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse NAME",
		Short: "Browse a roadmap interactively and record completions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errors.New("browse needs an interactive terminal")
			}
			ctx := cmd.Context()
			project, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}

			model := newBrowseModel(ctx, app, project)
			_, err = tea.NewProgram(model,
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			).Run()
			return err
		},
	}
}
