package cli

import (
	"fmt"

	"github.com/alexanderramin/trailmap/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDueCmd(app *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "due",
		Short: "List training tasks whose next repetition is due",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			due, err := app.Planner.Due(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if ok, err := writeStructured(out, output, due); ok {
				return err
			}
			fmt.Fprintln(out, formatter.FormatDue(due, app.today()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format: text, json or yaml")

	return cmd
}
