package cli

import (
	"fmt"

	"github.com/alexanderramin/teamlens/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Replace the stored snapshot with a JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				stop := formatter.StartSpinner(cmd.ErrOrStderr(), "Importing "+args[0])
				defer stop()
			}

			result, err := app.Import.ImportSnapshot(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(result))
			return nil
		},
	}
}

func newPersonasCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "personas",
		Short: "List the personas available for impersonation",
		RunE: func(cmd *cobra.Command, args []string) error {
			personas, err := app.Personas.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPersonas(personas))
			return nil
		},
	}
}
