package cli

import (
	"fmt"

	"github.com/alexanderramin/teamlens/internal/cli/formatter"
	"github.com/spf13/cobra"
)

const kpiCardsPerRow = 3

func newKPIsCmd(app *App, view *viewOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "kpis",
		Short: "Show the headline KPIs for the current view",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.compute(cmd.Context(), view)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatScopeLine(resp))
			fmt.Fprint(out, formatter.FormatKPIs(resp.KPIs, kpiCardsPerRow))
			return nil
		},
	}
}

func newActionsCmd(app *App, view *viewOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "Show the prioritised leader action feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.compute(cmd.Context(), view)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatActions(resp.Actions))
			return nil
		},
	}
}

func newEngagementCmd(app *App, view *viewOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "engagement",
		Short: "List low-engagement members with unfinished free courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.compute(cmd.Context(), view)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLowEngagement(resp.LowEngagement))
			return nil
		},
	}
}
