package cli

import (
	"fmt"

	"github.com/alexanderramin/teamlens/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App, view *viewOptions) *cobra.Command {
	var static bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard (static summary off a terminal)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if static || !app.interactive() {
				return printDashboard(cmd, app, view)
			}
			req, err := app.buildRequest(cmd.Context(), view)
			if err != nil {
				return err
			}
			p := tea.NewProgram(newDashboardModel(cmd.Context(), app, req), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}
	cmd.Flags().BoolVar(&static, "static", false, "Print a one-shot summary instead of the interactive view")
	return cmd
}

func printDashboard(cmd *cobra.Command, app *App, view *viewOptions) error {
	resp, err := app.compute(cmd.Context(), view)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, formatter.FormatScopeLine(resp))
	fmt.Fprintln(out, formatter.FormatStatusCounts(resp.StatusCounts))
	fmt.Fprintln(out)
	fmt.Fprint(out, formatter.FormatKPIs(resp.KPIs, kpiCardsPerRow))
	fmt.Fprintln(out)
	fmt.Fprintln(out, formatter.Header("Actions"))
	fmt.Fprint(out, formatter.FormatActions(resp.Actions))
	return nil
}
