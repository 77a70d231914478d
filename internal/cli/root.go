package cli

import (
	"context"

	"github.com/alexanderramin/teamlens/internal/config"
	"github.com/alexanderramin/teamlens/internal/domain"
	"github.com/alexanderramin/teamlens/internal/logger"
	"github.com/alexanderramin/teamlens/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all services used by CLI commands.
type App struct {
	Dashboard service.DashboardService
	Import    service.ImportService
	Personas  service.PersonaService

	Config config.Config
	Log    *logger.Logger

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	// PickPersona asks the user to choose a persona. Defaults to a huh select.
	PickPersona func(ctx context.Context, personas []domain.Persona) (string, error)
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *logger.Logger {
	if a.Log == nil {
		return logger.Nop()
	}
	return a.Log
}

// NewRootCmd creates the top-level "teamlens" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "teamlens",
		Short:         "Team training analytics for leaders and managers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	view := &viewOptions{}
	view.bind(root.PersistentFlags())

	root.AddCommand(
		newImportCmd(app),
		newPersonasCmd(app),
		newMembersCmd(app, view),
		newKPIsCmd(app, view),
		newLeadersCmd(app, view),
		newActionsCmd(app, view),
		newEngagementCmd(app, view),
		newRankingCmd(app, view),
		newCoursesCmd(app, view),
		newEventsCmd(app, view),
		newDashboardCmd(app, view),
	)

	return root
}
