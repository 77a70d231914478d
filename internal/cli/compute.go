package cli

import (
	"context"
	"errors"

	"github.com/alexanderramin/teamlens/internal/contract"
	"github.com/alexanderramin/teamlens/internal/domain"
	"github.com/charmbracelet/huh"
)

// buildRequest resolves the persona, asking on a terminal when none was
// given, and turns the view flags into a recompute request.
func (a *App) buildRequest(ctx context.Context, view *viewOptions) (contract.DashboardRequest, error) {
	if view.persona == "" && a.interactive() {
		id, err := a.choosePersona(ctx)
		if err != nil {
			return contract.DashboardRequest{}, err
		}
		view.persona = id
	}
	return view.request(a.Config)
}

// compute runs one full recompute for the current flags.
func (a *App) compute(ctx context.Context, view *viewOptions, adjust ...func(*contract.DashboardRequest)) (*contract.DashboardResponse, error) {
	req, err := a.buildRequest(ctx, view)
	if err != nil {
		return nil, err
	}
	for _, fn := range adjust {
		fn(&req)
	}
	a.logger().Debug("recompute",
		"persona", req.PersonaID,
		"leaders", req.SelectedLeaderIDs,
		"toggles", req.Flags.EnabledNames(),
		"now", nowOrDefault(req),
	)
	return a.Dashboard.Compute(ctx, req)
}

func (a *App) choosePersona(ctx context.Context) (string, error) {
	personas, err := a.Personas.List(ctx)
	if err != nil {
		return "", err
	}
	if len(personas) == 0 {
		return "", nil
	}
	pick := a.PickPersona
	if pick == nil {
		pick = pickPersonaForm
	}
	return pick(ctx, personas)
}

// pickPersonaForm shows a select of every persona plus the all-teams view.
func pickPersonaForm(ctx context.Context, personas []domain.Persona) (string, error) {
	options := make([]huh.Option[string], 0, len(personas)+1)
	options = append(options, huh.NewOption("All teams", ""))
	for _, p := range personas {
		options = append(options, huh.NewOption(p.Name+" ("+string(p.Role)+")", p.ID))
	}

	var id string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("View as").
				Options(options...).
				Value(&id),
		),
	)
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", errors.New("persona selection cancelled")
		}
		return "", err
	}
	return id, nil
}
