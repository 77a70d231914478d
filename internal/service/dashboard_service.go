package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/teamlens/internal/app"
	"github.com/alexanderramin/teamlens/internal/db"
	"github.com/alexanderramin/teamlens/internal/domain"
	"github.com/alexanderramin/teamlens/internal/kpi"
	"github.com/alexanderramin/teamlens/internal/repository"
)

type dashboardService struct {
	uow        db.UnitOfWork
	benchmarks kpi.Benchmarks
	observer   UseCaseObserver
}

// NewDashboardService loads the snapshot through uow on every Compute, so a
// concurrent import is never observed half-applied.
func NewDashboardService(uow db.UnitOfWork, benchmarks kpi.Benchmarks, observers ...UseCaseObserver) DashboardService {
	if benchmarks == nil {
		benchmarks = kpi.DefaultBenchmarks()
	}
	return &dashboardService{
		uow:        uow,
		benchmarks: benchmarks,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *dashboardService) Compute(ctx context.Context, req app.DashboardRequest) (*app.DashboardResponse, error) {
	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	fields := map[string]any{
		"persona":  req.PersonaID,
		"leaders":  len(req.SelectedLeaderIDs),
		"toggles":  req.Flags.EnabledNames(),
		"bench_on": req.BenchmarkEnabled,
	}

	var resp *app.DashboardResponse
	err := observe(ctx, s.observer, "dashboard.compute", fields, func() error {
		raw, err := repository.LoadSnapshot(ctx, s.uow)
		if err != nil {
			return fmt.Errorf("loading snapshot: %w", err)
		}
		persona, err := resolvePersona(raw, req.PersonaID)
		if err != nil {
			return err
		}
		resp = Recompute(raw, persona, req, s.benchmarks, now)
		fields["members"] = len(resp.Members)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func resolvePersona(raw domain.Snapshot, id string) (domain.Persona, error) {
	if id == "" {
		return AllTeamsPersona, nil
	}
	p, ok := raw.Persona(id)
	if !ok {
		return domain.Persona{}, fmt.Errorf("persona %q: %w", id, ErrPersonaNotFound)
	}
	return p, nil
}

type personaService struct {
	personas repository.PersonaRepo
}

func NewPersonaService(personas repository.PersonaRepo) PersonaService {
	return &personaService{personas: personas}
}

func (s *personaService) List(ctx context.Context) ([]domain.Persona, error) {
	return s.personas.List(ctx)
}

func (s *personaService) Get(ctx context.Context, id string) (*domain.Persona, error) {
	p, err := s.personas.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("persona %q: %w", id, ErrPersonaNotFound)
	}
	return p, err
}
