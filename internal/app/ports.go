package app

import (
	"context"
	"time"

	"github.com/alexanderramin/teamlens/internal/domain"
	"github.com/alexanderramin/teamlens/internal/importer"
)

type DashboardUseCase interface {
	Compute(ctx context.Context, req DashboardRequest) (*DashboardResponse, error)
}

type ImportResult struct {
	Source      string
	ImportedAt  time.Time
	Members     int
	Enrollments int
	Courses     int
	Trails      int
	Channels    int
	Pulses      int
	Events      int
	Ranking     int
	Personas    int
	// Warnings lists input the import kept going past, such as unparsable dates.
	Warnings []string
}

type ImportSnapshotUseCase interface {
	ImportSnapshot(ctx context.Context, filePath string) (*ImportResult, error)
	ImportSnapshotFromSchema(ctx context.Context, schema *importer.ImportSchema, source string) (*ImportResult, error)
}

type PersonaUseCase interface {
	List(ctx context.Context) ([]domain.Persona, error)
	Get(ctx context.Context, id string) (*domain.Persona, error)
}
