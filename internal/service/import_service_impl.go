package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/teamlens/internal/app"
	"github.com/alexanderramin/teamlens/internal/db"
	"github.com/alexanderramin/teamlens/internal/importer"
	"github.com/alexanderramin/teamlens/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
	clock    func() time.Time
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		clock:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *importService) ImportSnapshot(ctx context.Context, filePath string) (*app.ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportSnapshotFromSchema(ctx, schema, filePath)
}

func (s *importService) ImportSnapshotFromSchema(ctx context.Context, schema *importer.ImportSchema, source string) (*app.ImportResult, error) {
	var result *app.ImportResult
	fields := map[string]any{"source": source}
	err := observe(ctx, s.observer, "snapshot.import", fields, func() error {
		if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
			fields["validation_errors"] = len(errs)
			return formatValidationErrors(errs)
		}

		warnings := importer.DateWarnings(schema)
		if len(warnings) > 0 {
			fields["date_warnings"] = len(warnings)
		}

		snap := importer.Convert(schema)
		meta := repository.SnapshotMeta{Source: source, ImportedAt: s.clock()}
		err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			return repository.NewSQLiteSnapshotRepo(tx).Replace(ctx, snap, meta)
		})
		if err != nil {
			return fmt.Errorf("storing snapshot: %w", err)
		}

		result = &app.ImportResult{
			Source:      source,
			ImportedAt:  meta.ImportedAt,
			Members:     len(snap.Members),
			Enrollments: len(snap.Enrollments),
			Courses:     len(snap.Courses),
			Trails:      len(snap.Trails),
			Channels:    len(snap.Channels),
			Pulses:      len(snap.Pulses),
			Events:      len(snap.Events),
			Ranking:     len(snap.Ranking),
			Personas:    len(snap.Personas),
			Warnings:    warnings,
		}
		fields["members"] = result.Members
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// formatValidationErrors keeps every validation error reachable through errors.Is.
func formatValidationErrors(errs []error) error {
	return fmt.Errorf("import validation failed (%d errors):\n%w", len(errs), errors.Join(errs...))
}
