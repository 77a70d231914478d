package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/teamlens/internal/domain"
)

// ErrNotFound is wrapped by every lookup that matches no row.
var ErrNotFound = errors.New("not found")

// SnapshotMeta records where the stored snapshot came from.
type SnapshotMeta struct {
	Source     string
	ImportedAt time.Time
}

// SnapshotRepo stores the single dataset the engine computes over.
type SnapshotRepo interface {
	// Load reads every collection. An empty store yields an empty snapshot.
	Load(ctx context.Context) (domain.Snapshot, error)
	// Replace swaps the stored dataset for snap. Callers wrap it in a unit
	// of work so the swap is atomic.
	Replace(ctx context.Context, snap domain.Snapshot, meta SnapshotMeta) error
	Meta(ctx context.Context) (*SnapshotMeta, error)
}

type PersonaRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Persona, error)
	List(ctx context.Context) ([]domain.Persona, error)
}
