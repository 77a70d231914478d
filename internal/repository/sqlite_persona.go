package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/alexanderramin/teamlens/internal/db"
	"github.com/alexanderramin/teamlens/internal/domain"
)

var personaColumns = []string{"id", "name", "role", "managed_leader_ids"}

// SQLitePersonaRepo implements PersonaRepo using a SQLite database.
type SQLitePersonaRepo struct {
	db db.DBTX
}

var _ PersonaRepo = (*SQLitePersonaRepo)(nil)

func NewSQLitePersonaRepo(conn db.DBTX) *SQLitePersonaRepo {
	return &SQLitePersonaRepo{db: conn}
}

func personaSelect() sq.SelectBuilder {
	return sq.Select(personaColumns...).From("personas").OrderBy("rowid")
}

func (r *SQLitePersonaRepo) GetByID(ctx context.Context, id string) (*domain.Persona, error) {
	personas, err := listRows(ctx, r.db, personaSelect().Where(sq.Eq{"id": id}), scanPersona)
	if err != nil {
		return nil, fmt.Errorf("loading persona %s: %w", id, err)
	}
	if len(personas) == 0 {
		return nil, fmt.Errorf("persona %s: %w", id, ErrNotFound)
	}
	return &personas[0], nil
}

func (r *SQLitePersonaRepo) List(ctx context.Context) ([]domain.Persona, error) {
	personas, err := listRows(ctx, r.db, personaSelect(), scanPersona)
	if err != nil {
		return nil, fmt.Errorf("listing personas: %w", err)
	}
	return personas, nil
}

func personaValues(p domain.Persona) ([]any, error) {
	managed, err := encodeIDs(p.ManagedLeaderIDs)
	if err != nil {
		return nil, err
	}
	return []any{p.ID, p.Name, string(p.Role), managed}, nil
}

func scanPersona(rows *sql.Rows) (domain.Persona, error) {
	var p domain.Persona
	var role, managed string
	if err := rows.Scan(&p.ID, &p.Name, &role, &managed); err != nil {
		return p, fmt.Errorf("scanning persona: %w", err)
	}
	p.Role = domain.Role(role)
	var err error
	p.ManagedLeaderIDs, err = decodeIDs(managed)
	return p, err
}
