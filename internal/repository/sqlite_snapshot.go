package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/alexanderramin/teamlens/internal/db"
	"github.com/alexanderramin/teamlens/internal/domain"
)

// insertBatchSize keeps multi-row inserts under SQLite's bound-parameter limit.
const insertBatchSize = 200

// SQLiteSnapshotRepo implements SnapshotRepo using a SQLite database.
type SQLiteSnapshotRepo struct {
	db db.DBTX
}

var _ SnapshotRepo = (*SQLiteSnapshotRepo)(nil)

func NewSQLiteSnapshotRepo(conn db.DBTX) *SQLiteSnapshotRepo {
	return &SQLiteSnapshotRepo{db: conn}
}

var (
	memberColumns = []string{
		"id", "name", "job_title", "manager_id", "overall_progress", "last_access",
		"enrollment_ids", "trail_ids", "event_ids", "channel_ids", "pulse_ids",
		"total_courses", "courses_completed", "total_trails", "trails_completed",
	}
	enrollmentColumns = []string{"id", "member_id", "course_id", "type", "is_regulatory", "due_date", "progress", "status"}
	courseColumns     = []string{"id", "title", "duration", "skills"}
	trailColumns      = []string{"id", "title", "course_ids", "pulse_ids", "is_mandatory", "due_date", "skills"}
	channelColumns    = []string{"id", "title", "pulse_ids"}
	pulseColumns      = []string{"id", "title", "channel_id", "duration"}
	eventColumns      = []string{"id", "title", "date", "duration", "capacity"}
	rankingColumns    = []string{"member_id", "points"}
)

// deleteOrder removes dependants before the rows they reference.
var deleteOrder = []string{"ranking", "enrollments", "members", "courses", "trails", "channels", "pulses", "events", "personas", "snapshot_meta"}

func (r *SQLiteSnapshotRepo) Load(ctx context.Context) (domain.Snapshot, error) {
	var snap domain.Snapshot
	var err error

	if snap.Members, err = listRows(ctx, r.db, sq.Select(memberColumns...).From("members").OrderBy("rowid"), scanMember); err != nil {
		return snap, fmt.Errorf("loading members: %w", err)
	}
	if snap.Enrollments, err = listRows(ctx, r.db, sq.Select(enrollmentColumns...).From("enrollments").OrderBy("rowid"), scanEnrollment); err != nil {
		return snap, fmt.Errorf("loading enrollments: %w", err)
	}
	if snap.Courses, err = listRows(ctx, r.db, sq.Select(courseColumns...).From("courses").OrderBy("rowid"), scanCourse); err != nil {
		return snap, fmt.Errorf("loading courses: %w", err)
	}
	if snap.Trails, err = listRows(ctx, r.db, sq.Select(trailColumns...).From("trails").OrderBy("rowid"), scanTrail); err != nil {
		return snap, fmt.Errorf("loading trails: %w", err)
	}
	if snap.Channels, err = listRows(ctx, r.db, sq.Select(channelColumns...).From("channels").OrderBy("rowid"), scanChannel); err != nil {
		return snap, fmt.Errorf("loading channels: %w", err)
	}
	if snap.Pulses, err = listRows(ctx, r.db, sq.Select(pulseColumns...).From("pulses").OrderBy("rowid"), scanPulse); err != nil {
		return snap, fmt.Errorf("loading pulses: %w", err)
	}
	if snap.Events, err = listRows(ctx, r.db, sq.Select(eventColumns...).From("events").OrderBy("rowid"), scanEvent); err != nil {
		return snap, fmt.Errorf("loading events: %w", err)
	}
	if snap.Ranking, err = listRows(ctx, r.db, sq.Select(rankingColumns...).From("ranking").OrderBy("rowid"), scanRanking); err != nil {
		return snap, fmt.Errorf("loading ranking: %w", err)
	}
	if snap.Personas, err = listRows(ctx, r.db, personaSelect(), scanPersona); err != nil {
		return snap, fmt.Errorf("loading personas: %w", err)
	}
	return snap, nil
}

// LoadSnapshot reads the stored snapshot inside one transaction, so a
// Replace running on another connection is seen either whole or not at all.
func LoadSnapshot(ctx context.Context, uow db.UnitOfWork) (domain.Snapshot, error) {
	var snap domain.Snapshot
	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		snap, err = NewSQLiteSnapshotRepo(tx).Load(ctx)
		return err
	})
	return snap, err
}

func (r *SQLiteSnapshotRepo) Replace(ctx context.Context, snap domain.Snapshot, meta SnapshotMeta) error {
	for _, table := range deleteOrder {
		if err := execBuilt(ctx, r.db, sq.Delete(table)); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	if err := insertRows(ctx, r.db, "members", memberColumns, snap.Members, memberValues); err != nil {
		return err
	}
	if err := insertRows(ctx, r.db, "enrollments", enrollmentColumns, snap.Enrollments, enrollmentValues); err != nil {
		return err
	}
	if err := insertRows(ctx, r.db, "courses", courseColumns, snap.Courses, courseValues); err != nil {
		return err
	}
	if err := insertRows(ctx, r.db, "trails", trailColumns, snap.Trails, trailValues); err != nil {
		return err
	}
	if err := insertRows(ctx, r.db, "channels", channelColumns, snap.Channels, channelValues); err != nil {
		return err
	}
	if err := insertRows(ctx, r.db, "pulses", pulseColumns, snap.Pulses, pulseValues); err != nil {
		return err
	}
	if err := insertRows(ctx, r.db, "events", eventColumns, snap.Events, eventValues); err != nil {
		return err
	}
	if err := insertRows(ctx, r.db, "ranking", rankingColumns, snap.Ranking, rankingValues); err != nil {
		return err
	}
	if err := insertRows(ctx, r.db, "personas", personaColumns, snap.Personas, personaValues); err != nil {
		return err
	}

	insertMeta := sq.Insert("snapshot_meta").
		Columns("id", "source", "imported_at").
		Values(1, meta.Source, meta.ImportedAt.UTC().Format(timeLayout))
	if err := execBuilt(ctx, r.db, insertMeta); err != nil {
		return fmt.Errorf("recording snapshot meta: %w", err)
	}
	return nil
}

func (r *SQLiteSnapshotRepo) Meta(ctx context.Context) (*SnapshotMeta, error) {
	query, args, err := sq.Select("source", "imported_at").From("snapshot_meta").Where(sq.Eq{"id": 1}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}
	var m SnapshotMeta
	var at sql.NullString
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&m.Source, &at); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("snapshot meta: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning snapshot meta: %w", err)
	}
	m.ImportedAt = parseTime(at)
	return &m, nil
}

func listRows[T any](ctx context.Context, conn db.DBTX, b sq.SelectBuilder, scan func(*sql.Rows) (T, error)) ([]T, error) {
	rows, err := queryBuilt(ctx, conn, b)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func insertRows[T any](ctx context.Context, conn db.DBTX, table string, columns []string, items []T, values func(T) ([]any, error)) error {
	for start := 0; start < len(items); start += insertBatchSize {
		end := min(start+insertBatchSize, len(items))
		b := sq.Insert(table).Columns(columns...)
		for _, item := range items[start:end] {
			v, err := values(item)
			if err != nil {
				return fmt.Errorf("encoding %s row: %w", table, err)
			}
			b = b.Values(v...)
		}
		if err := execBuilt(ctx, conn, b); err != nil {
			return fmt.Errorf("inserting %s: %w", table, err)
		}
	}
	return nil
}
