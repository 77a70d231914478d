package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN is re-run on every open.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillMemberCounters(db); err != nil {
		return fmt.Errorf("backfilling member counters: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS members (
		id               TEXT PRIMARY KEY,
		name             TEXT NOT NULL,
		job_title        TEXT NOT NULL DEFAULT '',
		manager_id       TEXT,
		overall_progress REAL NOT NULL DEFAULT 0 CHECK(overall_progress >= 0 AND overall_progress <= 100),
		last_access      TEXT,
		enrollment_ids   TEXT NOT NULL DEFAULT '[]',
		trail_ids        TEXT NOT NULL DEFAULT '[]',
		event_ids        TEXT NOT NULL DEFAULT '[]',
		channel_ids      TEXT NOT NULL DEFAULT '[]',
		pulse_ids        TEXT NOT NULL DEFAULT '[]'
	)`,
	`CREATE INDEX IF NOT EXISTS idx_members_manager ON members(manager_id)`,

	`CREATE TABLE IF NOT EXISTS courses (
		id       TEXT PRIMARY KEY,
		title    TEXT NOT NULL,
		duration TEXT NOT NULL DEFAULT '',
		skills   TEXT NOT NULL DEFAULT '[]'
	)`,

	`CREATE TABLE IF NOT EXISTS trails (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		course_ids   TEXT NOT NULL DEFAULT '[]',
		pulse_ids    TEXT NOT NULL DEFAULT '[]',
		is_mandatory INTEGER NOT NULL DEFAULT 0,
		due_date     TEXT,
		skills       TEXT NOT NULL DEFAULT '[]'
	)`,

	`CREATE TABLE IF NOT EXISTS channels (
		id        TEXT PRIMARY KEY,
		title     TEXT NOT NULL,
		pulse_ids TEXT NOT NULL DEFAULT '[]'
	)`,

	`CREATE TABLE IF NOT EXISTS pulses (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		channel_id TEXT NOT NULL DEFAULT '',
		duration   TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS events (
		id       TEXT PRIMARY KEY,
		title    TEXT NOT NULL,
		date     TEXT,
		duration TEXT NOT NULL DEFAULT '',
		capacity INTEGER NOT NULL DEFAULT 0
	)`,

	// course_id carries no foreign key: dangling references are tolerated.
	`CREATE TABLE IF NOT EXISTS enrollments (
		id            TEXT PRIMARY KEY,
		member_id     TEXT NOT NULL REFERENCES members(id) ON DELETE CASCADE,
		course_id     TEXT NOT NULL,
		type          TEXT NOT NULL CHECK(type IN ('free','mandatory')),
		is_regulatory INTEGER NOT NULL DEFAULT 0,
		due_date      TEXT,
		progress      REAL NOT NULL DEFAULT 0 CHECK(progress >= 0 AND progress <= 100),
		status        TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_enrollments_member ON enrollments(member_id)`,
	`CREATE INDEX IF NOT EXISTS idx_enrollments_course ON enrollments(course_id)`,

	`CREATE TABLE IF NOT EXISTS personas (
		id                 TEXT PRIMARY KEY,
		name               TEXT NOT NULL,
		role               TEXT NOT NULL CHECK(role IN ('leader','manager','director')),
		managed_leader_ids TEXT NOT NULL DEFAULT '[]'
	)`,

	`CREATE TABLE IF NOT EXISTS ranking (
		member_id TEXT PRIMARY KEY REFERENCES members(id) ON DELETE CASCADE,
		points    INTEGER NOT NULL DEFAULT 0
	)`,

	// Single-row import bookkeeping.
	`CREATE TABLE IF NOT EXISTS snapshot_meta (
		id          INTEGER PRIMARY KEY CHECK(id = 1),
		source      TEXT NOT NULL,
		imported_at TEXT NOT NULL
	)`,

	// Roster counters arrived after the first release.
	`ALTER TABLE members ADD COLUMN total_courses INTEGER NOT NULL DEFAULT 0`,
	`ALTER TABLE members ADD COLUMN courses_completed INTEGER NOT NULL DEFAULT 0`,
	`ALTER TABLE members ADD COLUMN total_trails INTEGER NOT NULL DEFAULT 0`,
	`ALTER TABLE members ADD COLUMN trails_completed INTEGER NOT NULL DEFAULT 0`,
}

// migrateBackfillMemberCounters derives course counters for members stored
// before the counter columns existed: total from their enrollments, completed
// from those at full progress. Trail counters default to the trail list length.
// Idempotent: only rows with every counter at zero and some content are touched.
func migrateBackfillMemberCounters(db *sql.DB) error {
	ctx := context.Background()

	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM members
		WHERE total_courses = 0 AND total_trails = 0
		AND (enrollment_ids != '[]' OR trail_ids != '[]')`).Scan(&count)
	if err != nil {
		return fmt.Errorf("checking member counters: %w", err)
	}
	if count == 0 {
		return nil
	}

	query := `UPDATE members SET
		total_courses = (SELECT COUNT(*) FROM enrollments e WHERE e.member_id = members.id),
		courses_completed = (SELECT COUNT(*) FROM enrollments e WHERE e.member_id = members.id AND e.progress >= 100),
		total_trails = json_array_length(trail_ids)
		WHERE total_courses = 0 AND total_trails = 0
		AND (enrollment_ids != '[]' OR trail_ids != '[]')`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("updating member counters: %w", err)
	}
	return nil
}
