package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"members", "courses", "trails", "channels", "pulses", "events", "enrollments", "personas", "ranking", "snapshot_meta"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	for _, idx := range []string{"idx_members_manager", "idx_enrollments_member", "idx_enrollments_course"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestMigrate_EnrollmentCascadesWithMember(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO members (id, name) VALUES ('m1', 'Ana')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO enrollments (id, member_id, course_id, type, status) VALUES ('e1', 'm1', 'missing-course', 'free', 'enrolled')`)
	require.NoError(t, err, "dangling course ids are allowed")

	_, err = db.Exec(`DELETE FROM members WHERE id = 'm1'`)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM enrollments`).Scan(&n))
	assert.Zero(t, n)
}

func TestMigrate_RejectsInvalidEnrollmentType(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO members (id, name) VALUES ('m1', 'Ana')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO enrollments (id, member_id, course_id, type, status) VALUES ('e1', 'm1', 'c1', 'optional', 'enrolled')`)
	assert.Error(t, err)
}

func TestMigrate_BackfillsMemberCounters(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO members (id, name, enrollment_ids, trail_ids) VALUES ('m1', 'Ana', '["e1","e2"]', '["t1","t2","t3"]')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO enrollments (id, member_id, course_id, type, status, progress) VALUES
		('e1', 'm1', 'c1', 'free', 'finished', 100),
		('e2', 'm1', 'c2', 'free', 'started', 40)`)
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	var total, done, trails int
	require.NoError(t, db.QueryRow(`SELECT total_courses, courses_completed, total_trails FROM members WHERE id = 'm1'`).Scan(&total, &done, &trails))
	assert.Equal(t, 2, total)
	assert.Equal(t, 1, done)
	assert.Equal(t, 3, trails)

	// Explicit counters are left alone on the next run.
	_, err = db.Exec(`UPDATE members SET total_courses = 9 WHERE id = 'm1'`)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	require.NoError(t, db.QueryRow(`SELECT total_courses FROM members WHERE id = 'm1'`).Scan(&total))
	assert.Equal(t, 9, total)
}
