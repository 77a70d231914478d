package importer

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/teamlens/internal/domain"
)

func TestConvert_SampleFile(t *testing.T) {
	schema, err := LoadImportSchema("testdata/snapshot.json")
	require.NoError(t, err)
	require.Empty(t, ValidateImportSchema(schema))

	snap := Convert(schema)

	require.Len(t, snap.Members, 6)
	require.Len(t, snap.Enrollments, 6)
	assert.Len(t, snap.Personas, 3)

	lara := snap.Members[0]
	assert.True(t, lara.IsLeader())
	assert.Equal(t, time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC), lara.LastAccess)

	carla := snap.Members[4]
	assert.Equal(t, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), carla.LastAccess, "date-only access parses to midnight")
	assert.Equal(t, []string{"e4", "e5"}, carla.EnrollmentIDs, "derived from enrollments")
	assert.Equal(t, 2, carla.TotalCourses)
	assert.Equal(t, 0, carla.CoursesCompleted)

	davi := snap.Members[5]
	assert.Equal(t, 6, davi.TotalCourses, "explicit counters win")
	assert.Equal(t, 2, davi.CoursesCompleted)
	require.Len(t, davi.EnrollmentIDs, 1)
	_, err = uuid.Parse(davi.EnrollmentIDs[0])
	assert.NoError(t, err, "enrollment without id gets a uuid")
	assert.Equal(t, snap.Enrollments[5].ID, davi.EnrollmentIDs[0])

	bruno := snap.Members[3]
	assert.Equal(t, 2, bruno.TotalTrails)

	e4 := snap.Enrollments[3]
	assert.Equal(t, domain.StatusEnrolled, e4.Status, "missing status defaults to enrolled")
	assert.True(t, e4.IsMandatory())
	require.NotNil(t, e4.DueDate)
	assert.Equal(t, time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), *e4.DueDate)

	require.Len(t, snap.Trails, 1)
	assert.True(t, snap.Trails[0].HasDeadline())
	assert.Equal(t, time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC), snap.Events[0].Date)
	assert.Equal(t, []string{"5", "6"}, snap.Personas[1].ManagedLeaderIDs)
}

func TestConvert_MemberWithoutIDGetsUUID(t *testing.T) {
	snap := Convert(&ImportSchema{Members: []MemberImport{{Name: "Nameless"}}})

	require.Len(t, snap.Members, 1)
	_, err := uuid.Parse(snap.Members[0].ID)
	assert.NoError(t, err)
	assert.True(t, snap.Members[0].LastAccess.IsZero())
	assert.Nil(t, snap.Members[0].ManagerID)
}

func TestConvert_EmptyManagerIsLeader(t *testing.T) {
	snap := Convert(&ImportSchema{Members: []MemberImport{{ID: "x", Name: "X", ManagerID: ptrStr("")}}})
	assert.True(t, snap.Members[0].IsLeader())
}
