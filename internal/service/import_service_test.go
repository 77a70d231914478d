package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alexanderramin/teamlens/internal/importer"
	"github.com/alexanderramin/teamlens/internal/logger"
	"github.com/alexanderramin/teamlens/internal/repository"
	"github.com/alexanderramin/teamlens/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestImportSnapshot_CountsAndMeta(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(database))
	ctx := context.Background()

	result, err := svc.ImportSnapshot(ctx, fixturePath)
	require.NoError(t, err)

	assert.Equal(t, fixturePath, result.Source)
	assert.Equal(t, 6, result.Members)
	assert.Equal(t, 6, result.Enrollments)
	assert.Equal(t, 3, result.Courses)
	assert.Equal(t, 1, result.Trails)
	assert.Equal(t, 1, result.Channels)
	assert.Equal(t, 2, result.Pulses)
	assert.Equal(t, 1, result.Events)
	assert.Equal(t, 3, result.Ranking)
	assert.Equal(t, 3, result.Personas)

	meta, err := repository.NewSQLiteSnapshotRepo(database).Meta(ctx)
	require.NoError(t, err)
	assert.Equal(t, fixturePath, meta.Source)
	assert.WithinDuration(t, result.ImportedAt, meta.ImportedAt, time.Second)
}

func TestImportSnapshot_MissingFile(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(database))

	_, err := svc.ImportSnapshot(context.Background(), "testdata/does-not-exist.json")
	assert.ErrorContains(t, err, "loading import file")
}

func TestImportSnapshot_ReplacesPreviousSnapshot(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(database))
	ctx := context.Background()

	_, err := svc.ImportSnapshot(ctx, fixturePath)
	require.NoError(t, err)

	small := &importer.ImportSchema{
		Members: []importer.MemberImport{{ID: "solo", Name: "Solo Lead"}},
	}
	result, err := svc.ImportSnapshotFromSchema(ctx, small, "inline")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Members)

	snap, err := repository.NewSQLiteSnapshotRepo(database).Load(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Members, 1)
	assert.Equal(t, "solo", snap.Members[0].ID)
	assert.Empty(t, snap.Enrollments)
	assert.Empty(t, snap.Personas)
}

func TestImportSnapshot_ValidationErrorsStoreNothing(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(database))
	ctx := context.Background()

	bad := &importer.ImportSchema{
		Members: []importer.MemberImport{{ID: "a", Name: ""}},
		Enrollments: []importer.EnrollmentImport{
			{ID: "e1", MemberID: "ghost", CourseID: "c1", Type: "free"},
		},
	}
	_, err := svc.ImportSnapshotFromSchema(ctx, bad, "inline")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import validation failed (2 errors)")
	assert.Contains(t, err.Error(), `member_id "ghost" not found`)

	_, err = repository.NewSQLiteSnapshotRepo(database).Meta(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestImportSnapshot_RollbackOnStoreFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	_, err := NewImportService(testutil.NewTestUoW(database)).ImportSnapshot(ctx, fixturePath)
	require.NoError(t, err)

	// Fail after the old rows are deleted and some new members are written.
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     database,
		FailOn: 12,
		Err:    fmt.Errorf("injected insert failure"),
	}
	small := &importer.ImportSchema{
		Members: []importer.MemberImport{{ID: "solo", Name: "Solo Lead"}},
	}
	_, err = NewImportService(failUoW).ImportSnapshotFromSchema(ctx, small, "inline")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected insert failure")

	snap, err := repository.NewSQLiteSnapshotRepo(database).Load(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Members, 6, "previous snapshot survives the failed replace")
	assert.Len(t, snap.Personas, 3)
}

func TestImportSnapshot_UnparsableDatesImportAsAbsent(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(database))
	ctx := context.Background()

	bad := "last tuesday"
	schema := &importer.ImportSchema{
		Members: []importer.MemberImport{{ID: "a", Name: "Ana", LastAccess: &bad}},
		Enrollments: []importer.EnrollmentImport{
			{ID: "e1", MemberID: "a", CourseID: "c1", Type: "mandatory", DueDate: &bad},
		},
	}
	result, err := svc.ImportSnapshotFromSchema(ctx, schema, "inline")
	require.NoError(t, err)
	assert.Len(t, result.Warnings, 2)

	snap, err := repository.NewSQLiteSnapshotRepo(database).Load(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Members, 1)
	assert.True(t, snap.Members[0].LastAccess.IsZero())
	require.Len(t, snap.Enrollments, 1)
	assert.Nil(t, snap.Enrollments[0].DueDate)
}

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func TestObserver_ReceivesUseCaseEvents(t *testing.T) {
	obs := &recordingObserver{}
	svc := setupDashboard(t, obs)

	_, err := svc.Compute(context.Background(), dashboardRequest("mgr"))
	require.NoError(t, err)
	_, err = svc.Compute(context.Background(), dashboardRequest("ghost"))
	require.Error(t, err)

	require.Len(t, obs.events, 2)
	assert.Equal(t, "dashboard.compute", obs.events[0].Name)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, 4, obs.events[0].Fields["members"])
	assert.False(t, obs.events[1].Success)
	assert.ErrorIs(t, obs.events[1].Err, ErrPersonaNotFound)
}

func TestLogObserver_WritesStructuredEntries(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}

	database := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(database), NewLogUseCaseObserver(log))
	_, err := svc.ImportSnapshot(context.Background(), fixturePath)
	require.NoError(t, err)
	_, err = svc.ImportSnapshotFromSchema(context.Background(), &importer.ImportSchema{
		Members: []importer.MemberImport{{ID: "x"}},
	}, "inline")
	require.Error(t, err)

	entries := logs.FilterMessage("service_use_case").All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "snapshot.import", entries[0].ContextMap()["use_case"])
	assert.Equal(t, int64(6), entries[0].ContextMap()["members"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func TestNewLogUseCaseObserver_NilLoggerIsNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}
