package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/alexanderramin/teamlens/internal/config"
	"github.com/alexanderramin/teamlens/internal/domain"
	"github.com/alexanderramin/teamlens/internal/repository"
	"github.com/alexanderramin/teamlens/internal/service"
	"github.com/alexanderramin/teamlens/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixturePath = "../importer/testdata/snapshot.json"

// testApp wires a full App backed by an in-memory DB holding the fixture
// snapshot.
func testApp(t *testing.T) *App {
	t.Helper()
	app := emptyApp(t)
	_, err := app.Import.ImportSnapshot(context.Background(), fixturePath)
	require.NoError(t, err)
	return app
}

func emptyApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	cfg := config.Default()
	return &App{
		Dashboard: service.NewDashboardService(testutil.NewTestUoW(database), cfg.Benchmarks()),
		Import:    service.NewImportService(testutil.NewTestUoW(database)),
		Personas:  service.NewPersonaService(repository.NewSQLitePersonaRepo(database)),
		Config:    cfg,
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	output, err := executeCmd(t, emptyApp(t))
	require.NoError(t, err)
	assert.Contains(t, output, "teamlens")
	assert.Contains(t, output, "members")
}

// --- import / personas ---

func TestImportCmd(t *testing.T) {
	app := emptyApp(t)

	output, err := executeCmd(t, app, "import", fixturePath)
	require.NoError(t, err)
	assert.Contains(t, output, "Snapshot imported")
	assert.Contains(t, output, "Members")

	output, err = executeCmd(t, app, "personas")
	require.NoError(t, err)
	assert.Contains(t, output, "Max Manager")
	assert.Contains(t, output, "5, 6")
}

func TestImportCmd_RequiresFile(t *testing.T) {
	_, err := executeCmd(t, emptyApp(t), "import")
	assert.Error(t, err)
}

func TestImportCmd_MissingFile(t *testing.T) {
	_, err := executeCmd(t, emptyApp(t), "import", "testdata/nope.json")
	assert.ErrorContains(t, err, "loading import file")
}

func TestPersonasCmd_Empty(t *testing.T) {
	output, err := executeCmd(t, emptyApp(t), "personas")
	require.NoError(t, err)
	assert.Contains(t, output, "No personas imported")
}

// --- members ---

func TestMembersCmd_ManagerView(t *testing.T) {
	output, err := executeCmd(t, testApp(t), "members", "--persona", "mgr", "--now", "2025-03-15")
	require.NoError(t, err)
	assert.Contains(t, output, "Max Manager")
	assert.Contains(t, output, "Ana Souza")
	assert.Contains(t, output, "Davi Rocha")
	assert.NotContains(t, output, "Engineering Lead", "leaders are not members of their own teams")
	assert.Contains(t, output, "Rows 1-4 of 4")
}

func TestMembersCmd_LeaderDrillDown(t *testing.T) {
	output, err := executeCmd(t, testApp(t), "members", "-p", "mgr", "--leader", "5", "--now", "2025-03-15")
	require.NoError(t, err)
	assert.Contains(t, output, "Bruno Lima")
	assert.NotContains(t, output, "Carla Dias")
	assert.Contains(t, output, "leaders: 5")
}

func TestMembersCmd_UnauthorisedLeader(t *testing.T) {
	output, err := executeCmd(t, testApp(t), "members", "-p", "lead5", "-l", "6")
	require.NoError(t, err)
	assert.Contains(t, output, "no authorised leaders")
	assert.Contains(t, output, "No matching rows")
}

func TestMembersCmd_SearchAndPaging(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "members", "-p", "mgr", "--search", "carla")
	require.NoError(t, err)
	assert.Contains(t, output, "Carla Dias")
	assert.NotContains(t, output, "Ana Souza")

	output, err = executeCmd(t, app, "members", "--sort", "name", "--page", "2", "--page-size", "4")
	require.NoError(t, err)
	assert.Contains(t, output, "Lara Mendes")
	assert.NotContains(t, output, "Ana Souza")
	assert.Contains(t, output, "Rows 5-6 of 6")
}

func TestMembersCmd_InvalidListFlags(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "members", "--sort", "shoe-size")
	assert.ErrorContains(t, err, "unknown sort key")

	_, err = executeCmd(t, app, "members", "--page", "0")
	assert.ErrorContains(t, err, "--page")
}

func TestMembersCmd_UnknownPersona(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "members", "--persona", "ghost")
	assert.ErrorIs(t, err, service.ErrPersonaNotFound)
}

func TestMembersCmd_InvalidNow(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "members", "--now", "yesterday")
	assert.ErrorContains(t, err, "--now")
}

// --- toggles ---

func TestToggleFlag_UnknownName(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "members", "--toggle", "gravity-off")
	assert.ErrorContains(t, err, "unknown corner case")
}

func TestToggleFlag_ClearRanking(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "ranking")
	require.NoError(t, err)
	assert.Contains(t, output, "Ana Souza")

	output, err = executeCmd(t, app, "ranking", "--toggle", "clear-ranking")
	require.NoError(t, err)
	assert.Contains(t, output, "No matching rows")
}

func TestToggleFlag_ClearMemberContent(t *testing.T) {
	output, err := executeCmd(t, testApp(t), "courses", "-p", "mgr", "--toggle", "clear-member-content", "--clear-member", "m1,m2")
	require.NoError(t, err)
	assert.NotContains(t, output, "Security Awareness", "only cleared members were enrolled")
	assert.Contains(t, output, "Customer Care Basics")
}

// --- kpis / leaders / feeds ---

func TestKPIsCmd_BenchmarkToggle(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "kpis", "-p", "mgr", "--now", "2025-03-15")
	require.NoError(t, err)
	assert.Contains(t, output, "Completion rate")
	assert.Contains(t, output, "benchmark")

	output, err = executeCmd(t, app, "kpis", "-p", "mgr", "--now", "2025-03-15", "--no-benchmark")
	require.NoError(t, err)
	assert.Contains(t, output, "Completion rate")
	assert.NotContains(t, output, "benchmark")
}

func TestKPIsCmd_EmptyDataset(t *testing.T) {
	output, err := executeCmd(t, testApp(t), "kpis", "--toggle", "empty-dataset")
	require.NoError(t, err)
	assert.Contains(t, output, "N/A")
	assert.Contains(t, output, "toggles: empty-dataset")
}

func TestLeadersCmd(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "leaders", "-p", "mgr")
	require.NoError(t, err)
	assert.Contains(t, output, "Lara Mendes")
	assert.Contains(t, output, "Otto Rivas")

	output, err = executeCmd(t, app, "leaders", "-p", "mgr", "--top", "--rank-by", "completion")
	require.NoError(t, err)
	assert.Contains(t, output, "ranked by completion")
	assert.Contains(t, output, "#2")

	_, err = executeCmd(t, app, "leaders", "--rank-by", "height")
	assert.ErrorContains(t, err, "unknown ranking dimension")
}

func TestActionsAndEngagementCmds(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "actions", "-p", "mgr", "--now", "2025-03-15")
	require.NoError(t, err)
	assert.NotEmpty(t, output)

	output, err = executeCmd(t, app, "engagement", "-p", "mgr", "--now", "2025-03-15")
	require.NoError(t, err)
	assert.NotEmpty(t, output)
}

func TestActionsCmd_AllInactive(t *testing.T) {
	output, err := executeCmd(t, testApp(t), "actions", "-p", "mgr", "--toggle", "all-inactive")
	require.NoError(t, err)
	assert.Contains(t, output, "Inactive")
	assert.Contains(t, output, "HIGH")
}

func TestCoursesAndEventsCmds(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "courses", "--sort", "hours")
	require.NoError(t, err)
	assert.Contains(t, output, "Customer Care Basics")
	assert.Contains(t, output, "45m")

	output, err = executeCmd(t, app, "events")
	require.NoError(t, err)
	assert.Contains(t, output, "Quarterly Summit")
	assert.Contains(t, output, "Apr 10, 2025")
}

func TestDashboardCmd_StaticWhenNotInteractive(t *testing.T) {
	output, err := executeCmd(t, testApp(t), "dashboard", "-p", "mgr")
	require.NoError(t, err)
	assert.Contains(t, output, "ACTIONS")
	assert.Contains(t, output, "Total enrollments")
}

// --- persona picker ---

func TestPersonaPicker_UsedOnTerminalWithoutFlag(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }
	var offered []domain.Persona
	app.PickPersona = func(_ context.Context, personas []domain.Persona) (string, error) {
		offered = personas
		return "lead5", nil
	}

	output, err := executeCmd(t, app, "members")
	require.NoError(t, err)
	assert.Len(t, offered, 3)
	assert.Contains(t, output, "Lara Mendes")
	assert.Contains(t, output, "(leader)")
}

func TestPersonaPicker_SkippedWhenFlagGiven(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }
	app.PickPersona = func(context.Context, []domain.Persona) (string, error) {
		t.Fatal("picker should not run")
		return "", nil
	}

	_, err := executeCmd(t, app, "members", "--persona", "dir")
	require.NoError(t, err)
}
