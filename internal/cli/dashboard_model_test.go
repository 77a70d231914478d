package cli

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/teamlens/internal/contract"
	"github.com/alexanderramin/teamlens/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardDriver(t *testing.T, pageSize int) *teatest.Driver {
	t.Helper()
	a := testApp(t)
	a.Config.Table.PageSize = pageSize

	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	req := contract.NewDashboardRequest("mgr")
	req.Now = &now
	return teatest.New(t, newDashboardModel(context.Background(), a, req), teatest.WithSize(140, 40))
}

func model(d *teatest.Driver) dashboardModel {
	return d.Model.(dashboardModel)
}

func TestDashboardModel_LoadsMembersTab(t *testing.T) {
	d := newDashboardDriver(t, 10)

	require.NoError(t, model(d).err)
	require.NotNil(t, model(d).resp)
	view := d.View()
	assert.Contains(t, view, "Members")
	assert.Contains(t, view, "Ana Souza")
	assert.Contains(t, view, "sorted by status asc")
	assert.NotContains(t, view, "Loading...")
}

func TestDashboardModel_TabsCycle(t *testing.T) {
	d := newDashboardDriver(t, 10)

	d.Press(tea.KeyTab)
	assert.Equal(t, tabKPIs, model(d).tab)
	assert.Contains(t, d.View(), "Completion rate")

	d.Press(tea.KeyTab)
	assert.Equal(t, tabLeaders, model(d).tab)
	assert.Contains(t, d.View(), "Otto Rivas")

	d.Press(tea.KeyTab)
	assert.Equal(t, tabActions, model(d).tab)
	assert.Contains(t, d.View(), "LOW ENGAGEMENT")

	d.Press(tea.KeyTab)
	assert.Equal(t, tabMembers, model(d).tab)

	d.Press(tea.KeyShiftTab)
	assert.Equal(t, tabActions, model(d).tab)
}

func TestDashboardModel_SearchFiltersLive(t *testing.T) {
	d := newDashboardDriver(t, 10)

	d.PressKey('/')
	assert.True(t, model(d).searching)
	d.Type("carla")

	view := d.View()
	assert.Contains(t, view, "Carla Dias")
	assert.NotContains(t, view, "Ana Souza")

	d.Press(tea.KeyEnter)
	assert.False(t, model(d).searching)
	assert.Equal(t, "carla", model(d).lists[tabMembers].search)

	d.PressKey('/')
	d.Press(tea.KeyEsc)
	assert.Empty(t, model(d).lists[tabMembers].search)
	assert.Contains(t, d.View(), "Ana Souza")
}

func TestDashboardModel_Paging(t *testing.T) {
	d := newDashboardDriver(t, 3)

	assert.Contains(t, d.View(), "Rows 1-3 of 4")

	d.PressKey(']')
	assert.Contains(t, d.View(), "Rows 4-4 of 4")

	d.PressKey(']')
	assert.Equal(t, 1, model(d).lists[tabMembers].pager.Page, "stays on the last page")

	d.PressKey('[')
	assert.Contains(t, d.View(), "Rows 1-3 of 4")
}

func TestDashboardModel_PageSizeResetsToFirstPage(t *testing.T) {
	d := newDashboardDriver(t, 3)

	d.PressKey(']')
	require.Equal(t, 1, model(d).lists[tabMembers].pager.Page)

	d.PressKey('p')
	pager := model(d).lists[tabMembers].pager
	assert.Equal(t, 0, pager.Page)
	assert.Equal(t, 5, pager.PageSize)
	assert.Contains(t, d.View(), "Rows 1-4 of 4")

	for _, want := range []int{10, 25, 50, 5} {
		d.PressKey('p')
		assert.Equal(t, want, model(d).lists[tabMembers].pager.PageSize)
	}
}

func TestDashboardModel_SortCycleAndReverse(t *testing.T) {
	d := newDashboardDriver(t, 10)

	d.PressKey('s')
	assert.Contains(t, d.View(), "sorted by title asc")

	d.PressKey('r')
	assert.Contains(t, d.View(), "sorted by title desc")
}

func TestDashboardModel_BenchmarkToggleRecomputes(t *testing.T) {
	d := newDashboardDriver(t, 10)

	hasTrend := false
	for _, r := range model(d).resp.KPIs {
		hasTrend = hasTrend || r.Trend != nil
	}
	require.True(t, hasTrend)

	d.PressKey('b')

	assert.False(t, model(d).req.BenchmarkEnabled)
	for _, r := range model(d).resp.KPIs {
		assert.Nil(t, r.Trend, r.ID)
	}
}

func TestDashboardModel_Quit(t *testing.T) {
	d := newDashboardDriver(t, 10)

	d.PressKey('q')

	assert.True(t, d.Quitting)
	assert.Empty(t, d.View())
}

func TestDashboardModel_ShowsLoadError(t *testing.T) {
	a := testApp(t)
	d := teatest.New(t, newDashboardModel(context.Background(), a, contract.NewDashboardRequest("ghost")))

	assert.Contains(t, d.View(), "persona")
	assert.Error(t, model(d).err)
}
