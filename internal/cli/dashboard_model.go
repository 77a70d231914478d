package cli

import (
	"context"
	"slices"
	"strings"

	"github.com/alexanderramin/teamlens/internal/cli/formatter"
	"github.com/alexanderramin/teamlens/internal/contract"
	"github.com/alexanderramin/teamlens/internal/service"
	"github.com/alexanderramin/teamlens/internal/table"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type dashboardTab int

const (
	tabMembers dashboardTab = iota
	tabKPIs
	tabLeaders
	tabActions
	tabCount
)

var tabTitles = [tabCount]string{"Members", "KPIs", "Leaders", "Actions"}

func (t dashboardTab) String() string { return tabTitles[t] }

// dashboardLoadedMsg carries the result of one recompute.
type dashboardLoadedMsg struct {
	resp *contract.DashboardResponse
	err  error
}

// listState is the projection state of one paged tab.
type listState struct {
	search string
	sort   table.SortConfig
	pager  table.Pager
	keys   []string
}

func (l *listState) query() table.Query {
	return table.Query{Search: l.search, Sort: l.sort, Page: l.pager.Page, PageSize: l.pager.PageSize}
}

// pageSizeChoices are the sizes the page-size key steps through.
var pageSizeChoices = []int{5, 10, 25, 50}

// cyclePageSize moves to the next larger choice, wrapping to the smallest,
// and returns to the first page.
func (l *listState) cyclePageSize() {
	next := pageSizeChoices[0]
	for _, size := range pageSizeChoices {
		if size > l.pager.PageSize {
			next = size
			break
		}
	}
	l.pager.SetPageSize(next)
}

func (l *listState) cycleSort() {
	if len(l.keys) == 0 {
		return
	}
	next := 0
	if i := slices.Index(l.keys, l.sort.Key); i >= 0 {
		next = (i + 1) % len(l.keys)
	}
	l.sort = table.SortConfig{Key: l.keys[next], Direction: table.Asc}
	l.pager.Reset()
}

// dashboardModel is the interactive dashboard. Every request change triggers
// a full recompute through the dashboard service.
type dashboardModel struct {
	ctx  context.Context
	app  *App
	req  contract.DashboardRequest
	keys dashboardKeyMap
	help help.Model

	resp    *contract.DashboardResponse
	err     error
	loading bool

	tab       dashboardTab
	lists     map[dashboardTab]*listState
	search    textinput.Model
	searching bool

	width    int
	height   int
	quitting bool
}

func newDashboardModel(ctx context.Context, a *App, req contract.DashboardRequest) dashboardModel {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter rows"

	pageSize := a.Config.Table.PageSize
	return dashboardModel{
		ctx:     ctx,
		app:     a,
		req:     req,
		keys:    newDashboardKeyMap(),
		help:    help.New(),
		loading: true,
		search:  ti,
		lists: map[dashboardTab]*listState{
			tabMembers: {
				sort:  table.SortConfig{Key: "status", Direction: table.Asc},
				pager: table.Pager{PageSize: pageSize},
				keys:  service.SortKeys(service.MemberTable),
			},
			tabLeaders: {
				sort:  table.SortConfig{Key: "engagement", Direction: table.Desc},
				pager: table.Pager{PageSize: pageSize},
				keys:  service.SortKeys(service.LeaderTable),
			},
		},
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.load()
}

func (m dashboardModel) load() tea.Cmd {
	ctx, a, req := m.ctx, m.app, m.req
	return func() tea.Msg {
		resp, err := a.Dashboard.Compute(ctx, req)
		return dashboardLoadedMsg{resp: resp, err: err}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case dashboardLoadedMsg:
		m.loading = false
		m.resp, m.err = msg.resp, msg.err
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m dashboardModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	list := m.lists[m.tab]
	switch msg.Type {
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		list.search = ""
		list.pager.Reset()
		return m, nil
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	list.search = m.search.Value()
	list.pager.Reset()
	return m, cmd
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	list := m.lists[m.tab]

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextTab):
		m.tab = (m.tab + 1) % tabCount
		m.syncSearch()

	case key.Matches(msg, m.keys.PrevTab):
		m.tab = (m.tab + tabCount - 1) % tabCount
		m.syncSearch()

	case key.Matches(msg, m.keys.Search):
		if list == nil {
			return m, nil
		}
		m.searching = true
		m.search.SetValue(list.search)
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.NextPage):
		if list != nil {
			list.pager.Next(m.filteredTotal())
		}

	case key.Matches(msg, m.keys.PrevPage):
		if list != nil {
			list.pager.Prev()
		}

	case key.Matches(msg, m.keys.PageSize):
		if list != nil {
			list.cyclePageSize()
		}

	case key.Matches(msg, m.keys.Sort):
		if list != nil {
			list.cycleSort()
		}

	case key.Matches(msg, m.keys.Reverse):
		if list != nil {
			list.sort = list.sort.Toggle(list.sort.Key)
		}

	case key.Matches(msg, m.keys.Benchmark):
		m.req.BenchmarkEnabled = !m.req.BenchmarkEnabled
		m.loading = true
		return m, m.load()

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, m.load()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *dashboardModel) syncSearch() {
	if list := m.lists[m.tab]; list != nil {
		m.search.SetValue(list.search)
	}
}

// filteredTotal counts the rows of the current tab that pass its search.
func (m dashboardModel) filteredTotal() int {
	if m.resp == nil {
		return 0
	}
	list := m.lists[m.tab]
	switch m.tab {
	case tabMembers:
		return len(table.Filter(m.resp.Members, service.MemberTable.Search, list.search))
	case tabLeaders:
		return len(table.Filter(m.resp.Leaders, service.LeaderTable.Search, list.search))
	}
	return 0
}

var (
	activeTabStyle   = formatter.StyleHeader.Underline(true)
	inactiveTabStyle = formatter.StyleDim
)

func (m dashboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderTabs() + "\n\n")

	switch {
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	case m.loading && m.resp == nil:
		b.WriteString(formatter.Dim("Loading...") + "\n")
	default:
		b.WriteString(formatter.FormatScopeLine(m.resp) + "\n\n")
		b.WriteString(m.renderBody())
	}

	if list := m.lists[m.tab]; list != nil && (m.searching || list.search != "") {
		b.WriteString("\n" + m.search.View() + "\n")
	}
	if list := m.lists[m.tab]; list != nil && list.sort.Key != "" {
		b.WriteString(formatter.Dim("sorted by "+list.sort.Key+" "+string(list.sort.Direction)) + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m dashboardModel) renderTabs() string {
	parts := make([]string, 0, tabCount)
	for t := dashboardTab(0); t < tabCount; t++ {
		style := inactiveTabStyle
		if t == m.tab {
			style = activeTabStyle
		}
		parts = append(parts, style.Render(t.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, formatter.Dim(" │ ")))
}

func (m dashboardModel) renderBody() string {
	resp := m.resp
	switch m.tab {
	case tabMembers:
		return formatter.FormatStatusCounts(resp.StatusCounts) + "\n\n" +
			formatter.FormatMembers(table.Project(resp.Members, service.MemberTable, m.lists[tabMembers].query()))
	case tabKPIs:
		return formatter.FormatKPIs(resp.KPIs, m.cardsPerRow())
	case tabLeaders:
		return formatter.FormatLeaders(table.Project(resp.Leaders, service.LeaderTable, m.lists[tabLeaders].query()))
	case tabActions:
		return formatter.Header("Actions") + "\n" + formatter.FormatActions(resp.Actions) + "\n" +
			formatter.Header("Low engagement") + "\n" + formatter.FormatLowEngagement(resp.LowEngagement)
	}
	return ""
}

func (m dashboardModel) cardsPerRow() int {
	const cardOuterWidth = 34
	if m.width <= 0 {
		return kpiCardsPerRow
	}
	return max(1, m.width/cardOuterWidth)
}
