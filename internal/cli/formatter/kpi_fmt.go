package formatter

import (
	"strings"

	"github.com/alexanderramin/teamlens/internal/kpi"
	"github.com/charmbracelet/lipgloss"
)

const kpiCardWidth = 30

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorDim).
	Padding(0, 1).
	Width(kpiCardWidth)

// KPICard renders one KPI as a bordered card: label, value, context line and
// the benchmark trend when one is attached.
func KPICard(r kpi.Result) string {
	value := StyleBold.Render(r.Value)
	if r.NotApplicable {
		value = Dim(r.Value)
	}
	lines := []string{
		StyleHeader.Render(r.Label),
		value,
		Dim(r.Context),
	}
	if r.Trend != nil {
		lines = append(lines, TrendArrow(r.Trend.Direction)+" "+trendStyle(r.Trend.Direction).Render(r.Trend.Text))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

// FormatKPIs lays the cards out in rows of perRow.
func FormatKPIs(results []kpi.Result, perRow int) string {
	if perRow <= 0 {
		perRow = 3
	}
	var rows []string
	for start := 0; start < len(results); start += perRow {
		end := min(start+perRow, len(results))
		cards := make([]string, 0, end-start)
		for _, r := range results[start:end] {
			cards = append(cards, KPICard(r))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

func trendStyle(d kpi.Direction) lipgloss.Style {
	switch d {
	case kpi.Positive:
		return StyleGreen
	case kpi.Negative:
		return StyleRed
	default:
		return StyleDim
	}
}
