package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/teamlens/internal/kpi"
	"github.com/alexanderramin/teamlens/internal/leader"
	"github.com/alexanderramin/teamlens/internal/status"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ToneStyle maps a status tone onto the palette.
func ToneStyle(t status.Tone) lipgloss.Style {
	switch t {
	case status.ToneDanger:
		return StyleRed
	case status.ToneWarning:
		return StyleYellow
	case status.ToneSuccess:
		return StyleGreen
	default:
		return StyleDim
	}
}

// StatusPill renders a general status such as "● At Risk".
func StatusPill(g status.General) string {
	meta := status.MetaFor(g)
	return ToneStyle(meta.Tone).Render("● " + meta.Label)
}

// EngagementPill renders an engagement level.
func EngagementPill(e status.Engagement) string {
	meta := status.EngagementMetaFor(e)
	return ToneStyle(meta.Tone).Render(meta.Label)
}

// SeverityPill renders an action severity.
func SeverityPill(s leader.Severity) string {
	switch s {
	case leader.High:
		return StyleRed.Render("▲ HIGH")
	case leader.Medium:
		return StyleYellow.Render("● MEDIUM")
	default:
		return StyleBlue.Render("○ LOW")
	}
}

// TrendArrow renders a KPI trend direction.
func TrendArrow(d kpi.Direction) string {
	switch d {
	case kpi.Positive:
		return StyleGreen.Render("▲")
	case kpi.Negative:
		return StyleRed.Render("▼")
	default:
		return StyleDim.Render("▶")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
