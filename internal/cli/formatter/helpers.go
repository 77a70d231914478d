package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// AccessText colours a days-since-access value by how stale it is.
func AccessText(days int) string {
	switch {
	case days <= 0:
		return StyleGreen.Render("today")
	case days <= 7:
		return StyleGreen.Render(fmt.Sprintf("%dd ago", days))
	case days <= 30:
		return StyleYellow.Render(fmt.Sprintf("%dd ago", days))
	default:
		return StyleRed.Render(fmt.Sprintf("%dd ago", days))
	}
}

// DueText renders days until the next deadline; nil means none.
func DueText(days *int) string {
	if days == nil {
		return Dim("--")
	}
	d := *days
	switch {
	case d < 0:
		return StyleRed.Render(fmt.Sprintf("%dd overdue", -d))
	case d == 0:
		return StyleRed.Render("today")
	case d <= 7:
		return StyleYellow.Render(fmt.Sprintf("in %dd", d))
	default:
		return StyleFg.Render(fmt.Sprintf("in %dd", d))
	}
}

// FormatHours renders a duration in hours, switching to minutes below one hour.
func FormatHours(h float64) string {
	if h <= 0 {
		return "0m"
	}
	if h < 1 {
		return fmt.Sprintf("%.0fm", h*60)
	}
	return fmt.Sprintf("%.1fh", h)
}

// HumanDate returns a short absolute date.
func HumanDate(t time.Time) string {
	if t.IsZero() {
		return "--"
	}
	return t.Format("Jan 2, 2006")
}

// Truncate shortens s to width visible cells, ending in an ellipsis.
func Truncate(s string, width int) string {
	if width <= 1 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
