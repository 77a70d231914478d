package formatter

import (
	"fmt"

	"github.com/alexanderramin/teamlens/internal/table"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
)

const colPadding = 1

// RenderTable renders rows under a styled header with a single separator line
// and no outer border.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderStyle(StyleDim).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return StyleHeader.PaddingRight(colPadding)
			}
			return lipgloss.NewStyle().PaddingRight(colPadding)
		})
	return t.String() + "\n"
}

// PageFooter summarises where a projected page sits in the full result.
func PageFooter[T any](p table.Page[T]) string {
	if p.Total == 0 {
		return Dim("No matching rows")
	}
	first := p.Page*p.PageSize + 1
	last := first + len(p.Items) - 1
	if len(p.Items) == 0 {
		return Dim(fmt.Sprintf("Page %d is past the end (%d rows, %d pages)", p.Page+1, p.Total, p.PageCount))
	}
	return Dim(fmt.Sprintf("Rows %d-%d of %d · page %d/%d", first, last, p.Total, p.Page+1, p.PageCount))
}
