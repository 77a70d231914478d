package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/teamlens/internal/table"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestDueText(t *testing.T) {
	tests := []struct {
		name string
		days *int
		want string
	}{
		{"none", nil, "--"},
		{"overdue", intPtr(-3), "3d overdue"},
		{"today", intPtr(0), "today"},
		{"soon", intPtr(4), "in 4d"},
		{"later", intPtr(40), "in 40d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, DueText(tt.days), tt.want)
		})
	}
}

func TestAccessText(t *testing.T) {
	assert.Contains(t, AccessText(0), "today")
	assert.Contains(t, AccessText(5), "5d ago")
	assert.Contains(t, AccessText(45), "45d ago")
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "0m", FormatHours(0))
	assert.Equal(t, "45m", FormatHours(0.75))
	assert.Equal(t, "1.5h", FormatHours(1.5))
}

func TestHumanDate(t *testing.T) {
	assert.Equal(t, "--", HumanDate(time.Time{}))
	assert.Equal(t, "Mar 15, 2025", HumanDate(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "Extend…", Truncate("Extended-Name", 7))
}

func TestRenderBox(t *testing.T) {
	out := RenderBox("Scope", "content here")
	assert.Contains(t, out, "SCOPE")
	assert.Contains(t, out, "content here")
	assert.Contains(t, out, "╭")
}

func TestPageFooter(t *testing.T) {
	page := table.Project([]int{1, 2, 3, 4, 5}, table.Spec[int]{}, table.Query{Page: 1, PageSize: 2})
	assert.Contains(t, PageFooter(page), "Rows 3-4 of 5")
	assert.Contains(t, PageFooter(page), "page 2/3")

	empty := table.Project([]int{}, table.Spec[int]{}, table.Query{})
	assert.Contains(t, PageFooter(empty), "No matching rows")

	past := table.Project([]int{1}, table.Spec[int]{}, table.Query{Page: 4})
	assert.Contains(t, PageFooter(past), "past the end")
}

func TestRenderTable(t *testing.T) {
	out := RenderTable([]string{"NAME", "POINTS"}, [][]string{{"Ana", "340"}, {"Carla", "210"}})
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Carla")
	assert.Contains(t, out, "─")
	assert.Empty(t, RenderTable(nil, nil))
}
