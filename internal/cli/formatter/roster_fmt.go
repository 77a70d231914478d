package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/teamlens/internal/contract"
	"github.com/alexanderramin/teamlens/internal/domain"
	"github.com/alexanderramin/teamlens/internal/status"
	"github.com/alexanderramin/teamlens/internal/table"
)

const (
	memberProgressWidth = 10
	nameWidth           = 28
)

// FormatMembers renders one page of classified members.
func FormatMembers(p table.Page[contract.MemberView]) string {
	headers := []string{"NAME", "TITLE", "MANAGER", "STATUS", "ENGAGEMENT", "PROGRESS", "LAST ACCESS", "NEXT DUE"}
	rows := make([][]string, 0, len(p.Items))
	for _, v := range p.Items {
		manager := v.ManagerName
		if manager == "" {
			manager = Dim("--")
		}
		rows = append(rows, []string{
			Bold(Truncate(v.Member.Name, nameWidth)),
			Truncate(v.Member.JobTitle, nameWidth),
			manager,
			StatusPill(v.General),
			EngagementPill(v.Engagement),
			RenderProgress(v.Member.OverallProgress, memberProgressWidth),
			AccessText(v.DaysSinceAccess),
			DueText(v.NextDueInDays),
		})
	}
	return RenderTable(headers, rows) + PageFooter(p) + "\n"
}

// FormatStatusCounts renders the per-status tally in priority order.
func FormatStatusCounts(counts map[status.General]int) string {
	type entry struct {
		g status.General
		n int
	}
	entries := make([]entry, 0, len(counts))
	for g, n := range counts {
		entries = append(entries, entry{g, n})
	}
	sort.Slice(entries, func(i, j int) bool {
		return status.MetaFor(entries[i].g).Priority < status.MetaFor(entries[j].g).Priority
	})
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		meta := status.MetaFor(e.g)
		parts = append(parts, ToneStyle(meta.Tone).Render(fmt.Sprintf("%d %s", e.n, meta.Label)))
	}
	if len(parts) == 0 {
		return Dim("No members in view")
	}
	return strings.Join(parts, ", ")
}

// FormatScopeLine describes who is looking and what narrows the view.
func FormatScopeLine(resp *contract.DashboardResponse) string {
	who := resp.Persona.Name
	if resp.Persona.Role != "" {
		who += Dim(" (" + string(resp.Persona.Role) + ")")
	}
	parts := []string{Bold(who)}
	switch {
	case resp.Dataset.ActiveLeaderIDs == nil:
		parts = append(parts, Dim("all visible teams"))
	case len(resp.Dataset.ActiveLeaderIDs) == 0:
		parts = append(parts, StyleYellow.Render("no authorised leaders selected"))
	default:
		parts = append(parts, Dim("leaders: "+strings.Join(resp.Dataset.ActiveLeaderIDs, ", ")))
	}
	if len(resp.Flags) > 0 {
		parts = append(parts, StylePurple.Render("toggles: "+strings.Join(resp.Flags, ", ")))
	}
	parts = append(parts, Dim("as of "+HumanDate(resp.Now)))
	return strings.Join(parts, Dim(" · "))
}

// FormatPersonas lists the personas available for impersonation.
func FormatPersonas(personas []domain.Persona) string {
	if len(personas) == 0 {
		return Dim("No personas imported.") + "\n"
	}
	rows := make([][]string, 0, len(personas))
	for _, p := range personas {
		managed := Dim("all")
		if len(p.ManagedLeaderIDs) > 0 {
			managed = strings.Join(p.ManagedLeaderIDs, ", ")
		}
		rows = append(rows, []string{p.ID, Bold(p.Name), string(p.Role), managed})
	}
	return RenderTable([]string{"ID", "NAME", "ROLE", "LEADERS"}, rows)
}

// FormatImportResult summarises a stored snapshot.
func FormatImportResult(r *contract.ImportResult) string {
	lines := []string{
		StyleGreen.Render("✔ Snapshot imported") + Dim(" from "+r.Source),
		"",
		fmt.Sprintf("  %-12s %d", "Members", r.Members),
		fmt.Sprintf("  %-12s %d", "Enrollments", r.Enrollments),
		fmt.Sprintf("  %-12s %d", "Courses", r.Courses),
		fmt.Sprintf("  %-12s %d", "Trails", r.Trails),
		fmt.Sprintf("  %-12s %d", "Channels", r.Channels),
		fmt.Sprintf("  %-12s %d", "Pulses", r.Pulses),
		fmt.Sprintf("  %-12s %d", "Events", r.Events),
		fmt.Sprintf("  %-12s %d", "Ranking", r.Ranking),
		fmt.Sprintf("  %-12s %d", "Personas", r.Personas),
	}
	if len(r.Warnings) > 0 {
		lines = append(lines, "", StyleYellow.Render(fmt.Sprintf("%d warning(s):", len(r.Warnings))))
		for _, w := range r.Warnings {
			lines = append(lines, "  "+Dim(w))
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
