package leader

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/teamlens/internal/domain"
)

type SortBy string

const (
	ByEngagement SortBy = "engagement"
	ByCompletion SortBy = "completion"
	ByActions    SortBy = "actions"
)

// LeaderboardSize caps the leader ranking view.
const LeaderboardSize = 10

// ParseSortBy accepts the ranking dimension names used on the command line.
func ParseSortBy(s string) (SortBy, error) {
	switch SortBy(strings.ToLower(strings.TrimSpace(s))) {
	case ByEngagement, "":
		return ByEngagement, nil
	case ByCompletion:
		return ByCompletion, nil
	case ByActions:
		return ByActions, nil
	}
	return "", fmt.Errorf("unknown ranking dimension %q (want engagement, completion or actions)", s)
}

// RankLeaders returns a sorted copy of metrics, descending by the chosen
// dimension with name as tie-break, truncated to LeaderboardSize.
func RankLeaders(metrics []Metrics, by SortBy) []Metrics {
	out := slices.Clone(metrics)
	slices.SortStableFunc(out, func(a, b Metrics) int {
		var c int
		switch by {
		case ByCompletion:
			c = cmp.Compare(b.TeamCompletionRate, a.TeamCompletionRate)
		case ByActions:
			c = cmp.Compare(b.ActionsThisWeek, a.ActionsThisWeek)
		default:
			c = cmp.Compare(b.EngagementScore, a.EngagementScore)
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	if len(out) > LeaderboardSize {
		out = out[:LeaderboardSize]
	}
	return out
}

type MemberRankingItem struct {
	Position int
	MemberID string
	Name     string
	JobTitle string
	Points   int
}

// RankMembers joins the raw ranking with the roster and assigns competition
// positions: equal points share a position and the next one skips ahead.
// Entries whose member is not in members are dropped.
func RankMembers(ranking []domain.RankingEntry, members []domain.Member) []MemberRankingItem {
	byID := make(map[string]domain.Member, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}

	var items []MemberRankingItem
	for _, r := range ranking {
		m, ok := byID[r.MemberID]
		if !ok {
			continue
		}
		items = append(items, MemberRankingItem{MemberID: m.ID, Name: m.Name, JobTitle: m.JobTitle, Points: r.Points})
	}

	slices.SortStableFunc(items, func(a, b MemberRankingItem) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	for i := range items {
		if i > 0 && items[i].Points == items[i-1].Points {
			items[i].Position = items[i-1].Position
			continue
		}
		items[i].Position = i + 1
	}
	return items
}
