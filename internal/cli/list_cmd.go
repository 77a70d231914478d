package cli

import (
	"fmt"

	"github.com/alexanderramin/teamlens/internal/cli/formatter"
	"github.com/alexanderramin/teamlens/internal/contract"
	"github.com/alexanderramin/teamlens/internal/leader"
	"github.com/alexanderramin/teamlens/internal/service"
	"github.com/alexanderramin/teamlens/internal/table"
	"github.com/spf13/cobra"
)

func newMembersCmd(app *App, view *viewOptions) *cobra.Command {
	var list listOptions

	cmd := &cobra.Command{
		Use:   "members",
		Short: "List visible members with status and engagement",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := list.query(app.Config.Table.PageSize)
			if err != nil {
				return err
			}
			resp, err := app.compute(cmd.Context(), view)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatScopeLine(resp))
			fmt.Fprintln(out, formatter.FormatStatusCounts(resp.StatusCounts))
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.FormatMembers(table.Project(resp.Members, service.MemberTable, q)))
			return nil
		},
	}
	list.bind(cmd.Flags(), service.SortKeys(service.MemberTable), "status")
	return cmd
}

func newLeadersCmd(app *App, view *viewOptions) *cobra.Command {
	var list listOptions
	var top bool
	var rankBy string

	cmd := &cobra.Command{
		Use:   "leaders",
		Short: "List leader metrics, or the leaderboard with --top",
		RunE: func(cmd *cobra.Command, args []string) error {
			by, err := leader.ParseSortBy(rankBy)
			if err != nil {
				return err
			}
			q, err := list.query(app.Config.Table.PageSize)
			if err != nil {
				return err
			}
			resp, err := app.compute(cmd.Context(), view, func(req *contract.DashboardRequest) {
				req.LeaderSort = by
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatScopeLine(resp))
			fmt.Fprintln(out)
			if top {
				fmt.Fprint(out, formatter.FormatLeaderboard(resp.Leaderboard, by))
				return nil
			}
			fmt.Fprint(out, formatter.FormatLeaders(table.Project(resp.Leaders, service.LeaderTable, q)))
			return nil
		},
	}
	list.bind(cmd.Flags(), service.SortKeys(service.LeaderTable), "name")
	cmd.Flags().BoolVar(&top, "top", false, "Show the ranked leaderboard instead of the full list")
	cmd.Flags().StringVar(&rankBy, "rank-by", string(leader.ByEngagement), "Leaderboard order: engagement, completion or actions")
	return cmd
}

func newRankingCmd(app *App, view *viewOptions) *cobra.Command {
	var list listOptions

	cmd := &cobra.Command{
		Use:   "ranking",
		Short: "Show the points ranking of visible members",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := list.query(app.Config.Table.PageSize)
			if err != nil {
				return err
			}
			resp, err := app.compute(cmd.Context(), view)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRanking(table.Project(resp.Ranking, service.RankingTable, q)))
			return nil
		},
	}
	list.bind(cmd.Flags(), service.SortKeys(service.RankingTable), "position")
	return cmd
}

func newCoursesCmd(app *App, view *viewOptions) *cobra.Command {
	var list listOptions

	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Summarise enrollments per visible course",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := list.query(app.Config.Table.PageSize)
			if err != nil {
				return err
			}
			resp, err := app.compute(cmd.Context(), view)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCourses(table.Project(resp.Courses, service.CourseTable, q)))
			return nil
		},
	}
	list.bind(cmd.Flags(), service.SortKeys(service.CourseTable), "title")
	return cmd
}

func newEventsCmd(app *App, view *viewOptions) *cobra.Command {
	var list listOptions

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List events visible members registered for",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := list.query(app.Config.Table.PageSize)
			if err != nil {
				return err
			}
			resp, err := app.compute(cmd.Context(), view)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEvents(table.Project(resp.Events, service.EventTable, q)))
			return nil
		},
	}
	list.bind(cmd.Flags(), service.SortKeys(service.EventTable), "date")
	return cmd
}
