package cli

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/alexanderramin/teamlens/internal/config"
	"github.com/alexanderramin/teamlens/internal/contract"
	"github.com/alexanderramin/teamlens/internal/cornercase"
	"github.com/alexanderramin/teamlens/internal/importer"
	"github.com/alexanderramin/teamlens/internal/table"
	"github.com/spf13/pflag"
)

// toggleValue collects corner-case names. It accepts repeated flags and
// comma-separated lists and rejects unknown names at parse time.
type toggleValue struct {
	names []cornercase.Name
}

var _ pflag.Value = (*toggleValue)(nil)

func (t *toggleValue) String() string {
	parts := make([]string, len(t.names))
	for i, n := range t.names {
		parts[i] = string(n)
	}
	return strings.Join(parts, ",")
}

func (t *toggleValue) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		n, err := cornercase.ParseName(part)
		if err != nil {
			return err
		}
		if !slices.Contains(t.names, n) {
			t.names = append(t.names, n)
		}
	}
	return nil
}

func (t *toggleValue) Type() string { return "toggle" }

// viewOptions are the persistent flags that shape every recompute.
type viewOptions struct {
	persona      string
	leaders      []string
	toggles      toggleValue
	clearMembers []string
	now          string
	noBenchmark  bool
}

func (o *viewOptions) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.persona, "persona", "p", "", "View as this persona ID (default: all teams, or a picker on a terminal)")
	fs.StringSliceVarP(&o.leaders, "leader", "l", nil, "Drill down to these leader IDs (repeatable)")
	fs.Var(&o.toggles, "toggle", "Corner case to apply (repeatable): "+strings.Join(cornercase.Names(), ", "))
	fs.StringSliceVar(&o.clearMembers, "clear-member", nil, "Member IDs emptied by the clear-member-content toggle")
	fs.StringVar(&o.now, "now", "", "Reference date, YYYY-MM-DD or RFC 3339 (default: current time)")
	fs.BoolVar(&o.noBenchmark, "no-benchmark", false, "Hide benchmark comparisons on KPIs")
}

// request builds the recompute request for these options.
func (o *viewOptions) request(cfg config.Config) (contract.DashboardRequest, error) {
	req := contract.NewDashboardRequest(o.persona)
	req.SelectedLeaderIDs = o.leaders
	req.BenchmarkEnabled = cfg.BenchmarksEnabled() && !o.noBenchmark

	req.Flags = cornercase.NewFlags(o.toggles.names...)
	req.Flags.RegulatoryCourseID = cfg.Debug.RegulatoryCourseID
	req.Flags.ClearedMemberIDs = o.clearMembers

	if o.now != "" {
		now, err := importer.ParseFlexibleTime(o.now)
		if err != nil {
			return req, fmt.Errorf("--now: %w", err)
		}
		now = now.UTC()
		req.Now = &now
	}
	return req, nil
}

// listOptions are the table projection flags shared by list commands.
type listOptions struct {
	search   string
	sort     string
	desc     bool
	page     int
	pageSize int
	keys     []string
}

func (l *listOptions) bind(fs *pflag.FlagSet, keys []string, defaultSort string) {
	l.keys = keys
	fs.StringVarP(&l.search, "search", "s", "", "Case-insensitive text filter")
	fs.StringVar(&l.sort, "sort", defaultSort, "Sort key: "+strings.Join(keys, ", "))
	fs.BoolVar(&l.desc, "desc", false, "Sort descending")
	fs.IntVar(&l.page, "page", 1, "Page number, starting at 1")
	fs.IntVar(&l.pageSize, "page-size", 0, "Rows per page (default from config)")
}

func (l *listOptions) query(defaultPageSize int) (table.Query, error) {
	if l.sort != "" && !slices.Contains(l.keys, l.sort) {
		return table.Query{}, fmt.Errorf("unknown sort key %q (available: %s)", l.sort, strings.Join(l.keys, ", "))
	}
	if l.page < 1 {
		return table.Query{}, fmt.Errorf("--page must be at least 1, got %d", l.page)
	}
	size := l.pageSize
	if size <= 0 {
		size = defaultPageSize
	}
	dir := table.Asc
	if l.desc {
		dir = table.Desc
	}
	return table.Query{
		Search:   l.search,
		Sort:     table.SortConfig{Key: l.sort, Direction: dir},
		Page:     l.page - 1,
		PageSize: size,
	}, nil
}

// nowOrDefault formats the reference time for log fields.
func nowOrDefault(req contract.DashboardRequest) string {
	if req.Now == nil {
		return "current"
	}
	return req.Now.Format(time.RFC3339)
}
