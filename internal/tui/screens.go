package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/atomic"

	"github.com/runloopai/rlctl/internal/api"
	"github.com/runloopai/rlctl/internal/app"
	"github.com/runloopai/rlctl/internal/nav"
	"github.com/runloopai/rlctl/internal/pager"
)

// Screen identifiers. The nav machine treats them as opaque data; this
// package gives them meaning.
const (
	ScreenDevboxes     = "devboxes"
	ScreenBlueprints   = "blueprints"
	ScreenObjects      = "objects"
	ScreenSnapshots    = "snapshots"
	ScreenDevboxDetail = "devbox_detail"
	ScreenDevboxLogs   = "devbox_logs"
)

// row is one rendered list line.
type row struct {
	title string
	desc  string
}

// target is where selecting a row navigates.
type target struct {
	screen string
	params nav.Params
}

// listScreen is the non-generic surface the browser drives. Each
// implementation wraps one pagination engine.
type listScreen interface {
	Start()
	Close()
	NextPage()
	PrevPage()
	Refresh()
	SetPollingEnabled(bool)

	Title() string
	Rows() []row
	Status() pageStatus
	Select(index int) (target, bool)

	// CycleFilter advances the screen's filter, if it has one, and
	// reports whether anything changed.
	CycleFilter() bool
	FilterLabel() string
}

// pageStatus is the slice of pager state the views render.
type pageStatus struct {
	Loading    bool
	Navigating bool
	Err        error
	Page       int
	HasMore    bool
	HasPrev    bool
	TotalCount int
	Count      int
}

// listView adapts a typed pagination engine to the listScreen surface.
type listView[T any] struct {
	title   string
	engine  *pager.Engine[T]
	rowFn   func(T) row
	selFn   func(T) (target, bool)
	filters []string
	filter  *atomic.String
	label   string
}

func (v *listView[T]) Start()    { v.engine.Start() }
func (v *listView[T]) Close()    { v.engine.Close() }
func (v *listView[T]) NextPage() { v.engine.NextPage() }
func (v *listView[T]) PrevPage() { v.engine.PrevPage() }
func (v *listView[T]) Refresh()  { v.engine.Refresh() }

func (v *listView[T]) SetPollingEnabled(b bool) { v.engine.SetPollingEnabled(b) }
func (v *listView[T]) Title() string            { return v.title }

func (v *listView[T]) Rows() []row {
	snap := v.engine.Snapshot()
	rows := make([]row, len(snap.Items))
	for i, it := range snap.Items {
		rows[i] = v.rowFn(it)
	}
	return rows
}

func (v *listView[T]) Status() pageStatus {
	snap := v.engine.Snapshot()
	return pageStatus{
		Loading:    snap.Loading,
		Navigating: snap.Navigating,
		Err:        snap.Err,
		Page:       snap.Page,
		HasMore:    snap.HasMore,
		HasPrev:    snap.HasPrev,
		TotalCount: snap.TotalCount,
		Count:      len(snap.Items),
	}
}

func (v *listView[T]) Select(index int) (target, bool) {
	snap := v.engine.Snapshot()
	if v.selFn == nil || index < 0 || index >= len(snap.Items) {
		return target{}, false
	}
	return v.selFn(snap.Items[index])
}

func (v *listView[T]) CycleFilter() bool {
	if len(v.filters) == 0 {
		return false
	}
	current := v.filter.Load()
	next := v.filters[0]
	for i, f := range v.filters {
		if f == current {
			next = v.filters[(i+1)%len(v.filters)]
			break
		}
	}
	v.filter.Store(next)
	v.engine.SetResetDeps([]any{next})
	return true
}

func (v *listView[T]) FilterLabel() string {
	if len(v.filters) == 0 {
		return ""
	}
	f := v.filter.Load()
	if f == "" {
		f = "all"
	}
	return fmt.Sprintf("%s: %s", v.label, f)
}

// newDevboxScreen builds the devbox list. The status filter is read by
// the fetch closure on every call, so a reset-dependency change picks
// up the new filter on its fresh page-zero load.
func newDevboxScreen(a *app.App, onUpdate func()) listScreen {
	filter := atomic.NewString("")
	fetch := func(ctx context.Context, req pager.Request) (pager.Page[api.Devbox], error) {
		return a.Client.DevboxPageFunc(filter.Load())(ctx, req)
	}
	engine := mustEngine(pager.Config[api.Devbox]{
		Fetch:          fetch,
		PageSize:       a.Config.PageSize,
		ItemID:         func(d api.Devbox) string { return d.ID },
		PollInterval:   a.Config.PollInterval,
		PollingEnabled: true,
		ResetDeps:      []any{""},
		OnUpdate:       onUpdate,
	})
	return &listView[api.Devbox]{
		title:  "Devboxes",
		engine: engine,
		rowFn: func(d api.Devbox) row {
			name := d.Name
			if name == "" {
				name = d.ID
			}
			return row{
				title: fmt.Sprintf("%s %s", statusIcon(d.Status), name),
				desc:  fmt.Sprintf("%s | %s | %s", d.ID, d.Status, formatAge(d.CreateTimeMs)),
			}
		},
		selFn: func(d api.Devbox) (target, bool) {
			return target{screen: ScreenDevboxDetail, params: nav.Params{"id": d.ID}}, true
		},
		filters: []string{"", api.DevboxRunning, api.DevboxStopped, api.DevboxShutdown},
		filter:  filter,
		label:   "status",
	}
}

func newBlueprintScreen(a *app.App, onUpdate func()) listScreen {
	engine := mustEngine(pager.Config[api.Blueprint]{
		Fetch:          a.Client.BlueprintPageFunc(""),
		PageSize:       a.Config.PageSize,
		ItemID:         func(b api.Blueprint) string { return b.ID },
		PollInterval:   a.Config.PollInterval,
		PollingEnabled: true,
		OnUpdate:       onUpdate,
	})
	return &listView[api.Blueprint]{
		title:  "Blueprints",
		engine: engine,
		rowFn: func(b api.Blueprint) row {
			return row{
				title: b.Name,
				desc:  fmt.Sprintf("%s | %s | %s", b.ID, b.Status, formatAge(b.CreateTimeMs)),
			}
		},
	}
}

func newObjectScreen(a *app.App, onUpdate func()) listScreen {
	engine := mustEngine(pager.Config[api.Object]{
		Fetch:          a.Client.ObjectPageFunc(api.ObjectListParams{}),
		PageSize:       a.Config.PageSize,
		ItemID:         func(o api.Object) string { return o.ID },
		PollInterval:   a.Config.PollInterval,
		PollingEnabled: true,
		OnUpdate:       onUpdate,
	})
	return &listView[api.Object]{
		title:  "Objects",
		engine: engine,
		rowFn: func(o api.Object) row {
			return row{
				title: o.Name,
				desc:  fmt.Sprintf("%s | %s | %s", o.ID, o.ContentType, formatBytes(o.SizeBytes)),
			}
		},
	}
}

func newSnapshotScreen(a *app.App, onUpdate func()) listScreen {
	engine := mustEngine(pager.Config[api.DiskSnapshot]{
		Fetch:          a.Client.SnapshotPageFunc(),
		PageSize:       a.Config.PageSize,
		ItemID:         func(s api.DiskSnapshot) string { return s.ID },
		PollInterval:   a.Config.PollInterval,
		PollingEnabled: true,
		OnUpdate:       onUpdate,
	})
	return &listView[api.DiskSnapshot]{
		title:  "Snapshots",
		engine: engine,
		rowFn: func(s api.DiskSnapshot) row {
			name := s.Name
			if name == "" {
				name = s.ID
			}
			return row{
				title: name,
				desc:  fmt.Sprintf("%s | from %s | %s", s.ID, s.SourceID, formatAge(s.CreateTimeMs)),
			}
		},
	}
}

// newDevboxLogsScreen pages a devbox's logs. Log lines carry no id, so
// the millisecond timestamp serves as the forward cursor.
func newDevboxLogsScreen(a *app.App, devboxID string, onUpdate func()) listScreen {
	engine := mustEngine(pager.Config[api.LogEntry]{
		Fetch:          a.Client.DevboxLogPageFunc(devboxID),
		PageSize:       a.Config.PageSize,
		ItemID:         func(l api.LogEntry) string { return fmt.Sprintf("%d", l.TimestampMs) },
		PollInterval:   a.Config.PollInterval,
		PollingEnabled: true,
		OnUpdate:       onUpdate,
	})
	return &listView[api.LogEntry]{
		title:  "Logs " + devboxID,
		engine: engine,
		rowFn: func(l api.LogEntry) row {
			return row{title: formatLogLine(l)}
		},
	}
}

func mustEngine[T any](cfg pager.Config[T]) *pager.Engine[T] {
	e, err := pager.New(cfg)
	if err != nil {
		// Screen constructors supply complete configs; a failure here
		// is a programming error.
		panic(err)
	}
	return e
}

func statusIcon(status string) string {
	switch status {
	case api.DevboxRunning:
		return "✓"
	case api.DevboxStopped:
		return "○"
	case api.DevboxShutdown:
		return "●"
	default:
		return "·"
	}
}

func formatAge(createTimeMs int64) string {
	if createTimeMs == 0 {
		return "unknown age"
	}
	age := time.Since(time.UnixMilli(createTimeMs))
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(age.Hours()/24))
	}
}

func formatBytes(n int64) string {
	switch {
	case n >= 1<<30:
		return fmt.Sprintf("%.1f GiB", float64(n)/(1<<30))
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

func formatLogLine(l api.LogEntry) string {
	var b strings.Builder
	if l.TimestampMs > 0 {
		b.WriteString(time.UnixMilli(l.TimestampMs).Format("2006-01-02 15:04:05.000"))
	}
	if l.Source != "" {
		fmt.Fprintf(&b, " [%s]", l.Source)
	}
	switch {
	case l.Cmd != "":
		fmt.Fprintf(&b, " -> %s", l.Cmd)
	case l.ExitCode != nil:
		fmt.Fprintf(&b, " -> exit_code=%d", *l.ExitCode)
	default:
		fmt.Fprintf(&b, "  %s", l.Message)
	}
	return b.String()
}
