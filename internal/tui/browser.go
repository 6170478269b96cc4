package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/runloopai/rlctl/internal/api"
	"github.com/runloopai/rlctl/internal/app"
	"github.com/runloopai/rlctl/internal/nav"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))
)

// pagerUpdateMsg tells the browser that some engine's state changed and
// the view should re-render.
type pagerUpdateMsg struct{}

// devboxLoadedMsg carries the result of a detail fetch.
type devboxLoadedMsg struct {
	devbox *api.Devbox
	err    error
}

// tabs in top-level screen order; number keys jump between them.
var tabs = []string{ScreenDevboxes, ScreenBlueprints, ScreenObjects, ScreenSnapshots}

// Browser is the interactive resource browser. It owns a navigation
// state and one pagination engine per visited list screen; engines
// survive back-navigation so returning to a screen replays its page.
type Browser struct {
	app     *app.App
	nav     nav.State
	screens map[string]listScreen
	cursors map[string]int

	detail    *api.Devbox
	detailErr error

	spinner  spinner.Model
	updates  chan tea.Msg
	width    int
	height   int
	quitting bool
}

// NewBrowser builds a browser rooted at the devbox list.
func NewBrowser(a *app.App) *Browser {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = labelStyle

	b := &Browser{
		app:     a,
		nav:     nav.Initialize(),
		screens: make(map[string]listScreen),
		cursors: make(map[string]int),
		spinner: sp,
		updates: make(chan tea.Msg, 1),
	}
	b.ensureScreen(b.nav)
	return b
}

// onUpdate is handed to every engine. Coalescing through a buffered
// channel keeps a burst of engine callbacks to a single re-render.
func (b *Browser) onUpdate() {
	select {
	case b.updates <- pagerUpdateMsg{}:
	default:
	}
}

func (b *Browser) listen() tea.Cmd {
	return func() tea.Msg {
		return <-b.updates
	}
}

// screenKey identifies one engine instance. Parameterized screens get
// one engine per parameter value.
func screenKey(s nav.State) string {
	if id, ok := s.Params["id"].(string); ok {
		return s.Screen + ":" + id
	}
	return s.Screen
}

// ensureScreen lazily builds and starts the engine behind the current
// screen, then points polling at the visible screen only.
func (b *Browser) ensureScreen(s nav.State) {
	key := screenKey(s)
	if _, ok := b.screens[key]; !ok {
		var ls listScreen
		switch s.Screen {
		case ScreenDevboxes:
			ls = newDevboxScreen(b.app, b.onUpdate)
		case ScreenBlueprints:
			ls = newBlueprintScreen(b.app, b.onUpdate)
		case ScreenObjects:
			ls = newObjectScreen(b.app, b.onUpdate)
		case ScreenSnapshots:
			ls = newSnapshotScreen(b.app, b.onUpdate)
		case ScreenDevboxLogs:
			id, _ := s.Params["id"].(string)
			ls = newDevboxLogsScreen(b.app, id, b.onUpdate)
		}
		if ls != nil {
			b.screens[key] = ls
			ls.Start()
		}
	}
	for k, ls := range b.screens {
		ls.SetPollingEnabled(k == key)
	}
}

func (b *Browser) current() listScreen {
	return b.screens[screenKey(b.nav)]
}

func (b *Browser) cursor() int {
	return b.cursors[screenKey(b.nav)]
}

func (b *Browser) setCursor(n int) {
	b.cursors[screenKey(b.nav)] = n
}

func (b *Browser) clampCursor() {
	ls := b.current()
	if ls == nil {
		return
	}
	max := len(ls.Rows()) - 1
	if max < 0 {
		max = 0
	}
	if b.cursor() > max {
		b.setCursor(max)
	}
}

// goTo applies a navigation transition and prepares whatever the new
// screen needs.
func (b *Browser) goTo(next nav.State) tea.Cmd {
	b.nav = next
	if b.nav.Screen == ScreenDevboxDetail {
		id, _ := b.nav.Params["id"].(string)
		// Detail is a point fetch, not a paged list; suspend all list
		// polling while it is up.
		for _, ls := range b.screens {
			ls.SetPollingEnabled(false)
		}
		b.detail = nil
		b.detailErr = nil
		return b.fetchDevbox(id)
	}
	b.ensureScreen(b.nav)
	return nil
}

func (b *Browser) fetchDevbox(id string) tea.Cmd {
	client := b.app.Client
	return func() tea.Msg {
		d, err := client.GetDevbox(context.Background(), id)
		return devboxLoadedMsg{devbox: d, err: err}
	}
}

func (b *Browser) Init() tea.Cmd {
	return tea.Batch(b.listen(), b.spinner.Tick)
}

func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		return b, nil

	case pagerUpdateMsg:
		b.clampCursor()
		return b, b.listen()

	case devboxLoadedMsg:
		b.detail = msg.devbox
		b.detailErr = msg.err
		return b, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		b.spinner, cmd = b.spinner.Update(msg)
		return b, cmd

	case tea.KeyMsg:
		return b.handleKey(msg)
	}
	return b, nil
}

func (b *Browser) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		b.quitting = true
		for _, ls := range b.screens {
			ls.Close()
		}
		return b, tea.Quit

	case "esc":
		if !nav.CanGoBack(b.nav) {
			return b, nil
		}
		return b, b.goTo(nav.GoBack(b.nav))

	case "up", "k":
		if c := b.cursor(); c > 0 {
			b.setCursor(c - 1)
		}
		return b, nil

	case "down", "j":
		if ls := b.current(); ls != nil && b.cursor() < len(ls.Rows())-1 {
			b.setCursor(b.cursor() + 1)
		}
		return b, nil

	case "enter":
		ls := b.current()
		if ls == nil {
			return b, nil
		}
		if t, ok := ls.Select(b.cursor()); ok {
			return b, b.goTo(nav.Push(b.nav, t.screen, t.params))
		}
		return b, nil

	case "l":
		// From a devbox detail, drill into its logs.
		if b.nav.Screen == ScreenDevboxDetail {
			id, _ := b.nav.Params["id"].(string)
			return b, b.goTo(nav.Push(b.nav, ScreenDevboxLogs, nav.Params{"id": id}))
		}
		return b, nil

	case "]", "right":
		if ls := b.current(); ls != nil {
			ls.NextPage()
			b.setCursor(0)
		}
		return b, nil

	case "[", "left":
		if ls := b.current(); ls != nil {
			ls.PrevPage()
			b.setCursor(0)
		}
		return b, nil

	case "r":
		if b.nav.Screen == ScreenDevboxDetail {
			id, _ := b.nav.Params["id"].(string)
			return b, b.fetchDevbox(id)
		}
		if ls := b.current(); ls != nil {
			ls.Refresh()
		}
		return b, nil

	case "f":
		if ls := b.current(); ls != nil {
			if ls.CycleFilter() {
				b.setCursor(0)
			}
		}
		return b, nil

	case "1", "2", "3", "4":
		idx := int(msg.String()[0] - '1')
		if idx < len(tabs) && tabs[idx] != b.nav.Screen {
			// Tab switches swap the current entry rather than growing
			// history; back from any tab lands where the tab row was
			// entered from.
			return b, b.goTo(nav.Replace(b.nav, tabs[idx], nil))
		}
		return b, nil
	}
	return b, nil
}

func (b *Browser) View() string {
	if b.quitting {
		return ""
	}
	if b.nav.Screen == ScreenDevboxDetail {
		return b.detailView()
	}
	return b.listView()
}

func (b *Browser) listView() string {
	ls := b.current()
	if ls == nil {
		return errStyle.Render("unknown screen: " + b.nav.Screen)
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("rlctl - "+ls.Title()) + "\n")
	sb.WriteString(b.tabBar() + "\n\n")

	status := ls.Status()
	rows := ls.Rows()

	switch {
	case status.Loading:
		sb.WriteString(b.spinner.View() + " Loading...\n")
	case len(rows) == 0:
		sb.WriteString(descStyle.Render("No items.") + "\n")
	default:
		for i, r := range rows {
			prefix := "  "
			title := r.title
			if i == b.cursor() {
				prefix = "> "
				title = selectedStyle.Render(title)
			}
			sb.WriteString(prefix + title + "\n")
			if r.desc != "" {
				sb.WriteString("    " + descStyle.Render(r.desc) + "\n")
			}
		}
	}

	sb.WriteString("\n" + statusStyle.Render(b.statusLine(ls, status)) + "\n")
	if status.Err != nil {
		sb.WriteString(errStyle.Render("error: "+status.Err.Error()) + "\n")
	}
	sb.WriteString(helpStyle.Render(b.helpLine(ls)))
	return sb.String()
}

func (b *Browser) statusLine(ls listScreen, status pageStatus) string {
	parts := []string{fmt.Sprintf("page %d", status.Page+1)}
	if status.TotalCount > 0 {
		parts = append(parts, fmt.Sprintf("%d/%d items", status.Count, status.TotalCount))
	} else {
		parts = append(parts, fmt.Sprintf("%d items", status.Count))
	}
	if f := ls.FilterLabel(); f != "" {
		parts = append(parts, f)
	}
	if status.Navigating {
		parts = append(parts, "fetching...")
	}
	return strings.Join(parts, " | ")
}

func (b *Browser) helpLine(ls listScreen) string {
	help := "[enter] Open  [[/]] Page  [r] Refresh  [1-4] Tab"
	if ls.FilterLabel() != "" {
		help += "  [f] Filter"
	}
	if nav.CanGoBack(b.nav) {
		help += "  [esc] Back"
	}
	return help + "  [q] Quit"
}

func (b *Browser) tabBar() string {
	names := []string{"1:Devboxes", "2:Blueprints", "3:Objects", "4:Snapshots"}
	parts := make([]string, len(names))
	for i, n := range names {
		if tabs[i] == b.nav.Screen {
			parts[i] = selectedStyle.Render(n)
		} else {
			parts[i] = descStyle.Render(n)
		}
	}
	return strings.Join(parts, "  ")
}

func (b *Browser) detailView() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("rlctl - Devbox") + "\n\n")

	switch {
	case b.detailErr != nil:
		sb.WriteString(errStyle.Render("error: "+b.detailErr.Error()) + "\n")
	case b.detail == nil:
		sb.WriteString(b.spinner.View() + " Loading...\n")
	default:
		d := b.detail
		field := func(k, v string) {
			if v != "" {
				sb.WriteString(labelStyle.Render(fmt.Sprintf("%-12s", k)) + v + "\n")
			}
		}
		field("ID", d.ID)
		field("Name", d.Name)
		field("Status", statusIcon(d.Status)+" "+d.Status)
		field("Blueprint", d.BlueprintID)
		field("Snapshot", d.SnapshotID)
		field("Created", formatAge(d.CreateTimeMs))
	}

	sb.WriteString(helpStyle.Render("[l] Logs  [r] Refresh  [esc] Back  [q] Quit"))
	return sb.String()
}

// Run starts the interactive browser and blocks until it exits.
func Run(a *app.App) error {
	b := NewBrowser(a)
	p := tea.NewProgram(b, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
