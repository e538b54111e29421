package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	activitydto "readlog/internal/modules/activity/dto"
	coversdto "readlog/internal/modules/covers/dto"
	librarydto "readlog/internal/modules/library/dto"
	"readlog/internal/ui/components"
	"readlog/internal/ui/theme"
	coversview "readlog/internal/ui/views/covers"
	heatmapview "readlog/internal/ui/views/heatmap"
	monthsview "readlog/internal/ui/views/months"
	timelineview "readlog/internal/ui/views/timeline"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type activityPort interface {
	Year(ctx context.Context, year int) (activitydto.YearOutput, error)
	Summary(ctx context.Context, year int) (activitydto.SummaryOutput, error)
}

type coversPort interface {
	Missing(ctx context.Context, year int) ([]coversdto.MissingCoverOutput, error)
	Open(ctx context.Context, bookID string) (string, error)
}

type libraryPort interface {
	Reindex(ctx context.Context) (librarydto.ReindexOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabTimeline tabID = iota
	tabHeatmap
	tabMonths
	tabCovers
	tabCount
)

var tabLabels = [tabCount]string{
	"Timeline", "Heatmap", "Months", "Covers",
}

// ─── async messages ───────────────────────────────────────────────────────────

type coverOpenedMsg struct {
	path string
	err  error
}

type reindexDoneMsg struct {
	out librarydto.ReindexOutput
	err error
}

type summaryLoadedMsg struct {
	summary activitydto.SummaryOutput
	err     error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab      key.Binding
	Help     key.Binding
	Palette  key.Binding
	Quit     key.Binding
	Enter    key.Binding
	PrevYear key.Binding
	NextYear key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette:  key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open cover")),
		PrevYear: key.NewBinding(key.WithKeys("["), key.WithHelp("[/]", "change year")),
		NextYear: key.NewBinding(key.WithKeys("]"), key.WithHelp("[/]", "change year")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.PrevYear, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Enter},
		{k.PrevYear, k.NextYear},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the displayed
// year, the global help overlay, and the command palette. All business
// logic is delegated to port interfaces; all rendering to sub-views.
type Model struct {
	year int

	// ports used at this orchestration level only
	activity activityPort
	covers   coversPort
	library  libraryPort

	// sub-views (one per tab)
	timelineView timelineview.Model
	heatmapView  heatmapview.Model
	monthsView   monthsview.Model
	coversView   coversview.Model

	// global UI state
	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(year int, activity activityPort, covers coversPort, library libraryPort) Model {
	return Model{
		year:         year,
		activity:     activity,
		covers:       covers,
		library:      library,
		timelineView: timelineview.New(activityPortBridge{p: activity}, year),
		heatmapView:  heatmapview.New(activityPortBridge{p: activity}, year),
		monthsView:   monthsview.New(activityPortBridge{p: activity}, year),
		coversView:   coversview.New(coversPortBridge{p: covers}, year),
		activeTab:    tabTimeline,
		keys:         defaultKeys(),
		help:         help.New(),
		palette:      components.NewPalette(),
		status:       "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.timelineView.Init(),
		m.heatmapView.Init(),
		m.monthsView.Init(),
		m.coversView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	case coverOpenedMsg:
		if msg.err != nil {
			m.status = "cover: " + msg.err.Error()
		} else {
			m.status = "opened " + msg.path
		}

	case reindexDoneMsg:
		if msg.err != nil {
			m.status = "reindex failed: " + msg.err.Error()
		} else {
			m.status = fmt.Sprintf("reindexed %d books", msg.out.Books)
		}

	case summaryLoadedMsg:
		if msg.err != nil {
			m.status = "summary: " + msg.err.Error()
		} else {
			s := msg.summary
			m.status = fmt.Sprintf("%d: %d finished / %d books / %d active days / max %d per day",
				s.Year, s.TotalSessions, s.UniqueBooks, s.ActiveDays, s.MaxPerDay)
		}

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to sub-view when its search filter is active.
		if m.subViewFiltering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			m.showHelp = !m.showHelp
		case ":":
			cmds = append(cmds, m.palette.Open())
			return m, tea.Batch(cmds...)
		case "[":
			return m.setYear(m.year - 1)
		case "]":
			return m.setYear(m.year + 1)
		case "enter":
			if m.activeTab == tabTimeline {
				if id, ok := m.timelineView.SelectedBookID(); ok {
					cmds = append(cmds, m.openCoverCmd(id))
				}
			}
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabTimeline:
		m.timelineView, tabCmd = m.timelineView.Update(msg)
	case tabHeatmap:
		m.heatmapView, tabCmd = m.heatmapView.Update(msg)
	case tabMonths:
		m.monthsView, tabCmd = m.monthsView.Update(msg)
	case tabCovers:
		m.coversView, tabCmd = m.coversView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabTimeline:
		return m.timelineView.View()
	case tabHeatmap:
		return m.heatmapView.View()
	case tabMonths:
		return m.monthsView.View()
	case tabCovers:
		return m.coversView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := fmt.Sprintf("readlog %d  ", m.year) + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  tab:switch  [/]:year  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "year":
		if len(parts) < 2 {
			m.status = "usage: year <yyyy>"
			return m, nil
		}
		year, err := strconv.Atoi(parts[1])
		if err != nil || year <= 0 {
			m.status = "invalid year: " + parts[1]
			return m, nil
		}
		return m.setYear(year)

	case "summary":
		return m, m.loadSummaryCmd()

	case "covers:open":
		if len(parts) < 2 {
			m.status = "usage: covers:open <book-id>"
			return m, nil
		}
		return m, m.openCoverCmd(parts[1])

	case "reindex":
		m.status = "reindexing…"
		return m, m.reindexCmd()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m Model) setYear(year int) (tea.Model, tea.Cmd) {
	m.year = year
	m.status = fmt.Sprintf("year %d", year)
	return m, tea.Batch(
		m.timelineView.SetYear(year),
		m.heatmapView.SetYear(year),
		m.monthsView.SetYear(year),
		m.coversView.SetYear(year),
	)
}

// subViewFiltering reports whether the active tab's list filter is open,
// in which case global key bindings must yield to allow free typing.
func (m Model) subViewFiltering() bool {
	switch m.activeTab {
	case tabTimeline:
		return m.timelineView.Filtering()
	case tabCovers:
		return m.coversView.Filtering()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.timelineView, _ = m.timelineView.Update(sz)
	m.heatmapView, _ = m.heatmapView.Update(sz)
	m.monthsView, _ = m.monthsView.Update(sz)
	m.coversView, _ = m.coversView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) openCoverCmd(bookID string) tea.Cmd {
	return func() tea.Msg {
		path, err := m.covers.Open(context.Background(), bookID)
		return coverOpenedMsg{path: path, err: err}
	}
}

func (m Model) reindexCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.library.Reindex(context.Background())
		return reindexDoneMsg{out: out, err: err}
	}
}

func (m Model) loadSummaryCmd() tea.Cmd {
	year := m.year
	return func() tea.Msg {
		summary, err := m.activity.Summary(context.Background(), year)
		return summaryLoadedMsg{summary: summary, err: err}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows a broad port interface to the minimal interface needed
// by a specific sub-view, keeping view packages free of knowledge about the
// wider port surface.

type activityPortBridge struct{ p activityPort }

func (b activityPortBridge) Year(ctx context.Context, year int) (activitydto.YearOutput, error) {
	return b.p.Year(ctx, year)
}

func (b activityPortBridge) Summary(ctx context.Context, year int) (activitydto.SummaryOutput, error) {
	return b.p.Summary(ctx, year)
}

type coversPortBridge struct{ p coversPort }

func (b coversPortBridge) Missing(ctx context.Context, year int) ([]coversdto.MissingCoverOutput, error) {
	return b.p.Missing(ctx, year)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
