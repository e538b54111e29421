package timeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	activitydto "readlog/internal/modules/activity/dto"
	"readlog/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type TimelinePort interface {
	Year(ctx context.Context, year int) (activitydto.YearOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type YearLoadedMsg struct {
	Out activitydto.YearOutput
	Err error
}

// ─── list item ───────────────────────────────────────────────────────────────

type entryItem struct {
	entry activitydto.EntryOutput
}

func (i entryItem) Title() string {
	return i.entry.Finish.Format("Jan 02") + "  " + i.entry.Title
}

func (i entryItem) Description() string {
	if i.entry.TotalReads > 1 {
		return fmt.Sprintf("%s  read %d of %d", i.entry.Author, i.entry.ReadNumber, i.entry.TotalReads)
	}
	return i.entry.Author
}

func (i entryItem) FilterValue() string { return i.entry.Title + " " + i.entry.Author }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    TimelinePort
	year    int
	list    list.Model
	detail  viewport.Model
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func New(port TimelinePort, year int) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = fmt.Sprintf("Timeline %d", year)
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		year:    year,
		list:    l,
		detail:  vp,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadYearCmd(), m.spinner.Tick)
}

// SetYear switches the displayed year and returns the reload command.
func (m *Model) SetYear(year int) tea.Cmd {
	m.year = year
	m.loading = true
	m.list.Title = fmt.Sprintf("Timeline %d", year)
	return tea.Batch(m.loadYearCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case YearLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = fmt.Sprintf("Timeline %d — %s", m.year, msg.Err)
			return m, nil
		}
		items := make([]list.Item, len(msg.Out.Entries))
		for i, entry := range msg.Out.Entries {
			items[i] = entryItem{entry: entry}
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.detail.SetContent(m.renderDetail())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if !m.loading {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			m.detail.SetContent(m.renderDetail())
		}

		var vCmd tea.Cmd
		m.detail, vCmd = m.detail.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading timeline…")
	}

	listW := m.width * 45 / 100
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.detail.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// SelectedBookID returns the current selection's book ID, if any.
func (m Model) SelectedBookID() (string, bool) {
	if item, ok := m.list.SelectedItem().(entryItem); ok {
		return item.entry.BookID, true
	}
	return "", false
}

// Filtering reports whether the list's search filter is currently active.
// The app model checks this to avoid consuming global keys during a search.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 45 / 100
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.detail.Width = detailW - 4
	m.detail.Height = m.height - 4
}

func (m Model) renderDetail() string {
	item, ok := m.list.SelectedItem().(entryItem)
	if !ok {
		return theme.Muted.Render("No finished books this year")
	}
	e := item.entry
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(e.Title) + "\n\n")
	sb.WriteString(theme.Muted.Render("author:   ") + e.Author + "\n")
	sb.WriteString(theme.Muted.Render("book id:  ") + e.BookID + "\n")
	if !e.Start.IsZero() {
		sb.WriteString(theme.Muted.Render("started:  ") + e.Start.Format("2006-01-02") + "\n")
	}
	sb.WriteString(theme.Muted.Render("finished: ") + e.Finish.Format("2006-01-02") + "\n")
	if e.TotalReads > 1 {
		sb.WriteString(theme.Muted.Render("reread:   ") + fmt.Sprintf("read %d of %d", e.ReadNumber, e.TotalReads) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("enter: open cover  [/]: change year"))
	return sb.String()
}

func (m Model) loadYearCmd() tea.Cmd {
	port, year := m.port, m.year
	return func() tea.Msg {
		if port == nil {
			return YearLoadedMsg{}
		}
		out, err := port.Year(context.Background(), year)
		return YearLoadedMsg{Out: out, Err: err}
	}
}
