package covers

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	coversdto "readlog/internal/modules/covers/dto"
	"readlog/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type CoversPort interface {
	Missing(ctx context.Context, year int) ([]coversdto.MissingCoverOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type MissingLoadedMsg struct {
	Missing []coversdto.MissingCoverOutput
	Err     error
}

// ─── list item ───────────────────────────────────────────────────────────────

type missingItem struct {
	cover coversdto.MissingCoverOutput
}

func (i missingItem) Title() string { return i.cover.Title }

func (i missingItem) Description() string {
	return fmt.Sprintf("%s  finished %s", i.cover.Author, i.cover.FinishDate.Format("2006-01-02"))
}

func (i missingItem) FilterValue() string { return i.cover.Title + " " + i.cover.Author }

// ─── model ───────────────────────────────────────────────────────────────────

// Model lists books finished in the year whose cover image is absent from
// the covers directory, which is the fetch worklist.
type Model struct {
	port    CoversPort
	year    int
	list    list.Model
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func New(port CoversPort, year int) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Red).BorderForeground(theme.Red)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Red)

	l := list.New(nil, delegate, 0, 0)
	l.Title = fmt.Sprintf("Missing covers %d", year)
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Red)

	return Model{port: port, year: year, list: l, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m *Model) SetYear(year int) tea.Cmd {
	m.year = year
	m.loading = true
	m.list.Title = fmt.Sprintf("Missing covers %d", year)
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width, m.height)

	case MissingLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = fmt.Sprintf("Missing covers %d — %s", m.year, msg.Err)
			return m, nil
		}
		items := make([]list.Item, len(msg.Missing))
		for i, cover := range msg.Missing {
			items[i] = missingItem{cover: cover}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if !m.loading {
		var lCmd tea.Cmd
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Checking covers…")
	}
	return m.list.View()
}

// SelectedExpectedPath returns where the selected book's cover should go.
func (m Model) SelectedExpectedPath() (string, bool) {
	if item, ok := m.list.SelectedItem().(missingItem); ok {
		return item.cover.ExpectedPath, true
	}
	return "", false
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) loadCmd() tea.Cmd {
	port, year := m.port, m.year
	return func() tea.Msg {
		if port == nil {
			return MissingLoadedMsg{}
		}
		missing, err := port.Missing(context.Background(), year)
		return MissingLoadedMsg{Missing: missing, Err: err}
	}
}
