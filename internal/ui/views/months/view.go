package months

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	activitydto "readlog/internal/modules/activity/dto"
	"readlog/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type MonthsPort interface {
	Year(ctx context.Context, year int) (activitydto.YearOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type YearLoadedMsg struct {
	Out activitydto.YearOutput
	Err error
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model renders twelve month panes in a grid. Months without finished
// books still get a pane so the shape of the year stays visible.
type Model struct {
	port    MonthsPort
	year    int
	out     activitydto.YearOutput
	body    viewport.Model
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func New(port MonthsPort, year int) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Foreground(theme.Text)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Sapphire)

	return Model{port: port, year: year, body: vp, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m *Model) SetYear(year int) tea.Cmd {
	m.year = year
	m.loading = true
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.body.Width = m.width
		m.body.Height = m.height
		m.body.SetContent(m.render())

	case YearLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.body.SetContent(theme.Muted.Render("months: " + msg.Err.Error()))
			return m, nil
		}
		m.out = msg.Out
		m.body.SetContent(m.render())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if !m.loading {
		var vCmd tea.Cmd
		m.body, vCmd = m.body.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading months…")
	}
	return m.body.View()
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) render() string {
	perRow := 4
	if m.width < 100 {
		perRow = 3
	}
	if m.width < 70 {
		perRow = 2
	}
	paneW := m.width/perRow - 2
	if paneW < 18 {
		paneW = 18
	}

	panes := make([]string, 0, 12)
	for _, month := range m.out.Months {
		var sb strings.Builder
		sb.WriteString(theme.Title.Render(month.Month.String()) + "\n")
		if len(month.Entries) == 0 {
			sb.WriteString(theme.Muted.Render("—"))
		}
		for _, entry := range month.Entries {
			title := entry.Title
			if runes := []rune(title); len(runes) > paneW-8 {
				title = string(runes[:paneW-9]) + "…"
			}
			line := fmt.Sprintf("%s %s", theme.Muted.Render(entry.Finish.Format("02")), title)
			if entry.TotalReads > 1 {
				line += theme.Hot.Render(fmt.Sprintf(" ↻%d", entry.ReadNumber))
			}
			sb.WriteString(line + "\n")
		}
		panes = append(panes, theme.Pane.Width(paneW).Render(sb.String()))
	}

	var rows []string
	for i := 0; i < len(panes); i += perRow {
		end := i + perRow
		if end > len(panes) {
			end = len(panes)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, panes[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) loadCmd() tea.Cmd {
	port, year := m.port, m.year
	return func() tea.Msg {
		if port == nil {
			return YearLoadedMsg{}
		}
		out, err := port.Year(context.Background(), year)
		return YearLoadedMsg{Out: out, Err: err}
	}
}
