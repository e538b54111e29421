package heatmap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	activitydomain "readlog/internal/modules/activity/domain"
	activitydto "readlog/internal/modules/activity/dto"
	"readlog/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type HeatmapPort interface {
	Year(ctx context.Context, year int) (activitydto.YearOutput, error)
	Summary(ctx context.Context, year int) (activitydto.SummaryOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type DataLoadedMsg struct {
	Out     activitydto.YearOutput
	Summary activitydto.SummaryOutput
	Err     error
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model renders a week-by-weekday activity calendar. Each cell is one day of
// the year colored by how many books were finished on it.
type Model struct {
	port    HeatmapPort
	year    int
	out     activitydto.YearOutput
	summary activitydto.SummaryOutput
	body    viewport.Model
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func New(port HeatmapPort, year int) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Green)

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
		m.body.Width = m.width - 4
		m.body.Height = m.height - 4
		m.body.SetContent(m.render())

	case DataLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.body.SetContent(theme.Muted.Render("heatmap: " + msg.Err.Error()))
			return m, nil
		}
		m.out = msg.Out
		m.summary = msg.Summary
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
			m.spinner.View()+" Loading heatmap…")
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(m.width - 2).
		Height(m.height - 2).
		Render(m.body.View())
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) render() string {
	weeks, monthWeeks := m.weeks()

	var sb strings.Builder
	sb.WriteString(theme.Title.Render(fmt.Sprintf("Reading activity %d", m.year)) + "\n\n")

	// Month labels above the week holding each month's first day.
	var header strings.Builder
	header.WriteString("    ")
	for w := 0; w < len(weeks); w++ {
		if month, ok := monthWeeks[w]; ok && w+2 <= len(weeks) {
			header.WriteString(month.String()[:3] + " ")
			w++
			continue
		}
		header.WriteString("  ")
	}
	sb.WriteString(theme.Muted.Render(strings.TrimRight(header.String(), " ")) + "\n")

	labels := [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	for d := 0; d < 7; d++ {
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("%-4s", labels[d])))
		for _, week := range weeks {
			count := week[d]
			if count < 0 {
				sb.WriteString("  ")
			} else {
				cell := "  "
				if count > 1 {
					cell = fmt.Sprintf("%2d", count)
				}
				sb.WriteString(theme.HeatStyle(count).Render(cell))
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n" + theme.Muted.Render("less "))
	for _, color := range theme.HeatScale {
		sb.WriteString(lipgloss.NewStyle().Background(color).Render("  ") + " ")
	}
	sb.WriteString(theme.Muted.Render("more") + "\n\n")

	s := m.summary
	sb.WriteString(fmt.Sprintf("%s %d finished, %d unique books, %d rereads\n",
		theme.Hot.Render("▸"), s.TotalSessions, s.UniqueBooks, s.RereadBooks))
	sb.WriteString(fmt.Sprintf("%s %d active days, avg %.2f per active day\n",
		theme.Hot.Render("▸"), s.ActiveDays, s.AveragePerActive))
	if len(s.BusiestDays) > 0 {
		sb.WriteString(theme.Muted.Render("busiest: "))
		parts := make([]string, 0, len(s.BusiestDays))
		for _, day := range s.BusiestDays {
			parts = append(parts, fmt.Sprintf("%s (%d)", day.Date.Format("Jan 02"), day.Count))
		}
		sb.WriteString(strings.Join(parts, ", ") + "\n")
	}
	return sb.String()
}

func (m Model) weeks() ([][7]int, map[int]time.Month) {
	counts := map[time.Time]int{}
	for _, day := range m.out.Days {
		counts[day.Date] = day.Count
	}
	return activitydomain.WeekGrid(m.year, counts)
}

func (m Model) loadCmd() tea.Cmd {
	port, year := m.port, m.year
	return func() tea.Msg {
		if port == nil {
			return DataLoadedMsg{}
		}
		out, err := port.Year(context.Background(), year)
		if err != nil {
			return DataLoadedMsg{Err: err}
		}
		summary, err := port.Summary(context.Background(), year)
		return DataLoadedMsg{Out: out, Summary: summary, Err: err}
	}
}
